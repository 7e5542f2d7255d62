package dfa

import "errors"

// ErrTooComplex is returned when subset construction would exceed
// config.Config.MaxDFAStates. Mirrors the teacher's MaxDFAStates /
// DeterminizationLimit guardrails (SPEC_FULL.md §2A/§4.5).
var ErrTooComplex = errors.New("pattern too complex: DFA state budget exceeded")
