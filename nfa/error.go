// Package nfa builds a Thompson NFA from a postfix regex symbol stream.
//
// The NFA is a graph.Graph[NodeData, EdgeData]: nodes carry only an
// accepting flag, edges carry either an epsilon marker or a single literal
// character. Construction is syntax-directed over the postfix queue
// produced by package postfix, following the fragment-stack shape in
// SPEC_FULL.md §4.4: one fragment (entry, exit) is pushed per symbol, and
// the pattern compiles to the single fragment left on the stack at the end.
package nfa

import (
	"errors"
	"fmt"
)

// ErrTooComplex is returned when Thompson construction would exceed
// config.Config.MaxNFAStates. Mirrors the teacher's nfa.ErrTooComplex
// sentinel (SPEC_FULL.md §2A/§4.4).
var ErrTooComplex = errors.New("pattern too complex: NFA state budget exceeded")

// BuildError reports a malformed postfix stream reaching the NFA builder.
// Per SPEC_FULL.md §4.4 this should never happen if the postfixer is
// correct; it is a fatal internal error, not a user-facing one.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
