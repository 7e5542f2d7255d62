// Package prefilter provides a cheap pre-check that can reject a line
// before the DFA ever runs, using the literal set package literal extracts
// from a compiled pattern (SPEC_FULL.md §2B/§4.6).
//
// This replaces the teacher's multi-strategy prefilter (memchr / memmem /
// Teddy / Aho-Corasick chosen by literal count and length, prefilter.go's
// selectPrefilter) with a single Aho-Corasick-backed implementation: this
// grammar's literal extraction only ever produces the "alternation of
// literal branches" shape, which is exactly what Aho-Corasick is for, so
// the teacher's size-based strategy selection has nothing to select between
// here. See DESIGN.md for the dropped strategies.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/linegrep/literal"
)

// Prefilter answers "could this line possibly match", using the pattern's
// required-literal set. A false result is a guarantee the line cannot
// match; a true result means the DFA must still run.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a Prefilter from the runs literal.Extract produced. It
// returns (nil, nil) — not an error — when runs is empty, mirroring the
// teacher's selectPrefilter returning a nil Prefilter for "no literals"
// (SPEC_FULL.md §8: skipped, not an error).
func Build(runs []literal.LiteralRun) (*Prefilter, error) {
	if len(runs) == 0 {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, r := range runs {
		builder.AddPattern(r.Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{automaton: automaton}, nil
}

// CouldMatch reports whether line contains at least one of the prefilter's
// required literals. When it returns false, the scanner may skip the DFA
// simulation entirely for this line without changing the search outcome
// (SPEC_FULL.md §8 soundness property).
func (p *Prefilter) CouldMatch(line []byte) bool {
	if p == nil {
		return true
	}
	return p.automaton.IsMatch(line)
}
