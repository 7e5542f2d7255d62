// Package scan implements the line-matching procedure described in
// SPEC_FULL.md §4.6: try every suffix of a line as a potential match
// origin, simulating the DFA rune by rune (byte by byte on the ASCII fast
// path), optionally short-circuited by a literal prefilter in case-sensitive
// mode and sped up by an ASCII fast path.
package scan

import (
	"unicode"

	"golang.org/x/sys/cpu"

	"github.com/coregx/linegrep/config"
	"github.com/coregx/linegrep/dfa"
	"github.com/coregx/linegrep/graph"
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/simd"
)

// Scanner decides, for a compiled DFA, whether a given line contains a
// match anywhere in it.
type Scanner struct {
	dfa        *dfa.DFA
	prefilter  *prefilter.Prefilter
	ignoreCase bool
	cfg        config.Config
}

// New builds a Scanner over d. pf may be nil (no prefilter available for
// this pattern).
func New(d *dfa.DFA, pf *prefilter.Prefilter, ignoreCase bool, cfg config.Config) *Scanner {
	return &Scanner{dfa: d, prefilter: pf, ignoreCase: ignoreCase, cfg: cfg}
}

// MatchLine reports whether line contains a match anywhere.
func (s *Scanner) MatchLine(line string) bool {
	// The prefilter's literals are matched case-sensitively, so it is only
	// consulted when matching is case-sensitive.
	if s.cfg.EnablePrefilter && s.prefilter != nil && !s.ignoreCase {
		if !s.prefilter.CouldMatch([]byte(line)) {
			return false
		}
	}

	if s.cfg.EnableASCIIFastPath && cpu.X86.HasSSE42 && !s.ignoreCase {
		data := []byte(line)
		if simd.IsASCII(data) {
			return s.matchASCII(data)
		}
	}

	return s.matchRunes([]rune(line))
}

// matchRunes is the generic suffix-try loop (SPEC_FULL.md §4.6), operating
// on decoded runes so it is correct for any Unicode input.
func (s *Scanner) matchRunes(line []rune) bool {
	for i := 0; i < len(line); i++ {
		if s.simulate(line[i:]) {
			return true
		}
	}
	return false
}

// simulate runs the DFA over suffix starting at s.dfa.Start, consuming as
// many leading characters as it can transition on, and reports whether the
// state it finally rests in — after exhausting the suffix or hitting the
// first character with no outgoing edge — is accepting.
//
// Acceptance is checked exactly once, after the run stops, not after every
// individual transition: a DFA state can be accepting yet still have a live
// outgoing edge into a subset that drops the accept member, so checking
// eagerly at each step would report a match the one-shot final check would
// not. This matches the reference run_automata's single is_accepting() call
// after its character loop ends.
func (s *Scanner) simulate(suffix []rune) bool {
	cur := s.dfa.Start
	for _, c := range suffix {
		next, ok := s.step(cur, c)
		if !ok {
			break
		}
		cur = next
	}
	return s.dfa.IsAccepting(cur)
}

// step finds the outgoing edge from cur matching c, honouring ignoreCase
// (SPEC_FULL.md §4.6 matching rule).
func (s *Scanner) step(cur graph.NodeIndex, c rune) (graph.NodeIndex, bool) {
	if !s.ignoreCase {
		return s.dfa.Step(cur, c)
	}
	lc := unicode.ToLower(c)
	if next, ok := s.dfa.Step(cur, c); ok {
		return next, true
	}
	edges, err := s.dfa.Graph.OutgoingEdges(cur)
	if err != nil {
		return 0, false
	}
	for _, e := range edges {
		data, err := s.dfa.Graph.EdgeData(e)
		if err != nil {
			continue
		}
		if unicode.ToLower(data.Ch) == lc {
			tgt, err := s.dfa.Graph.Traverse(e)
			if err != nil {
				continue
			}
			return tgt, true
		}
	}
	return 0, false
}

// matchASCII is the byte-indexed fast path (SPEC_FULL.md §4.6), taken only
// when the ASCII fast path is enabled, the CPU reports SSE4.2, the line is
// pure ASCII and matching is case-sensitive. It is semantically identical
// to matchRunes for that input class: ASCII bytes and runes coincide
// one-to-one, so no decoding step is needed.
func (s *Scanner) matchASCII(line []byte) bool {
	for i := 0; i < len(line); i++ {
		if s.simulateASCII(line[i:]) {
			return true
		}
	}
	return false
}

// simulateASCII is simulate's byte-indexed counterpart; see simulate for why
// acceptance is checked once, after the run stops, rather than per step.
func (s *Scanner) simulateASCII(suffix []byte) bool {
	cur := s.dfa.Start
	for _, b := range suffix {
		next, ok := s.dfa.Step(cur, rune(b))
		if !ok {
			break
		}
		cur = next
	}
	return s.dfa.IsAccepting(cur)
}
