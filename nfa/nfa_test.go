package nfa

import (
	"testing"

	"github.com/coregx/linegrep/config"
	"github.com/coregx/linegrep/graph"
	"github.com/coregx/linegrep/postfix"
)

// run simulates a string against an NFA using EpsilonClosure/Move, the same
// primitives dfa.Build uses for subset construction, and reports whether the
// NFA accepts it outright (full consumption ending in an accepting state
// set). This is test-only scaffolding; the real matching path always goes
// through a compiled DFA (package dfa / package scan).
func run(a *NFA, s string) bool {
	cur := a.EpsilonClosure([]graph.NodeIndex{a.Start})
	for _, c := range s {
		moved := a.Move(cur, c)
		if len(moved) == 0 {
			return false
		}
		cur = a.EpsilonClosure(moved)
	}
	for _, n := range cur {
		if a.IsAccepting(n) {
			return true
		}
	}
	return false
}

func build(t *testing.T, pattern string) *NFA {
	t.Helper()
	pf, err := postfix.Compile(pattern)
	if err != nil {
		t.Fatalf("postfix.Compile(%q) error: %v", pattern, err)
	}
	a, err := Build(pf, config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build(%q) error: %v", pattern, err)
	}
	return a
}

func TestBuildSingleChar(t *testing.T) {
	a := build(t, "a")
	tests := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"b", false},
		{"", false},
		{"aa", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildConcat(t *testing.T) {
	a := build(t, "abc")
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"ab", false},
		{"abcd", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildAlternation(t *testing.T) {
	a := build(t, "a|b")
	tests := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"c", false},
		{"ab", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildOptional(t *testing.T) {
	a := build(t, "a?b")
	tests := []struct {
		in   string
		want bool
	}{
		{"b", true},
		{"ab", true},
		{"aab", false},
		{"a", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildPlus(t *testing.T) {
	a := build(t, "a+")
	tests := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"aaaa", true},
		{"", false},
		{"aab", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildStar(t *testing.T) {
	a := build(t, "a*b")
	tests := []struct {
		in   string
		want bool
	}{
		{"b", true},
		{"ab", true},
		{"aaaab", true},
		{"a", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildNestedGroup(t *testing.T) {
	a := build(t, "(ab)+c")
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"ababc", true},
		{"c", false},
		{"abab", false},
	}
	for _, tt := range tests {
		if got := run(a, tt.in); got != tt.want {
			t.Errorf("run(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildExceedsStateBudget(t *testing.T) {
	pf, err := postfix.Compile("a+")
	if err != nil {
		t.Fatalf("postfix.Compile error: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.MaxNFAStates = 1
	if _, err := Build(pf, cfg); err != ErrTooComplex {
		t.Errorf("Build with MaxNFAStates=1 error = %v, want ErrTooComplex", err)
	}
}

func TestAlphabet(t *testing.T) {
	a := build(t, "a(b|c)*d")
	got := a.Alphabet()
	want := map[rune]bool{'a': true, 'b': true, 'c': true, 'd': true}
	if len(got) != len(want) {
		t.Fatalf("Alphabet() = %v, want 4 distinct chars", got)
	}
	for _, r := range got {
		if !want[r] {
			t.Errorf("Alphabet() contains unexpected rune %q", r)
		}
	}
}

func TestEpsilonClosureSorted(t *testing.T) {
	a := build(t, "a|b|c")
	closure := a.EpsilonClosure([]graph.NodeIndex{a.Start})
	for i := 1; i < len(closure); i++ {
		if closure[i-1] > closure[i] {
			t.Fatalf("EpsilonClosure result not sorted: %v", closure)
		}
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	a := build(t, "a*")
	once := a.EpsilonClosure([]graph.NodeIndex{a.Start})
	twice := a.EpsilonClosure(once)
	if len(once) != len(twice) {
		t.Fatalf("EpsilonClosure not idempotent: once=%v twice=%v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("EpsilonClosure not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestNonAcceptingStatesHaveOutgoingEdges(t *testing.T) {
	// Thompson construction only ever leaves the single distinguished
	// accepting node (the final fragment's exit) without an outgoing edge;
	// every other node is a fragment entry, which always has a way out, or
	// the exit of an inner fragment, which the enclosing operator wires
	// onward with an epsilon edge.
	patterns := []string{"a", "abc", "a|b", "a?b", "a+", "a*b", "(ab)+c", "a(b|c)*d"}
	for _, pattern := range patterns {
		a := build(t, pattern)
		for n := 0; n < a.Graph.NumNodes(); n++ {
			idx := graph.NodeIndex(n)
			if a.IsAccepting(idx) {
				continue
			}
			edges, err := a.Graph.OutgoingEdges(idx)
			if err != nil {
				t.Fatalf("pattern %q: OutgoingEdges(%d) error: %v", pattern, n, err)
			}
			if len(edges) == 0 {
				t.Errorf("pattern %q: non-accepting node %d has no outgoing edges", pattern, n)
			}
		}
	}
}

func TestIsAcceptingOnlyOneNode(t *testing.T) {
	a := build(t, "abc")
	count := 0
	for n := 0; n < a.Graph.NumNodes(); n++ {
		if a.IsAccepting(graph.NodeIndex(n)) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("accepting node count = %d, want exactly 1", count)
	}
}
