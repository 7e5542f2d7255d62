package nfa

import (
	"fmt"

	"github.com/coregx/linegrep/graph"
	"github.com/coregx/linegrep/internal/conv"
	"github.com/coregx/linegrep/internal/sparse"
)

// NodeData is the payload carried by every NFA node. Accepting is false for
// every node except the single node marking a successful match, which is
// flipped to true once, at finalisation (SPEC_FULL.md §9).
type NodeData struct {
	Accepting bool
}

// EdgeData is the payload carried by every NFA edge: either an epsilon
// transition or a single-character transition. The two are mutually
// exclusive — Epsilon true means Ch is not meaningful.
type EdgeData struct {
	Epsilon bool
	Ch      rune
}

// NFA is a compiled Thompson automaton: a graph plus a distinguished start
// node and a distinguished accepting node.
type NFA struct {
	Graph   *graph.Graph[NodeData, EdgeData]
	Start   graph.NodeIndex
	Accept  graph.NodeIndex
}

// IsAccepting reports whether n is the NFA's accepting node.
func (a *NFA) IsAccepting(n graph.NodeIndex) bool {
	data, err := a.Graph.NodeData(n)
	if err != nil {
		return false
	}
	return data.Accepting
}

// EpsilonClosure returns the set of node indices reachable from any node in
// seed via zero or more epsilon edges, including seed itself. The returned
// slice is sorted by index, satisfying the canonical-key requirement the
// dfa package relies on (SPEC_FULL.md §9, subset-construction key).
//
// Visited membership uses a sparse.SparseSet sized to the graph's node
// count rather than a map, adapted from the teacher's NFA-state visited-set
// use of the same structure (internal/sparse/sparse.go) and generalized
// from uint32 NFA state IDs to this package's graph.NodeIndex.
func (a *NFA) EpsilonClosure(seed []graph.NodeIndex) []graph.NodeIndex {
	visited := sparse.NewSparseSet(conv.IntToUint32(a.Graph.NumNodes()))
	var stack []graph.NodeIndex
	for _, n := range seed {
		v := conv.IntToUint32(int(n))
		if !visited.Contains(v) {
			visited.Insert(v)
			stack = append(stack, n)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edges, err := a.Graph.OutgoingEdges(n)
		if err != nil {
			continue
		}
		for _, e := range edges {
			data, err := a.Graph.EdgeData(e)
			if err != nil || !data.Epsilon {
				continue
			}
			tgt, err := a.Graph.Traverse(e)
			if err != nil {
				continue
			}
			v := conv.IntToUint32(int(tgt))
			if !visited.Contains(v) {
				visited.Insert(v)
				stack = append(stack, tgt)
			}
		}
	}

	out := make([]graph.NodeIndex, 0, visited.Size())
	for _, v := range visited.Values() {
		out = append(out, graph.NodeIndex(v))
	}
	sortNodeIndices(out)
	return out
}

// Move returns the set of node indices reachable from any node in set via a
// single edge labeled with character c.
func (a *NFA) Move(set []graph.NodeIndex, c rune) []graph.NodeIndex {
	seen := make(map[graph.NodeIndex]bool)
	var out []graph.NodeIndex
	for _, n := range set {
		edges, err := a.Graph.OutgoingEdges(n)
		if err != nil {
			continue
		}
		for _, e := range edges {
			data, err := a.Graph.EdgeData(e)
			if err != nil || data.Epsilon || data.Ch != c {
				continue
			}
			tgt, err := a.Graph.Traverse(e)
			if err != nil {
				continue
			}
			if !seen[tgt] {
				seen[tgt] = true
				out = append(out, tgt)
			}
		}
	}
	sortNodeIndices(out)
	return out
}

// Alphabet returns the distinct characters labeling at least one edge in the
// NFA, in ascending order.
func (a *NFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	for e := 0; e < a.Graph.NumEdges(); e++ {
		data, err := a.Graph.EdgeData(graph.EdgeIndex(e))
		if err != nil || data.Epsilon {
			continue
		}
		seen[data.Ch] = true
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sortRunes(out)
	return out
}

func sortNodeIndices(s []graph.NodeIndex) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func sortRunes(s []rune) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// String renders a short diagnostic summary, matching the teacher's
// NFA.String() convention of a compact struct dump.
func (a *NFA) String() string {
	return fmt.Sprintf("NFA{nodes: %d, edges: %d, start: %d, accept: %d}",
		a.Graph.NumNodes(), a.Graph.NumEdges(), a.Start, a.Accept)
}
