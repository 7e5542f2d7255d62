// Package dfa builds a deterministic automaton from an nfa.NFA by subset
// (powerset) construction, following SPEC_FULL.md §4.5.
//
// The teacher's lazy/on-demand DFA (dfa/lazy) and one-pass capturing DFA
// (dfa/onepass) are both dropped here: captures are a non-goal of this
// grammar (SPEC_FULL.md §1) and this reduced grammar rarely produces the
// state-count blowup that motivates building DFA states lazily — an eager,
// fully materialized DFA, bounded by config.Config.MaxDFAStates, is both
// simpler and sufficient. See DESIGN.md for
// the full justification.
package dfa

import (
	"fmt"

	"github.com/coregx/linegrep/graph"
)

// NodeData is the payload carried by every DFA node.
type NodeData struct {
	Accepting bool
}

// EdgeData is the payload carried by every DFA edge: a single literal
// character. The DFA has no epsilon edges (SPEC_FULL.md §3).
type EdgeData struct {
	Ch rune
}

// DFA is a deterministic automaton: a graph plus a distinguished start node.
// Every node/character pair has at most one outgoing edge (SPEC_FULL.md §3
// invariant).
type DFA struct {
	Graph *graph.Graph[NodeData, EdgeData]
	Start graph.NodeIndex
}

// IsAccepting reports whether n is an accepting DFA node.
func (d *DFA) IsAccepting(n graph.NodeIndex) bool {
	data, err := d.Graph.NodeData(n)
	if err != nil {
		return false
	}
	return data.Accepting
}

// Step follows the c-labeled edge out of n, if one exists. ok is false if
// there is no such edge (the DFA is a partial function, SPEC_FULL.md §3).
func (d *DFA) Step(n graph.NodeIndex, c rune) (next graph.NodeIndex, ok bool) {
	edges, err := d.Graph.OutgoingEdges(n)
	if err != nil {
		return 0, false
	}
	for _, e := range edges {
		data, err := d.Graph.EdgeData(e)
		if err != nil || data.Ch != c {
			continue
		}
		tgt, err := d.Graph.Traverse(e)
		if err != nil {
			continue
		}
		return tgt, true
	}
	return 0, false
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{nodes: %d, edges: %d, start: %d}", d.Graph.NumNodes(), d.Graph.NumEdges(), d.Start)
}
