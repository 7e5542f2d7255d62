package dfa

import (
	"strconv"
	"strings"

	"github.com/coregx/linegrep/config"
	"github.com/coregx/linegrep/graph"
	"github.com/coregx/linegrep/nfa"
)

// key canonicalises a (sorted, by construction) set of NFA node indices into
// a comma-joined string, the Go map key standing in for DFAStateKey
// (SPEC_FULL.md §9: "simplest canonical encoding that satisfies the
// sorted-set requirement").
func key(set []graph.NodeIndex) string {
	var b strings.Builder
	for i, n := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(n)))
	}
	return b.String()
}

// hasEdge reports whether node n already has an outgoing edge labeled c,
// enforcing the duplicate-edge guard from SPEC_FULL.md §4.5 step 3d.
func hasEdge(g *graph.Graph[NodeData, EdgeData], n graph.NodeIndex, c rune) bool {
	edges, err := g.OutgoingEdges(n)
	if err != nil {
		return false
	}
	for _, e := range edges {
		data, err := g.EdgeData(e)
		if err == nil && data.Ch == c {
			return true
		}
	}
	return false
}

// Build runs subset construction (SPEC_FULL.md §4.5) over source, producing
// an equivalent deterministic automaton. cfg.MaxDFAStates bounds the number
// of DFA nodes materialized; exceeding it aborts with ErrTooComplex.
func Build(source *nfa.NFA, cfg config.Config) (*DFA, error) {
	g := graph.New[NodeData, EdgeData]()
	alphabet := source.Alphabet()

	seen := make(map[string]graph.NodeIndex)

	newDFANode := func(nfaSet []graph.NodeIndex) (graph.NodeIndex, error) {
		if g.NumNodes() >= cfg.MaxDFAStates {
			return 0, ErrTooComplex
		}
		accepting := false
		for _, s := range nfaSet {
			if source.IsAccepting(s) {
				accepting = true
				break
			}
		}
		idx := g.AddNode(NodeData{Accepting: accepting})
		seen[key(nfaSet)] = idx
		return idx, nil
	}

	q0Set := source.EpsilonClosure([]graph.NodeIndex{source.Start})
	startIdx, err := newDFANode(q0Set)
	if err != nil {
		return nil, err
	}

	type work struct {
		set []graph.NodeIndex
		idx graph.NodeIndex
	}
	worklist := []work{{set: q0Set, idx: startIdx}}

	for len(worklist) > 0 {
		item := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, c := range alphabet {
			moved := source.Move(item.set, c)
			if len(moved) == 0 {
				continue
			}
			closure := source.EpsilonClosure(moved)
			if len(closure) == 0 {
				continue
			}

			k := key(closure)
			tgtIdx, exists := seen[k]
			if !exists {
				tgtIdx, err = newDFANode(closure)
				if err != nil {
					return nil, err
				}
				worklist = append(worklist, work{set: closure, idx: tgtIdx})
			}

			if !hasEdge(g, item.idx, c) {
				g.AddEdge(item.idx, tgtIdx, EdgeData{Ch: c})
			}
		}
	}

	return &DFA{Graph: g, Start: startIdx}, nil
}
