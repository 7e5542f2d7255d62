package nfa

import (
	"github.com/coregx/linegrep/config"
	"github.com/coregx/linegrep/graph"
	"github.com/coregx/linegrep/symbol"
)

// fragment is a partial NFA with exactly one entry and one exit, the
// AutomataFragment of SPEC_FULL.md §3.
type fragment struct {
	entry, exit graph.NodeIndex
}

// Build runs Thompson construction over a postfix symbol queue, following
// the per-symbol table in SPEC_FULL.md §4.4. cfg.MaxNFAStates bounds the
// number of nodes allocated; exceeding it aborts with ErrTooComplex rather
// than continuing to grow the graph, mirroring the teacher's
// ErrTooComplex/MaxRecursionDepth guardrails.
func Build(postfix []symbol.RegexSymbol, cfg config.Config) (*NFA, error) {
	g := graph.New[NodeData, EdgeData]()
	var stack []fragment

	newNode := func() (graph.NodeIndex, error) {
		if g.NumNodes() >= cfg.MaxNFAStates {
			return 0, ErrTooComplex
		}
		return g.AddNode(NodeData{}), nil
	}
	addEpsilon := func(src, tgt graph.NodeIndex) {
		g.AddEdge(src, tgt, EdgeData{Epsilon: true})
	}

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, &BuildError{Message: "fragment stack underflow: malformed postfix"}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range postfix {
		switch tok.Tag {
		case symbol.Char:
			s, err := newNode()
			if err != nil {
				return nil, err
			}
			a, err := newNode()
			if err != nil {
				return nil, err
			}
			g.AddEdge(s, a, EdgeData{Ch: tok.Ch})
			stack = append(stack, fragment{entry: s, exit: a})

		case symbol.Concat:
			r, err := pop()
			if err != nil {
				return nil, err
			}
			l, err := pop()
			if err != nil {
				return nil, err
			}
			addEpsilon(l.exit, r.entry)
			stack = append(stack, fragment{entry: l.entry, exit: r.exit})

		case symbol.Alternation:
			r, err := pop()
			if err != nil {
				return nil, err
			}
			l, err := pop()
			if err != nil {
				return nil, err
			}
			s, err := newNode()
			if err != nil {
				return nil, err
			}
			a, err := newNode()
			if err != nil {
				return nil, err
			}
			addEpsilon(s, l.entry)
			addEpsilon(s, r.entry)
			addEpsilon(l.exit, a)
			addEpsilon(r.exit, a)
			stack = append(stack, fragment{entry: s, exit: a})

		case symbol.Optional:
			t, err := pop()
			if err != nil {
				return nil, err
			}
			s, err := newNode()
			if err != nil {
				return nil, err
			}
			a, err := newNode()
			if err != nil {
				return nil, err
			}
			addEpsilon(s, t.entry)
			addEpsilon(t.exit, a)
			addEpsilon(s, a)
			stack = append(stack, fragment{entry: s, exit: a})

		case symbol.Plus:
			t, err := pop()
			if err != nil {
				return nil, err
			}
			s, err := newNode()
			if err != nil {
				return nil, err
			}
			a, err := newNode()
			if err != nil {
				return nil, err
			}
			addEpsilon(s, t.entry)
			addEpsilon(t.exit, a)
			addEpsilon(t.exit, t.entry)
			stack = append(stack, fragment{entry: s, exit: a})

		case symbol.Star:
			t, err := pop()
			if err != nil {
				return nil, err
			}
			s, err := newNode()
			if err != nil {
				return nil, err
			}
			a, err := newNode()
			if err != nil {
				return nil, err
			}
			addEpsilon(s, t.entry)
			addEpsilon(t.exit, a)
			addEpsilon(t.exit, t.entry)
			addEpsilon(s, a)
			stack = append(stack, fragment{entry: s, exit: a})

		case symbol.Open, symbol.Close:
			return nil, &BuildError{Message: "unreachable: Open/Close in postfix stream"}

		default:
			return nil, &BuildError{Message: "unknown symbol tag in postfix stream"}
		}
	}

	if len(stack) != 1 {
		return nil, &BuildError{Message: "malformed postfix: fragment stack did not reduce to one fragment"}
	}

	final := stack[0]
	if err := g.SetNodeData(final.exit, NodeData{Accepting: true}); err != nil {
		return nil, &BuildError{Message: "could not mark accepting node: " + err.Error()}
	}

	return &NFA{Graph: g, Start: final.entry, Accept: final.exit}, nil
}
