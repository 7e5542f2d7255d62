package postfix

import (
	"github.com/coregx/linegrep/symbol"
)

// Compile converts a raw regex pattern into postfix (Reverse Polish) form.
//
// It runs the four stages described in SPEC_FULL.md §4.2 in order:
//
//	A. boundary validation (illegal leading/trailing operator)
//	B. pairwise adjacency validation (illegal operator sequences)
//	C. tokenisation with escape handling and implicit concatenation
//	D. shunting-yard conversion to postfix
//
// The returned slice never contains symbol.Open or symbol.Close: Stage D
// consumes every parenthesis onto the operator stack and never emits it to
// the output queue except transiently.
func Compile(pattern string) ([]symbol.RegexSymbol, error) {
	raw := []rune(pattern)

	if err := validateBoundaries(raw); err != nil {
		return nil, err
	}
	if err := validateAdjacency(raw); err != nil {
		return nil, err
	}

	infix, err := tokenize(raw)
	if err != nil {
		return nil, err
	}

	return shuntingYard(infix)
}

// validateBoundaries is Stage A: the pattern must not start with an operator
// character, nor end with a binary operator. Unary operators are legal at the
// end (they bind to the preceding operand).
func validateBoundaries(raw []rune) error {
	if len(raw) == 0 {
		return nil
	}
	if symbol.IsOperator(raw[0]) {
		return &Error{Kind: InvalidPatternStart, Pos: 0}
	}
	if symbol.IsBinaryOperator(raw[len(raw)-1]) {
		return &Error{Kind: InvalidPatternEnd, Pos: len(raw) - 1}
	}
	return nil
}

// validateAdjacency is Stage B: scans the raw pattern pairwise and rejects a
// binary operator immediately followed by any operator, or a unary operator
// immediately followed by another unary operator.
func validateAdjacency(raw []rune) error {
	for i := 0; i+1 < len(raw); i++ {
		cur, next := raw[i], raw[i+1]
		if symbol.IsBinaryOperator(cur) && symbol.IsOperator(next) ||
			symbol.IsUnaryOperator(cur) && symbol.IsUnaryOperator(next) {
			return &Error{
				Kind: IllegalOperatorSequence,
				Pos:  i,
				Pair: [2]rune{cur, next},
			}
		}
	}
	return nil
}

// tokenize is Stage C: walks the raw pattern, resolves escapes, and inserts
// implicit Concat symbols between adjacent operands.
func tokenize(raw []rune) ([]symbol.RegexSymbol, error) {
	var out []symbol.RegexSymbol
	n := len(raw)

	for pos := 0; pos < n; {
		c := raw[pos]
		var tok symbol.RegexSymbol
		escaped := false

		if c == '\\' {
			pos++
			if pos >= n {
				return nil, &Error{Kind: TrailingBackslash, Pos: pos - 1}
			}
			sym, err := symbol.Escape(raw[pos])
			if err != nil {
				return nil, &Error{Kind: InvalidEscape, Pos: pos, Pair: [2]rune{'\\', raw[pos]}}
			}
			tok = sym
			escaped = true
		} else {
			tok = symbol.FromChar(c)
		}
		out = append(out, tok)

		nextPos := pos + 1
		if nextPos < n {
			canFollow := escaped || (c != '(' && !symbol.IsBinaryOperator(c))
			next := raw[nextPos]
			canPrecede := next != ')' && !symbol.IsOperator(next)
			if canFollow && canPrecede {
				out = append(out, symbol.RegexSymbol{Tag: symbol.Concat})
			}
		}
		pos = nextPos
	}

	return out, nil
}

// shuntingYard is Stage D: Dijkstra's shunting-yard algorithm, converting the
// infix token stream to postfix using an operator stack and output queue.
func shuntingYard(infix []symbol.RegexSymbol) ([]symbol.RegexSymbol, error) {
	var output []symbol.RegexSymbol
	var ops []symbol.RegexSymbol

	for _, tok := range infix {
		switch tok.Tag {
		case symbol.Open:
			ops = append(ops, tok)

		case symbol.Close:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Tag == symbol.Open {
					ops = ops[:len(ops)-1]
					found = true
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			if !found {
				return nil, &Error{Kind: UnbalancedParens, Pos: -1}
			}

		default:
			if tok.IsOperator() {
				if tok.Kind() == symbol.KindBinary {
					for len(ops) > 0 {
						top := ops[len(ops)-1]
						if top.Tag == symbol.Open {
							break
						}
						if top.Precedence() < tok.Precedence() {
							break
						}
						output = append(output, top)
						ops = ops[:len(ops)-1]
					}
				}
				ops = append(ops, tok)
			} else {
				output = append(output, tok)
			}
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Tag == symbol.Open {
			return nil, &Error{Kind: UnbalancedParens, Pos: -1}
		}
		output = append(output, top)
	}

	return output, nil
}
