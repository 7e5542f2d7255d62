// Package postfix converts a raw regex pattern into postfix (Reverse Polish)
// form: escape handling, validation, implicit-concatenation insertion, and a
// shunting-yard conversion from infix to postfix.
package postfix

import "fmt"

// ErrorKind classifies a postfix compilation failure. Mirrors the taxonomy in
// SPEC_FULL.md §7.
type ErrorKind uint8

const (
	// InvalidPatternStart: the pattern begins with an operator.
	InvalidPatternStart ErrorKind = iota
	// InvalidPatternEnd: the pattern ends with a binary operator.
	InvalidPatternEnd
	// IllegalOperatorSequence: binary-then-operator or unary-then-unary.
	IllegalOperatorSequence
	// InvalidEscape: \X where X is not a recognised escape.
	InvalidEscape
	// TrailingBackslash: the pattern ends with an unescaped backslash.
	TrailingBackslash
	// UnbalancedParens: an Open without a matching Close, or vice versa.
	UnbalancedParens
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidPatternStart:
		return "InvalidPatternStart"
	case InvalidPatternEnd:
		return "InvalidPatternEnd"
	case IllegalOperatorSequence:
		return "IllegalOperatorSequence"
	case InvalidEscape:
		return "InvalidEscape"
	case TrailingBackslash:
		return "TrailingBackslash"
	case UnbalancedParens:
		return "UnbalancedParens"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// Error reports why a pattern could not be converted to postfix form. Pos is
// the 0-based rune (character) offset into the raw pattern where the problem was
// detected; it is -1 when a position is not meaningful for the Kind (e.g.
// UnbalancedParens detected at end-of-input by stack drain).
type Error struct {
	Kind ErrorKind
	Pos  int
	// Pair holds the two offending raw characters for IllegalOperatorSequence.
	Pair [2]rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidPatternStart:
		return "pattern must not start with an operator"
	case InvalidPatternEnd:
		return "pattern must not end with a binary operator"
	case IllegalOperatorSequence:
		return fmt.Sprintf("illegal operator sequence %q%q at position %d", e.Pair[0], e.Pair[1], e.Pos)
	case InvalidEscape:
		return fmt.Sprintf("invalid escape \\%c at position %d", e.Pair[1], e.Pos)
	case TrailingBackslash:
		return "pattern ends with a trailing backslash"
	case UnbalancedParens:
		return "unbalanced parentheses"
	default:
		return fmt.Sprintf("postfix error: %s", e.Kind)
	}
}

// Is supports errors.Is by comparing error kinds, matching the teacher's
// *DFAError.Is convention for sentinel-style kind comparisons.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
