package postfix

import (
	"strings"
)

// Format renders a pattern's infix token stream back to text with an
// explicit '.' for every implicit concatenation, preserving the original
// grouping. It runs Stages A–C only (no shunting-yard) and is used for
// diagnostics and tests, never on the matching path.
func Format(pattern string) (string, error) {
	raw := []rune(pattern)

	if err := validateBoundaries(raw); err != nil {
		return "", err
	}
	if err := validateAdjacency(raw); err != nil {
		return "", err
	}

	infix, err := tokenize(raw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, tok := range infix {
		b.WriteString(tok.String())
	}
	return b.String(), nil
}
