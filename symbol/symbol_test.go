package symbol

import "testing"

func TestFromChar(t *testing.T) {
	tests := []struct {
		in   rune
		want RegexSymbol
	}{
		{'?', RegexSymbol{Tag: Optional}},
		{'+', RegexSymbol{Tag: Plus}},
		{'*', RegexSymbol{Tag: Star}},
		{'|', RegexSymbol{Tag: Alternation}},
		{'(', RegexSymbol{Tag: Open}},
		{')', RegexSymbol{Tag: Close}},
		{'a', RegexSymbol{Tag: Char, Ch: 'a'}},
		{'0', RegexSymbol{Tag: Char, Ch: '0'}},
	}

	for _, tt := range tests {
		if got := FromChar(tt.in); got != tt.want {
			t.Errorf("FromChar(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		name string
		sym  RegexSymbol
		want int
	}{
		{"optional", RegexSymbol{Tag: Optional}, 3},
		{"plus", RegexSymbol{Tag: Plus}, 3},
		{"star", RegexSymbol{Tag: Star}, 3},
		{"concat", RegexSymbol{Tag: Concat}, 2},
		{"alternation", RegexSymbol{Tag: Alternation}, 1},
		{"char", RegexSymbol{Tag: Char, Ch: 'a'}, 0},
		{"open", RegexSymbol{Tag: Open}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.Precedence(); got != tt.want {
				t.Errorf("Precedence() = %d, want %d", got, tt.want)
			}
		})
	}

	// Unary must bind tighter than concatenation, which must bind tighter
	// than alternation.
	unary := RegexSymbol{Tag: Star}.Precedence()
	concat := RegexSymbol{Tag: Concat}.Precedence()
	alt := RegexSymbol{Tag: Alternation}.Precedence()
	if !(unary > concat && concat > alt) {
		t.Errorf("precedence ordering violated: unary=%d concat=%d alt=%d", unary, concat, alt)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		sym  RegexSymbol
		want Kind
	}{
		{RegexSymbol{Tag: Optional}, KindUnary},
		{RegexSymbol{Tag: Plus}, KindUnary},
		{RegexSymbol{Tag: Star}, KindUnary},
		{RegexSymbol{Tag: Concat}, KindBinary},
		{RegexSymbol{Tag: Alternation}, KindBinary},
		{RegexSymbol{Tag: Char, Ch: 'x'}, KindNone},
		{RegexSymbol{Tag: Open}, KindNone},
		{RegexSymbol{Tag: Close}, KindNone},
	}

	for _, tt := range tests {
		if got := tt.sym.Kind(); got != tt.want {
			t.Errorf("%+v.Kind() = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func TestIsOperator(t *testing.T) {
	tests := []struct {
		sym  RegexSymbol
		want bool
	}{
		{RegexSymbol{Tag: Star}, true},
		{RegexSymbol{Tag: Concat}, true},
		{RegexSymbol{Tag: Alternation}, true},
		{RegexSymbol{Tag: Char, Ch: 'a'}, false},
		{RegexSymbol{Tag: Open}, false},
		{RegexSymbol{Tag: Close}, false},
	}

	for _, tt := range tests {
		if got := tt.sym.IsOperator(); got != tt.want {
			t.Errorf("%+v.IsOperator() = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func TestRawCharacterClassifiers(t *testing.T) {
	for _, c := range []rune{'?', '+', '*'} {
		if !IsUnaryOperator(c) {
			t.Errorf("IsUnaryOperator(%q) = false, want true", c)
		}
		if !IsOperator(c) {
			t.Errorf("IsOperator(%q) = false, want true", c)
		}
	}
	if !IsBinaryOperator('|') {
		t.Errorf("IsBinaryOperator('|') = false, want true")
	}
	for _, c := range []rune{'a', '(', ')', '\\'} {
		if IsOperator(c) {
			t.Errorf("IsOperator(%q) = true, want false", c)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in      rune
		want    rune
		wantErr bool
	}{
		{'?', '?', false},
		{'+', '+', false},
		{'*', '*', false},
		{'|', '|', false},
		{'(', '(', false},
		{')', ')', false},
		{'\\', '\\', false},
		{'t', '\t', false},
		{'n', '\n', false},
		{'r', '\r', false},
		{'f', '\f', false},
		{'b', '\b', false},
		{'x', 0, true},
		{'d', 0, true},
	}

	for _, tt := range tests {
		got, err := Escape(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Escape(%q) = %+v, nil; want error", tt.in, got)
			}
			var invalidErr *InvalidEscapeError
			if _, ok := err.(*InvalidEscapeError); !ok {
				t.Errorf("Escape(%q) error type = %T, want *InvalidEscapeError", tt.in, err)
			} else {
				invalidErr = err.(*InvalidEscapeError)
				if invalidErr.Char != tt.in {
					t.Errorf("InvalidEscapeError.Char = %q, want %q", invalidErr.Char, tt.in)
				}
			}
			continue
		}
		if err != nil {
			t.Fatalf("Escape(%q) unexpected error: %v", tt.in, err)
		}
		want := NewChar(tt.want)
		if got != want {
			t.Errorf("Escape(%q) = %+v, want %+v", tt.in, got, want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		sym  RegexSymbol
		want string
	}{
		{RegexSymbol{Tag: Char, Ch: 'a'}, "a"},
		{RegexSymbol{Tag: Concat}, "."},
		{RegexSymbol{Tag: Alternation}, "|"},
		{RegexSymbol{Tag: Optional}, "?"},
		{RegexSymbol{Tag: Plus}, "+"},
		{RegexSymbol{Tag: Star}, "*"},
		{RegexSymbol{Tag: Open}, "("},
		{RegexSymbol{Tag: Close}, ")"},
	}

	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.sym, got, tt.want)
		}
	}
}
