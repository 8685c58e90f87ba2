package layout

import "testing"

func TestIsUprightChar(t *testing.T) {
	tests := []struct {
		ch   rune
		want bool
	}{
		{0x6C38, true}, // CJK ideograph
		{0x3042, true}, // hiragana
		{0x30A2, true}, // katakana
		{0xAC00, true}, // hangul
		{0x3001, true}, // ideographic comma
		{0xFF01, true}, // full-width exclamation
		{'a', false},
		{'א', false}, // Hebrew alef
		{' ', false},
	}
	for _, tt := range tests {
		if got := IsUprightChar(tt.ch); got != tt.want {
			t.Errorf("IsUprightChar(%#x) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestIsUprightGlyph(t *testing.T) {
	g := CharGlyph('a', 1)
	if isUprightGlyph(&g) {
		t.Error("latin glyph should not be upright")
	}
	g.VertAlternate = true
	if !isUprightGlyph(&g) {
		t.Error("vertical alternate should be upright")
	}
	d := DirectGlyph(2)
	if isUprightGlyph(&d) {
		t.Error("direct glyph with no unicodes should not be upright")
	}
}
