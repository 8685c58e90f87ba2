package layout

import "unicode"

// uprightRanges covers scripts whose glyphs stay upright in vertical
// text rather than rotating with the line.
var uprightRanges = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	unicode.Bopomofo,
	unicode.Yi,
}

// IsUprightChar reports whether a character keeps its upright orientation
// in vertical text.
func IsUprightChar(ch rune) bool {
	switch {
	case ch >= 0x3000 && ch <= 0x303F: // CJK symbols and punctuation
		return true
	case ch >= 0xFF00 && ch <= 0xFF60: // full-width forms
		return true
	}
	return unicode.In(ch, uprightRanges...)
}

// isUprightGlyph reports whether a glyph uses vertical advances in
// vertical text. Vertical-alternate glyphs are always upright; otherwise
// the first originating character decides.
func isUprightGlyph(g *Glyph) bool {
	if g.VertAlternate {
		return true
	}
	if len(g.Unicodes) > 0 {
		return IsUprightChar(g.Unicodes[0])
	}
	return false
}
