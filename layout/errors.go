package layout

import "fmt"

// BadIndexError is returned when an attachment references a glyph outside
// the current sequence, or when a chain of cursive attachments loops back
// on itself.
type BadIndexError struct {
	// Index is the offending glyph index.
	Index int
	// Len is the length of the glyph sequence.
	Len int
	// Cycle is set when the index was reached twice through cursive links.
	Cycle bool
}

func (e *BadIndexError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("layout: cursive attachment cycle at glyph %d", e.Index)
	}
	return fmt.Sprintf("layout: attachment index %d out of range in sequence of %d glyphs", e.Index, e.Len)
}

// MissingMetricError is returned when a font provides no horizontal
// advance for a glyph. Horizontal metrics are a required table, so this
// indicates a broken font.
type MissingMetricError struct {
	GID GlyphID
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("layout: no horizontal advance for glyph %d", e.GID)
}
