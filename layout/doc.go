// Package layout turns shaped glyph sequences into resolved positions.
//
// A shaping backend produces one Info per glyph: the glyph itself, any
// kerning, a positional adjustment (Placement), and an Attachment that
// records how the glyph depends on another glyph in the same sequence
// (combining mark, overprint, or cursive connection). Layout.Positions
// resolves those dependencies into per-glyph advances and offsets that a
// renderer can consume with a simple pen model.
//
// The package is pure: it performs no I/O and holds no global state.
// Font metrics are supplied through the Metrics interface.
package layout
