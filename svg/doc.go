// Package svg serializes positioned glyph sequences into SVG documents.
//
// Each distinct glyph becomes one <symbol> element holding its outline as
// path data; every occurrence of the glyph emits a <use> reference placed
// by the pen position and the glyph's resolved offset. The Mode chosen at
// writer construction controls formatting: TestRender produces the
// integer-truncated, simplified paths expected by rendering comparison
// suites, View produces full-precision output with optional annotations
// for human inspection.
package svg
