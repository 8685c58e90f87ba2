package svg

// Mode selects how the writer formats its output. It is one of
// TestRender or View.
type Mode interface {
	mode()
}

// TestRender generates output complying with the expectations of the
// Unicode text rendering test suites: coordinates truncated to integers,
// symbol ids namespaced by the testcase name, and the redundant closing
// line segment of a contour dropped, matching the FreeType optimisation
// the expected outputs were produced with.
type TestRender struct {
	// Prefix is the testcase name used to namespace symbol ids.
	Prefix string
}

// View generates full-precision output for human viewing.
type View struct {
	// MarkOrigin draws a crosshair at each glyph's origin.
	MarkOrigin bool
	// Margin adds blank space around the rendered text.
	Margin Margin
	// Foreground fills glyph paths; nil leaves the SVG default.
	Foreground *Colour
	// Background fills the whole view box; nil draws no background.
	Background *Colour
}

func (TestRender) mode() {}
func (View) mode()       {}
