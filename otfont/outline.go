package otfont

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/typefort/otkit/layout"
	"github.com/typefort/otkit/svg"
)

// Outlines extracts glyph outlines and names from the sfnt view of a
// Source, in design units with y growing upward. It satisfies svg.Font.
//
// The embedded sfnt.Buffer is reused across calls, so an Outlines must
// not be shared between goroutines.
type Outlines struct {
	font      *sfnt.Font
	buf       sfnt.Buffer
	ppem      fixed.Int26_6
	ascender  int32
	descender int32
}

var _ svg.Font = (*Outlines)(nil)

// NewOutlines builds an Outlines over src. Glyphs are loaded at a ppem
// equal to the units per em, so segment coordinates come back in design
// units.
func NewOutlines(src *Source) (*Outlines, error) {
	font, err := src.SFNT()
	if err != nil {
		return nil, err
	}
	face, err := src.Face()
	if err != nil {
		return nil, err
	}
	return &Outlines{
		font:      font,
		ppem:      fixed.I(int(font.UnitsPerEm())),
		ascender:  int32(face.Ascender()),
		descender: int32(face.Descender()),
	}, nil
}

// Visit implements svg.OutlineSource.
func (o *Outlines) Visit(gid layout.GlyphID, sink svg.OutlineSink) error {
	segs, err := o.font.LoadGlyph(&o.buf, sfnt.GlyphIndex(gid), o.ppem, nil)
	if err != nil {
		return &GlyphLoadError{GID: uint16(gid), Err: err}
	}
	visitSegments(segs, sink)
	return nil
}

// visitSegments replays sfnt segments into a sink. sfnt uses y-down
// device coordinates and never emits an explicit close, so y is negated
// and a Close is synthesized at every contour boundary.
func visitSegments(segs []sfnt.Segment, sink svg.OutlineSink) {
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(segX(seg, 0), segY(seg, 0))
			open = true
		case sfnt.SegmentOpLineTo:
			sink.LineTo(segX(seg, 0), segY(seg, 0))
		case sfnt.SegmentOpQuadTo:
			sink.QuadTo(segX(seg, 0), segY(seg, 0), segX(seg, 1), segY(seg, 1))
		case sfnt.SegmentOpCubeTo:
			sink.CubeTo(segX(seg, 0), segY(seg, 0), segX(seg, 1), segY(seg, 1), segX(seg, 2), segY(seg, 2))
		}
	}
	if open {
		sink.Close()
	}
}

func segX(seg sfnt.Segment, i int) float64 {
	return float64(seg.Args[i].X) / 64
}

func segY(seg sfnt.Segment, i int) float64 {
	return -float64(seg.Args[i].Y) / 64
}

// GlyphName implements svg.Namer. CFF fonts and fonts with a version 3
// post table have no glyph names; ok is false then.
func (o *Outlines) GlyphName(gid layout.GlyphID) (string, bool) {
	name, err := o.font.GlyphName(&o.buf, sfnt.GlyphIndex(gid))
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// Ascender implements svg.Font.
func (o *Outlines) Ascender() int32 {
	return o.ascender
}

// Descender implements svg.Font.
func (o *Outlines) Descender() int32 {
	return o.descender
}

// ValidateGlyphs loads every glyph outline in the font and collects the
// ids that fail, with their errors.
func (o *Outlines) ValidateGlyphs(numGlyphs int) []error {
	var errs []error
	for gid := 0; gid < numGlyphs; gid++ {
		_, err := o.font.LoadGlyph(&o.buf, sfnt.GlyphIndex(gid), o.ppem, nil)
		if err != nil {
			errs = append(errs, fmt.Errorf("glyph %d: %w", gid, err))
		}
	}
	return errs
}
