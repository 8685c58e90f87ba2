package otfont

import (
	"fmt"
	"math"

	"github.com/boxesandglue/textshape/ot"

	"github.com/typefort/otkit"
	"github.com/typefort/otkit/layout"
)

func init() {
	RegisterShaper("textshape", &textshapeShaper{})
}

// textshapeShaper shapes with textshape's OpenType engine. The engine
// applies GSUB and GPOS itself, so its output arrives with attachments
// already resolved: glyphs map to plain placement distances and advance
// deltas, never to anchor attachments.
type textshapeShaper struct{}

func (textshapeShaper) Shape(src *Source, text string, opts ShapeOptions) ([]layout.Info, error) {
	font, err := src.Font()
	if err != nil {
		return nil, err
	}
	face, err := src.Face()
	if err != nil {
		return nil, err
	}

	buf := ot.NewBuffer()
	buf.AddString(text)
	if opts.Script != 0 {
		buf.Script = ot.Tag(opts.Script)
	}
	if opts.Language != 0 {
		buf.Language = ot.Tag(opts.Language)
	}
	if opts.Direction == layout.RightToLeft {
		buf.SetDirection(ot.DirectionRTL)
	} else {
		buf.SetDirection(ot.DirectionLTR)
	}
	buf.GuessSegmentProperties()

	var features []ot.Feature
	if opts.Features != "" {
		features = ot.ParseFeatures(opts.Features)
	}

	if err := ot.Shape(font, buf, features); err != nil {
		return nil, fmt.Errorf("otfont: shape: %w", err)
	}

	otkit.Logger().Debug("shaped run",
		"shaper", "textshape",
		"chars", len(text),
		"glyphs", len(buf.Info))

	infos := make([]layout.Info, len(buf.Info))
	for i := range buf.Info {
		gi := &buf.Info[i]
		gp := &buf.Pos[i]

		var glyph layout.Glyph
		if gi.Codepoint != 0 {
			glyph = layout.CharGlyph(rune(gi.Codepoint), layout.GlyphID(gi.GlyphID))
		} else {
			glyph = layout.DirectGlyph(layout.GlyphID(gi.GlyphID))
		}
		if gi.IsLigated() {
			glyph.LigComponent = uint16(gi.GetLigComp())
		}

		// The engine's advance already includes kerning and other GPOS
		// adjustments; the delta against the bare hmtx advance is what
		// position resolution adds back.
		base := int32(math.Round(float64(face.HorizontalAdvance(gi.GlyphID))))
		kern := int32(gp.XAdvance) - base

		info := layout.Info{
			Glyph:   glyph,
			Kerning: int16(kern),
		}
		if gp.XOffset != 0 || gp.YOffset != 0 {
			info.Placement = layout.Distance(int32(gp.XOffset), int32(gp.YOffset))
		}
		infos[i] = info
	}
	return infos, nil
}
