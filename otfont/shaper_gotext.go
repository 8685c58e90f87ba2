package otfont

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/typefort/otkit"
	"github.com/typefort/otkit/layout"
)

func init() {
	RegisterShaper("gotext", newGotextShaper())
}

// gotextShaper shapes with go-text/typesetting's HarfBuzz port. Parsed
// font.Font values are cached per Source; font.Face is not safe for
// concurrent use and is created per call, as are the pooled
// HarfbuzzShaper instances.
type gotextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Source]*font.Font
}

func newGotextShaper() *gotextShaper {
	return &gotextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Source]*font.Font),
	}
}

func (s *gotextShaper) Shape(src *Source, text string, opts ShapeOptions) ([]layout.Info, error) {
	if text == "" {
		return nil, nil
	}
	if opts.Features != "" {
		otkit.Logger().Warn("gotext shaper ignores feature settings", "features", opts.Features)
	}

	goFont, err := s.getOrCreateFont(src)
	if err != nil {
		return nil, err
	}
	face, err := src.Face()
	if err != nil {
		return nil, err
	}
	upem := face.Upem()

	dir := di.DirectionLTR
	if opts.Direction == layout.RightToLeft {
		dir = di.DirectionRTL
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goFont),
		// Shaping at upem keeps the output in design units.
		Size:     fixed.I(int(upem)),
		Script:   runesScript(runes),
		Language: language.NewLanguage("und"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	otkit.Logger().Debug("shaped run",
		"shaper", "gotext",
		"chars", len(text),
		"glyphs", len(output.Glyphs))

	infos := make([]layout.Info, len(output.Glyphs))
	for i, g := range output.Glyphs {
		gid := layout.GlyphID(uint16(g.GlyphID))

		var glyph layout.Glyph
		if ti := g.TextIndex(); ti >= 0 && ti < len(runes) {
			glyph = layout.CharGlyph(runes[ti], gid)
		} else {
			glyph = layout.DirectGlyph(gid)
		}

		base := int32(math.Round(float64(face.HorizontalAdvance(uint16(gid)))))
		kern := fixedRound(g.Advance) - base

		info := layout.Info{
			Glyph:   glyph,
			Kerning: int16(kern),
		}
		dx := fixedRound(g.XOffset)
		dy := fixedRound(g.YOffset)
		if dx != 0 || dy != 0 {
			info.Placement = layout.Distance(dx, dy)
		}
		infos[i] = info
	}
	return infos, nil
}

func (s *gotextShaper) getOrCreateFont(src *Source) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[src]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}

	goFace, err := font.ParseTTF(bytes.NewReader(src.Data()))
	if err != nil {
		return nil, fmt.Errorf("otfont: gotext parse: %w", err)
	}
	s.fontCache[src] = goFace.Font
	return goFace.Font, nil
}

// runesScript returns the script of the first non-space rune. Runs are
// split by direction before shaping; mixed-script runs keep the first
// script, matching the single-script assumption of the callers.
func runesScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedRound rounds a 26.6 fixed-point value to the nearest integer.
func fixedRound(v fixed.Int26_6) int32 {
	return int32((v + 32) >> 6)
}
