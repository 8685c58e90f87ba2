package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/typefort/otkit/layout"
	"github.com/typefort/otkit/otfont"
	"github.com/typefort/otkit/svg"
)

var cmdView = &command{
	name:    "view",
	summary: "render text with a font as a standalone SVG",
	run:     runView,
}

// fontSize is the nominal output size in SVG user units. Glyph
// coordinates are scaled from font design units to this size.
const fontSize = 1000.0

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to font file")
	script := fs.String("script", "", "script tag to shape, e.g. deva")
	lang := fs.String("lang", "", "language tag to shape, e.g. HIN")
	text := fs.String("text", "", "text to render")
	codepoints := fs.String("codepoints", "", "comma separated hex codepoints to render, e.g. 62,12c,6d")
	indices := fs.String("indices", "", "comma separated glyph indices to render, bypassing shaping")
	features := fs.String("features", "", "feature settings, e.g. smcp,-liga")
	markOrigin := fs.Bool("mark-origin", false, "draw a crosshair at each glyph origin")
	margin := fs.String("margin", "", "margin around the text, one number or top,right,bottom,left")
	fg := fs.String("fg", "", "foreground colour as RRGGBBAA")
	bg := fs.String("bg", "", "background colour as RRGGBBAA")
	flip := fs.Bool("flip", true, "flip the y axis from font to SVG coordinates")
	index := fs.Int("index", 0, "index of the font to use (for TTC)")
	fs.Parse(args)

	given := 0
	for _, s := range []string{*text, *codepoints, *indices} {
		if s != "" {
			given++
		}
	}
	if *fontPath == "" || given != 1 {
		fmt.Fprintln(fs.Output(), "usage: otkit view -font PATH (-text TEXT | -codepoints CPS | -indices GIDS) [flags]")
		fs.PrintDefaults()
		return exitError(2)
	}

	mode := svg.View{MarkOrigin: *markOrigin}
	if *margin != "" {
		m, err := svg.ParseMargin(*margin)
		if err != nil {
			return err
		}
		mode.Margin = m
	}
	if *fg != "" {
		c, err := svg.ParseColour(*fg)
		if err != nil {
			return err
		}
		mode.Foreground = &c
	}
	if *bg != "" {
		c, err := svg.ParseColour(*bg)
		if err != nil {
			return err
		}
		mode.Background = &c
	}

	src, err := loadSource(*fontPath, *index)
	if err != nil {
		return err
	}

	opts := otfont.ShapeOptions{Features: *features}
	if *script != "" {
		opts.Script = layout.ParseTag(*script)
	}
	if *lang != "" {
		opts.Language = layout.ParseTag(*lang)
	}

	var infos []layout.Info
	switch {
	case *indices != "":
		infos, err = glyphsFromIndices(*indices)
	default:
		input := *text
		if *codepoints != "" {
			input = parseCodepoints(*codepoints)
		}
		opts.Direction = textDirection(input, opts.Script)
		var engine otfont.Shaper
		engine, err = otfont.GetShaper("")
		if err != nil {
			return err
		}
		infos, err = engine.Shape(src, input, opts)
	}
	if err != nil {
		return err
	}

	metrics, err := otfont.NewMetrics(src)
	if err != nil {
		return err
	}
	positions, err := layout.NewLayout(metrics, opts.Direction, false).Positions(infos)
	if err != nil {
		return err
	}
	outlines, err := otfont.NewOutlines(src)
	if err != nil {
		return err
	}

	upem, err := src.Upem()
	if err != nil {
		return err
	}
	scale := fontSize / float64(upem)
	yScale := -scale
	if !*flip {
		yScale = scale
	}
	w := svg.NewWriter(mode, svg.Scale(scale, yScale))
	doc, err := w.Glyphs(outlines, infos, positions, opts.Direction)
	if err != nil {
		return err
	}
	fmt.Println(doc)
	return nil
}

// parseCodepoints converts a comma separated list of hex codepoints
// into a string, substituting U+FFFD for anything unparseable.
func parseCodepoints(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 16, 32)
		if err != nil || v > 0x10FFFF {
			b.WriteRune('�')
			continue
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}

// glyphsFromIndices builds unshaped glyph infos from a comma separated
// list of decimal glyph ids.
func glyphsFromIndices(s string) ([]layout.Info, error) {
	parts := strings.Split(s, ",")
	infos := make([]layout.Info, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid glyph index %q: %w", part, err)
		}
		infos = append(infos, layout.Info{
			Glyph: layout.DirectGlyph(layout.GlyphID(v)),
		})
	}
	return infos, nil
}
