package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/typefort/otkit/layout"
	"github.com/typefort/otkit/otfont"
	"github.com/typefort/otkit/svg"
)

var cmdSVG = &command{
	name:    "svg",
	summary: "render shaped text as an SVG for a rendering testcase",
	run:     runSVG,
}

func runSVG(args []string) error {
	fs := flag.NewFlagSet("svg", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to font file")
	testcase := fs.String("testcase", "", "testcase name, used to pick script and language")
	render := fs.String("render", "", "text to render")
	flip := fs.Bool("flip", false, "flip the y axis")
	index := fs.Int("index", 0, "index of the font to use (for TTC)")
	fs.Parse(args)

	if *fontPath == "" || *testcase == "" || *render == "" {
		fmt.Fprintln(fs.Output(), "usage: otkit svg -font PATH -testcase NAME -render TEXT")
		fs.PrintDefaults()
		return exitError(2)
	}

	script, lang := testcaseScript(*testcase)

	src, err := loadSource(*fontPath, *index)
	if err != nil {
		return err
	}
	engine, err := otfont.GetShaper("")
	if err != nil {
		return err
	}

	opts := otfont.ShapeOptions{
		Script:    script,
		Language:  lang,
		Direction: layout.ScriptDirection(script),
	}
	infos, err := engine.Shape(src, *render, opts)
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

	transform := svg.Scale(1, 1)
	if *flip {
		transform = svg.Scale(1, -1)
	}
	w := svg.NewWriter(svg.TestRender{Prefix: *testcase}, transform)
	doc, err := w.Glyphs(outlines, infos, positions, opts.Direction)
	if err != nil {
		return err
	}
	fmt.Println(doc)
	return nil
}

// testcaseScript maps the Unicode text rendering test suite naming
// convention onto script and language tags.
func testcaseScript(testcase string) (script, lang layout.Tag) {
	switch {
	case strings.HasPrefix(testcase, "SHARAN"):
		return layout.ParseTag("arab"), layout.ParseTag("URD ")
	case strings.HasPrefix(testcase, "SHBALI"):
		return layout.ParseTag("bali"), layout.ParseTag("BAN ")
	case strings.HasPrefix(testcase, "SHKNDA"):
		return layout.ParseTag("knda"), layout.ParseTag("KAN ")
	case strings.HasPrefix(testcase, "SHLANA"):
		return layout.ParseTag("lana"), layout.ParseTag("THA ")
	default:
		return layout.ParseTag("latn"), layout.ParseTag("ENG ")
	}
}
