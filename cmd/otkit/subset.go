package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boxesandglue/textshape/ot"
	"github.com/boxesandglue/textshape/subset"
)

var cmdSubset = &command{
	name:    "subset",
	summary: "subset a font to the glyphs of some text",
	run:     runSubset,
}

func runSubset(args []string) error {
	fs := flag.NewFlagSet("subset", flag.ExitOnError)
	text := fs.String("text", "", "keep the glyphs needed to render TEXT")
	all := fs.Bool("all", false, "keep every glyph, rebuilding the font")
	index := fs.Int("index", 0, "index of the font to subset (for TTC)")
	fs.Parse(args)

	if fs.NArg() != 2 || (*text == "" && !*all) {
		fmt.Fprintln(fs.Output(), "usage: otkit subset (-text TEXT | -all) INPUT OUTPUT")
		fs.PrintDefaults()
		if fs.NArg() == 2 {
			fmt.Fprintln(os.Stderr, "one of -text or -all is required")
		}
		return exitError(2)
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	src, err := loadSource(inPath, *index)
	if err != nil {
		return err
	}
	font, err := src.Font()
	if err != nil {
		return err
	}

	input := subset.NewInput()
	if *all {
		for gid := 0; gid < font.NumGlyphs(); gid++ {
			input.AddGlyph(ot.GlyphID(gid))
		}
	} else {
		// notdef survives every subset so broken text still renders.
		input.AddGlyph(0)
		input.AddString(*text)
	}

	plan, err := subset.CreatePlan(font, input)
	if err != nil {
		return err
	}
	out, err := plan.Execute()
	if err != nil {
		return err
	}

	fmt.Printf("Number of glyphs in new font: %d\n", plan.NumOutputGlyphs())
	return os.WriteFile(outPath, out, 0o644)
}
