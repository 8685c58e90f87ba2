package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/typefort/otkit/otfont"
)

var cmdValidate = &command{
	name:    "validate",
	summary: "parse the supplied fonts, reporting any failures",
	run:     runValidate,
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	index := fs.Int("index", 0, "index of the font to validate (for TTC)")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(fs.Output(), "usage: otkit validate [flags] FONT...")
		fs.PrintDefaults()
		return exitError(2)
	}

	failed := false
	for _, path := range fs.Args() {
		if !validateFont(path, *index) {
			failed = true
		}
	}
	if failed {
		return exitError(1)
	}
	return nil
}

// validateFont parses every layer of one font and loads every glyph
// outline, printing a line per failure. It returns false when anything
// went wrong.
func validateFont(path string, index int) bool {
	src, err := otfont.Open(path, index)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return false
	}

	ok := true
	if _, err := src.Font(); err != nil {
		fmt.Printf("%s: %v\n", path, err)
		ok = false
	}
	if _, err := src.Face(); err != nil {
		fmt.Printf("%s: %v\n", path, err)
		ok = false
	}

	outlines, err := otfont.NewOutlines(src)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return false
	}
	numGlyphs, err := src.NumGlyphs()
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return false
	}
	for _, err := range outlines.ValidateGlyphs(numGlyphs) {
		var gle *otfont.GlyphLoadError
		if errors.As(err, &gle) {
			fmt.Printf("%s [%d]: %v\n", path, gle.GID, gle.Err)
		} else {
			fmt.Printf("%s: %v\n", path, err)
		}
		ok = false
	}
	return ok
}
