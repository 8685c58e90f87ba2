package main

import (
	"flag"
	"fmt"
	"sort"
	"unicode"

	"github.com/boxesandglue/textshape/ot"
)

var cmdCmap = &command{
	name:    "cmap",
	summary: "print the character to glyph mappings of a font",
	run:     runCmap,
}

func runCmap(args []string) error {
	fs := flag.NewFlagSet("cmap", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to font file")
	index := fs.Int("index", 0, "index of the font to use (for TTC)")
	fs.Parse(args)

	if *fontPath == "" {
		fmt.Fprintln(fs.Output(), "usage: otkit cmap -font PATH")
		fs.PrintDefaults()
		return exitError(2)
	}

	src, err := loadSource(*fontPath, *index)
	if err != nil {
		return err
	}
	face, err := src.Face()
	if err != nil {
		return err
	}
	cmap := face.Cmap()
	if cmap == nil {
		return fmt.Errorf("unable to find suitable cmap subtable")
	}

	fmt.Println("cmap sub-table encoding: Unicode")
	mapping := cmap.CollectMapping()
	cps := make([]rune, 0, len(mapping))
	for cp := range mapping {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	for _, cp := range cps {
		fmt.Println(formatMapping(cp, mapping[cp]))
	}
	return nil
}

// formatMapping renders one codepoint to glyph line. ASCII control
// characters are shown using the corresponding Control Pictures
// codepoint so the output stays one mapping per line.
func formatMapping(cp rune, gid ot.GlyphID) string {
	disp := cp
	if cp <= 0x1F || cp == 0x7F {
		disp = cp + 0x2400
	}
	if unicode.IsControl(disp) || !unicode.IsPrint(disp) {
		return fmt.Sprintf("    U+%04X -> %d", cp, gid)
	}
	return fmt.Sprintf("'%c' U+%04X -> %d", disp, cp, gid)
}
