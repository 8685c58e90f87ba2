package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/typefort/otkit/otfont"
	"github.com/typefort/otkit/otfont/bitmap"
)

var cmdBitmaps = &command{
	name:    "bitmaps",
	summary: "dump the embedded bitmaps of a font to a directory",
	run:     runBitmaps,
}

func runBitmaps(args []string) error {
	fs := flag.NewFlagSet("bitmaps", flag.ExitOnError)
	output := fs.String("output", "", "path to directory to write to")
	index := fs.Int("index", 0, "index of the font to dump (for TTC)")
	fs.Parse(args)

	if *output == "" || fs.NArg() != 1 {
		fmt.Fprintln(fs.Output(), "usage: otkit bitmaps -output DIR FONT")
		fs.PrintDefaults()
		return exitError(2)
	}

	src, err := loadSource(fs.Arg(0), *index)
	if err != nil {
		return err
	}

	if glyphData, ok := src.TableData("CBDT"); ok {
		if locData, ok := src.TableData("CBLC"); ok {
			return dumpColorBitmaps(glyphData, locData, *output)
		}
	}
	if glyphData, ok := src.TableData("EBDT"); ok {
		if locData, ok := src.TableData("EBLC"); ok {
			return dumpColorBitmaps(glyphData, locData, *output)
		}
	}
	if data, ok := src.TableData("sbix"); ok {
		return dumpSbixBitmaps(src, data, *output)
	}
	return fmt.Errorf("font has no CBDT, EBDT or sbix table")
}

func dumpColorBitmaps(glyphData, locData []byte, outDir string) error {
	table, err := bitmap.NewColorTable(glyphData, locData)
	if err != nil {
		return err
	}
	for strike := 0; strike < table.NumStrikes(); strike++ {
		ppemX, ppemY := table.StrikeSize(strike)
		dir := filepath.Join(outDir, fmt.Sprintf("%dx%d@%d", ppemX, ppemY, table.StrikeBitDepth(strike)))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		for _, gid := range table.StrikeGlyphs(strike) {
			glyph, err := table.Glyph(gid, strike)
			if err != nil {
				fmt.Fprintf(os.Stderr, "otkit bitmaps: glyph %d: %v\n", gid, err)
				continue
			}
			if err := writeBitmapGlyph(dir, glyph); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpSbixBitmaps(src *otfont.Source, data []byte, outDir string) error {
	numGlyphs, err := src.NumGlyphs()
	if err != nil {
		return err
	}
	table, err := bitmap.NewSbix(data, numGlyphs)
	if err != nil {
		return err
	}
	for strike := 0; strike < table.NumStrikes(); strike++ {
		dir := filepath.Join(outDir, fmt.Sprintf("%d", table.StrikePPEM(strike)))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		for _, gid := range table.StrikeGlyphs(strike) {
			glyph, err := table.Glyph(gid, strike)
			if err != nil {
				fmt.Fprintf(os.Stderr, "otkit bitmaps: glyph %d: %v\n", gid, err)
				continue
			}
			if glyph.Format == bitmap.Dupe {
				// A dupe record points at another glyph's bitmap, so
				// there is nothing to write for this glyph id.
				continue
			}
			if err := writeBitmapGlyph(dir, glyph); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeBitmapGlyph(dir string, glyph *bitmap.Glyph) error {
	path := filepath.Join(dir, fmt.Sprintf("%d.%s", glyph.GID, glyph.Format.Extension()))
	return os.WriteFile(path, glyph.Data, 0o644)
}
