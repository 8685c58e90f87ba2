package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/boxesandglue/textshape/ot"

	"github.com/typefort/otkit/internal/sfntdir"
	"github.com/typefort/otkit/layout"
	"github.com/typefort/otkit/otfont"
)

var cmdDump = &command{
	name:    "dump",
	summary: "dump font information",
	run:     runDump,
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	index := fs.Int("index", 0, "index of the font to dump (for TTC)")
	table := fs.String("table", "", "write the raw content of this table to stdout")
	encodings := fs.Bool("encodings", false, "print the cmap encoding records")
	glyphNames := fs.Bool("glyph-names", false, "print the glyph names in the font")
	hmtx := fs.Bool("hmtx", false, "print the hmtx table")
	loca := fs.Bool("loca", false, "print the loca table")
	glyph := fs.Int("glyph", -1, "dump the outline of this glyph")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(fs.Output(), "usage: otkit dump [flags] FONT")
		fs.PrintDefaults()
		return exitError(2)
	}

	src, err := loadSource(fs.Arg(0), *index)
	if err != nil {
		return err
	}

	switch {
	case *table != "":
		return dumpTable(src, *table)
	case *encodings:
		return dumpEncodings(src)
	case *glyphNames:
		return dumpGlyphNames(src)
	case *hmtx:
		return dumpHmtx(src)
	case *loca:
		return dumpLoca(src)
	case *glyph >= 0:
		return dumpGlyph(src, *glyph)
	default:
		return dumpInfo(src)
	}
}

func dumpInfo(src *otfont.Source) error {
	dir := src.Directory()
	if dir.Collection {
		fmt.Println("TTC")
		fmt.Printf(" - num_fonts: %d\n", dir.NumFonts)
	}
	fmt.Println(dir.FlavorString())
	fmt.Printf(" - version: 0x%08x\n", dir.Flavor)
	fmt.Printf(" - num_tables: %d\n", len(dir.Entries))
	fmt.Println()
	for _, entry := range dir.Entries {
		fmt.Printf("%s checksum: 0x%08x offset: %d length: %d\n",
			entry.Tag, entry.Checksum, entry.Offset, entry.Length)
	}
	fmt.Println()

	if n, err := src.NumGlyphs(); err == nil {
		fmt.Printf(" - num_glyphs: %d\n", n)
	}
	if upem, err := src.Upem(); err == nil {
		fmt.Printf(" - units_per_em: %d\n", upem)
	}
	if face, err := src.Face(); err == nil {
		if name := face.FamilyName(); name != "" {
			fmt.Printf(" - family: %s\n", name)
		}
		if name := face.PostscriptName(); name != "" {
			fmt.Printf(" - postscript name: %s\n", name)
		}
	}
	return nil
}

// dumpTable writes raw table bytes to stdout. Binary output on a
// terminal is almost always a mistake, so it has to be redirected.
func dumpTable(src *otfont.Source, tag string) error {
	padded, err := padTag(tag)
	if err != nil {
		return err
	}
	data, ok := src.TableData(padded)
	if !ok {
		return fmt.Errorf("table %s not found", padded)
	}
	if info, err := os.Stdout.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return fmt.Errorf("refusing to write binary table data to a terminal, redirect stdout")
	}
	_, err = os.Stdout.Write(data)
	return err
}

func dumpEncodings(src *otfont.Source) error {
	data, ok := src.TableData("cmap")
	if !ok {
		return fmt.Errorf("font has no cmap table")
	}
	encodings, err := sfntdir.CmapEncodings(data)
	if err != nil {
		return err
	}
	for _, enc := range encodings {
		fmt.Printf("platform: %d (%s) encoding: %d format: %d\n",
			enc.PlatformID, enc.Platform(), enc.EncodingID, enc.Format)
	}
	return nil
}

func dumpGlyphNames(src *otfont.Source) error {
	outlines, err := otfont.NewOutlines(src)
	if err != nil {
		return err
	}
	numGlyphs, err := src.NumGlyphs()
	if err != nil {
		return err
	}
	for gid := 0; gid < numGlyphs; gid++ {
		name, ok := outlines.GlyphName(layout.GlyphID(gid))
		if !ok {
			name = fmt.Sprintf("gid%d", gid)
		}
		fmt.Printf("%d: %s\n", gid, name)
	}
	return nil
}

func dumpHmtx(src *otfont.Source) error {
	font, err := src.Font()
	if err != nil {
		return err
	}
	table, err := ot.ParseHmtxFromFont(font)
	if err != nil {
		return err
	}
	fmt.Println("hmtx:")
	for gid := 0; gid < font.NumGlyphs(); gid++ {
		advance, lsb := table.GetMetrics(ot.GlyphID(gid))
		fmt.Printf("%d: advance: %d lsb: %d\n", gid, advance, lsb)
	}
	return nil
}

func dumpLoca(src *otfont.Source) error {
	head, ok := src.TableData("head")
	if !ok {
		return fmt.Errorf("font has no head table")
	}
	if len(head) < 52 {
		return fmt.Errorf("head table too short")
	}
	longFormat := binary.BigEndian.Uint16(head[50:]) == 1

	data, ok := src.TableData("loca")
	if !ok {
		return fmt.Errorf("font has no loca table")
	}
	numGlyphs, err := src.NumGlyphs()
	if err != nil {
		return err
	}

	p := ot.NewParser(data)
	fmt.Println("loca:")
	for gid := 0; gid <= numGlyphs; gid++ {
		var offset uint32
		if longFormat {
			v, err := p.U32()
			if err != nil {
				return fmt.Errorf("loca truncated at glyph %d", gid)
			}
			offset = v
		} else {
			v, err := p.U16()
			if err != nil {
				return fmt.Errorf("loca truncated at glyph %d", gid)
			}
			offset = uint32(v) * 2
		}
		fmt.Printf("%d: %d\n", gid, offset)
	}
	return nil
}

func dumpGlyph(src *otfont.Source, gid int) error {
	outlines, err := otfont.NewOutlines(src)
	if err != nil {
		return err
	}
	numGlyphs, err := src.NumGlyphs()
	if err != nil {
		return err
	}
	if gid >= numGlyphs {
		return fmt.Errorf("glyph %d out of range, font has %d glyphs", gid, numGlyphs)
	}

	if name, ok := outlines.GlyphName(layout.GlyphID(gid)); ok {
		fmt.Printf("glyph %d (%s):\n", gid, name)
	} else {
		fmt.Printf("glyph %d:\n", gid)
	}
	return outlines.Visit(layout.GlyphID(gid), pathPrinter{})
}

// pathPrinter writes outline commands one per line.
type pathPrinter struct{}

func (pathPrinter) MoveTo(x, y float64) {
	fmt.Printf("M %g,%g\n", x, y)
}

func (pathPrinter) LineTo(x, y float64) {
	fmt.Printf("L %g,%g\n", x, y)
}

func (pathPrinter) QuadTo(cx, cy, x, y float64) {
	fmt.Printf("Q %g,%g %g,%g\n", cx, cy, x, y)
}

func (pathPrinter) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	fmt.Printf("C %g,%g %g,%g %g,%g\n", c1x, c1y, c2x, c2y, x, y)
}

func (pathPrinter) Close() {
	fmt.Println("Z")
}
