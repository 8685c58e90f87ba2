package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/typefort/otkit/layout"
	"github.com/typefort/otkit/otfont"
)

var cmdShape = &command{
	name:    "shape",
	summary: "apply shaping to glyphs from a font",
	run:     runShape,
}

func runShape(args []string) error {
	fs := flag.NewFlagSet("shape", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to font file")
	index := fs.Int("index", 0, "index of the font to use (for TTC)")
	script := fs.String("script", "", "script tag to shape, e.g. deva")
	lang := fs.String("lang", "", "language tag to shape, e.g. HIN")
	features := fs.String("features", "", "feature settings, e.g. smcp,-liga")
	vertical := fs.Bool("vertical", false, "shape for vertical layout")
	shaperName := fs.String("shaper", "", "shaping backend: "+strings.Join(otfont.ShaperNames(), ", "))
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Parse(args)

	if *fontPath == "" || fs.NArg() != 1 {
		fmt.Fprintln(fs.Output(), "usage: otkit shape -font PATH [flags] TEXT")
		fs.PrintDefaults()
		return exitError(2)
	}
	setVerbose(*verbose)
	text := fs.Arg(0)

	src, err := loadSource(*fontPath, *index)
	if err != nil {
		return err
	}
	engine, err := otfont.GetShaper(*shaperName)
	if err != nil {
		return err
	}

	opts := otfont.ShapeOptions{
		Vertical: *vertical,
		Features: *features,
	}
	if *script != "" {
		opts.Script = layout.ParseTag(*script)
	}
	if *lang != "" {
		opts.Language = layout.ParseTag(*lang)
	}
	opts.Direction = textDirection(text, opts.Script)

	infos, err := engine.Shape(src, text, opts)
	if err != nil {
		return err
	}

	metrics, err := otfont.NewMetrics(src)
	if err != nil {
		return err
	}
	positions, err := layout.NewLayout(metrics, opts.Direction, *vertical).Positions(infos)
	if err != nil {
		return err
	}

	for i := range infos {
		p := &positions[i]
		advance := p.HoriAdvance
		if *vertical {
			advance = p.VertAdvance
		}
		fmt.Printf("%d (%d, %d) %s\n", advance, p.XOffset, p.YOffset, glyphDesc(&infos[i]))
	}
	return nil
}

// textDirection resolves the layout direction for a run of text. An
// explicit script tag wins; otherwise the first strong character of the
// text decides.
func textDirection(text string, script layout.Tag) layout.Direction {
	if script != 0 {
		return layout.ScriptDirection(script)
	}
	runs := layout.SplitRuns(text, layout.LeftToRight)
	if len(runs) > 0 {
		return runs[0].Direction
	}
	return layout.LeftToRight
}

func glyphDesc(info *layout.Info) string {
	g := &info.Glyph
	if len(g.Unicodes) == 0 {
		return fmt.Sprintf("gid=%d", g.GID)
	}
	return fmt.Sprintf("gid=%d %q", g.GID, string(g.Unicodes))
}
