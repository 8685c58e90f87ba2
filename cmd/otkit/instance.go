package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/boxesandglue/textshape/ot"
	"github.com/boxesandglue/textshape/subset"
)

var cmdInstance = &command{
	name:    "instance",
	summary: "pin the axes of a variable font to fixed values",
	run:     runInstance,
}

func runInstance(args []string) error {
	fs := flag.NewFlagSet("instance", flag.ExitOnError)
	tuple := fs.String("tuple", "", "axis settings, e.g. wght=600,wdth=100")
	index := fs.Int("index", 0, "index of the font to instance (for TTC)")
	fs.Parse(args)

	if fs.NArg() != 2 || *tuple == "" {
		fmt.Fprintln(fs.Output(), "usage: otkit instance -tuple AXES INPUT OUTPUT")
		fs.PrintDefaults()
		return exitError(2)
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	pins, err := parseTuple(*tuple)
	if err != nil {
		return err
	}

	src, err := loadSource(inPath, *index)
	if err != nil {
		return err
	}
	font, err := src.Font()
	if err != nil {
		return err
	}
	face, err := src.Face()
	if err != nil {
		return err
	}
	if !face.HasVariations() {
		return fmt.Errorf("%s is not a variable font", inPath)
	}

	input := subset.NewInput()
	for gid := 0; gid < font.NumGlyphs(); gid++ {
		input.AddGlyph(ot.GlyphID(gid))
	}
	// Pin everything to its default first so unspecified axes are
	// still removed, then apply the requested values on top.
	input.PinAllAxesToDefault(font)
	for _, pin := range pins {
		input.PinAxisLocation(pin.tag, pin.value)
	}

	plan, err := subset.CreatePlan(font, input)
	if err != nil {
		return err
	}
	out, err := plan.Execute()
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

type axisPin struct {
	tag   ot.Tag
	value float32
}

// parseTuple parses comma separated tag=value axis settings.
func parseTuple(s string) ([]axisPin, error) {
	var pins []axisPin
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		tag, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid axis setting %q, expected tag=value", part)
		}
		padded, err := padTag(tag)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid axis value %q: %w", val, err)
		}
		pins = append(pins, axisPin{
			tag:   ot.MakeTag(padded[0], padded[1], padded[2], padded[3]),
			value: float32(v),
		})
	}
	if len(pins) == 0 {
		return nil, fmt.Errorf("empty axis tuple")
	}
	return pins, nil
}
