package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/boxesandglue/textshape/ot"
)

var cmdVariations = &command{
	name:    "variations",
	summary: "print the axes and named instances of a variable font",
	run:     runVariations,
}

func runVariations(args []string) error {
	fs := flag.NewFlagSet("variations", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to font file")
	index := fs.Int("index", 0, "index of the font to use (for TTC)")
	fs.Parse(args)

	if *fontPath == "" {
		fmt.Fprintln(fs.Output(), "usage: otkit variations -font PATH")
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
	if !face.HasVariations() {
		fmt.Println("Font does not appear to be a variable font (no fvar table found)")
		return nil
	}

	var name *ot.Name
	if data, ok := src.TableData("name"); ok {
		name, _ = ot.ParseName(data)
	}

	axes := face.VariationAxes()
	fmt.Printf("Axes: (%d)\n\n", len(axes))
	for _, axis := range axes {
		fmt.Printf("- %s = min: %s, max: %s, default: %s\n",
			axis.Tag,
			formatFixed(axis.MinValue),
			formatFixed(axis.MaxValue),
			formatFixed(axis.DefaultValue))
	}

	fmt.Println("\nInstances:")
	for _, inst := range face.NamedInstances() {
		fmt.Printf("\n      Subfamily: %s\n", nameOrUnknown(name, inst.SubfamilyNameID))
		if inst.PostScriptNameID != 0 && inst.PostScriptNameID != 0xFFFF {
			fmt.Printf("PostScript Name: %s\n", nameOrUnknown(name, inst.PostScriptNameID))
		}
		coords := make([]string, len(inst.Coords))
		for i, c := range inst.Coords {
			coords[i] = formatFixed(c)
		}
		fmt.Printf("    Coordinates: [%s]\n", strings.Join(coords, ", "))
	}
	return nil
}

func nameOrUnknown(name *ot.Name, id uint16) string {
	if name != nil {
		if s := name.Get(id); s != "" {
			return s
		}
	}
	return "Unknown"
}
