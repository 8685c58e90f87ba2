package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/boxesandglue/textshape/ot"
)

var cmdLayoutFeatures = &command{
	name:    "layout-features",
	summary: "print the GSUB and GPOS features of a font",
	run:     runLayoutFeatures,
}

// featureLister is satisfied by both GSUB and GPOS.
type featureLister interface {
	ParseFeatureList() (*ot.FeatureList, error)
}

func runLayoutFeatures(args []string) error {
	fs := flag.NewFlagSet("layout-features", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to font file")
	index := fs.Int("index", 0, "index of the font to use (for TTC)")
	fs.Parse(args)

	if *fontPath == "" {
		fmt.Fprintln(fs.Output(), "usage: otkit layout-features -font PATH")
		fs.PrintDefaults()
		return exitError(2)
	}

	src, err := loadSource(*fontPath, *index)
	if err != nil {
		return err
	}

	if data, ok := src.TableData("GSUB"); ok {
		gsub, err := ot.ParseGSUB(data)
		if err != nil {
			return fmt.Errorf("GSUB: %w", err)
		}
		fmt.Println("Table: GSUB")
		if err := printLayoutTable(data, gsub); err != nil {
			return fmt.Errorf("GSUB: %w", err)
		}
	}
	if data, ok := src.TableData("GPOS"); ok {
		gpos, err := ot.ParseGPOS(data)
		if err != nil {
			return fmt.Errorf("GPOS: %w", err)
		}
		fmt.Println("Table: GPOS")
		if err := printLayoutTable(data, gpos); err != nil {
			return fmt.Errorf("GPOS: %w", err)
		}
	}
	return nil
}

// printLayoutTable walks the script list of a GSUB or GPOS table and
// prints the features reachable from each language system.
func printLayoutTable(data []byte, table featureLister) error {
	features, err := table.ParseFeatureList()
	if err != nil {
		return err
	}

	p := ot.NewParser(data)
	scriptListOff, err := p.U16At(4)
	if err != nil {
		return err
	}
	scripts, err := p.SubParserFromOffset(int(scriptListOff))
	if err != nil {
		return err
	}

	scriptCount, err := scripts.U16()
	if err != nil {
		return err
	}
	for i := 0; i < int(scriptCount); i++ {
		tag, err := scripts.Tag()
		if err != nil {
			return err
		}
		scriptOff, err := scripts.U16()
		if err != nil {
			return err
		}
		fmt.Printf("  Script: %s\n", tag)
		if err := printScript(scripts.Data(), int(scriptOff), features); err != nil {
			return err
		}
	}
	return nil
}

func printScript(scriptList []byte, off int, features *ot.FeatureList) error {
	script, err := ot.NewParser(scriptList).SubParserFromOffset(off)
	if err != nil {
		return err
	}
	defaultLangSys, err := script.U16()
	if err != nil {
		return err
	}
	langSysCount, err := script.U16()
	if err != nil {
		return err
	}

	if defaultLangSys != 0 {
		fmt.Println("    Language: default")
		if err := printLangSys(script.Data(), int(defaultLangSys), features); err != nil {
			return err
		}
	}
	for i := 0; i < int(langSysCount); i++ {
		tag, err := script.Tag()
		if err != nil {
			return err
		}
		langSysOff, err := script.U16()
		if err != nil {
			return err
		}
		fmt.Printf("    Language: %s\n", tag)
		if err := printLangSys(script.Data(), int(langSysOff), features); err != nil {
			return err
		}
	}
	return nil
}

func printLangSys(script []byte, off int, features *ot.FeatureList) error {
	langSys, err := ot.NewParser(script).SubParserFromOffset(off)
	if err != nil {
		return err
	}
	// lookupOrder is reserved, requiredFeatureIndex is 0xFFFF when unset.
	if err := langSys.Skip(4); err != nil {
		return err
	}
	featureCount, err := langSys.U16()
	if err != nil {
		return err
	}
	for i := 0; i < int(featureCount); i++ {
		featureIndex, err := langSys.U16()
		if err != nil {
			return err
		}
		feature, err := features.GetFeature(int(featureIndex))
		if err != nil {
			return err
		}
		fmt.Printf("      Feature: %s\n", feature.Tag)

		lookups := make([]string, len(feature.Lookups))
		for j, l := range feature.Lookups {
			lookups[j] = fmt.Sprint(l)
		}
		fmt.Printf("        Lookups: %s\n", strings.Join(lookups, ","))
	}
	return nil
}
