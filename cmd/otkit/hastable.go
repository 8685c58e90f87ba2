package main

import (
	"flag"
	"fmt"
	"os"
)

var cmdHasTable = &command{
	name:    "has-table",
	summary: "check if fonts contain a particular table",
	run:     runHasTable,
}

// runHasTable exits 0 when at least one of the given fonts matches,
// which makes the command usable as a shell predicate and as a filter
// over font collections when combined with -l.
func runHasTable(args []string) error {
	fs := flag.NewFlagSet("has-table", flag.ExitOnError)
	table := fs.String("table", "", "table to check for")
	invert := fs.Bool("x", false, "invert the match")
	list := fs.Bool("l", false, "print the name of each matching file")
	index := fs.Int("index", 0, "index of the font to check (for TTC)")
	fs.Parse(args)

	if *table == "" || fs.NArg() == 0 {
		fmt.Fprintln(fs.Output(), "usage: otkit has-table -table TABLE [flags] FONT...")
		fs.PrintDefaults()
		return exitError(2)
	}
	tag, err := padTag(*table)
	if err != nil {
		return err
	}

	found := false
	for _, path := range fs.Args() {
		src, err := loadSource(path, *index)
		if err != nil {
			fmt.Fprintf(os.Stderr, "otkit has-table: %s: %v\n", path, err)
			continue
		}
		has := src.HasTable(tag)
		if *invert {
			has = !has
		}
		if has {
			found = true
			if *list {
				fmt.Println(path)
			}
		}
	}
	if !found {
		return exitError(1)
	}
	return nil
}
