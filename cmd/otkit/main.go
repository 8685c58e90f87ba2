// Command otkit inspects, shapes, subsets, and renders OpenType fonts.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/typefort/otkit"
	"github.com/typefort/otkit/otfont"
)

type command struct {
	name    string
	summary string
	run     func(args []string) error
}

var commands = []*command{
	cmdBitmaps,
	cmdCmap,
	cmdDump,
	cmdHasTable,
	cmdInstance,
	cmdLayoutFeatures,
	cmdShape,
	cmdSubset,
	cmdSVG,
	cmdValidate,
	cmdVariations,
	cmdView,
}

// exitError carries a process exit status without a message. Commands
// return it when the failure has already been reported, or when the
// exit status itself is the result, as with has-table.
type exitError int

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage()
		os.Exit(2)
	}

	name := args[0]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(args[1:]); err != nil {
			var code exitError
			if errors.As(err, &code) {
				os.Exit(int(code))
			}
			fmt.Fprintf(os.Stderr, "otkit %s: %v\n", name, err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "otkit: unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: otkit <command> [flags] [args]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'otkit <command> -h' for command-specific flags.")
}

// setVerbose replaces the silent default logger with one that writes
// debug records to stderr.
func setVerbose(on bool) {
	if !on {
		return
	}
	otkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func loadSource(path string, index int) (*otfont.Source, error) {
	return otfont.Open(path, index)
}

// padTag normalises a table or script tag to the four character form
// stored in font files, so "CFF" matches "CFF ".
func padTag(s string) (string, error) {
	if s == "" || len(s) > 4 {
		return "", fmt.Errorf("invalid tag %q", s)
	}
	return (s + "    ")[:4], nil
}

// formatFixed renders a fixed-point value the way font tooling
// conventionally does, with the fraction dropped when it is zero.
func formatFixed(v float32) string {
	s := strings.TrimRight(fmt.Sprintf("%.4f", v), "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
