// Package otkit provides font inspection and shaping utilities for
// OpenType fonts.
//
// # Overview
//
// otkit is a Pure Go toolkit for working with TrueType and OpenType font
// files. It exposes a small set of packages that together cover the common
// font-engineering workflows: dumping tables, shaping text, rendering
// shaped output to SVG, subsetting, and instancing variable fonts.
//
// # Quick Start
//
//	import "github.com/typefort/otkit/otfont"
//
//	src, err := otfont.Open("NotoSans.ttf", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shaper, err := otfont.GetShaper("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	infos, err := shaper.Shape(src, "Hello", otfont.ShapeOptions{})
//
// # Architecture
//
// The library is organized into:
//   - layout: glyph positioning, attachment resolution, script direction
//   - svg: serialization of positioned glyphs to SVG documents
//   - otfont: font loading, metrics, outlines, naming, and shaping backends
//   - cmd/otkit: the command line interface
//
// The layout and svg packages are pure and operate on in-memory values
// only; all file I/O lives in otfont and the CLI.
package otkit
