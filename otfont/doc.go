// Package otfont binds font files to the layout and svg packages.
//
// A Source owns the bytes of one font (or one member of a collection) and
// lazily exposes three views of the same data: a textshape ot.Font for
// table access and shaping, a textshape ot.Face for metrics, and an
// x/image sfnt.Font for outlines and glyph names. Views are parsed on
// first use and cached for the life of the Source.
//
// Shaping goes through a pluggable Shaper registry. The default backend
// shapes with textshape's OpenType engine; a go-text/typesetting backend
// is available under the name "gotext".
package otfont
