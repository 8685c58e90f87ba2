// Package bitmap extracts embedded bitmap glyphs from font tables.
//
// Two table families are supported: CBDT/CBLC (Google's color bitmap
// format, also readable as EBDT/EBLC which shares the layout) and sbix
// (Apple's format). Both organize bitmaps into strikes, one per pixel
// size; the package enumerates strikes and the glyphs present in each.
package bitmap

import (
	"bytes"
	"errors"
	"image"
	"image/png"
)

// Errors shared by the table readers.
var (
	// ErrInvalidData indicates a malformed bitmap table.
	ErrInvalidData = errors.New("bitmap: invalid table data")

	// ErrGlyphNotFound indicates the glyph has no bitmap in the strike.
	ErrGlyphNotFound = errors.New("bitmap: glyph not in strike")

	// ErrUnsupportedFormat indicates an index or image format the
	// reader does not handle.
	ErrUnsupportedFormat = errors.New("bitmap: unsupported format")
)

// Format is the encoding of one embedded bitmap.
type Format int

const (
	PNG Format = iota
	JPEG
	TIFF
	// Dupe marks an sbix glyph that reuses another glyph's bitmap.
	Dupe
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case Dupe:
		return "DUPE"
	}
	return "Unknown"
}

// Extension returns the file extension used when writing the bitmap
// out, without the leading dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return "jpg"
	case TIFF:
		return "tiff"
	default:
		return "png"
	}
}

// Glyph is one extracted bitmap.
type Glyph struct {
	GID    uint16
	PPEM   uint16
	Format Format
	// Data holds the encoded image bytes as stored in the font.
	Data []byte
	// OriginX and OriginY offset the bitmap from the glyph origin.
	OriginX int16
	OriginY int16
	// Width and Height are pixel dimensions when the table records
	// them; zero otherwise.
	Width  int
	Height int
}

// Decode decodes the bitmap into an image. Only PNG data is decodable;
// other formats return ErrUnsupportedFormat.
func (g *Glyph) Decode() (image.Image, error) {
	if g.Format != PNG {
		return nil, ErrUnsupportedFormat
	}
	return png.Decode(bytes.NewReader(g.Data))
}
