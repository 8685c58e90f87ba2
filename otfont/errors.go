package otfont

import (
	"errors"
	"fmt"
)

// Sentinel errors for font loading.
var (
	// ErrEmptyFontData is returned when a Source is created from no bytes.
	ErrEmptyFontData = errors.New("otfont: empty font data")

	// ErrUnknownShaper is returned when a shaper name is not registered.
	ErrUnknownShaper = errors.New("otfont: unknown shaper")
)

// GlyphLoadError reports a glyph whose outline could not be loaded.
type GlyphLoadError struct {
	GID uint16
	Err error
}

func (e *GlyphLoadError) Error() string {
	return fmt.Sprintf("otfont: load glyph %d: %v", e.GID, e.Err)
}

func (e *GlyphLoadError) Unwrap() error {
	return e.Err
}
