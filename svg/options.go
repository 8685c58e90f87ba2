package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Margin is blank space added around the rendered glyphs in View mode.
// Fields follow CSS order: top, right, bottom, left.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ParseMargin parses a margin from either a single number applied to all
// four sides or four comma-separated numbers in CSS order.
func ParseMargin(s string) (Margin, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Margin{}, fmt.Errorf("svg: invalid margin %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 1:
		return Margin{Top: vals[0], Right: vals[0], Bottom: vals[0], Left: vals[0]}, nil
	case 4:
		return Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return Margin{}, fmt.Errorf("svg: expected margin of either a single number or 4 numbers, got %d", len(vals))
	}
}

// Colour is an RGBA colour.
type Colour struct {
	R, G, B, A uint8
}

// ParseColour parses a colour of the form RRGGBBAA, eight hex digits.
func ParseColour(s string) (Colour, error) {
	if len(s) != 8 {
		return Colour{}, fmt.Errorf("svg: colour is not of the form RRGGBBAA: %q", s)
	}
	var vals [4]uint8
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("svg: invalid colour %q: %w", s, err)
		}
		vals[i] = uint8(v)
	}
	return Colour{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

// String renders the colour as an opaque #rrggbb value; the alpha channel
// is carried separately as fill-opacity.
func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns the alpha channel as a fraction in [0, 1].
func (c Colour) Opacity() float64 {
	return float64(c.A) / 255
}
