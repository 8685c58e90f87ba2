package svg

import "math"

// Transform is a 2x2 linear transform applied to every coordinate the
// writer emits. It carries the font-units-to-output scale and, for
// SVG's y-down coordinate system, a vertical flip.
type Transform struct {
	XX, XY float64
	YX, YY float64
}

// Scale returns a transform scaling x by sx and y by sy. A negative sy
// flips the y axis.
func Scale(sx, sy float64) Transform {
	return Transform{XX: sx, YY: sy}
}

// Apply transforms a point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.XX*x + t.XY*y, t.YX*x + t.YY*y
}

// ScaleX extracts the horizontal scale factor, always positive.
func (t Transform) ScaleX() float64 {
	return math.Hypot(t.XX, t.YX)
}

// ScaleY extracts the vertical scale factor, always positive.
func (t Transform) ScaleY() float64 {
	return math.Hypot(t.XY, t.YY)
}

// Flipped reports whether the transform mirrors the y axis.
func (t Transform) Flipped() bool {
	return t.YY < 0
}
