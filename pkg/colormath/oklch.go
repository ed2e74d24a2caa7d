package colormath

import "math"

// OklchColor is a point in the OKLCH colorspace: L is perceptual lightness
// in [0,1], C is chroma (unbounded but practically < 0.4), and H is the hue
// angle in degrees, wrapped into [0,360). Alpha is optional and defaults to
// fully opaque.
type OklchColor struct {
	L     float64
	C     float64
	H     float64
	Alpha float64
}

// New constructs an opaque OklchColor from raw L, C, H components.
func New(l, c, h float64) OklchColor {
	return OklchColor{L: l, C: c, H: h, Alpha: 1.0}
}

// NewWithAlpha constructs an OklchColor with an explicit alpha channel.
func NewWithAlpha(l, c, h, a float64) OklchColor {
	return OklchColor{L: l, C: c, H: h, Alpha: a}
}

// Clamp enforces the OklchColor invariants: L in [0,1], C >= 0, H wrapped
// into [0,360) via modulo, and alpha in [0,1].
func Clamp(c OklchColor) OklchColor {
	return OklchColor{
		L:     clamp01(c.L),
		C:     math.Max(0, c.C),
		H:     wrapHue(c.H),
		Alpha: clamp01(c.Alpha),
	}
}

// IsAchromatic reports whether the color's chroma is small enough that hue
// is not perceptually meaningful.
func (c OklchColor) IsAchromatic() bool {
	return c.C < 1e-6
}

// WrapSigned returns the shortest signed angular offset from b to a,
// normalized to (-180, 180]. A positive result means a is clockwise of b.
func WrapSigned(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// AngularDistance returns the wrap-aware angular distance between two hues
// in degrees, in [0,180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
