package colormath

import (
	"fmt"
	"math"
)

// Display P3 uses the same transfer function as sRGB but a wider primary
// gamut. Matrices below go linear-sRGB -> XYZ -> linear-P3 and back,
// following the same derivation path as the sRGB matrices in srgb.go.

func linearSRGBToXYZ(r, g, b float64) (x, y, z float64) {
	x = 0.4123907992659593*r + 0.3575843393838780*g + 0.1804807884018343*b
	y = 0.2126390058715102*r + 0.7151686787677559*g + 0.0721923153607337*b
	z = 0.0193308187155918*r + 0.1191947797946259*g + 0.9505321522496607*b
	return
}

func xyzToLinearSRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2409699419045226*x - 1.5373831775700940*y - 0.4986107602930034*z
	g = -0.9692436362808796*x + 1.8759675015077202*y + 0.0415550574071756*z
	b = 0.0556300796969936*x - 0.2039769588889765*y + 1.0569715142428786*z
	return
}

func xyzToLinearP3(x, y, z float64) (r, g, b float64) {
	r = 2.4934969119414263*x - 0.9313836179191240*y - 0.4027107844507168*z
	g = -0.8294889695615749*x + 1.7626640603183463*y + 0.0236246858419436*z
	b = 0.0358458302437845*x - 0.0761723892680418*y + 0.9568845240076872*z
	return
}

func linearP3ToXYZ(r, g, b float64) (x, y, z float64) {
	x = 0.4865709486482162*r + 0.2656676931690931*g + 0.1982172852343625*b
	y = 0.2289745640697488*r + 0.6917385218365064*g + 0.0792869140937450*b
	z = 0.0000000000000000*r + 0.0451133818589026*g + 1.0439443689009760*b
	return
}

// linearSRGBToLinearP3 converts linear-light sRGB to linear-light Display P3.
func linearSRGBToLinearP3(r, g, b float64) (pr, pg, pb float64) {
	x, y, z := linearSRGBToXYZ(r, g, b)
	return xyzToLinearP3(x, y, z)
}

// linearP3ToLinearSRGB converts linear-light Display P3 to linear-light sRGB.
func linearP3ToLinearSRGB(r, g, b float64) (sr, sg, sb float64) {
	x, y, z := linearP3ToXYZ(r, g, b)
	return xyzToLinearSRGB(x, y, z)
}

// ToP3 converts an OklchColor to Display P3 components in [0,1]. Unlike
// ToSRGB, out-of-gamut values are clipped directly rather than gamut
// mapped: P3's wider gamut means clipping is a rarer, smaller-magnitude
// event, and the export contract only reaches for this when deriving the
// P3 variant of a scale whose sRGB hex has already been gamut mapped, so a
// second JND search adds cost without changing the visible result.
func ToP3(c OklchColor) (r, g, b float64) {
	if c.L <= 0 {
		return 0, 0, 0
	}
	if c.L >= 1 {
		return 1, 1, 1
	}
	if c.IsAchromatic() {
		gray := linearToSrgb(c.L * c.L * c.L)
		return clamp01(gray), clamp01(gray), clamp01(gray)
	}

	_, a, b2 := oklchToOklab(c.L, c.C, c.H)
	rLin, gLin, bLin := oklabToLinearSRGB(c.L, a, b2)
	prLin, pgLin, pbLin := linearSRGBToLinearP3(rLin, gLin, bLin)
	return linearToSrgb(clamp01(prLin)), linearToSrgb(clamp01(pgLin)), linearToSrgb(clamp01(pbLin))
}

// ToP3Hex renders an OklchColor as a CSS color() Display P3 function string,
// e.g. "color(display-p3 0.1 0.2 0.3)".
func ToP3Hex(c OklchColor) string {
	r, g, b := ToP3(c)
	return fmt.Sprintf("color(display-p3 %.4f %.4f %.4f)", round4(r), round4(g), round4(b))
}

// FromP3 converts Display P3 components in [0,1] to an OklchColor.
func FromP3(r, g, b float64) OklchColor {
	rLin := srgbToLinear(r)
	gLin := srgbToLinear(g)
	bLin := srgbToLinear(b)

	srLin, sgLin, sbLin := linearP3ToLinearSRGB(rLin, gLin, bLin)
	if srLin == sgLin && sgLin == sbLin {
		return OklchColor{L: linearSRGBLightness(srLin, sgLin, sbLin), C: 0, H: 0, Alpha: 1}
	}

	l, a, b2 := linearSRGBToOklab(srLin, sgLin, sbLin)
	ll, c, h := oklabToOklch(l, a, b2)
	return OklchColor{L: ll, C: c, H: h, Alpha: 1}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// IsOutOfSRGBGamut reports whether the color's unmapped linear-sRGB
// rendering falls outside [0,1], i.e. whether ToSRGB would have to gamut
// map it. Used by exportcontract to decide whether a P3 variant is worth
// emitting for a given step.
func IsOutOfSRGBGamut(c OklchColor) bool {
	if c.IsAchromatic() {
		return false
	}
	_, a, b := oklchToOklab(c.L, c.C, c.H)
	r, g, bl := oklabToLinearSRGB(c.L, a, b)
	return !inGamut(r, g, bl)
}
