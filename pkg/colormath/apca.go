package colormath

import "math"

// APCA contrast (APCA-W3, bridge-RGB exponent set), as published by the
// Accessible Perceptual Contrast Algorithm project. Values are signed: the
// sign indicates polarity (positive for a dark-on-light pair, negative for
// light-on-dark), and magnitude is a "Lc" score roughly comparable across
// the 0-106 range, not a ratio like WCAG 2's contrast ratio.
const (
	apcaMainTRC     = 2.4
	apcaNormBG      = 0.56
	apcaNormTXT     = 0.57
	apcaRevBG       = 0.65
	apcaRevTXT      = 0.62
	apcaBlkThresh   = 0.022
	apcaBlkClamp    = 1.414
	apcaDeltaYMin   = 0.0005
	apcaLoClip      = 0.1
	apcaLoClipScale = 1.14
	apcaScaleOffset = 0.027
)

// relativeLuminanceSRGB computes the APCA "Y" luminance from sRGB [0,1]
// components using sRGB-specific coefficients and the 2.4 bridge-RGB TRC
// exponent applied directly to gamma-encoded channels, per the APCA-W3
// reference implementation (not the same formula as WCAG 2 relative
// luminance).
func relativeLuminanceSRGB(r, g, b float64) float64 {
	return 0.2126729*math.Pow(r, apcaMainTRC) +
		0.7151522*math.Pow(g, apcaMainTRC) +
		0.0721750*math.Pow(b, apcaMainTRC)
}

func softClampBlack(y float64) float64 {
	if y > apcaBlkThresh {
		return y
	}
	return y + math.Pow(apcaBlkThresh-y, apcaBlkClamp)
}

// ApcaLc returns the signed APCA contrast of a text color against a
// background color. Positive means dark text on a light background;
// negative means light text on a dark background.
func ApcaLc(textHex, bgHex string) (float64, bool) {
	text, ok := ToOklch(textHex)
	if !ok {
		return 0, false
	}
	bg, ok := ToOklch(bgHex)
	if !ok {
		return 0, false
	}
	return ApcaLcOklch(text, bg), true
}

// ApcaLcOklch is ApcaLc over already-parsed colors.
func ApcaLcOklch(text, bg OklchColor) float64 {
	tr, tg, tb := ToSRGB(text)
	br, bg2, bb := ToSRGB(bg)

	yTxt := softClampBlack(relativeLuminanceSRGB(tr, tg, tb))
	yBg := softClampBlack(relativeLuminanceSRGB(br, bg2, bb))

	if math.Abs(yBg-yTxt) < apcaDeltaYMin {
		return 0
	}

	var sapc float64
	if yBg > yTxt {
		sapc = (math.Pow(yBg, apcaNormBG) - math.Pow(yTxt, apcaNormTXT)) * 1.14
	} else {
		sapc = (math.Pow(yBg, apcaRevBG) - math.Pow(yTxt, apcaRevTXT)) * 1.14
	}

	var lc float64
	if math.Abs(sapc) < apcaLoClip {
		lc = 0
	} else if sapc > 0 {
		lc = sapc - apcaScaleOffset
	} else {
		lc = sapc + apcaScaleOffset
	}

	return lc * 100
}

// AbsoluteApca returns the unsigned APCA magnitude, the form most
// accessibility guards threshold against: callers that care about reading
// direction should use ApcaLc instead.
func AbsoluteApca(textHex, bgHex string) (float64, bool) {
	lc, ok := ApcaLc(textHex, bgHex)
	if !ok {
		return 0, false
	}
	return math.Abs(lc), true
}

// AbsoluteApcaOklch is AbsoluteApca over already-parsed colors.
func AbsoluteApcaOklch(text, bg OklchColor) float64 {
	return math.Abs(ApcaLcOklch(text, bg))
}
