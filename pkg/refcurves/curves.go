package refcurves

import (
	"math"

	"github.com/JaimeStill/radix-palette-gen/pkg/hueregistry"
)

// Mode selects which of the two reference curve sets a slot's scale is
// synthesized against.
type Mode int

const (
	Light Mode = iota
	Dark
)

// Curves is one slot's generated reference data for one mode.
type Curves struct {
	Lightness            [12]float64
	ChromaRatio           [12]float64
	Hue                   [12]float64
	ReferenceChromaStep9  float64
}

const (
	lightLMax = 0.995
	lightLMin = 0.145
	darkLMin  = 0.125
	darkLMax  = 0.93
	brightBump = 0.018
)

var (
	lightCurves map[string]Curves
	darkCurves  map[string]Curves
)

func init() {
	lightCurves = make(map[string]Curves, len(hueregistry.Order))
	darkCurves = make(map[string]Curves, len(hueregistry.Order))

	for _, slot := range hueregistry.All() {
		bright := hueregistry.IsBright(slot.Key)
		lightCurves[slot.Key] = buildCurves(slot, Light, bright)
		darkCurves[slot.Key] = buildCurves(slot, Dark, bright)
	}
}

// Get returns the reference curves for a slot in the given mode.
func Get(slotKey string, mode Mode) (Curves, bool) {
	var table map[string]Curves
	if mode == Dark {
		table = darkCurves
	} else {
		table = lightCurves
	}
	c, ok := table[slotKey]
	return c, ok
}

func buildCurves(slot hueregistry.Slot, mode Mode, bright bool) Curves {
	var c Curves

	for i := 0; i < 12; i++ {
		t := float64(i) / 11.0

		var l float64
		if mode == Light {
			l = lightLMax - (lightLMax-lightLMin)*math.Pow(t, 1.12)
		} else {
			l = darkLMin + (darkLMax-darkLMin)*math.Pow(t, 0.92)
		}
		c.Lightness[i] = l
	}

	if bright {
		if mode == Light {
			c.Lightness[8] = c.Lightness[7] + brightBump
		} else {
			c.Lightness[8] = c.Lightness[7] - brightBump
		}
	}

	raw := make([]float64, 12)
	for i := 0; i < 12; i++ {
		// chroma peaks near step 9 (index 8) and tapers toward both ends,
		// with a slightly longer taper into the light/dark extremes where
		// sRGB gamut pressure is highest.
		d := float64(i-8) / 8.0
		raw[i] = math.Exp(-2.1 * d * d)
	}
	anchor := raw[8]
	for i := 0; i < 12; i++ {
		c.ChromaRatio[i] = raw[i] / anchor
	}

	for i := 0; i < 12; i++ {
		// Hue drift: Radix scales drift a few degrees at the extremes,
		// pivoting around step 9 where the slot's canonical angle holds.
		d := float64(i-8) / 8.0
		drift := 4.5 * d
		c.Hue[i] = wrapDeg(slot.CanonicalHue + drift)
	}

	refChroma := slot.ReferenceChroma
	if mode == Dark {
		refChroma *= 0.95
	}
	c.ReferenceChromaStep9 = refChroma

	return c
}

func wrapDeg(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
