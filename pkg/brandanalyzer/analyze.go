package brandanalyzer

import (
	"math"
	"strings"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
	"github.com/JaimeStill/radix-palette-gen/pkg/hueregistry"
	"github.com/JaimeStill/radix-palette-gen/pkg/refcurves"
)

const (
	chromaticThreshold       = 0.03
	lowChromaRatio           = 0.5
	highChromaRatio          = 1.3
	extremeLightnessChroma   = 0.12
	extremeLightnessGap      = 0.10
)

// AnalyzeColor classifies one brand color against the hue registry and
// reference curves for the given mode. It returns false if hex fails to
// parse.
func AnalyzeColor(hex string, mode refcurves.Mode) (ColorAnalysis, bool) {
	c, ok := colormath.ToOklch(hex)
	if !ok {
		return ColorAnalysis{}, false
	}

	isChromatic := c.C > chromaticThreshold

	opts := hueregistry.SearchOptions{}
	if isChromatic {
		opts.ExcludeNeutrals = true
	} else {
		opts.NeutralsOnly = true
	}

	match, ok := hueregistry.FindClosestSlot(c.H, opts)
	if !ok {
		return ColorAnalysis{}, false
	}

	snaps := match.Distance <= hueregistry.SnapThreshold
	hueOffset := colormath.WrapSigned(c.H, match.Slot.CanonicalHue)

	curves, _ := refcurves.Get(match.Slot.Key, mode)

	chromaRatio := 1.0
	if curves.ReferenceChromaStep9 != 0 {
		chromaRatio = c.C / curves.ReferenceChromaStep9
	}

	anchorStep := nearestLightnessStep(c.L, curves.Lightness)
	lightnessGap := math.Abs(c.L - curves.Lightness[anchorStep-1])

	reason, isOOB := classify(isChromatic, chromaRatio, snaps, c.C, lightnessGap, anchorStep)

	return ColorAnalysis{
		InputHex:            strings.ToLower(hex),
		Oklch:               c,
		MatchedSlot:         match.Slot.Key,
		Distance:            match.Distance,
		Snaps:               snaps,
		HueOffset:           hueOffset,
		ChromaRatio:         chromaRatio,
		SuggestedAnchorStep: anchorStep,
		IsOutOfBounds:       isOOB,
		OutOfBoundsReason:   reason,
		LightnessGap:        lightnessGap,
	}, true
}

// classify applies the fixed precedence: low-chroma > high-chroma >
// hue-gap > extreme-lightness. The first applicable reason wins.
func classify(isChromatic bool, chromaRatio float64, snaps bool, absoluteChroma, lightnessGap float64, anchorStep int) (Reason, bool) {
	if isChromatic && chromaRatio < lowChromaRatio {
		return ReasonLowChroma, true
	}
	if isChromatic && chromaRatio > highChromaRatio {
		return ReasonHighChroma, true
	}
	if isChromatic && !snaps {
		return ReasonHueGap, true
	}
	if absoluteChroma > extremeLightnessChroma && (lightnessGap > extremeLightnessGap || isExtremeStep(anchorStep)) {
		return ReasonExtremeLightness, true
	}
	return "", false
}

func isExtremeStep(step int) bool {
	return step == 1 || step == 2 || step == 3 || step == 12
}

// nearestLightnessStep returns the 1-based step whose curve lightness is
// closest to l.
func nearestLightnessStep(l float64, curve [12]float64) int {
	best := 0
	bestDist := math.Abs(l - curve[0])
	for i := 1; i < 12; i++ {
		d := math.Abs(l - curve[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best + 1
}
