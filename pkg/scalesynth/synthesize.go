package scalesynth

import (
	"math"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
	"github.com/JaimeStill/radix-palette-gen/pkg/errors"
	"github.com/JaimeStill/radix-palette-gen/pkg/refcurves"
)

const (
	nearlyRadixHueWindow    = 3.0
	nearlyRadixChromaLow    = 0.90
	nearlyRadixChromaHigh   = 1.10
	dampeningFloor          = 0.3
	dampeningExponent       = 1.5
)

const (
	lightBackground = "#ffffff"
	darkBackground  = "#111111"
)

// Synthesize generates a 12-step Scale per the nearly-Radix short circuit,
// chroma curve adjustment, and per-step dampened propagation. An invalid
// ParentColor is a programmer-level precondition violation and fails
// loudly; every other step is total.
func Synthesize(in Input) (Result, error) {
	parent, ok := colormath.ToOklch(in.ParentColor)
	if !ok {
		return Result{}, &errors.ScaleSynthesisError{
			SlotKey: in.HueKey,
			Mode:    modeName(in.Mode),
			Err:     errors.ErrInvalidParentColor,
		}
	}

	curves, ok := refcurves.Get(in.HueKey, in.Mode)
	if !ok {
		return Result{}, &errors.ScaleSynthesisError{
			SlotKey: in.HueKey,
			Mode:    modeName(in.Mode),
			Err:     errors.ErrNoReferenceCurves,
		}
	}

	background := lightBackground
	if in.Mode == refcurves.Dark {
		background = darkBackground
	}

	lCurve := curves.Lightness
	hCurve := curves.Hue
	refC := curves.ReferenceChromaStep9

	radixAnchorHue := hCurve[in.AnchorStep-1]
	hueOffset := colormath.WrapSigned(parent.H, radixAnchorHue)

	chromaDeparture := 1.0
	if refC != 0 {
		chromaDeparture = parent.C / refC
	}

	effectiveHueOffset := hueOffset
	effectiveChromaDeparture := chromaDeparture
	nearlyRadix := false

	if !in.UseFullCurve {
		hueOffsetFromStep9 := colormath.WrapSigned(parent.H, hCurve[8])
		if math.Abs(hueOffsetFromStep9) < nearlyRadixHueWindow &&
			chromaDeparture >= nearlyRadixChromaLow && chromaDeparture <= nearlyRadixChromaHigh {
			nearlyRadix = true

			if in.GlobalTuning != nil && math.Abs(in.GlobalTuning.HueShift) > math.Abs(hueOffsetFromStep9) {
				effectiveHueOffset = in.GlobalTuning.HueShift
				effectiveChromaDeparture = in.GlobalTuning.ChromaMultiplier
			} else {
				effectiveHueOffset = 0
				effectiveChromaDeparture = 1.0
			}
		}
	}

	adjustedChromaCurve := curves.ChromaRatio
	if !in.UseFullCurve && !nearlyRadix {
		anchorRatio := curves.ChromaRatio[in.AnchorStep-1]
		if anchorRatio != 0 {
			var adj [12]float64
			for i := 0; i < 12; i++ {
				adj[i] = curves.ChromaRatio[i] / anchorRatio
			}
			adjustedChromaCurve = adj
		}
	}

	maxD := math.Max(float64(in.AnchorStep-1), float64(12-in.AnchorStep))

	var result Result
	result.NearlyRadix = nearlyRadix

	for i := 0; i < 12; i++ {
		step := i + 1

		d := math.Abs(float64(step - in.AnchorStep))
		t := 0.0
		if maxD > 0 {
			t = d / maxD
		}
		f := 1 - math.Pow(t, dampeningExponent)*(1-dampeningFloor)

		dampenedChromaDeparture := 1 + (effectiveChromaDeparture-1)*f
		chroma := refC * dampenedChromaDeparture * adjustedChromaCurve[i]

		// H_curve is always populated (reference curves are generated for
		// every slot), so the fallback-to-parent.H branch never triggers.
		hue := math.Mod(hCurve[i]+effectiveHueOffset*f+360, 360)

		useParentL := !in.UseFullCurve && step == in.AnchorStep && !nearlyRadix
		lightness := lCurve[i]
		if useParentL {
			lightness = parent.L
		}

		c := colormath.Clamp(colormath.New(lightness, chroma, hue))
		hex := colormath.ToHex(c)
		result.Scale[i] = hex

		apca, _ := colormath.AbsoluteApca(hex, background)
		result.ApcaVsBackground[i] = apca
	}

	return result, nil
}

func modeName(mode refcurves.Mode) string {
	if mode == refcurves.Dark {
		return "dark"
	}
	return "light"
}
