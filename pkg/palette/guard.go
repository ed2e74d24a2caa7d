package palette

import (
	"github.com/JaimeStill/radix-palette-gen/pkg/brandanalyzer"
	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

// APCA thresholds, in Lc.
const (
	BodyText   = 75.0
	LargeText  = 60.0
	Decorative = 45.0
)

const (
	boostStep     = 0.01
	boostMaxIters = 50
)

// EnsureAccessibility runs the APCA contrast guard over a palette,
// boosting step 11 (large text) against steps 1 and 2, and step 12 (body
// text) against steps 1 and 2, in both modes. It never mutates a step
// that holds an exact brand anchor. Idempotent: a second call is a no-op
// because a step already meeting its threshold is left untouched.
func EnsureAccessibility(p Palette) Palette {
	anchorSteps := anchoredSteps(p.Meta.TuningProfile)

	p.Light = boostMode(p.Light, anchorSteps)
	p.Dark = boostMode(p.Dark, anchorSteps)
	return p
}

// anchoredSteps maps slot/row key to the step holding its exact brand
// anchor, so the guard never mutates it.
func anchoredSteps(tp brandanalyzer.TuningProfile) map[string]int {
	out := make(map[string]int, len(tp.Anchors))
	for _, a := range tp.Anchors {
		out[a.Info.Slot] = a.Info.Step
	}
	return out
}

func boostMode(m ModePalette, anchorSteps map[string]int) ModePalette {
	for i, entry := range m.Entries {
		scale := entry.Scale
		protected := anchorSteps[entry.Key]

		if protected != 11 {
			scale = boostStepAway(scale, 10, LargeText)
		}
		if protected != 12 {
			scale = boostStepAway(scale, 11, BodyText)
		}

		m.Entries[i].Scale = scale
	}
	return m
}

// boostStepAway moves the lightness of scale[stepIdx] away from the
// scale's background steps (1 and 2) until its APCA magnitude against
// both meets threshold, or the iteration cap is reached. Chroma and hue
// are preserved.
func boostStepAway(scale Scale, stepIdx int, threshold float64) Scale {
	bg1 := scale[0]
	bg2 := scale[1]

	for iter := 0; iter < boostMaxIters; iter++ {
		text := scale[stepIdx]
		lc1, ok1 := colormath.AbsoluteApca(text, bg1)
		lc2, ok2 := colormath.AbsoluteApca(text, bg2)
		if !ok1 || !ok2 {
			return scale
		}
		if lc1 >= threshold && lc2 >= threshold {
			return scale
		}

		textColor, ok := colormath.ToOklch(text)
		if !ok {
			return scale
		}
		bg1Color, ok := colormath.ToOklch(bg1)
		if !ok {
			return scale
		}

		delta := boostStep
		if textColor.L < bg1Color.L {
			delta = -boostStep
		}

		newL := textColor.L + delta
		if newL < 0 {
			newL = 0
		}
		if newL > 1 {
			newL = 1
		}

		updated := colormath.Clamp(colormath.New(newL, textColor.C, textColor.H))
		scale[stepIdx] = colormath.ToHex(updated)

		if newL == 0 || newL == 1 {
			break
		}
	}

	return scale
}
