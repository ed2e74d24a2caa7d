package palette

import (
	"math"

	"github.com/JaimeStill/radix-palette-gen/pkg/brandanalyzer"
	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
	"github.com/JaimeStill/radix-palette-gen/pkg/hueregistry"
	"github.com/JaimeStill/radix-palette-gen/pkg/refcurves"
	"github.com/JaimeStill/radix-palette-gen/pkg/scalesynth"
	"go.uber.org/multierr"
)

const (
	chromaMultNeutralMax = 1.0
	chromaMultLo         = 0.5
	chromaMultHi         = 1.3
)

// Analyze runs brand color analysis in the given mode. Exposed separately
// from GeneratePalette so a caller can inspect or reuse the TuningProfile
// across both modes.
func Analyze(brandColors []string, mode refcurves.Mode) (brandanalyzer.TuningProfile, error) {
	return brandanalyzer.AnalyzeBrandColors(brandColors, mode)
}

// GeneratePalette produces the complete light+dark palette for a brand
// color set. If profile is nil, it is computed from brandColors using
// light-mode classification; the same anchors and global tuning then
// drive both mode assemblies, matching how a single brand set governs
// one semantic palette regardless of which mode is being rendered.
func GeneratePalette(brandColors []string, profile *brandanalyzer.TuningProfile, generatedAt string) (Palette, error) {
	var warnings error

	var tp brandanalyzer.TuningProfile
	if profile != nil {
		tp = *profile
	} else {
		var err error
		tp, err = Analyze(brandColors, refcurves.Light)
		warnings = multierr.Append(warnings, err)
	}

	light, anchoredLight, customLight, err := assembleMode(tp, refcurves.Light)
	warnings = multierr.Append(warnings, err)

	dark, _, _, err := assembleMode(tp, refcurves.Dark)
	warnings = multierr.Append(warnings, err)

	return Palette{
		Light: light,
		Dark:  dark,
		Meta: Meta{
			TuningProfile: tp,
			InputColors:   brandColors,
			GeneratedAt:   generatedAt,
			AnchoredSlots: anchoredLight,
			CustomSlots:   customLight,
		},
	}, warnings
}

// assembleMode builds one mode's ModePalette: every baseline slot, then
// every custom row.
func assembleMode(tp brandanalyzer.TuningProfile, mode refcurves.Mode) (ModePalette, []string, []string, error) {
	var out ModePalette
	var warnings error

	slotToAnchor := make(map[string]brandanalyzer.AnchorEntry, len(tp.Anchors))
	for _, a := range tp.Anchors {
		if !a.Info.IsCustomRow {
			slotToAnchor[a.Info.Slot] = a
		}
	}

	var anchoredSlots []string

	for _, slot := range hueregistry.All() {
		curves, ok := refcurves.Get(slot.Key, mode)
		if !ok {
			continue
		}

		var parentHex string
		var anchorStep int
		var useFullCurve bool
		var isAnchor bool

		if entry, ok := slotToAnchor[slot.Key]; ok {
			parentHex = entry.Hex
			anchorStep = entry.Info.Step
			useFullCurve = false
			isAnchor = true
			anchoredSlots = append(anchoredSlots, slot.Key)
		} else {
			baseHue := slot.CanonicalHue
			if mode == refcurves.Dark {
				baseHue = curves.Hue[8]
			}

			hue := baseHue
			isNeutral := hueregistry.IsNeutral(slot.Key)
			if !isNeutral {
				hue = baseHue + tp.HueShift
			}

			chromaMult := tp.ChromaMultiplier
			if isNeutral {
				chromaMult = math.Min(chromaMult, chromaMultNeutralMax)
			} else {
				chromaMult = clamp(chromaMult, chromaMultLo, chromaMultHi)
			}

			parent := colormath.Clamp(colormath.New(curves.Lightness[8], curves.ReferenceChromaStep9*chromaMult, hue))
			parentHex = colormath.ToHex(parent)
			anchorStep = 9
			useFullCurve = true
		}

		result, err := scalesynth.Synthesize(scalesynth.Input{
			ParentColor:  parentHex,
			AnchorStep:   anchorStep,
			HueKey:       slot.Key,
			UseFullCurve: useFullCurve,
			GlobalTuning: &scalesynth.GlobalTuning{HueShift: tp.HueShift, ChromaMultiplier: tp.ChromaMultiplier},
			Mode:         mode,
		})
		if err != nil {
			warnings = multierr.Append(warnings, err)
			continue
		}

		scale := result.Scale
		if isAnchor {
			scale[anchorStep-1] = parentHex
		}
		out.set(slot.Key, scale)
	}

	customSlots := appendCustomRows(&out, tp, mode, &anchoredSlots, &warnings)

	return out, anchoredSlots, customSlots, warnings
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
