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

// appendCustomRows synthesizes a Scale for each CustomRowInfo and adds it
// to out, returning the list of custom-row keys. Both anchoredSlots and
// customSlots receive the row key, preserving the invariant that
// customSlots is a subset of anchoredSlots.
func appendCustomRows(out *ModePalette, tp brandanalyzer.TuningProfile, mode refcurves.Mode, anchoredSlots *[]string, warnings *error) []string {
	var customSlots []string

	for _, row := range tp.CustomRows {
		curveSlotKey := row.NearestSlot
		anchorStep := row.AnchorStep

		applyHueShift := row.Reason == brandanalyzer.ReasonHighChroma

		if row.Reason == brandanalyzer.ReasonHighChroma && hueregistry.IsBright(curveSlotKey) {
			exclude := map[string]bool{curveSlotKey: true}
			for key := range hueregistry.BrightHues {
				exclude[key] = true
			}
			match, ok := hueregistry.FindClosestExcluding(row.Oklch.H, hueregistry.SearchOptions{ExcludeNeutrals: true}, exclude)
			if ok {
				curveSlotKey = match.Slot.Key
			}
		}

		curves, ok := refcurves.Get(curveSlotKey, mode)
		if !ok {
			continue
		}

		if curveSlotKey != row.NearestSlot {
			anchorStep = nearestStep(row.Oklch.L, curves.Lightness)
		}

		hue := row.Oklch.H
		if applyHueShift {
			hue += tp.HueShift
		}

		parent := colormath.OklchColor{
			L:     curves.Lightness[anchorStep-1],
			C:     row.Oklch.C,
			H:     hue,
			Alpha: 1,
		}
		parentHex := colormath.ToHex(colormath.Clamp(parent))

		var globalTuning *scalesynth.GlobalTuning
		if applyHueShift {
			globalTuning = &scalesynth.GlobalTuning{HueShift: tp.HueShift, ChromaMultiplier: tp.ChromaMultiplier}
		}

		result, err := scalesynth.Synthesize(scalesynth.Input{
			ParentColor:  parentHex,
			AnchorStep:   anchorStep,
			HueKey:       curveSlotKey,
			UseFullCurve: false,
			GlobalTuning: globalTuning,
			Mode:         mode,
		})
		if err != nil {
			*warnings = multierr.Append(*warnings, err)
			continue
		}

		scale := result.Scale
		scale[anchorStep-1] = row.OriginalHex
		out.set(row.RowKey, scale)

		*anchoredSlots = append(*anchoredSlots, row.RowKey)
		customSlots = append(customSlots, row.RowKey)
	}

	return customSlots
}

func nearestStep(l float64, curve [12]float64) int {
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
