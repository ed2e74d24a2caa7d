package brandanalyzer

import (
	"fmt"

	"github.com/JaimeStill/radix-palette-gen/pkg/errors"
	"github.com/JaimeStill/radix-palette-gen/pkg/refcurves"
	"go.uber.org/multierr"
)

const (
	maxBrandColors     = 7
	chromaMultMin      = 0.5
	chromaMultMax      = 1.3
	lightnessShiftBase = 0.65
)

// AnalyzeBrandColors classifies every input color and derives a global
// TuningProfile. Invalid entries are silently dropped; more than 7 colors
// is truncated to the first 7. Both are reported as non-fatal warnings in
// the returned error (nil if there were none), never as a failure of the
// call itself.
func AnalyzeBrandColors(colors []string, mode refcurves.Mode) (TuningProfile, error) {
	var warnings error

	if len(colors) > maxBrandColors {
		warnings = multierr.Append(warnings, errors.ErrTooManyBrandColors)
		colors = colors[:maxBrandColors]
	}

	analyses := make([]ColorAnalysis, 0, len(colors))
	for i, hex := range colors {
		a, ok := AnalyzeColor(hex, mode)
		if !ok {
			warnings = multierr.Append(warnings, &errors.HexParseError{Input: hex, Index: i})
			continue
		}
		analyses = append(analyses, a)
	}

	if len(analyses) == 0 {
		return DefaultProfile(), warnings
	}

	profile := TuningProfile{
		ChromaMultiplier: 1,
	}

	var hueSum float64
	var hueCount int
	var chromaSum float64
	var chromaCount int
	var lSum float64

	rowKeyCounts := make(map[string]int)

	for _, a := range analyses {
		lSum += a.Oklch.L

		isChromatic := a.Oklch.C > chromaticThreshold
		if isChromatic {
			clamped := clamp(a.ChromaRatio, chromaMultMin, chromaMultMax)
			chromaSum += clamped
			chromaCount++
		}

		if !a.IsOutOfBounds {
			if isChromatic && a.Snaps {
				hueSum += a.HueOffset
				hueCount++
			}
			profile.Anchors = append(profile.Anchors, AnchorEntry{
				Hex: a.InputHex,
				Info: AnchorInfo{
					Slot: a.MatchedSlot,
					Step: a.SuggestedAnchorStep,
				},
			})
			continue
		}

		rowKey := nextRowKey(rowKeyCounts, rowKeyPrefix(a), a.MatchedSlot)
		hueDistance := a.Distance

		row := CustomRowInfo{
			RowKey:      rowKey,
			OriginalHex: a.InputHex,
			Oklch:       a.Oklch,
			ChromaRatio: a.ChromaRatio,
			Reason:      a.OutOfBoundsReason,
			NearestSlot: a.MatchedSlot,
			AnchorStep:  a.SuggestedAnchorStep,
			HueAngle:    a.Oklch.H,
			HueDistance: &hueDistance,
		}
		profile.CustomRows = append(profile.CustomRows, row)

		profile.Anchors = append(profile.Anchors, AnchorEntry{
			Hex: a.InputHex,
			Info: AnchorInfo{
				Slot:        rowKey,
				Step:        a.SuggestedAnchorStep,
				IsCustomRow: true,
			},
		})
	}

	if hueCount > 0 {
		profile.HueShift = hueSum / float64(hueCount)
	}
	if chromaCount > 0 {
		profile.ChromaMultiplier = chromaSum / float64(chromaCount)
	}
	profile.LightnessShift = lSum/float64(len(analyses)) - lightnessShiftBase

	return profile, warnings
}

func rowKeyPrefix(a ColorAnalysis) string {
	switch a.OutOfBoundsReason {
	case ReasonLowChroma:
		return "pastel"
	case ReasonHighChroma:
		return "neon"
	case ReasonHueGap:
		return "custom"
	case ReasonExtremeLightness:
		if a.Oklch.L > 0.5 {
			return "bright"
		}
		return "dark"
	default:
		return "custom"
	}
}

func nextRowKey(counts map[string]int, prefix, nearestSlot string) string {
	base := fmt.Sprintf("%s-%s", prefix, nearestSlot)
	n := counts[base]
	counts[base] = n + 1

	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n+1)
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
