package brandanalyzer

import "github.com/JaimeStill/radix-palette-gen/pkg/colormath"

// Reason is a closed enumeration of why a color falls out of the standard
// 31-slot anchoring and becomes a custom row.
type Reason string

const (
	ReasonLowChroma        Reason = "low-chroma"
	ReasonHighChroma       Reason = "high-chroma"
	ReasonHueGap           Reason = "hue-gap"
	ReasonExtremeLightness Reason = "extreme-lightness"
)

// ColorAnalysis is the result of analyzing one brand color against the
// hue registry and reference curves for a given mode.
type ColorAnalysis struct {
	InputHex            string
	Oklch               colormath.OklchColor
	MatchedSlot         string
	Distance            float64
	Snaps               bool
	HueOffset           float64
	ChromaRatio         float64
	SuggestedAnchorStep int
	IsOutOfBounds       bool
	OutOfBoundsReason   Reason
	LightnessGap        float64
}

// AnchorInfo is the per-brand-color anchor record: which slot (or custom
// row) the color landed in, and at which step.
type AnchorInfo struct {
	Slot        string
	Step        int
	IsCustomRow bool
}

// AnchorEntry pairs a normalized lowercase hex with its AnchorInfo,
// preserving brand input order (the source anchors map is conceptually
// ordered; Go represents that as a slice rather than relying on map
// iteration order).
type AnchorEntry struct {
	Hex  string
	Info AnchorInfo
}

// CustomRowInfo describes a brand color materialized as its own row
// because it doesn't faithfully fit any of the 31 baseline slots.
type CustomRowInfo struct {
	RowKey      string
	OriginalHex string
	Oklch       colormath.OklchColor
	ChromaRatio float64
	Reason      Reason
	NearestSlot string
	AnchorStep  int
	HueAngle    float64
	HueDistance *float64
}

// TuningProfile is the global set of deltas derived from the brand color
// set, plus the per-color anchor and custom-row records.
type TuningProfile struct {
	HueShift         float64
	ChromaMultiplier float64
	LightnessShift   float64
	Anchors          []AnchorEntry
	CustomRows       []CustomRowInfo
}

// AnchorFor looks up the anchor record for a normalized hex, preserving
// the ordered-map-as-slice representation while still giving callers
// O(n) keyed access (n is bounded by 7 brand colors).
func (tp TuningProfile) AnchorFor(hex string) (AnchorInfo, bool) {
	for _, e := range tp.Anchors {
		if e.Hex == hex {
			return e.Info, true
		}
	}
	return AnchorInfo{}, false
}

// DefaultProfile is the identity TuningProfile produced by an empty brand
// color set: no shift, unit chroma multiplier, no lightness shift.
func DefaultProfile() TuningProfile {
	return TuningProfile{
		HueShift:         0,
		ChromaMultiplier: 1,
		LightnessShift:   0,
		Anchors:          nil,
		CustomRows:       nil,
	}
}
