package scalesynth

import "github.com/JaimeStill/radix-palette-gen/pkg/refcurves"

// Scale is a 12-step hue scale; index 0 holds step 1, index 11 holds step
// 12, each a lowercase "#rrggbb" string.
type Scale [12]string

// GlobalTuning is the subset of a TuningProfile that ScaleSynthesizer
// consumes: the brand set's overall hue shift and chroma multiplier, used
// to preserve uniform brand character even on anchors that individually
// look nearly-Radix.
type GlobalTuning struct {
	HueShift         float64
	ChromaMultiplier float64
}

// Input is everything one call to Synthesize needs.
type Input struct {
	ParentColor  string
	AnchorStep   int
	HueKey       string
	UseFullCurve bool
	GlobalTuning *GlobalTuning
	Mode         refcurves.Mode
}

// Result is the synthesized scale plus informational APCA contrast of
// each step against the mode's background, for diagnostics.
type Result struct {
	Scale            Scale
	ApcaVsBackground [12]float64
	NearlyRadix      bool
}
