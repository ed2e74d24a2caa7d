package exportcontract

import (
	"fmt"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

// AlphaScale is a 12-step scale expressed as rgba()-equivalent strings:
// each step is a single black or white source color with one alpha,
// solved against a white (light mode) or black (dark mode) base so the
// most demanding channel of the opaque step lands on target. The other
// channels of the composite can differ from the opaque step.
type AlphaScale [12]string

// DeriveAlphaScale solves each step of scale as a transparent color over
// black (dark mode) or white (light mode), the same base Radix itself
// composites against: light-mode alpha colors are black tinted toward
// transparency, dark-mode alpha colors are white tinted toward
// transparency. The alpha fraction is the largest per-channel requirement,
// so the most saturated channel lands exactly on target.
func DeriveAlphaScale(scale [12]string, mode string) (AlphaScale, error) {
	srcR, srcG, srcB := 0, 0, 0
	bgR, bgG, bgB := 255, 255, 255
	if mode == "dark" {
		srcR, srcG, srcB = 255, 255, 255
		bgR, bgG, bgB = 0, 0, 0
	}

	var out AlphaScale
	for i, hex := range scale {
		fg, ok := colormath.ToOklch(hex)
		if !ok {
			return AlphaScale{}, fmt.Errorf("exportcontract: invalid step %d hex %q", i+1, hex)
		}
		fgR, fgG, fgB := oklchToSRGB255(fg)

		alpha := requiredAlpha(fgR, bgR, srcR)
		if a := requiredAlpha(fgG, bgG, srcG); a > alpha {
			alpha = a
		}
		if a := requiredAlpha(fgB, bgB, srcB); a > alpha {
			alpha = a
		}
		if alpha > 1 {
			alpha = 1
		}

		out[i] = fmt.Sprintf("rgba(%d, %d, %d, %.3f)", srcR, srcG, srcB, alpha)
	}
	return out, nil
}

// requiredAlpha solves `out = a*src + (1-a)*bg` for a, given one channel's
// target, background, and fixed source value.
func requiredAlpha(out, bg, src int) float64 {
	if src == bg {
		return 0
	}
	return float64(bg-out) / float64(bg-src)
}

func oklchToSRGB255(c colormath.OklchColor) (r, g, b int) {
	rf, gf, bf := colormath.ToSRGB(colormath.Clamp(c))
	return int(rf*255 + 0.5), int(gf*255 + 0.5), int(bf*255 + 0.5)
}
