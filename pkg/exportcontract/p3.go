package exportcontract

import (
	"fmt"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

// P3Scale is a 12-step scale of CSS color(display-p3 ...) strings, emitted
// alongside the sRGB hex scale for wide-gamut displays.
type P3Scale [12]string

// OutOfSRGBGamut marks which steps needed gamut mapping to fit sRGB; P3
// can render these with no clipping, so emitters may prefer the P3
// variant for these specific steps even on a display that supports both.
type OutOfSRGBGamut [12]bool

// DeriveP3Scale converts each step to a Display P3 color() string and
// reports which steps were out of the sRGB gamut before clamping.
func DeriveP3Scale(scale [12]string) (P3Scale, OutOfSRGBGamut, error) {
	var p3 P3Scale
	var outOfGamut OutOfSRGBGamut

	for i, hex := range scale {
		c, ok := colormath.ToOklch(hex)
		if !ok {
			return P3Scale{}, OutOfSRGBGamut{}, fmt.Errorf("exportcontract: invalid step %d hex %q", i+1, hex)
		}
		p3[i] = colormath.ToP3Hex(c)
		outOfGamut[i] = colormath.IsOutOfSRGBGamut(c)
	}
	return p3, outOfGamut, nil
}
