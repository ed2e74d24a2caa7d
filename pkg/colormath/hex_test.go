package colormath_test

import (
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

func TestToOklchRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		hex  string
	}{
		{"pure red", "#ff0000"},
		{"pure white", "#ffffff"},
		{"pure black", "#000000"},
		{"mid gray", "#808080"},
		{"brand blue", "#3b82f6"},
		{"shorthand", "#f0a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := colormath.ToOklch(tc.hex)
			if !ok {
				t.Fatalf("ToOklch(%q) failed to parse", tc.hex)
			}
			t.Logf("%s -> %+v", tc.hex, c)

			r, g, b := colormath.ToSRGB(c)
			t.Logf("round trip sRGB: %.4f %.4f %.4f", r, g, b)
		})
	}
}

func TestToOklchInvalid(t *testing.T) {
	testCases := []string{
		"",
		"not-a-color",
		"#gggggg",
		"#12345",
		"rgb(",
	}

	for _, in := range testCases {
		t.Run(in, func(t *testing.T) {
			if _, ok := colormath.ToOklch(in); ok {
				t.Errorf("ToOklch(%q) expected failure, got success", in)
			}
		})
	}
}

func TestToOklchRGBFunc(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"rgb ints", "rgb(59, 130, 246)"},
		{"rgb percents", "rgb(100%, 0%, 0%)"},
		{"rgba with alpha", "rgba(59, 130, 246, 0.5)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := colormath.ToOklch(tc.in)
			if !ok {
				t.Fatalf("ToOklch(%q) failed to parse", tc.in)
			}
			t.Logf("%s -> %+v", tc.in, c)
		})
	}
}

func TestToHexRoundTrip(t *testing.T) {
	testCases := []string{"#ff0000", "#00ff00", "#0000ff", "#808080", "#3b82f6"}

	for _, hex := range testCases {
		t.Run(hex, func(t *testing.T) {
			c, ok := colormath.ToOklch(hex)
			if !ok {
				t.Fatalf("ToOklch(%q) failed", hex)
			}
			got := colormath.ToHex(c)
			t.Logf("%s -> %+v -> %s", hex, c, got)
			if got != hex {
				t.Errorf("ToHex round trip = %s, want %s", got, hex)
			}
		})
	}
}

func TestToHexAlpha(t *testing.T) {
	c, ok := colormath.ToOklch("#ff000080")
	if !ok {
		t.Fatal("ToOklch(#ff000080) failed")
	}
	got := colormath.ToHexAlpha(c)
	t.Logf("got %s", got)
	if got != "#ff000080" {
		t.Errorf("ToHexAlpha = %s, want #ff000080", got)
	}
}

func TestNamedColors(t *testing.T) {
	c, ok := colormath.ToOklch("red")
	if !ok {
		t.Fatal("ToOklch(red) failed")
	}
	want, _ := colormath.ToOklch("#ff0000")
	if !approxColor(c, want) {
		t.Errorf("named red = %+v, want %+v", c, want)
	}
}
