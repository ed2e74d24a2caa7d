package colormath_test

import (
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		name string
		in   colormath.OklchColor
		want colormath.OklchColor
	}{
		{
			name: "in range unchanged",
			in:   colormath.New(0.5, 0.1, 180),
			want: colormath.New(0.5, 0.1, 180),
		},
		{
			name: "lightness clamps to 0 and 1",
			in:   colormath.New(1.5, 0.1, 10),
			want: colormath.New(1.0, 0.1, 10),
		},
		{
			name: "negative chroma floors to 0",
			in:   colormath.New(0.5, -0.2, 10),
			want: colormath.New(0.5, 0, 10),
		},
		{
			name: "hue wraps above 360",
			in:   colormath.New(0.5, 0.1, 370),
			want: colormath.New(0.5, 0.1, 10),
		},
		{
			name: "hue wraps below 0",
			in:   colormath.New(0.5, 0.1, -30),
			want: colormath.New(0.5, 0.1, 330),
		},
		{
			name: "alpha zero preserved, not forced opaque",
			in:   colormath.NewWithAlpha(0.5, 0.1, 10, 0),
			want: colormath.NewWithAlpha(0.5, 0.1, 10, 0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := colormath.Clamp(tc.in)
			t.Logf("in=%+v want=%+v got=%+v", tc.in, tc.want, got)

			if !approxColor(got, tc.want) {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsAchromatic(t *testing.T) {
	testCases := []struct {
		name string
		c    colormath.OklchColor
		want bool
	}{
		{"zero chroma", colormath.New(0.5, 0, 0), true},
		{"tiny chroma", colormath.New(0.5, 1e-8, 0), true},
		{"visible chroma", colormath.New(0.5, 0.05, 0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.c.IsAchromatic()
			if got != tc.want {
				t.Errorf("IsAchromatic(%+v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestAngularDistance(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 10, 10, 0},
		{"simple difference", 10, 40, 30},
		{"wraps across zero", 350, 10, 20},
		{"opposite", 0, 180, 180},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := colormath.AngularDistance(tc.a, tc.b)
			if !approx(got, tc.want, 1e-9) {
				t.Errorf("AngularDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestWrapSigned(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"a ahead of b", 40, 10, 30},
		{"a behind b", 10, 40, -30},
		{"wraps positive", 10, 350, 20},
		{"wraps negative", 350, 10, -20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := colormath.WrapSigned(tc.a, tc.b)
			if !approx(got, tc.want, 1e-9) {
				t.Errorf("WrapSigned(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func approxColor(a, b colormath.OklchColor) bool {
	const eps = 1e-9
	return approx(a.L, b.L, eps) && approx(a.C, b.C, eps) && approx(a.H, b.H, eps) && approx(a.Alpha, b.Alpha, eps)
}
