package colormath_test

import (
	"math"
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

func TestApcaLcPolarity(t *testing.T) {
	testCases := []struct {
		name     string
		text, bg string
		wantSign int
	}{
		{"black on white is positive", "#000000", "#ffffff", 1},
		{"white on black is negative", "#ffffff", "#000000", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lc, ok := colormath.ApcaLc(tc.text, tc.bg)
			if !ok {
				t.Fatalf("ApcaLc(%q, %q) failed to parse", tc.text, tc.bg)
			}
			t.Logf("Lc(%s on %s) = %.2f", tc.text, tc.bg, lc)

			if tc.wantSign > 0 && lc <= 0 {
				t.Errorf("expected positive Lc, got %v", lc)
			}
			if tc.wantSign < 0 && lc >= 0 {
				t.Errorf("expected negative Lc, got %v", lc)
			}
		})
	}
}

func TestApcaLcMaxContrast(t *testing.T) {
	lc, ok := colormath.ApcaLc("#000000", "#ffffff")
	if !ok {
		t.Fatal("ApcaLc failed to parse")
	}
	t.Logf("black-on-white Lc = %.2f", lc)

	if lc < 100 || lc > 110 {
		t.Errorf("expected black-on-white Lc near 106, got %v", lc)
	}
}

func TestApcaLcIdenticalColorsNearZero(t *testing.T) {
	lc, ok := colormath.ApcaLc("#888888", "#888888")
	if !ok {
		t.Fatal("ApcaLc failed to parse")
	}
	t.Logf("identical-color Lc = %.4f", lc)

	if lc < -0.5 || lc > 0.5 {
		t.Errorf("expected near-zero Lc for identical colors, got %v", lc)
	}
}

func TestAbsoluteApcaIsUnsigned(t *testing.T) {
	pos, ok := colormath.AbsoluteApca("#000000", "#ffffff")
	if !ok {
		t.Fatal("AbsoluteApca failed to parse")
	}
	neg, ok := colormath.AbsoluteApca("#ffffff", "#000000")
	if !ok {
		t.Fatal("AbsoluteApca failed to parse")
	}
	t.Logf("pos=%.2f neg=%.2f", pos, neg)

	signedPos, _ := colormath.ApcaLc("#000000", "#ffffff")
	signedNeg, _ := colormath.ApcaLc("#ffffff", "#000000")
	if pos < 0 || !approx(pos, math.Abs(signedPos), 1e-9) {
		t.Errorf("AbsoluteApca(black, white) = %v, want |%v|", pos, signedPos)
	}
	if neg < 0 || !approx(neg, math.Abs(signedNeg), 1e-9) {
		t.Errorf("AbsoluteApca(white, black) = %v, want |%v|", neg, signedNeg)
	}
}

func TestApcaLcMonotoneWithLightnessGap(t *testing.T) {
	bg := "#ffffff"
	grays := []string{"#cccccc", "#999999", "#666666", "#333333", "#000000"}

	prev := -1.0
	for _, g := range grays {
		lc, ok := colormath.AbsoluteApca(g, bg)
		if !ok {
			t.Fatalf("AbsoluteApca(%q, %q) failed", g, bg)
		}
		t.Logf("%s on %s -> Lc=%.2f", g, bg, lc)

		if lc < prev {
			t.Errorf("expected monotone increasing contrast as text darkens, %s gave %.2f after %.2f", g, lc, prev)
		}
		prev = lc
	}
}

func TestApcaLcInvalidInput(t *testing.T) {
	if _, ok := colormath.ApcaLc("not-a-color", "#ffffff"); ok {
		t.Error("expected failure for invalid text color")
	}
	if _, ok := colormath.ApcaLc("#000000", "not-a-color"); ok {
		t.Error("expected failure for invalid background color")
	}
}
