package exportcontract_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/exportcontract"
	"github.com/JaimeStill/radix-palette-gen/pkg/palette"
)

func TestDeriveAlphaScaleLightMode(t *testing.T) {
	p, err := palette.GeneratePalette(nil, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scale, _ := p.Light.Get("blue")

	alpha, err := exportcontract.DeriveAlphaScale(scale, "light")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range alpha {
		t.Logf("step %d: %s", i+1, s)
		if !strings.HasPrefix(s, "rgba(0, 0, 0,") {
			t.Errorf("step %d: expected black-based rgba in light mode, got %s", i+1, s)
		}
	}
}

func TestDeriveAlphaScaleDarkMode(t *testing.T) {
	p, err := palette.GeneratePalette(nil, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scale, _ := p.Dark.Get("blue")

	alpha, err := exportcontract.DeriveAlphaScale(scale, "dark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range alpha {
		t.Logf("step %d: %s", i+1, s)
		if !strings.HasPrefix(s, "rgba(255, 255, 255,") {
			t.Errorf("step %d: expected white-based rgba in dark mode, got %s", i+1, s)
		}
	}
}

func TestDeriveAlphaScaleInvalidHex(t *testing.T) {
	var scale palette.Scale
	scale[0] = "not-a-color"
	if _, err := exportcontract.DeriveAlphaScale(scale, "light"); err == nil {
		t.Error("expected error for invalid hex")
	}
}
