package palette_test

import (
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/hueregistry"
	"github.com/JaimeStill/radix-palette-gen/pkg/palette"
	"github.com/JaimeStill/radix-palette-gen/pkg/refcurves"
)

func TestGeneratePaletteEmptyBrandColors(t *testing.T) {
	p, err := palette.GeneratePalette(nil, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("light entries = %d dark entries = %d", len(p.Light.Entries), len(p.Dark.Entries))

	if len(p.Light.Entries) != 31 {
		t.Errorf("expected 31 light slots, got %d", len(p.Light.Entries))
	}
	if len(p.Dark.Entries) != 31 {
		t.Errorf("expected 31 dark slots, got %d", len(p.Dark.Entries))
	}

	for _, slot := range hueregistry.Order {
		scale, ok := p.Light.Get(slot)
		if !ok {
			t.Fatalf("missing light scale for %s", slot)
		}
		for i, hex := range scale {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s step %d: invalid hex %q", slot, i+1, hex)
			}
		}
	}
}

func TestGeneratePaletteAnchorsExactBrandHex(t *testing.T) {
	p, err := palette.GeneratePalette([]string{"#ff6a00"}, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("anchors = %+v", p.Meta.TuningProfile.Anchors)

	if len(p.Meta.TuningProfile.Anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(p.Meta.TuningProfile.Anchors))
	}
	anchor := p.Meta.TuningProfile.Anchors[0]
	scale, ok := p.Light.Get(anchor.Info.Slot)
	if !ok {
		t.Fatalf("missing scale for anchored slot %s", anchor.Info.Slot)
	}
	t.Logf("anchor=%+v scale[%d]=%s", anchor, anchor.Info.Step, scale[anchor.Info.Step-1])

	if scale[anchor.Info.Step-1] != anchor.Hex {
		t.Errorf("expected scale[%d] == %s, got %s", anchor.Info.Step, anchor.Hex, scale[anchor.Info.Step-1])
	}
}

func TestGeneratePaletteCustomRowsAppended(t *testing.T) {
	p, err := palette.GeneratePalette([]string{"#FFD1DC"}, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("customSlots = %v", p.Meta.CustomSlots)

	if len(p.Meta.CustomSlots) == 0 {
		t.Fatal("expected at least one custom row")
	}
	for _, key := range p.Meta.CustomSlots {
		if _, ok := p.Light.Get(key); !ok {
			t.Errorf("expected scale for custom row %s", key)
		}
	}
}

func TestCustomSlotsAreSubsetOfAnchoredSlots(t *testing.T) {
	p, _ := palette.GeneratePalette([]string{"#FFD1DC", "#39FF14"}, nil, "2026-07-31T00:00:00Z")
	anchored := make(map[string]bool, len(p.Meta.AnchoredSlots))
	for _, k := range p.Meta.AnchoredSlots {
		anchored[k] = true
	}
	for _, k := range p.Meta.CustomSlots {
		if !anchored[k] {
			t.Errorf("custom slot %s not present in anchoredSlots", k)
		}
	}
}

func TestAnalyzeDelegatesToBrandAnalyzer(t *testing.T) {
	profile, err := palette.Analyze([]string{"#30A46C"}, refcurves.Light)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("profile = %+v", profile)

	if len(profile.Anchors) != 1 || profile.Anchors[0].Info.Slot != "green" {
		t.Errorf("expected green anchor, got %+v", profile.Anchors)
	}
}
