package main

import (
	"fmt"

	"github.com/JaimeStill/radix-palette-gen/pkg/exportcontract"
	"github.com/JaimeStill/radix-palette-gen/pkg/palette"
)

func main() {
	fmt.Println("=== Radix Palette Generator - Synthesis Walkthrough ===")

	// Test 1: Radix-equivalent palette from an empty brand set
	fmt.Println("\nTest 1: Empty Brand Set")
	empty, err := palette.GeneratePalette(nil, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		fmt.Printf("unexpected error: %v\n", err)
		return
	}
	green, _ := empty.Light.Get("green")
	fmt.Printf("green scale (light): %v\n", green)

	// Test 2: Single brand anchor
	fmt.Println("\nTest 2: Brand Anchor")
	branded, err := palette.GeneratePalette([]string{"#FF6A00"}, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		fmt.Printf("unexpected error: %v\n", err)
		return
	}
	for _, a := range branded.Meta.TuningProfile.Anchors {
		fmt.Printf("anchor %s -> slot=%s step=%d customRow=%v\n", a.Hex, a.Info.Slot, a.Info.Step, a.Info.IsCustomRow)
	}

	// Test 3: Accessibility guard
	fmt.Println("\nTest 3: Accessibility Guard")
	guarded := palette.EnsureAccessibility(branded)
	report := palette.ValidatePaletteContrast(guarded, palette.ValidateOptions{})
	fmt.Printf("contrast checks: %d/%d passed, overall passed=%v\n", report.PassedChecks, report.TotalChecks, report.Passed)

	// Test 4: A single pastel brand color producing a custom row
	fmt.Println("\nTest 4: Custom Row")
	pastel, err := palette.GeneratePalette([]string{"#FFD1DC"}, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		fmt.Printf("unexpected error: %v\n", err)
		return
	}
	fmt.Printf("custom rows: %v\n", pastel.Meta.CustomSlots)

	// Test 5: Export contract - canonical order, Tailwind mapping, snapshot
	fmt.Println("\nTest 5: Export Contract")
	order := exportcontract.CanonicalSlotOrder(pastel.Meta.CustomSlots)
	fmt.Printf("first 5 canonical slots: %v\n", order[:5])
	fmt.Printf("step 9 -> tailwind %s\n", exportcontract.TailwindKey(9))

	snap := exportcontract.BuildSnapshot("demo-1", "walkthrough", guarded, guarded.Light)
	data, err := snap.Marshal()
	if err != nil {
		fmt.Printf("unexpected marshal error: %v\n", err)
		return
	}
	fmt.Printf("snapshot JSON length: %d bytes\n", len(data))

	// Test 6: Alpha and Display P3 variants
	fmt.Println("\nTest 6: Alpha and Display P3")
	blueScale, _ := guarded.Light.Get("blue")
	alphaScale, err := exportcontract.DeriveAlphaScale(blueScale, "light")
	if err != nil {
		fmt.Printf("unexpected error: %v\n", err)
		return
	}
	fmt.Printf("blue step 9 alpha variant: %s\n", alphaScale[8])

	p3Scale, outOfGamut, err := exportcontract.DeriveP3Scale(blueScale)
	if err != nil {
		fmt.Printf("unexpected error: %v\n", err)
		return
	}
	fmt.Printf("blue step 9 P3 variant: %s (out of sRGB gamut: %v)\n", p3Scale[8], outOfGamut[8])
}
