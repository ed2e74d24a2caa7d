package swatch_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/exportcontract/swatch"
	"github.com/JaimeStill/radix-palette-gen/pkg/palette"
)

func TestRenderProducesValidPNG(t *testing.T) {
	p, err := palette.GeneratePalette(nil, nil, "2026-07-31T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []swatch.Row
	for _, e := range p.Light.Entries {
		rows = append(rows, swatch.Row{Key: e.Key, Steps: e.Scale})
	}

	var buf bytes.Buffer
	if err := swatch.Render(rows, &buf); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	t.Logf("rendered %d bytes for %d rows", buf.Len(), len(rows))

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("expected valid PNG, decode failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Errorf("expected nonzero image dimensions, got %v", bounds)
	}
}

func TestRenderRejectsInvalidHex(t *testing.T) {
	rows := []swatch.Row{{Key: "broken", Steps: [12]string{"not-a-color"}}}
	var buf bytes.Buffer
	if err := swatch.Render(rows, &buf); err == nil {
		t.Error("expected error for invalid hex in a row")
	}
}

func TestRenderEmptyRowsErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := swatch.Render(nil, &buf); err == nil {
		t.Error("expected error for empty rows")
	}
}
