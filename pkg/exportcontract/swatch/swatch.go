// Package swatch renders a palette's scales as a PNG swatch sheet, for
// visual snapshot review during development. It is not a format the core
// emits; it is a debug helper that lives alongside the export contract it
// visualizes.
package swatch

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

const (
	cellSize   = 32
	cellMargin = 2
	labelWidth = 0

	// supersample is the factor the sheet is rendered at before being
	// downscaled with a CatmullRom kernel, so cell boundaries anti-alias
	// instead of coming out hard-edged at the final resolution.
	supersample = 2
)

// Row is one hue scale's 12 hex steps, labeled by its slot or custom-row
// key. Only the fill colors are rendered; labels are left to a richer
// renderer since image/draw has no text-drawing primitive worth wiring in
// for a debug helper.
type Row struct {
	Key   string
	Steps [12]string
}

// Render draws one sheet: one row per hue, one cell per step, and writes
// it as PNG to w.
func Render(rows []Row, w io.Writer) error {
	width := labelWidth + 12*(cellSize+cellMargin)
	height := len(rows) * (cellSize + cellMargin)
	if height == 0 || width == 0 {
		return fmt.Errorf("swatch: nothing to render")
	}

	hi := image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample))
	draw.Draw(hi, hi.Bounds(), &image.Uniform{C: stdcolor.White}, image.Point{}, draw.Src)

	for rowIdx, row := range rows {
		y0 := rowIdx * (cellSize + cellMargin) * supersample
		for stepIdx, hex := range row.Steps {
			rgba, err := hexToRGBA(hex)
			if err != nil {
				return fmt.Errorf("swatch: row %q step %d: %w", row.Key, stepIdx+1, err)
			}
			x0 := (labelWidth + stepIdx*(cellSize+cellMargin)) * supersample
			rect := image.Rect(x0, y0, x0+cellSize*supersample, y0+cellSize*supersample)
			draw.Draw(hi, rect, &image.Uniform{C: rgba}, image.Point{}, draw.Src)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(img, img.Bounds(), hi, hi.Bounds(), xdraw.Over, nil)

	return png.Encode(w, img)
}

func hexToRGBA(hex string) (stdcolor.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return stdcolor.RGBA{}, fmt.Errorf("invalid hex %q", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return stdcolor.RGBA{}, err
	}
	return stdcolor.RGBA{R: r, G: g, B: b, A: 255}, nil
}
