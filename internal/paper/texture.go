// Package paper generates the decorative texture overlays for the three
// paper finishes. The overlay is purely visual: it is composited above the
// paint raster and never feeds back into transport.
package paper

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/Fandry96/AquaFlow/internal/paint"
	"github.com/Fandry96/AquaFlow/pkg/core"
)

// Generate renders a w*h texture overlay for the given finish. The result is
// deterministic for a given seed, so a canvas keeps the same grain across
// redraws.
func Generate(tex paint.PaperTexture, w, h int, seed int64) image.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	rng := core.NewRNG(seed)

	switch tex {
	case paint.PaperRough:
		drawRough(dc, rng, w, h)
	case paint.PaperColdPress:
		drawColdPress(dc, rng, w, h)
	case paint.PaperSmooth:
		drawSmooth(dc, rng, w, h)
	default:
		drawSmooth(dc, rng, w, h)
	}
	return dc.Image()
}

// drawSmooth scatters a handful of barely visible specks so the sheet does
// not read as mathematically flat.
func drawSmooth(dc *gg.Context, rng *core.RNG, w, h int) {
	count := w * h / 400
	for i := 0; i < count; i++ {
		x := rng.Range(0, float64(w))
		y := rng.Range(0, float64(h))
		dc.SetRGBA(0.2, 0.18, 0.15, rng.Range(0.01, 0.03))
		dc.DrawCircle(x, y, rng.Range(0.3, 0.8))
		dc.Fill()
	}
}

// drawRough lays down dense grain: dark and light speckles of varying size.
func drawRough(dc *gg.Context, rng *core.RNG, w, h int) {
	count := w * h / 40
	for i := 0; i < count; i++ {
		x := rng.Range(0, float64(w))
		y := rng.Range(0, float64(h))
		if rng.IntN(2) == 0 {
			dc.SetRGBA(0.25, 0.22, 0.18, rng.Range(0.03, 0.09))
		} else {
			dc.SetRGBA(1, 1, 1, rng.Range(0.03, 0.08))
		}
		dc.DrawCircle(x, y, rng.Range(0.4, 1.4))
		dc.Fill()
	}
}

// drawColdPress combines soft mottled dimples with faint horizontal fibers.
func drawColdPress(dc *gg.Context, rng *core.RNG, w, h int) {
	dimples := w * h / 120
	for i := 0; i < dimples; i++ {
		x := rng.Range(0, float64(w))
		y := rng.Range(0, float64(h))
		dc.SetRGBA(0.3, 0.27, 0.22, rng.Range(0.02, 0.05))
		dc.DrawCircle(x, y, rng.Range(0.8, 2.2))
		dc.Fill()
	}
	fibers := h / 6
	for i := 0; i < fibers; i++ {
		y := rng.Range(0, float64(h))
		x := rng.Range(0, float64(w))
		length := rng.Range(float64(w)/40, float64(w)/12)
		dc.SetRGBA(1, 1, 1, rng.Range(0.02, 0.05))
		dc.SetLineWidth(rng.Range(0.4, 0.9))
		dc.DrawLine(x, y, x+length, y+rng.Range(-1, 1))
		dc.Stroke()
	}
}
