package render

import (
	"image/color"

	"github.com/Fandry96/AquaFlow/internal/paint"
)

// PaperColor is the base color of blank paper in the paint view.
var PaperColor = color.RGBA{R: 250, G: 246, B: 235, A: 255}

// Compositor converts grid state into an RGBA raster, one pixel per grid
// cell. The buffer is allocated once and refreshed in place every frame.
type Compositor struct {
	w, h int
	buf  []byte
}

// NewCompositor allocates a compositor for a grid of size w*h.
func NewCompositor(w, h int) *Compositor {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Compositor{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the raster dimensions.
func (c *Compositor) Size() (int, int) { return c.w, c.h }

// Buffer exposes the most recently composed raster.
func (c *Compositor) Buffer() []byte { return c.buf }

// Compose refreshes the raster from the grid. When showWetness is set the
// debug water view is produced instead of the paint view.
func (c *Compositor) Compose(g *paint.Grid, showWetness bool) []byte {
	if g.W != c.w || g.H != c.h {
		return c.buf
	}
	if showWetness {
		fillWetnessRGBA(c.buf, g)
	} else {
		fillPaintRGBA(c.buf, g, PaperColor)
	}
	return c.buf
}

// fillPaintRGBA renders pigment over paper. Pigment mass is clamped to the
// visible range here and nowhere else: internal mass may exceed 255 and
// stays latent until transport redistributes it. Cell opacity follows the
// total pigment density.
func fillPaintRGBA(buf []byte, g *paint.Grid, paper color.RGBA) {
	for i := range g.PigmentR {
		finalR := clamp255(g.PigmentR[i])
		finalG := clamp255(g.PigmentG[i])
		finalB := clamp255(g.PigmentB[i])

		totalMass := (finalR + finalG + finalB) / 3
		alpha := totalMass / 100
		if alpha > 1 {
			alpha = 1
		}

		base := i * 4
		buf[base+0] = lerpByte(paper.R, finalR, alpha)
		buf[base+1] = lerpByte(paper.G, finalG, alpha)
		buf[base+2] = lerpByte(paper.B, finalB, alpha)
		buf[base+3] = 255
	}
}

// fillWetnessRGBA renders standing water as translucent blue; dry cells are
// fully transparent so the paper shows through.
func fillWetnessRGBA(buf []byte, g *paint.Grid) {
	for i, w := range g.Water {
		base := i * 4
		if w > 0.1 {
			a := w * 50
			if a > 255 {
				a = 255
			}
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 255
			buf[base+3] = uint8(a)
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func lerpByte(from uint8, to float64, t float64) uint8 {
	v := float64(from) + (to-float64(from))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
