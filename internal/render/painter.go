//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasPainter uploads a composed RGBA raster into a single reused ebiten
// image and draws it scaled to the window.
type CanvasPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewCanvasPainter allocates a painter for a raster of size w*h.
func NewCanvasPainter(w, h int) *CanvasPainter {
	return &CanvasPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the raster and draws it at (offsetX, offsetY) scaled by
// scale.
func (p *CanvasPainter) Blit(dst *ebiten.Image, buf []byte, offsetX, offsetY, scale float64) {
	if len(buf) != 4*p.w*p.h {
		return
	}
	p.img.ReplacePixels(buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(p.img, op)
}
