//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Fandry96/AquaFlow/internal/paint"
)

// Overlay draws optional visuals on top of the composed canvas: the wetness
// flow-marker mask and the brush cursor ring.
type Overlay struct {
	canvas *paint.Canvas
	scale  float64

	showWetMask bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image

	cursorX, cursorY float64
	cursorRadius     float64
	cursorVisible    bool
}

// NewOverlay constructs an overlay for the canvas rendered at the given
// display scale.
func NewOverlay(canvas *paint.Canvas, scale float64) *Overlay {
	o := &Overlay{canvas: canvas, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showWetMask = !o.showWetMask
	}
}

// SetCursor positions the brush ring in display coordinates; visible is
// false when the pointer is outside the canvas.
func (o *Overlay) SetCursor(x, y, radiusPx float64, visible bool) {
	o.cursorX = x
	o.cursorY = y
	o.cursorRadius = radiusPx
	o.cursorVisible = visible
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showWetMask {
		o.drawWetnessMask(screen)
	}
	if o.cursorVisible {
		o.drawRing(screen, o.cursorX, o.cursorY, o.cursorRadius, color.RGBA{R: 60, G: 60, B: 70, A: 180})
	}
}

// drawWetnessMask tints cells whose wetness marker is set, independent of
// the compositor's water debug view.
func (o *Overlay) drawWetnessMask(screen *ebiten.Image) {
	size := o.canvas.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	tint := color.RGBA{R: 64, G: 164, B: 223}
	wetness := o.canvas.Grid().Wetness
	for i := 0; i < total; i++ {
		base := i * 4
		v := wetness[i]
		if v <= 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		if v > 1 {
			v = 1
		}
		alpha := uint8(110 * v)
		o.maskBuf[base+0] = uint8(float64(tint.R) * v)
		o.maskBuf[base+1] = uint8(float64(tint.G) * v)
		o.maskBuf[base+2] = uint8(float64(tint.B) * v)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.ReplacePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(o.scale, o.scale)
	screen.DrawImage(o.maskImg, op)
}

// drawRing approximates a circle outline with short line segments.
func (o *Overlay) drawRing(screen *ebiten.Image, cx, cy, radius float64, col color.RGBA) {
	if radius < 2 {
		radius = 2
	}
	const segments = 36
	prevX := cx + radius
	prevY := cy
	for i := 1; i <= segments; i++ {
		angle := float64(i) / segments * 2 * math.Pi
		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius
		o.drawLine(screen, prevX, prevY, x, y, 1, col)
		prevX = x
		prevY = y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	screen.DrawImage(o.pixel, op)
}
