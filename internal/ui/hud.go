//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/Fandry96/AquaFlow/internal/core"
	"github.com/Fandry96/AquaFlow/internal/inspire"
	"github.com/Fandry96/AquaFlow/internal/paint"
)

const (
	rowHeight    = 16
	stepperWidth = 12
	panelPadding = 8
)

type snapshotProvider interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

// HUD renders the control panel to the right of the canvas: active tool,
// color swatches, parameter steppers, and the inspiration panel.
type HUD struct {
	canvas snapshotProvider
	width  int

	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	controls    []controlRow
	floatSetter core.FloatParameterSetter

	offsetX int

	tool        paint.Tool
	brushSizePx float64
	swatch      paint.Color

	prompt      string
	promptImage *ebiten.Image
	fade        *gween.Tween
	fadeAlpha   float64
}

type controlRow struct {
	control core.ParameterControl
	value   string
	minus   image.Rectangle
	plus    image.Rectangle
}

// NewHUD constructs a HUD bound to the canvas. Controls are discovered
// through the parameter-control interfaces the canvas implements.
func NewHUD(canvas snapshotProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{canvas: canvas, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := canvas.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]controlRow, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = controlRow{control: ctrl, value: "--"}
		}
	}
	if setter, ok := canvas.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// SetBrushStatus updates the tool/size/color readout.
func (h *HUD) SetBrushStatus(tool paint.Tool, sizePx float64, swatch paint.Color) {
	h.tool = tool
	h.brushSizePx = sizePx
	h.swatch = swatch
}

// SetInspiration installs a freshly fetched prompt and optional image and
// restarts the fade-in.
func (h *HUD) SetInspiration(res inspire.Result) {
	h.prompt = res.Prompt
	h.promptImage = nil
	if res.Image != nil {
		h.promptImage = ebiten.NewImageFromImage(res.Image)
	}
	h.fade = gween.New(0, 1, 0.8, ease.OutQuad)
	h.fadeAlpha = 0
}

// Update refreshes control values and handles stepper clicks. offsetX is the
// panel's left edge in screen coordinates.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	h.refreshControlValues()
	h.layoutControls()
	h.handleClicks()
	if h.fade != nil {
		v, done := h.fade.Update(1.0 / 60.0)
		h.fadeAlpha = float64(v)
		if done {
			h.fade = nil
		}
	}
}

func (h *HUD) refreshControlValues() {
	snapshot := h.canvas.Parameters()
	values := map[string]string{}
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	for i := range h.controls {
		if v, ok := values[h.controls[i].control.Key]; ok {
			h.controls[i].value = v
		}
	}
}

func (h *HUD) layoutControls() {
	y := panelPadding + rowHeight*4
	for i := range h.controls {
		rowY := y + i*rowHeight
		h.controls[i].minus = image.Rect(
			h.offsetX+h.width-2*stepperWidth-panelPadding, rowY,
			h.offsetX+h.width-stepperWidth-panelPadding, rowY+rowHeight-2)
		h.controls[i].plus = image.Rect(
			h.offsetX+h.width-stepperWidth-panelPadding, rowY,
			h.offsetX+h.width-panelPadding, rowY+rowHeight-2)
	}
}

func (h *HUD) handleClicks() {
	if h.floatSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	pt := image.Pt(cx, cy)
	for i := range h.controls {
		row := &h.controls[i]
		dir := 0.0
		if pt.In(row.minus) {
			dir = -1
		} else if pt.In(row.plus) {
			dir = 1
		}
		if dir == 0 {
			continue
		}
		current, err := strconv.ParseFloat(row.value, 64)
		if err != nil {
			continue
		}
		h.floatSetter.SetFloatParameter(row.control.Key, current+dir*row.control.Step)
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 28, G: 26, B: 24, A: 255})

	face := basicfont.Face7x13
	white := color.RGBA{R: 225, G: 222, B: 215, A: 255}
	dim := color.RGBA{R: 150, G: 146, B: 140, A: 255}

	y := panelPadding + rowHeight
	text.Draw(h.panel, "aquaflow", face, panelPadding, y, white)
	y += rowHeight
	text.Draw(h.panel, fmt.Sprintf("tool: %s  size: %.0fpx", h.tool, h.brushSizePx), face, panelPadding, y, white)
	y += rowHeight
	h.drawSwatch(panelPadding, y-rowHeight+4)
	text.Draw(h.panel, fmt.Sprintf("      rgb %0.f,%0.f,%0.f", h.swatch.R, h.swatch.G, h.swatch.B), face, panelPadding, y, dim)
	y += rowHeight

	for _, row := range h.controls {
		label := fmt.Sprintf("%-12s %s", row.control.Label, trimValue(row.value))
		text.Draw(h.panel, label, face, panelPadding, y+rowHeight-4, white)
		h.drawStepper(row.minus, "-")
		h.drawStepper(row.plus, "+")
		y += rowHeight
	}

	h.drawInspiration(y + rowHeight)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSwatch(x, y int) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(24, 10)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(h.swatch.R/255, h.swatch.G/255, h.swatch.B/255, 1)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawStepper(r image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	local := r.Sub(image.Pt(h.offsetX, 0))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(local.Dx()-1), float64(local.Dy()))
	op.GeoM.Translate(float64(local.Min.X), float64(local.Min.Y))
	op.ColorM.Scale(0.25, 0.24, 0.23, 1)
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, label, basicfont.Face7x13, local.Min.X+3, local.Min.Y+rowHeight-5, color.White)
}

func (h *HUD) drawInspiration(y int) {
	if h.prompt == "" {
		return
	}
	face := basicfont.Face7x13
	alpha := h.fadeAlpha
	if h.fade == nil {
		alpha = 1
	}
	tint := uint8(200 * alpha)
	clr := color.RGBA{R: tint, G: tint, B: tint, A: uint8(255 * alpha)}

	text.Draw(h.panel, "inspiration:", face, panelPadding, y, clr)
	y += rowHeight
	for _, line := range wrapText(h.prompt, (h.width-2*panelPadding)/7) {
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += rowHeight
	}
	if h.promptImage != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := h.promptImage.Bounds()
		maxW := float64(h.width - 2*panelPadding)
		scale := 1.0
		if float64(bounds.Dx()) > maxW {
			scale = maxW / float64(bounds.Dx())
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(panelPadding, float64(y))
		op.ColorM.Scale(1, 1, 1, alpha)
		h.panel.DrawImage(h.promptImage, op)
	}
}

func trimValue(v string) string {
	if len(v) > 8 {
		return v[:8]
	}
	return v
}

// wrapText splits s into lines no longer than maxChars, breaking on spaces.
func wrapText(s string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{s}
	}
	var lines []string
	line := ""
	word := ""
	flushWord := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if len(candidate) > maxChars && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' {
			flushWord()
			continue
		}
		word += string(r)
	}
	flushWord()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
