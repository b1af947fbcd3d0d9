//go:build ebiten

package app

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Fandry96/AquaFlow/internal/core"
	"github.com/Fandry96/AquaFlow/internal/inspire"
	"github.com/Fandry96/AquaFlow/internal/paint"
	"github.com/Fandry96/AquaFlow/internal/paper"
	"github.com/Fandry96/AquaFlow/internal/render"
	"github.com/Fandry96/AquaFlow/internal/ui"
)

// palette holds the selectable pigment colors, cycled with C.
var palette = []paint.Color{
	{R: 40, G: 150, B: 250},
	{R: 200, G: 60, B: 90},
	{R: 250, G: 180, B: 40},
	{R: 60, G: 180, B: 120},
	{R: 90, G: 70, B: 200},
	{R: 35, G: 32, B: 40},
}

// Game wires the canvas, scheduler, compositor, and input handling into the
// ebiten loop. The grid has a single owner: strokes and transport ticks both
// run inside Update, never concurrently.
type Game struct {
	canvas     *paint.Canvas
	compositor *render.Compositor
	painter    *render.CanvasPainter
	hud        *ui.HUD
	overlay    *ui.Overlay
	ticker     *core.FixedStep
	mapper     paint.Mapper

	inspirer  *inspire.Client
	inspireCh chan inspire.Result

	paperImg  *ebiten.Image
	paperKind paint.PaperTexture
	paperSeed int64

	tool        paint.Tool
	brushSizePx float64
	colorIdx    int

	scale      int
	panelWidth int
	tickOnce   bool
}

// New constructs a Game around the provided canvas.
func New(canvas *paint.Canvas, cfg *Config) *Game {
	size := canvas.Size()
	g := &Game{
		canvas:      canvas,
		compositor:  render.NewCompositor(size.W, size.H),
		painter:     render.NewCanvasPainter(size.W, size.H),
		overlay:     ui.NewOverlay(canvas, float64(cfg.Scale)),
		ticker:      core.NewFixedStep(cfg.TPS),
		inspirer:    inspire.NewFromEnv(),
		inspireCh:   make(chan inspire.Result, 1),
		paperSeed:   canvas.Seed(),
		tool:        paint.ToolBrush,
		brushSizePx: 24,
		scale:       cfg.Scale,
		panelWidth:  cfg.PanelWidth,
	}
	g.hud = ui.NewHUD(canvas, cfg.PanelWidth)
	g.mapper = paint.Mapper{
		CanvasW: float64(size.W * cfg.Scale),
		CanvasH: float64(size.H * cfg.Scale),
		GridW:   size.W,
		GridH:   size.H,
	}
	g.refreshPaper()
	return g
}

// Update handles input, applies strokes, and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handlePointer()

	select {
	case res := <-g.inspireCh:
		g.hud.SetInspiration(res)
	default:
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.SetBrushStatus(g.tool, g.brushSizePx, palette[g.colorIdx])
	g.hud.Update(int(g.mapper.CanvasW))

	if g.tickOnce {
		g.canvas.StepOnce()
		g.tickOnce = false
	} else if g.ticker.ShouldStep() {
		g.canvas.Tick()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := !g.canvas.Paused()
		g.canvas.SetPaused(paused)
		if !paused {
			g.ticker.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.canvas.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.canvas.SetShowWetness(!g.canvas.ShowWetness())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.canvas.CycleTexture()
		g.refreshPaper()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.colorIdx = (g.colorIdx + 1) % len(palette)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.requestInspiration()
	}

	tools := map[ebiten.Key]paint.Tool{
		ebiten.KeyDigit1: paint.ToolBrush,
		ebiten.KeyDigit2: paint.ToolWater,
		ebiten.KeyDigit3: paint.ToolDry,
		ebiten.KeyDigit4: paint.ToolEraser,
		ebiten.KeyDigit5: paint.ToolBlow,
	}
	for key, tool := range tools {
		if inpututil.IsKeyJustPressed(key) {
			g.tool = tool
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brushSizePx -= 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brushSizePx += 4
	}
	_, wheelY := ebiten.Wheel()
	g.brushSizePx += wheelY * 2
	if g.brushSizePx < 2 {
		g.brushSizePx = 2
	}
	if g.brushSizePx > 200 {
		g.brushSizePx = 200
	}
}

// handlePointer maps the cursor into grid space and stamps while the left
// button is held. Stamping works while paused.
func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	px, py := float64(cx), float64(cy)
	inside := g.mapper.Contains(px, py)
	if g.overlay != nil {
		g.overlay.SetCursor(px, py, g.brushSizePx/2, inside)
	}
	if !inside || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}

	gx, gy := g.mapper.Cell(px, py)
	brush := g.canvas.Brush()
	g.canvas.Stamp(paint.Stroke{
		Tool:        g.tool,
		CenterX:     gx,
		CenterY:     gy,
		Radius:      g.mapper.Radius(g.brushSizePx),
		Pressure:    brush.Pressure,
		WaterLoad:   brush.WaterLoad,
		PigmentLoad: brush.PigmentLoad,
		Color:       palette[g.colorIdx],
	})
}

// requestInspiration fetches a prompt (and image when credentialed) off the
// game loop. The result is consumed at the next Update; the collaborator
// never touches grid state.
func (g *Game) requestInspiration() {
	panelW := g.panelWidth - 16
	go func() {
		res := g.inspirer.Fetch(context.Background(), panelW, 120)
		select {
		case g.inspireCh <- res:
		default:
		}
	}()
}

func (g *Game) refreshPaper() {
	kind := g.canvas.Params().Texture
	if g.paperImg != nil && kind == g.paperKind {
		return
	}
	size := g.canvas.Size()
	img := paper.Generate(kind, size.W*g.scale, size.H*g.scale, g.paperSeed)
	g.paperImg = ebiten.NewImageFromImage(img)
	g.paperKind = kind
}

// Draw composites the frame: paper base, the simulation raster, the texture
// grain, then overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.PaperColor)

	buf := g.compositor.Compose(g.canvas.Grid(), g.canvas.ShowWetness())
	g.painter.Blit(screen, buf, 0, 0, float64(g.scale))

	if g.paperImg != nil {
		screen.DrawImage(g.paperImg, nil)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.hud.Draw(screen, int(g.mapper.CanvasW))
}

// Layout returns the logical screen size: canvas area plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.canvas.Size()
	return size.W*g.scale + g.panelWidth, size.H * g.scale
}
