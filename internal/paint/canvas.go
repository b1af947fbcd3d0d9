package paint

import (
	"strconv"

	"github.com/Fandry96/AquaFlow/internal/core"
)

// Canvas is the single owner of the simulation grid. All mutation goes
// through Stamp and Tick; all reads happen between those calls. Both are
// atomic with respect to the grid: neither ever observes a half-applied
// stroke or a partial transport sweep.
type Canvas struct {
	cfg  Config
	grid *Grid
}

// NewCanvas allocates a canvas from the provided configuration. The grid is
// allocated once and mutated in place for the life of the canvas.
func NewCanvas(cfg Config) *Canvas {
	cfg.Clamp()
	return &Canvas{cfg: cfg, grid: NewGrid(cfg.Width, cfg.Height)}
}

// Size reports the grid dimensions.
func (c *Canvas) Size() core.Size { return core.Size{W: c.grid.W, H: c.grid.H} }

// Grid exposes the backing grid for compositing and tests. Callers must not
// hold the reference across a Stamp or Tick from another event handler.
func (c *Canvas) Grid() *Grid { return c.grid }

// Params returns the current simulation parameters.
func (c *Canvas) Params() Params { return c.cfg.Params }

// Seed returns the configured seed for the decorative paper grain.
func (c *Canvas) Seed() int64 { return c.cfg.Seed }

// Brush returns the current shared brush parameters.
func (c *Canvas) Brush() BrushParams { return c.cfg.Brush }

// SetPaused toggles the transport step. Stamping stays effective while
// paused.
func (c *Canvas) SetPaused(v bool) { c.cfg.Params.Paused = v }

// Paused reports whether transport is suspended.
func (c *Canvas) Paused() bool { return c.cfg.Params.Paused }

// SetShowWetness switches the compositor between paint and debug views.
func (c *Canvas) SetShowWetness(v bool) { c.cfg.Params.ShowWetness = v }

// ShowWetness reports the active compositor view.
func (c *Canvas) ShowWetness() bool { return c.cfg.Params.ShowWetness }

// CycleTexture advances to the next paper finish.
func (c *Canvas) CycleTexture() PaperTexture {
	for i, tex := range Textures {
		if tex == c.cfg.Params.Texture {
			c.cfg.Params.Texture = Textures[(i+1)%len(Textures)]
			return c.cfg.Params.Texture
		}
	}
	c.cfg.Params.Texture = Textures[0]
	return c.cfg.Params.Texture
}

// Reset clears the sheet back to dry blank paper.
func (c *Canvas) Reset() { c.grid.Clear() }

// Stamp applies one brush stroke to the grid.
func (c *Canvas) Stamp(s Stroke) { c.grid.Stamp(s) }

// Tick advances the simulation by one transport step unless paused.
func (c *Canvas) Tick() {
	if c.cfg.Params.Paused {
		return
	}
	transport(c.grid, c.cfg.Params)
}

// StepOnce runs a single transport step regardless of the pause flag.
func (c *Canvas) StepOnce() { transport(c.grid, c.cfg.Params) }

// Parameters captures the tunables for HUD display.
func (c *Canvas) Parameters() core.ParameterSnapshot {
	p := c.cfg.Params
	b := c.cfg.Brush
	groups := []core.ParameterGroup{
		{
			Name: "Fluid",
			Params: []core.Parameter{
				floatParam("diffusion_speed", "Diffusion speed", p.DiffusionSpeed),
				floatParam("evaporation_rate", "Evaporation rate", p.EvaporationRate),
				floatParam("gravity_x", "Gravity X", p.GravityX),
				floatParam("gravity_y", "Gravity Y", p.GravityY),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				floatParam("pressure", "Pressure", b.Pressure),
				floatParam("water_load", "Water load", b.WaterLoad),
				floatParam("pigment_load", "Pigment load", b.PigmentLoad),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				stringParam("paper_texture", "Paper texture", string(p.Texture)),
				boolParam("paused", "Paused", p.Paused),
				boolParam("show_wetness", "Show wetness", p.ShowWetness),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables with their allowed
// ranges.
func (c *Canvas) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "diffusion_speed", Label: "Diffusion", Type: core.ParamTypeFloat, Step: 0.025, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "evaporation_rate", Label: "Evaporation", Type: core.ParamTypeFloat, Step: 0.002, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
		{Key: "gravity_x", Label: "Gravity X", Type: core.ParamTypeFloat, Step: 0.02, Min: -0.2, Max: 0.2, HasMin: true, HasMax: true},
		{Key: "gravity_y", Label: "Gravity Y", Type: core.ParamTypeFloat, Step: 0.02, Min: -0.2, Max: 0.2, HasMin: true, HasMax: true},
		{Key: "pressure", Label: "Pressure", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "water_load", Label: "Water load", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "pigment_load", Label: "Pigment load", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates one tunable by key, clamping to its range. It
// reports whether the key was recognized.
func (c *Canvas) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "diffusion_speed":
		c.cfg.Params.DiffusionSpeed = clamp(value, 0, 0.5)
	case "evaporation_rate":
		c.cfg.Params.EvaporationRate = clamp(value, 0, 0.05)
	case "gravity_x":
		c.cfg.Params.GravityX = clamp(value, -0.2, 0.2)
	case "gravity_y":
		c.cfg.Params.GravityY = clamp(value, -0.2, 0.2)
	case "pressure":
		c.cfg.Brush.Pressure = clamp(value, 0, 1)
	case "water_load":
		c.cfg.Brush.WaterLoad = clamp(value, 0, 100)
	case "pigment_load":
		c.cfg.Brush.PigmentLoad = clamp(value, 0, 100)
	default:
		return false
	}
	return true
}

// SetBoolParameter updates one flag by key. It reports whether the key was
// recognized.
func (c *Canvas) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "paused":
		c.cfg.Params.Paused = value
	case "show_wetness":
		c.cfg.Params.ShowWetness = value
	default:
		return false
	}
	return true
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
