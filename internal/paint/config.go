package paint

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// PaperTexture enumerates the decorative paper finishes. The texture affects
// the rendered overlay only, never the transport numerics.
type PaperTexture string

const (
	PaperSmooth    PaperTexture = "smooth"
	PaperRough     PaperTexture = "rough"
	PaperColdPress PaperTexture = "cold-press"
)

// Textures lists the finishes in cycling order.
var Textures = []PaperTexture{PaperSmooth, PaperRough, PaperColdPress}

// Params holds the tunable simulation values read by the core each tick.
// Every field is clamped to its documented range on ingress; the core never
// validates them again.
type Params struct {
	DiffusionSpeed  float64      `yaml:"diffusion_speed"`
	EvaporationRate float64      `yaml:"evaporation_rate"`
	GravityX        float64      `yaml:"gravity_x"`
	GravityY        float64      `yaml:"gravity_y"`
	Texture         PaperTexture `yaml:"paper_texture"`
	Paused          bool         `yaml:"paused"`
	ShowWetness     bool         `yaml:"show_wetness"`
}

// BrushParams holds the stroke values shared by successive pointer events.
type BrushParams struct {
	Pressure    float64 `yaml:"pressure"`
	WaterLoad   float64 `yaml:"water_load"`
	PigmentLoad float64 `yaml:"pigment_load"`
}

// Config controls the canvas dimensions and initial parameters.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	Params Params      `yaml:"params"`
	Brush  BrushParams `yaml:"brush"`
}

// DefaultConfig returns the standard configuration: a 400x300 sheet with a
// gentle downward pull.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1549,
		Params: Params{
			DiffusionSpeed:  0.25,
			EvaporationRate: 0.002,
			GravityX:        0,
			GravityY:        0.05,
			Texture:         PaperColdPress,
		},
		Brush: BrushParams{
			Pressure:    1,
			WaterLoad:   50,
			PigmentLoad: 80,
		},
	}
}

// Clamp forces every parameter into its allowed range.
func (p *Params) Clamp() {
	p.DiffusionSpeed = clamp(p.DiffusionSpeed, 0, 0.5)
	p.EvaporationRate = clamp(p.EvaporationRate, 0, 0.05)
	p.GravityX = clamp(p.GravityX, -0.2, 0.2)
	p.GravityY = clamp(p.GravityY, -0.2, 0.2)
	switch p.Texture {
	case PaperSmooth, PaperRough, PaperColdPress:
	default:
		p.Texture = PaperSmooth
	}
}

// Clamp forces every brush parameter into its allowed range.
func (b *BrushParams) Clamp() {
	b.Pressure = clamp(b.Pressure, 0, 1)
	b.WaterLoad = clamp(b.WaterLoad, 0, 100)
	b.PigmentLoad = clamp(b.PigmentLoad, 0, 100)
}

// Clamp normalizes the full configuration.
func (c *Config) Clamp() {
	if c.Width <= 0 {
		c.Width = 400
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	c.Params.Clamp()
	c.Brush.Clamp()
}

// LoadConfig reads a YAML configuration file layered over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Clamp()
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["diffusion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DiffusionSpeed = parsed
		}
	}
	if v, ok := cfg["evaporation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.EvaporationRate = parsed
		}
	}
	if v, ok := cfg["gravity_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GravityX = parsed
		}
	}
	if v, ok := cfg["gravity_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GravityY = parsed
		}
	}
	if v, ok := cfg["texture"]; ok {
		c.Params.Texture = PaperTexture(v)
	}
	c.Clamp()
	return c
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
