package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scale      int
	TPS        int
	PanelWidth int
	Seed       int64
	ConfigPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: 60, PanelWidth: 220, Seed: 1549}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the canvas")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "control panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the paper texture grain")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file")
}
