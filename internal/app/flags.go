package app

import (
	"flag"

	"mad-ant/internal/parameters"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim    string
	Params string
	Scale  int
	TPS    int
	Seed   int64
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ant", Scale: 4, TPS: 60, Seed: 0, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Params, "config", c.Params,
		`simulation configuration as "key=value" pairs separated by commas, e.g. "size=128,rule=canonical"`)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset, 0 uses the configured one")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width in pixels of the state panel, 0 to hide it")
}

// SimParams parses the -config string.
func (c *Config) SimParams() parameters.Params {
	return parameters.Parse(c.Params)
}
