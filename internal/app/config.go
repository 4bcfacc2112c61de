package app

import "flag"

// Config represents the command-line parameters for the GUI host,
// grounded on the teacher's ui/internal/app.Config (cmd/ca's -sim/-scale/
// -tps/-seed flags), generalized here to the single falling-sand engine
// instead of a pluggable simulation registry.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 160, Height: 90, Scale: 6, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed")
}
