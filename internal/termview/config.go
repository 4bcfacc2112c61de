package termview

import "flag"

// Config represents the command-line parameters for the terminal host,
// mirroring internal/app.Config's flag set but without a pixel scale
// (terminal cells are the grid cells) and with a default size small
// enough to fit a typical terminal window.
type Config struct {
	Width  int
	Height int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 100, Height: 40, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed")
}
