package app

import "flag"

// Config represents the command-line parameters for the simulation driver.
type Config struct {
	Pattern  string
	Load     string
	Width    int
	Height   int
	Density  float64
	Seed     int64
	Rotate   int
	Steps    int
	Toroidal bool
	Every    int
	TPS      int
	Save     string
	List     bool
	Quiet    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 48, Height: 24, Density: 0.3, Seed: 42, Steps: 100, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "creature to spawn (see -list); empty for a random soup")
	fs.StringVar(&c.Load, "load", c.Load, "file to load the start state from (.gol, .bgol or .pgm)")
	fs.IntVar(&c.Width, "width", c.Width, "world width")
	fs.IntVar(&c.Height, "height", c.Height, "world height")
	fs.Float64Var(&c.Density, "density", c.Density, "alive fraction of the random soup")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.IntVar(&c.Rotate, "rotate", c.Rotate, "clockwise quarter turns applied to the start state")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to advance")
	fs.BoolVar(&c.Toroidal, "toroidal", c.Toroidal, "wrap the edges into a torus")
	fs.IntVar(&c.Every, "every", c.Every, "render every n generations (0 renders only the final state)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while rendering (0 runs unpaced)")
	fs.StringVar(&c.Save, "save", c.Save, "file to save the final state to (codec chosen by extension)")
	fs.BoolVar(&c.List, "list", c.List, "list the registered creatures and exit")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress state rendering")
}
