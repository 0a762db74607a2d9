package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows  int
	Cols  int
	Scale int

	Host      string
	Engine    string
	Seed      int64
	FPS       int
	HUD       bool
	StatsView bool
	StatsAddr string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 64, Cols: 64, Scale: 10, Engine: "sparse", FPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.StringVar(&c.Host, "host", c.Host, "window host (default: best compiled in)")
	fs.StringVar(&c.Engine, "engine", c.Engine, "grid engine: sparse or dense")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame cap for hosts without vsync, 0 disables")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show generation and population")
	fs.BoolVar(&c.StatsView, "statsview", c.StatsView, "serve a runtime statistics dashboard")
	fs.StringVar(&c.StatsAddr, "statsview-addr", c.StatsAddr, "dashboard listen address (default localhost:12600)")
}

// ParseArgs reads the optional positional form "rows cols scale". Either all
// three are given or none.
func (c *Config) ParseArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 3:
	default:
		return fmt.Errorf("expected 3 positional arguments (rows cols scale), got %d", len(args))
	}
	dst := []*int{&c.Rows, &c.Cols, &c.Scale}
	names := []string{"rows", "cols", "scale"}
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 31)
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		*dst[i] = int(v)
	}
	return nil
}

// Validate reports configurations that cannot produce a window.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("rows must be positive, got %d", c.Rows))
	}
	if c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("cols must be positive, got %d", c.Cols))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps must not be negative, got %d", c.FPS))
	}
	return errors.Join(errs...)
}
