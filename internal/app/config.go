package app

import (
	"flag"
	"fmt"
	"strconv"
)

// Config represents the command-line parameters for one simulation run.
// The six positional arguments are nrows ncols iters seed sleeptime
// nworkers; the flags tune scheduling and the viewers.
type Config struct {
	Rows    int
	Cols    int
	Iters   int
	Seed    int64
	SleepMS int
	Workers int

	Strategy string
	Scale    int
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Strategy: "static", Scale: 3, TPS: 60}
}

// Bind attaches the optional flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "scheduling strategy (seq, static or dynamic)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI viewer)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (GUI viewer)")
}

// Usage returns the positional-argument usage line for the given program name.
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s [flags] nrows ncols iters seed sleeptime nworkers", prog)
}

var argNames = [6]string{"nrows", "ncols", "iters", "seed", "sleeptime", "nworkers"}

// ParseArgs fills the positional parameters from args. It expects exactly
// six non-negative integers; the board must be at least 2x2 and at least
// one worker and one iteration must be requested.
func (c *Config) ParseArgs(args []string) error {
	if len(args) != len(argNames) {
		return fmt.Errorf("expected %d arguments, got %d", len(argNames), len(args))
	}
	var vals [6]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", argNames[i], a)
		}
		if v < 0 {
			return fmt.Errorf("%s: must not be negative", argNames[i])
		}
		vals[i] = v
	}
	if vals[0] < 2 || vals[1] < 2 {
		return fmt.Errorf("board must be at least 2x2, got %dx%d", vals[0], vals[1])
	}
	if vals[2] < 1 {
		return fmt.Errorf("iters: must be at least 1")
	}
	if vals[5] < 1 {
		return fmt.Errorf("nworkers: must be at least 1")
	}
	c.Rows, c.Cols, c.Iters = vals[0], vals[1], vals[2]
	c.Seed = int64(vals[3])
	c.SleepMS, c.Workers = vals[4], vals[5]
	return nil
}

// CapWorkers bounds the worker count by the number of rows, so every
// worker owns at least one row. It reports whether capping occurred.
func (c *Config) CapWorkers() bool {
	if c.Workers > c.Rows {
		c.Workers = c.Rows
		return true
	}
	return false
}
