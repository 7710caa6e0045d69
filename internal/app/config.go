package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"toruslife/internal/life"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Rows     int
	Cols     int
	CellSize int
	Gap      int
	Interval time.Duration
	Seed     int64
	Workers  int

	Pattern string
	Icon    string
	Title   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     40,
		Cols:     40,
		CellSize: 10,
		Gap:      1,
		Interval: 100 * time.Millisecond,
		Seed:     time.Now().UnixNano(),
		Workers:  runtime.NumCPU(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board width in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge in pixels")
	fs.IntVar(&c.Gap, "gap", c.Gap, "pixels between cells")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while evolving")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first random board")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (1 steps sequentially)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext .cells pattern to start from instead of a random board")
	fs.StringVar(&c.Icon, "icon", c.Icon, "window icon image (black is transparent)")
	fs.StringVar(&c.Title, "title", c.Title, "title screen image")
}

// Validate reports configuration values no driver can work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board %dx%d must be positive", c.Cols, c.Rows))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.CellSize))
	}
	if c.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap %d must not be negative", c.Gap))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval %v must be positive", c.Interval))
	}
	return errors.Join(errs...)
}

// InitialBoard reads the configured pattern and centres it on a board of the
// configured size. It returns nil when no pattern is set.
func (c *Config) InitialBoard() (*life.Grid, error) {
	if c.Pattern == "" {
		return nil, nil
	}
	f, err := os.Open(c.Pattern)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := life.ParsePlaintext(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Pattern, err)
	}
	return life.Centered(p, c.Cols, c.Rows)
}
