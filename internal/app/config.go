package app

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"conway/internal/leaderboard"
	"conway/internal/life"
	"conway/internal/render"
	"conway/internal/session"
)

// Config represents the command-line and file parameters for a frontend.
type Config struct {
	BoardWidth  int     `json:"board_width"`
	BoardHeight int     `json:"board_height"`
	Resolution  int     `json:"resolution"`
	TickMS      int     `json:"tick_ms"`
	Density     float64 `json:"density"`
	Seed        int64   `json:"seed"`
	WinBasis    string  `json:"win_basis"`
	Mode        string  `json:"mode"`
	Parallel    bool    `json:"parallel"`
	TPS         int     `json:"tps"`
	Scale       int     `json:"scale"`
	Transparent bool    `json:"transparent"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		BoardWidth:  500,
		BoardHeight: 500,
		Resolution:  10,
		TickMS:      100,
		Density:     0.5,
		WinBasis:    life.AliveCount.String(),
		Mode:        leaderboard.Clicks.String(),
		TPS:         60,
		Scale:       1,
	}
}

// LoadConfig decodes a JSON file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.BoardWidth, "width", c.BoardWidth, "board width in pixels")
	fs.IntVar(&c.BoardHeight, "height", c.BoardHeight, "board height in pixels")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "pixels per cell")
	fs.IntVar(&c.TickMS, "tick", c.TickMS, "milliseconds between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a seeded cell is alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board generation (0 uses the clock)")
	fs.StringVar(&c.WinBasis, "win-basis", c.WinBasis, "win detection basis: alive or neighbors")
	fs.StringVar(&c.Mode, "mode", c.Mode, "scoring mode: clicks or time")
	fs.BoolVar(&c.Parallel, "parallel", c.Parallel, "evaluate generations on all CPUs")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display refreshes per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.BoolVar(&c.Transparent, "transparent", c.Transparent, "leave dead cells unpainted over a light page")
}

// Parse loads an optional -config file, then applies flags on top of it.
// Flags given on the command line win over file values.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	path := configPath(args)
	cfg := NewConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	fs.String("config", path, "JSON config file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to parse flags")
	}
	return cfg, nil
}

func configPath(args []string) string {
	for i, arg := range args {
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if path, ok := strings.CutPrefix(name, "config="); ok {
			return path
		}
	}
	return ""
}

// Session converts the configuration into validated session settings.
func (c *Config) Session() (session.Config, error) {
	basis, err := life.ParseWinBasis(c.WinBasis)
	if err != nil {
		return session.Config{}, errors.Wrap(session.ErrInvalidConfig, err.Error())
	}
	mode, err := leaderboard.ParseMode(c.Mode)
	if err != nil {
		return session.Config{}, errors.Wrap(session.ErrInvalidConfig, err.Error())
	}
	workers := 1
	if c.Parallel {
		workers = -1
	}
	out := session.Config{
		BoardWidth:  c.BoardWidth,
		BoardHeight: c.BoardHeight,
		Resolution:  c.Resolution,
		Interval:    time.Duration(c.TickMS) * time.Millisecond,
		Density:     c.Density,
		Seed:        c.Seed,
		Basis:       basis,
		Workers:     workers,
		Mode:        mode,
	}
	if err := out.Validate(); err != nil {
		return session.Config{}, err
	}
	return out, nil
}

// Palette returns the cell colours for the configured presentation.
func (c *Config) Palette() render.Palette {
	if c.Transparent {
		return render.TransparentPalette()
	}
	return render.DefaultPalette()
}
