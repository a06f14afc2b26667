package session

import (
	"time"

	"github.com/pkg/errors"

	"conway/internal/core"
	"conway/internal/leaderboard"
	"conway/internal/life"
)

// ErrInvalidConfig reports session settings that cannot describe a board.
var ErrInvalidConfig = errors.New("invalid session config")

// Config holds the fixed settings of a session. Changing any of them requires
// a new session.
type Config struct {
	BoardWidth  int
	BoardHeight int
	Resolution  int

	Interval time.Duration
	Density  float64
	// Seed makes boards reproducible. Zero seeds from the clock.
	Seed int64

	Basis   life.WinBasis
	Workers int
	Mode    leaderboard.Mode
}

// DefaultConfig returns a 500x500 pixel board at 10 pixels per cell.
func DefaultConfig() Config {
	return Config{
		BoardWidth:  500,
		BoardHeight: 500,
		Resolution:  10,
		Interval:    100 * time.Millisecond,
		Density:     0.5,
		Basis:       life.AliveCount,
		Workers:     1,
		Mode:        leaderboard.Clicks,
	}
}

// GridSize returns the board dimensions in cells.
func (c Config) GridSize() core.Size {
	if c.Resolution <= 0 {
		return core.Size{}
	}
	return core.Size{W: c.BoardWidth / c.Resolution, H: c.BoardHeight / c.Resolution}
}

// Validate checks that the settings describe a non-empty board.
func (c Config) Validate() error {
	switch {
	case c.Resolution <= 0:
		return errors.Wrapf(ErrInvalidConfig, "resolution %d must be positive", c.Resolution)
	case c.BoardWidth < c.Resolution || c.BoardHeight < c.Resolution:
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d smaller than one %dpx cell",
			c.BoardWidth, c.BoardHeight, c.Resolution)
	case c.BoardWidth%c.Resolution != 0 || c.BoardHeight%c.Resolution != 0:
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d not divisible by resolution %d",
			c.BoardWidth, c.BoardHeight, c.Resolution)
	case c.Interval < 0:
		return errors.Wrapf(ErrInvalidConfig, "interval %s must not be negative", c.Interval)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "density %.3f outside [0,1]", c.Density)
	}
	return nil
}
