package session

import (
	"github.com/pkg/errors"

	"conway/internal/core"
)

// ErrNoSurface is returned by sinks whose drawing surface is not attached yet.
var ErrNoSurface = errors.New("drawing surface not attached")

// RenderSink paints a grid snapshot: clear the surface, then one filled
// cellSize square per live cell. The session absorbs any error by skipping
// that frame.
type RenderSink interface {
	Render(g core.Grid, boardWidth, boardHeight, cellSize int) error
}

// SinkFunc adapts a function to RenderSink.
type SinkFunc func(g core.Grid, boardWidth, boardHeight, cellSize int) error

// Render calls f.
func (f SinkFunc) Render(g core.Grid, boardWidth, boardHeight, cellSize int) error {
	return f(g, boardWidth, boardHeight, cellSize)
}
