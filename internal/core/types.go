package core

import "github.com/pkg/errors"

// Cell is the binary state of a single board position.
type Cell uint8

const (
	// Dead is the empty state.
	Dead Cell = 0
	// Alive is the populated state.
	Alive Cell = 1
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Coord addresses a cell with 0 <= X < W and 0 <= Y < H.
type Coord struct {
	X int
	Y int
}

// ErrOutOfBounds reports a coordinate outside the grid dimensions.
var ErrOutOfBounds = errors.New("coordinate out of bounds")
