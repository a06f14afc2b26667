package session

import (
	"math"

	"conway/internal/core"
)

// Point is a position in device pixels.
type Point struct {
	X float64
	Y float64
}

// PointerToCoord maps a pointer position to a grid coordinate. origin is the
// top-left corner of the drawing surface and resolution the cell size in
// pixels. The second result is false when the pointer lies outside the grid.
func PointerToCoord(px, py float64, origin Point, resolution int, size core.Size) (core.Coord, bool) {
	if resolution <= 0 {
		return core.Coord{}, false
	}
	x := math.Floor((px - origin.X) / float64(resolution))
	y := math.Floor((py - origin.Y) / float64(resolution))
	if x < 0 || y < 0 || x >= float64(size.W) || y >= float64(size.H) {
		return core.Coord{}, false
	}
	return core.Coord{X: int(x), Y: int(y)}, true
}
