package life

import "conway/internal/core"

// CountLiveNeighbors returns the number of live cells among the up to eight
// cells adjacent to (x, y). Offsets that leave the grid are skipped; there is
// no wraparound, so corner cells have three candidates and edge cells five.
func CountLiveNeighbors(g core.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.Contains(nx, ny) {
				continue
			}
			if g.At(nx, ny) == core.Alive {
				count++
			}
		}
	}
	return count
}

/*
NextState applies Conway's transition rule to one cell.

A live cell survives with two or three live neighbours and dies otherwise
(under- or over-population). A dead cell is born with exactly three.
*/
func NextState(state core.Cell, neighbors int) core.Cell {
	switch {
	case state == core.Alive && (neighbors < 2 || neighbors > 3):
		return core.Dead
	case state == core.Dead && neighbors == 3:
		return core.Alive
	default:
		return state
	}
}
