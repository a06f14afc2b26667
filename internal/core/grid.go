package core

import "github.com/pkg/errors"

// Grid is an immutable snapshot of the board stored in row-major order.
// Values are safe to share: every mutation produces a new Grid.
type Grid struct {
	w, h int
	data []Cell
}

// SeedFunc produces the initial state of one cell.
type SeedFunc func() Cell

// NewGrid allocates a grid and fills each cell with an independent seed call.
// A nil seed leaves every cell dead.
func NewGrid(w, h int, seed SeedFunc) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	data := make([]Cell, w*h)
	if seed != nil {
		for i := range data {
			data[i] = seed()
		}
	}
	return Grid{w: w, h: h, data: data}
}

// FromRows builds a grid from rows of 0/1 values. All rows must share the
// length of the first one.
func FromRows(rows [][]uint8) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, errors.New("[FromRows] empty grid")
	}
	w, h := len(rows[0]), len(rows)
	data := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, errors.Errorf("[FromRows] row %d has length %d, expected %d", y, len(row), w)
		}
		for _, v := range row {
			if v != 0 {
				data = append(data, Alive)
				continue
			}
			data = append(data, Dead)
		}
	}
	return Grid{w: w, h: h, data: data}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Contains reports whether (x, y) lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the state at (x, y) or ErrOutOfBounds.
func (g Grid) Get(x, y int) (Cell, error) {
	if !g.Contains(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Grid.Get] (%d,%d) outside %dx%d", x, y, g.w, g.h)
	}
	return g.data[y*g.w+x], nil
}

// At returns the state at (x, y) without a bounds check. Callers must have
// checked Contains first; out-of-range access panics like a slice index.
func (g Grid) At(x, y int) Cell { return g.data[y*g.w+x] }

// SetCell returns a copy of g with the cell at (x, y) replaced. g itself is
// never modified.
func (g Grid) SetCell(x, y int, state Cell) (Grid, error) {
	if !g.Contains(x, y) {
		return g, errors.Wrapf(ErrOutOfBounds, "[Grid.SetCell] (%d,%d) outside %dx%d", x, y, g.w, g.h)
	}
	if g.data[y*g.w+x] == state {
		return g, nil
	}
	b := NewBuilder(g)
	b.Set(x, y, state)
	return b.Grid(), nil
}

// CloneShape returns an all-dead grid with the same dimensions.
func (g Grid) CloneShape() Grid {
	return Grid{w: g.w, h: g.h, data: make([]Cell, len(g.data))}
}

// CountAlive returns the number of live cells.
func (g Grid) CountAlive() (count int) {
	for _, c := range g.data {
		if c == Alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same shape and contents.
func (g Grid) Equal(o Grid) bool {
	if g.w != o.w || g.h != o.h || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Cells returns a copy of the row-major cell values.
func (g Grid) Cells() []Cell { return append([]Cell(nil), g.data...) }

// Builder accumulates writes for a grid that is not yet published. It is the
// only way to mutate cell storage; Grid() hands ownership to the snapshot.
type Builder struct {
	w, h int
	data []Cell
}

// NewBuilder starts from a private copy of base.
func NewBuilder(base Grid) *Builder {
	return &Builder{w: base.w, h: base.h, data: append([]Cell(nil), base.data...)}
}

// Scratch returns a builder of dead cells shaped like g. Generation steps
// write into it while reading only from g.
func (g Grid) Scratch() *Builder {
	return &Builder{w: g.w, h: g.h, data: make([]Cell, len(g.data))}
}

// Set writes one cell. Distinct coordinates may be written from different
// goroutines.
func (b *Builder) Set(x, y int, state Cell) { b.data[y*b.w+x] = state }

// Grid publishes the accumulated cells. The builder must not be used again.
func (b *Builder) Grid() Grid {
	g := Grid{w: b.w, h: b.h, data: b.data}
	b.data = nil
	return g
}
