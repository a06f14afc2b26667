package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGridSeedsEveryCell(t *testing.T) {
	calls := 0
	g := NewGrid(7, 4, func() Cell {
		calls++
		if calls%2 == 0 {
			return Alive
		}
		return Dead
	})
	if calls != 28 {
		t.Fatalf("seed called %d times, expected 28", calls)
	}
	if g.Width() != 7 || g.Height() != 4 {
		t.Fatalf("size %dx%d, expected 7x4", g.Width(), g.Height())
	}
	if got := g.CountAlive(); got != 14 {
		t.Fatalf("alive=%d, expected 14", got)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3, nil)
	if g.Size() != (Size{W: 1, H: 1}) {
		t.Fatalf("size %+v, expected 1x1", g.Size())
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2, Fill(Alive))
	cases := []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {5, 5}}
	for _, c := range cases {
		if _, err := g.Get(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, expected ErrOutOfBounds", c.X, c.Y, err)
		}
	}
	state, err := g.Get(2, 1)
	if err != nil || state != Alive {
		t.Fatalf("Get(2,1)=%v,%v, expected Alive", state, err)
	}
}

func TestSetCellCopyOnWrite(t *testing.T) {
	g := NewGrid(4, 4, nil)
	next, err := g.SetCell(1, 2, Alive)
	if err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if g.At(1, 2) != Dead {
		t.Fatal("SetCell mutated its receiver")
	}
	if next.At(1, 2) != Alive {
		t.Fatal("SetCell did not write the target cell")
	}
	if next.CountAlive() != 1 {
		t.Fatalf("alive=%d, expected exactly the written cell", next.CountAlive())
	}
	if _, err := g.SetCell(4, 0, Alive); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("SetCell out of range err=%v", err)
	}
}

func TestSetCellUnchangedReturnsEqualGrid(t *testing.T) {
	g := NewGrid(2, 2, Fill(Alive))
	next, err := g.SetCell(0, 0, Alive)
	if err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if !next.Equal(g) {
		t.Fatal("writing the existing value changed the grid")
	}
}

func TestCloneShape(t *testing.T) {
	g := NewGrid(5, 3, Fill(Alive))
	shape := g.CloneShape()
	if shape.Size() != g.Size() {
		t.Fatalf("shape %+v, expected %+v", shape.Size(), g.Size())
	}
	if shape.CountAlive() != 0 {
		t.Fatal("CloneShape must produce dead cells")
	}
	if g.CountAlive() != 15 {
		t.Fatal("CloneShape touched the source grid")
	}
}

func TestBuilderDoesNotAliasBase(t *testing.T) {
	base := NewGrid(3, 3, nil)
	b := NewBuilder(base)
	b.Set(1, 1, Alive)
	built := b.Grid()
	if base.At(1, 1) != Dead {
		t.Fatal("builder wrote through to the base grid")
	}
	if built.At(1, 1) != Alive {
		t.Fatal("builder lost its write")
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]uint8{
		{0, 1, 0},
		{1, 1, 0},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size %dx%d, expected 3x2", g.Width(), g.Height())
	}
	if g.At(1, 0) != Alive || g.At(0, 1) != Alive || g.At(2, 1) != Dead {
		t.Fatal("FromRows placed cells at the wrong coordinates")
	}
	if _, err := FromRows([][]uint8{{0, 1}, {1}}); err == nil {
		t.Fatal("ragged rows must be rejected")
	}
	if _, err := FromRows(nil); err == nil {
		t.Fatal("empty rows must be rejected")
	}
}
