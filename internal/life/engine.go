package life

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conway/internal/core"
)

// WinBasis selects which scalar a step accumulates for win detection.
type WinBasis int

const (
	// AliveCount totals live cells in the new grid. This is the canonical basis.
	AliveCount WinBasis = iota
	// NeighborSum totals the neighbour counts of every cell in the grid the
	// step read. Kept for compatibility with older boards; superseded by
	// AliveCount.
	NeighborSum
)

// String returns the configuration name of the basis.
func (b WinBasis) String() string {
	switch b {
	case NeighborSum:
		return "neighbors"
	default:
		return "alive"
	}
}

// ParseWinBasis maps a configuration name to a WinBasis.
func ParseWinBasis(s string) (WinBasis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alive":
		return AliveCount, nil
	case "neighbors", "neighbours":
		return NeighborSum, nil
	}
	return AliveCount, errors.Errorf("[ParseWinBasis] unknown win basis %q", s)
}

// Result is the outcome of one generation step.
type Result struct {
	Grid        core.Grid
	Alive       int
	NeighborSum int
	// Total is the scalar selected by the engine's WinBasis.
	Total int
	Basis WinBasis
}

// Engine advances a grid by one generation.
type Engine struct {
	basis   WinBasis
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithBasis selects the win detection scalar.
func WithBasis(b WinBasis) Option {
	return func(e *Engine) { e.basis = b }
}

// WithWorkers splits each step into row bands evaluated concurrently. Values
// below 2 keep the step on the calling goroutine; a negative value uses one
// worker per CPU.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = runtime.NumCPU()
		}
		e.workers = n
	}
}

// NewEngine constructs an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{basis: AliveCount, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step computes the next generation. It reads only from g and writes only to
// a fresh grid of the same dimensions, so g stays valid for other readers.
func (e *Engine) Step(g core.Grid) Result {
	next := g.Scratch()

	var alive, neighbors int
	if e.workers > 1 && g.Height() > 1 {
		alive, neighbors = e.stepBands(g, next)
	} else {
		alive, neighbors = stepRows(g, next, 0, g.Height())
	}

	res := Result{Grid: next.Grid(), Alive: alive, NeighborSum: neighbors, Basis: e.basis}
	res.Total = alive
	if e.basis == NeighborSum {
		res.Total = neighbors
	}
	return res
}

func (e *Engine) stepBands(g core.Grid, next *core.Builder) (int, int) {
	var (
		eg          errgroup.Group
		workers     = min(e.workers, g.Height())
		rowsPerBand = (g.Height() + workers - 1) / workers // Ceiling division
		alive       = make([]int, workers)
		neighbors   = make([]int, workers)
	)

	for i := range workers {
		startRow := i * rowsPerBand
		endRow := min(startRow+rowsPerBand, g.Height())
		if startRow >= endRow {
			break
		}
		eg.Go(func() error {
			alive[i], neighbors[i] = stepRows(g, next, startRow, endRow)
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	_ = eg.Wait()

	var totalAlive, totalNeighbors int
	for i := range alive {
		totalAlive += alive[i]
		totalNeighbors += neighbors[i]
	}
	return totalAlive, totalNeighbors
}

func stepRows(g core.Grid, next *core.Builder, startRow, endRow int) (alive, neighbors int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.Width(); x++ {
			n := CountLiveNeighbors(g, x, y)
			neighbors += n
			state := NextState(g.At(x, y), n)
			if state == core.Alive {
				next.Set(x, y, core.Alive)
				alive++
			}
		}
	}
	return alive, neighbors
}
