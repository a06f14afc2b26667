// Package sweep plays many seeded boards headlessly and reports how often
// each seed density dies out.
package sweep

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conway/internal/core"
	"conway/internal/life"
)

// ErrInvalidOptions is returned by Run for unusable options.
var ErrInvalidOptions = errors.New("invalid sweep options")

// Options configures a sweep.
type Options struct {
	Densities      []float64
	Trials         int
	MaxGenerations int
	// Workers bounds concurrent trials. Zero or less uses every CPU.
	Workers int
	Width   int
	Height  int
	// Seed is the base seed; trial i of every density uses Seed+i.
	Seed int64
}

// Report summarises the trials run at one density.
type Report struct {
	Density float64
	Trials  int
	// Extinct counts boards that reached zero live cells.
	Extinct int
	// Settled counts boards that stopped changing while still alive.
	Settled int
	// MeanGenerations is the mean generation of extinction over extinct
	// boards, or 0 when none died.
	MeanGenerations float64
}

// ExtinctFraction is Extinct / Trials.
func (r Report) ExtinctFraction() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Extinct) / float64(r.Trials)
}

type outcome struct {
	extinct     bool
	settled     bool
	generations int
}

// Run plays Trials boards per density and returns one report per density in
// input order.
func Run(ctx context.Context, opts Options) ([]Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([][]outcome, len(opts.Densities))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for d, density := range opts.Densities {
		outcomes[d] = make([]outcome, opts.Trials)
		for i := range opts.Trials {
			g.Go(func() error {
				out, err := playTrial(ctx, opts, density, opts.Seed+int64(i))
				if err != nil {
					return err
				}
				outcomes[d][i] = out
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "[Run] sweep interrupted")
	}

	reports := make([]Report, len(opts.Densities))
	for d, density := range opts.Densities {
		r := Report{Density: density, Trials: opts.Trials}
		total := 0
		for _, out := range outcomes[d] {
			switch {
			case out.extinct:
				r.Extinct++
				total += out.generations
			case out.settled:
				r.Settled++
			}
		}
		if r.Extinct > 0 {
			r.MeanGenerations = float64(total) / float64(r.Extinct)
		}
		reports[d] = r
	}
	return reports, nil
}

func playTrial(ctx context.Context, opts Options, density float64, seed int64) (outcome, error) {
	grid := core.NewGrid(opts.Width, opts.Height, core.NewRNG(seed).Seeder(density))
	if grid.CountAlive() == 0 {
		return outcome{extinct: true}, nil
	}
	engine := life.NewEngine()
	for gen := 1; gen <= opts.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return outcome{}, err
		}
		res := engine.Step(grid)
		if life.HasWon(res) {
			return outcome{extinct: true, generations: gen}, nil
		}
		if res.Grid.Equal(grid) {
			return outcome{settled: true, generations: gen}, nil
		}
		grid = res.Grid
	}
	return outcome{generations: opts.MaxGenerations}, nil
}

func (o Options) validate() error {
	switch {
	case len(o.Densities) == 0:
		return errors.Wrap(ErrInvalidOptions, "no densities")
	case o.Trials <= 0:
		return errors.Wrapf(ErrInvalidOptions, "trials %d must be positive", o.Trials)
	case o.MaxGenerations <= 0:
		return errors.Wrapf(ErrInvalidOptions, "max generations %d must be positive", o.MaxGenerations)
	case o.Width <= 0 || o.Height <= 0:
		return errors.Wrapf(ErrInvalidOptions, "board %dx%d must be positive", o.Width, o.Height)
	}
	for _, d := range o.Densities {
		if d < 0 || d > 1 {
			return errors.Wrapf(ErrInvalidOptions, "density %.3f outside [0,1]", d)
		}
	}
	return nil
}
