package sweep

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestRunKnownBoards(t *testing.T) {
	cases := []struct {
		name            string
		width, height   int
		density         float64
		extinct         int
		settled         int
		meanGenerations float64
	}{
		{name: "empty", width: 8, height: 8, density: 0, extinct: 3, meanGenerations: 0},
		// corners survive one generation, then starve
		{name: "full 4x4", width: 4, height: 4, density: 1, extinct: 3, meanGenerations: 2},
		{name: "block", width: 2, height: 2, density: 1, settled: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reports, err := Run(context.Background(), Options{
				Densities:      []float64{tc.density},
				Trials:         3,
				MaxGenerations: 10,
				Workers:        2,
				Width:          tc.width,
				Height:         tc.height,
				Seed:           7,
			})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			r := reports[0]
			if r.Extinct != tc.extinct || r.Settled != tc.settled || r.MeanGenerations != tc.meanGenerations {
				t.Fatalf("report %+v, expected extinct=%d settled=%d mean=%.1f", r, tc.extinct, tc.settled, tc.meanGenerations)
			}
		})
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	opts := Options{
		Densities:      []float64{0.1, 0.3, 0.5},
		Trials:         6,
		MaxGenerations: 60,
		Width:          12,
		Height:         12,
		Seed:           42,
	}
	opts.Workers = 1
	serial, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	opts.Workers = 4
	parallel, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("density %.1f: serial %+v, parallel %+v", opts.Densities[i], serial[i], parallel[i])
		}
		if serial[i].Density != opts.Densities[i] {
			t.Fatalf("report %d has density %.1f, expected %.1f", i, serial[i].Density, opts.Densities[i])
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{
		Densities:      []float64{0.5},
		Trials:         4,
		MaxGenerations: 100,
		Width:          32,
		Height:         32,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
}

func TestRunRejectsOptions(t *testing.T) {
	base := Options{Densities: []float64{0.5}, Trials: 1, MaxGenerations: 1, Width: 4, Height: 4}
	bad := []func(*Options){
		func(o *Options) { o.Densities = nil },
		func(o *Options) { o.Densities = []float64{1.5} },
		func(o *Options) { o.Trials = 0 },
		func(o *Options) { o.MaxGenerations = 0 },
		func(o *Options) { o.Width = 0 },
	}
	for i, mutate := range bad {
		opts := base
		mutate(&opts)
		if _, err := Run(context.Background(), opts); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("case %d: got %v, expected ErrInvalidOptions", i, err)
		}
	}
}

func TestExtinctFraction(t *testing.T) {
	if got := (Report{Trials: 4, Extinct: 1}).ExtinctFraction(); got != 0.25 {
		t.Fatalf("fraction %.2f, expected 0.25", got)
	}
	if got := (Report{}).ExtinctFraction(); got != 0 {
		t.Fatalf("fraction %.2f for zero trials, expected 0", got)
	}
}
