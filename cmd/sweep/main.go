package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"conway/internal/sweep"
)

func main() {
	densities := flag.String("densities", "0.1,0.2,0.3,0.4,0.5,0.6", "comma separated seed densities")
	trials := flag.Int("trials", 64, "boards to play per density")
	generations := flag.Int("generations", 500, "generation cap per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 50, "board width in cells")
	height := flag.Int("height", 50, "board height in cells")
	seed := flag.Int64("seed", 1, "base seed")
	flag.Parse()

	list, err := parseDensities(*densities)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d densities (%d trials each, %d workers, %d generations, %dx%d)\n",
		len(list), *trials, *workers, *generations, *width, *height)
	start := time.Now()
	reports, err := sweep.Run(ctx, sweep.Options{
		Densities:      list,
		Trials:         *trials,
		MaxGenerations: *generations,
		Workers:        *workers,
		Width:          *width,
		Height:         *height,
		Seed:           *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-8s %-8s %-8s %s\n", "density", "extinct", "settled", "mean gens")
	for _, r := range reports {
		fmt.Printf("%-8.2f %-8.2f %-8d %.1f\n", r.Density, r.ExtinctFraction(), r.Settled, r.MeanGenerations)
	}
	fmt.Printf("Finished in %s\n", time.Since(start).Round(time.Millisecond))
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "[parseDensities] bad density %q", field)
		}
		out = append(out, v)
	}
	return out, nil
}
