package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

// Ensemble runs independent random soups concurrently, one goroutine per
// run, with consecutive seeds starting at SeedStart.
type Ensemble struct {
	Width     int
	Height    int
	Density   float64
	NumRuns   int
	SeedStart int64
	// Metrics builds a fresh metric set for each run.
	Metrics func() []Metric
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	if e.NumRuns <= 0 {
		return nil, fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, e.NumRuns)
	}
	results := make([]*Result, e.NumRuns)
	errs := make([]error, e.NumRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.NumRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.SeedStart + int64(idx)
			g, err := life.New(e.Width, e.Height)
			if err != nil {
				errs[idx] = err
				return
			}
			if err := g.SetCells(patterns.Random(e.Width, e.Height, e.Density, seed)); err != nil {
				errs[idx] = err
				return
			}

			s := New(g)
			if e.Metrics != nil {
				for _, m := range e.Metrics() {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(ctx, cfg)
			if res != nil {
				res.Seed = seed
			}
			results[idx], errs[idx] = res, err
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
