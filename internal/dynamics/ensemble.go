package dynamics

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/ternary/internal/simplex"
)

// Ensemble integrates one trajectory per start point concurrently.
type Ensemble struct {
	sys           System
	newIntegrator func() Integrator
}

// NewEnsemble takes an integrator constructor because integrators keep
// scratch buffers and cannot be shared between goroutines.
func NewEnsemble(sys System, newIntegrator func() Integrator) *Ensemble {
	return &Ensemble{sys: sys, newIntegrator: newIntegrator}
}

// Run returns trajectories in start order. The first failure, by start
// index, is returned.
func (e *Ensemble) Run(ctx context.Context, starts []simplex.Point, cfg Config) ([][]simplex.Point, error) {
	results := make([][]simplex.Point, len(starts))
	errs := make([]error, len(starts))

	var wg sync.WaitGroup
	for i := range starts {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = Simulate(ctx, e.sys, e.newIntegrator(), starts[idx], cfg)
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("trajectory %d: %w", i, err)
		}
	}

	return results, nil
}
