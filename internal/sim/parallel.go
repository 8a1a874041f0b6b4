package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs many scenarios concurrently. Each run gets a fresh Simulator
// from the factory so metrics are never shared.
type Ensemble struct {
	factory func() *Simulator
	limit   int
}

func NewEnsemble(factory func() *Simulator) *Ensemble {
	return &Ensemble{factory: factory, limit: runtime.NumCPU()}
}

// SetLimit caps the number of concurrent runs. n <= 0 removes the cap.
func (e *Ensemble) SetLimit(n int) { e.limit = n }

// Run returns results in scenario order. The first error cancels the rest.
func (e *Ensemble) Run(ctx context.Context, scenarios []Scenario) ([]*Result, error) {
	results := make([]*Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			res, err := e.factory().Run(ctx, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
