// Package optim searches scene parameters for the best metric value.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/glide/internal/sim"
)

var ErrNoCandidates = errors.New("optim: no candidate produced a result")

// Param is one searched dimension.
type Param struct {
	Name   string
	Values []float64
}

// Range lists lo, lo+step, ... up to and including hi.
func Range(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return []float64{lo}
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Build turns one assignment of parameters into a scenario.
type Build func(params map[string]float64) (sim.Scenario, error)

type Best struct {
	Params map[string]float64
	Value  float64
	Result *sim.Result
	Tried  int
}

// GridSearch tries every combination of parameter values and keeps the one
// with the lowest metric. Candidates that fail to build or run are skipped.
type GridSearch struct {
	params []Param
}

func NewGridSearch(params ...Param) *GridSearch {
	return &GridSearch{params: params}
}

func (g *GridSearch) Search(ctx context.Context, build Build, newSim func() *sim.Simulator, metric string) (*Best, error) {
	best := &Best{Value: math.Inf(1)}
	if err := g.search(ctx, 0, map[string]float64{}, build, newSim, metric, best); err != nil {
		return nil, err
	}
	if best.Params == nil {
		return nil, fmt.Errorf("%w (metric %q)", ErrNoCandidates, metric)
	}
	return best, nil
}

func (g *GridSearch) search(ctx context.Context, depth int, current map[string]float64,
	build Build, newSim func() *sim.Simulator, metric string, best *Best) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.params) {
		best.Tried++
		sc, err := build(current)
		if err != nil {
			return nil
		}
		res, err := newSim().Run(ctx, sc)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		val, ok := res.Metrics[metric]
		if !ok || val < 0 || val >= best.Value {
			return nil
		}
		best.Value = val
		best.Result = res
		best.Params = make(map[string]float64, len(current))
		for k, v := range current {
			best.Params[k] = v
		}
		return nil
	}

	p := g.params[depth]
	for _, val := range p.Values {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[p.Name] = val
		if err := g.search(ctx, depth+1, next, build, newSim, metric, best); err != nil {
			return err
		}
	}
	return nil
}
