package optim

import (
	"context"
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var ErrNoCandidate = errors.New("optim: no grid point could be evaluated")

// Objective scores one parameter combination; lower is better.
type Objective func(params map[string]float64) (float64, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search evaluates objective on the full tensor grid and returns the
// minimiser. Points whose objective fails are skipped.
func (g *GridSearch) Search(ctx context.Context, objective Objective) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	if err := g.searchRecursive(ctx, 0, make(map[string]float64), objective, &best, &bestParams); err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, 0, ErrNoCandidate
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	objective Objective,
	best *float64,
	bestParams *map[string]float64,
) error {
	if depth == len(g.paramNames) {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, err := objective(current)
		if err != nil || math.IsNaN(val) {
			return nil
		}
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		current[paramName] = val
		if err := g.searchRecursive(ctx, depth+1, current, objective, best, bestParams); err != nil {
			return err
		}
	}
	delete(current, paramName)
	return nil
}

// LogGrid returns n logarithmically spaced values from lo to hi.
func LogGrid(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{math.Sqrt(lo * hi)}
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}

// RMSE is the root mean square difference of two equally long series.
func RMSE(a, b []float64) float64 {
	if len(a) == 0 {
		return math.NaN()
	}
	return floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
}
