package ensemble

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bands are per-position statistics across an ensemble.
type Bands struct {
	Min           []float64
	Max           []float64
	LowerQuartile []float64
	UpperQuartile []float64
	Mean          []float64
}

// Len returns the number of grid nodes.
func (b Bands) Len() int { return len(b.Min) }

// Width returns the largest min/max spread and the node where it occurs.
func (b Bands) Width() (node int, width float64) {
	for i := range b.Min {
		if w := b.Max[i] - b.Min[i]; w > width {
			node, width = i, w
		}
	}
	return node, width
}

// Summarize reduces a field to min, max, quartiles and mean per node.
func Summarize(f Field) (Bands, error) {
	if f.Members() == 0 {
		return Bands{}, ErrEmptyEnsemble
	}
	n := f.Nodes()
	for _, row := range f {
		if len(row) != n {
			return Bands{}, ErrRaggedField
		}
	}

	b := Bands{
		Min:           make([]float64, n),
		Max:           make([]float64, n),
		LowerQuartile: make([]float64, n),
		UpperQuartile: make([]float64, n),
		Mean:          make([]float64, n),
	}

	col := make([]float64, f.Members())
	for i := 0; i < n; i++ {
		col = f.Column(i, col)
		sort.Float64s(col)

		b.Min[i] = floats.Min(col)
		b.Max[i] = floats.Max(col)
		b.LowerQuartile[i] = Quantile(col, 0.25)
		b.UpperQuartile[i] = Quantile(col, 0.75)
		b.Mean[i] = stat.Mean(col, nil)
	}

	return b, nil
}

// Quantile interpolates linearly between the order statistics of sorted at
// rank (n-1)*p, numpy's default rule.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
