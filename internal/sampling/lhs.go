// Package sampling draws stratified parameter samples.
package sampling

import (
	"fmt"
	"math/rand"
)

// LatinHypercube returns n draws in [0,1) with exactly one draw in each of
// the n equal strata. Strata are visited in random order.
func LatinHypercube(n int, rng *rand.Rand) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i, k := range rng.Perm(n) {
		out[i] = (float64(k) + rng.Float64()) / float64(n)
	}
	return out
}

// LHC is a multi-dimensional Latin Hypercube: U[dim][k] is the unit draw of
// sample k in dimension dim. Dimensions are independent permutations.
type LHC struct {
	U [][]float64
}

// NewLHC draws n samples in dims dimensions.
func NewLHC(rng *rand.Rand, n, dims int) *LHC {
	u := make([][]float64, dims)
	for d := range u {
		u[d] = LatinHypercube(n, rng)
	}
	return &LHC{U: u}
}

// Sample returns the unit coordinates of sample k.
func (h *LHC) Sample(k int) []float64 {
	out := make([]float64, len(h.U))
	for d := range h.U {
		out[d] = h.U[d][k]
	}
	return out
}

type Sampler struct {
	seed int64
	rng  *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (s *Sampler) Seed() int64 { return s.seed }

// Draw returns the next one-dimensional Latin Hypercube of size n.
func (s *Sampler) Draw(n int) []float64 {
	return LatinHypercube(n, s.rng)
}

// Hypercube draws n samples in dims dimensions.
func (s *Sampler) Hypercube(n, dims int) *LHC {
	return NewLHC(s.rng, n, dims)
}

// Pair draws two independent hypercubes, one per uncertain parameter.
func (s *Sampler) Pair(n int) (l1, l2 []float64) {
	h := s.Hypercube(n, 2)
	return h.U[0], h.U[1]
}

// Range is a closed interval of a physical parameter.
type Range struct {
	Lo float64
	Hi float64
}

// Map transforms a unit draw u affinely into the range.
func (r Range) Map(u float64) float64 {
	return r.Lo + (r.Hi-r.Lo)*u
}

// Mid is the centre of the range.
func (r Range) Mid() float64 {
	return r.Map(0.5)
}

func (r Range) Validate() error {
	if r.Hi < r.Lo {
		return fmt.Errorf("range [%g, %g]: upper bound below lower bound", r.Lo, r.Hi)
	}
	return nil
}

func (r Range) Scale(f float64) Range {
	return Range{Lo: r.Lo * f, Hi: r.Hi * f}
}
