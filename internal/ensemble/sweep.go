package ensemble

import (
	"context"
	"math"

	"github.com/san-kum/coltrans/internal/sampling"
	"github.com/san-kum/coltrans/internal/transport"
)

// Field holds one concentration profile per ensemble member: Field[j][i] is
// member j at grid node i.
type Field [][]float64

// Members returns the number of ensemble members.
func (f Field) Members() int { return len(f) }

// Nodes returns the profile length.
func (f Field) Nodes() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Column copies the concentrations of all members at node i into dst.
func (f Field) Column(i int, dst []float64) []float64 {
	if cap(dst) < len(f) {
		dst = make([]float64, len(f))
	}
	dst = dst[:len(f)]
	for j := range f {
		dst[j] = f[j][i]
	}
	return dst
}

// Spec is the deterministic part of an ensemble sweep.
type Spec struct {
	Solution    transport.Solution
	Injection   transport.Injection
	Grid        []float64
	Time        float64 // [s]
	Velocity    float64 // [m/s]
	Reaction    sampling.Range
	Dispersion  sampling.Range
	Retardation float64 // 1 or 0 disables sorption
}

// Member maps a pair of unit draws to transport parameters.
func (s Spec) Member(u1, u2 float64) transport.Params {
	p := transport.Params{
		Velocity:   s.Velocity,
		Reaction:   s.Reaction.Map(u1),
		Dispersion: s.Dispersion.Map(u2),
	}
	if s.Retardation > 1 {
		p = p.Retarded(s.Retardation)
	}
	return p
}

const minMembersPerWorker = 8

// Sweep evaluates the profile of every member (l1[j], l2[j]).
func Sweep(ctx context.Context, spec Spec, l1, l2 []float64) (Field, error) {
	if len(l1) == 0 {
		return nil, ErrEmptyEnsemble
	}
	if len(l1) != len(l2) {
		return nil, ErrLengthMismatch
	}
	if len(spec.Grid) == 0 {
		return nil, ErrEmptyGrid
	}

	field := make(Field, len(l1))
	ParallelFor(len(l1), minMembersPerWorker, func(start, end int) {
		for j := start; j < end; j++ {
			if ctx.Err() != nil {
				return
			}
			p := spec.Member(l1[j], l2[j])
			field[j] = transport.Profile(spec.Solution, spec.Injection, spec.Grid, spec.Time, p, nil)
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for j, row := range field {
		for i, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, &MemberError{Member: j, Position: i, Wrapped: ErrInvalidValue}
			}
		}
	}

	return field, nil
}

// Central is the profile at the centre of both parameter ranges.
func Central(spec Spec) []float64 {
	p := spec.Member(0.5, 0.5)
	return transport.Profile(spec.Solution, spec.Injection, spec.Grid, spec.Time, p, nil)
}
