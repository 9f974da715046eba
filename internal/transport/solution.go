package transport

import (
	"fmt"
	"math"
)

// Solution is a closed-form concentration evaluator c(x, t)/c0.
type Solution interface {
	Name() string
	Concentration(x, t float64, p Params) float64
}

// Runkler is the Runkler (1996, eq. 8) approximation of the ADRE.
type Runkler struct{}

func (Runkler) Name() string { return "runkler" }

func (Runkler) Concentration(x, t float64, p Params) float64 {
	if x <= 0 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	h := 2 * p.Reaction * p.Dispersion / (p.Velocity * p.Velocity)
	arg := (x - p.Velocity*t*(1+h)) / (2 * math.Sqrt(p.Dispersion*t))
	return 0.5 * math.Exp(-p.Reaction*x/p.Velocity) * math.Erfc(arg)
}

// OgataBanks is the Ogata-Banks (1962) solution extended with first-order
// decay (continuous injection, semi-infinite column).
type OgataBanks struct{}

func (OgataBanks) Name() string { return "ogata-banks" }

func (OgataBanks) Concentration(x, t float64, p Params) float64 {
	if x <= 0 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	gam := Gamma(p.Reaction, p.Dispersion, p.Velocity)
	a := x * p.Velocity / (2 * p.Dispersion)
	s := math.Sqrt(4 * p.Dispersion * t)
	vt := p.Velocity * t * gam

	lead := math.Exp(a*(1-gam)) * math.Erfc((x-vt)/s)
	tail := expErfc(a*(1+gam), (x+vt)/s)
	return 0.5 * (lead + tail)
}

// SteadyState is the continuous-injection plateau reached as t -> inf.
func SteadyState(x float64, p Params) float64 {
	if x <= 0 {
		return 1
	}
	gam := Gamma(p.Reaction, p.Dispersion, p.Velocity)
	return math.Exp(x * p.Velocity * (1 - gam) / (2 * p.Dispersion))
}

// Profile evaluates c over xs at time t. dst is reused when large enough.
func Profile(s Solution, inj Injection, xs []float64, t float64, p Params, dst []float64) []float64 {
	if cap(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}
	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = inj.Evaluate(s, x, t, p)
	}
	return dst
}

// Lookup returns the solution registered under name.
func Lookup(name string) (Solution, error) {
	switch name {
	case "runkler", "":
		return Runkler{}, nil
	case "ogata-banks", "ogata", "ogatabanks":
		return OgataBanks{}, nil
	}
	return nil, fmt.Errorf("unknown solution: %s", name)
}
