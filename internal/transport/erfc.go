package transport

import "math"

// maxExp is the largest argument for which math.Exp stays finite.
const maxExp = 709.0

// expErfc returns exp(a)*erfc(z) without overflowing exp(a) or underflowing
// erfc(z). The product is bounded for the arguments the ADRE produces.
func expErfc(a, z float64) float64 {
	if a < maxExp {
		if e := math.Erfc(z); e > 0 {
			return math.Exp(a) * e
		}
	}
	if z <= 0 {
		return math.Inf(1)
	}
	return math.Exp(a-z*z) * erfcxLarge(z)
}

// erfcxLarge is the asymptotic expansion of the scaled complementary error
// function exp(z^2)*erfc(z), accurate to ~1e-9 for z > 20.
func erfcxLarge(z float64) float64 {
	z2 := 1 / (z * z)
	series := 1 - 0.5*z2 + 0.75*z2*z2 - 1.875*z2*z2*z2
	return series / (z * math.SqrtPi)
}
