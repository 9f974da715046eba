package transport

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestErfcxLargeMatchesDirectProduct(t *testing.T) {
	for _, z := range []float64{20, 22, 25} {
		direct := math.Exp(z*z) * math.Erfc(z)
		if got := erfcxLarge(z); !scalar.EqualWithinRel(got, direct, 1e-9) {
			t.Errorf("z=%g: erfcxLarge = %.15g, direct = %.15g", z, got, direct)
		}
	}
}

func TestExpErfcLargeArguments(t *testing.T) {
	tests := []struct {
		name string
		a, z float64
		want float64
	}{
		// exp(a) overflows, erfc(z) underflows, product is exp(-1)*erfcx(30)
		{"overflowing exponent", 899, 30, math.Exp(-1) * erfcxLarge(30)},
		{"underflowing erfc", 0, 40, 0},
		{"regular", 1, 0.5, math.E * math.Erfc(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expErfc(tt.a, tt.z)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("expErfc(%g, %g) = %v", tt.a, tt.z, got)
			}
			if !scalar.EqualWithinAbsOrRel(got, tt.want, 1e-300, 1e-12) {
				t.Errorf("expErfc(%g, %g) = %.15g, want %.15g", tt.a, tt.z, got, tt.want)
			}
		})
	}
	if got := expErfc(899, 30); !scalar.EqualWithinRel(got, math.Exp(-1)*0.0187958888614168, 1e-9) {
		t.Errorf("expErfc(899, 30) = %.15g", got)
	}
}
