package transport

import (
	"math"
	"testing"
)

func TestBreakthroughPlateau(t *testing.T) {
	p := Params{Velocity: 7.0736e-7, Dispersion: 3e-5 / 3600, Reaction: 3e-3 / 3600}
	poreVolumeTime := 0.2 / p.Velocity
	pvs := []float64{0.001, 0.5, 1, 2, 5, 10, 40}

	btc := Breakthrough(OgataBanks{}, Injection{}, 0.1, pvs, poreVolumeTime, p)

	if len(btc.Concentrations) != len(pvs) {
		t.Fatalf("expected %d points, got %d", len(pvs), len(btc.Concentrations))
	}
	if btc.Concentrations[0] > 1e-6 {
		t.Errorf("expected no breakthrough at 0.001 PV, got %g", btc.Concentrations[0])
	}

	plateau := SteadyState(0.1, p)
	last := btc.Concentrations[len(btc.Concentrations)-1]
	if math.Abs(last-plateau) > 1e-6 {
		t.Errorf("expected plateau %.6f, got %.6f", plateau, last)
	}

	for j := 1; j < len(pvs); j++ {
		if btc.Concentrations[j] < btc.Concentrations[j-1]-1e-12 {
			t.Errorf("continuous BTC decreased at %g PV", pvs[j])
		}
	}
}

func TestBreakthroughPulsePeak(t *testing.T) {
	p := Params{Velocity: 7.0736e-7, Dispersion: 3e-5 / 3600}
	poreVolumeTime := 0.2 / p.Velocity
	pvs := make([]float64, 200)
	for i := range pvs {
		pvs[i] = 0.001 + float64(i)*(10-0.001)/199
	}

	pulse := Injection{Mode: Pulse, Duration: 18000}
	btc := Breakthrough(Runkler{}, pulse, 0.1, pvs, poreVolumeTime, p)

	pv, c := btc.Peak()
	if c <= 0 || c >= 1 {
		t.Errorf("expected attenuated pulse peak, got %g", c)
	}
	if pv < 0.3 || pv > 1 {
		t.Errorf("expected peak near half a pore volume, got %g PV", pv)
	}
	if last := btc.Concentrations[len(pvs)-1]; last > 1e-6 {
		t.Errorf("expected pulse to have passed, got %g", last)
	}
}
