package metrics

import (
	"math"
	"testing"
)

func ramp() (pvs, cs []float64) {
	for i := 0; i <= 10; i++ {
		pv := float64(i) * 0.2
		pvs = append(pvs, pv)
		cs = append(cs, math.Min(pv, 1))
	}
	return pvs, cs
}

func TestArrival(t *testing.T) {
	pvs, cs := ramp()
	m := NewArrival(0.5)

	if m.Name() != "arrival_c50" {
		t.Errorf("unexpected name %q", m.Name())
	}

	got := Evaluate([]Metric{m}, pvs, cs)["arrival_c50"]
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected arrival at 0.5 PV, got %f", got)
	}

	m.Reset()
	m.Observe(0, 0)
	m.Observe(1, 0.1)
	if m.Value() != 0 {
		t.Errorf("expected zero when threshold not reached, got %f", m.Value())
	}
}

func TestPeak(t *testing.T) {
	vals := Evaluate([]Metric{NewPeak()}, []float64{0, 1, 2}, []float64{0.1, 0.7, 0.3})
	if vals["peak"] != 0.7 {
		t.Errorf("expected peak 0.7, got %f", vals["peak"])
	}
}

func TestRecoveryAndMeanArrival(t *testing.T) {
	// triangle centred on PV 1 with unit area
	pvs := []float64{0, 0.5, 1, 1.5, 2}
	cs := []float64{0, 0.5, 1, 0.5, 0}

	vals := Evaluate([]Metric{NewRecovery(), NewMeanArrival()}, pvs, cs)
	if math.Abs(vals["recovery"]-1) > 1e-12 {
		t.Errorf("expected recovery 1, got %f", vals["recovery"])
	}
	if math.Abs(vals["mean_arrival"]-1) > 1e-12 {
		t.Errorf("expected mean arrival 1, got %f", vals["mean_arrival"])
	}
}

func TestMetricReset(t *testing.T) {
	for _, m := range Default() {
		m.Observe(0, 0)
		m.Observe(1, 1)
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%s: expected zero after reset, got %f", m.Name(), m.Value())
		}
	}
}

func TestFrontPosition(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	cs := []float64{1, 0.8, 0.4, 0}

	if got := FrontPosition(xs, cs, 0.5); math.Abs(got-1.75) > 1e-12 {
		t.Errorf("expected front at 1.75, got %f", got)
	}
	if got := FrontPosition(xs, []float64{1, 1, 1, 1}, 0.5); got != 3 {
		t.Errorf("expected column end, got %f", got)
	}
}
