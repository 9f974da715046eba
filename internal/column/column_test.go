package column

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func labColumn() Column {
	return Column{
		Length:       0.2,
		Radius:       0.05,
		FlowRate:     10e-6 / 3600,
		Porosity:     0.5,
		SolidDensity: 2650,
		Kd:           2e-3,
	}
}

func TestDerivedQuantities(t *testing.T) {
	c := labColumn()

	if !scalar.EqualWithinRel(c.SeepageVelocity(), 7.0736e-7, 1e-4) {
		t.Errorf("seepage velocity = %g", c.SeepageVelocity())
	}
	if !scalar.EqualWithinRel(c.PoreVolumeTime()/3600, 78.54, 1e-3) {
		t.Errorf("pore volume time = %g h", c.PoreVolumeTime()/3600)
	}
	if !scalar.EqualWithinRel(c.PoreSpace(), 0.2*math.Pi*0.0025*0.5, 1e-12) {
		t.Errorf("pore space = %g", c.PoreSpace())
	}
	if !scalar.EqualWithinAbs(c.Retardation(), 6.3, 1e-9) {
		t.Errorf("retardation = %g, want 6.3", c.Retardation())
	}

	c.Kd = 0
	if c.Retardation() != 1 {
		t.Errorf("retardation without sorption = %g", c.Retardation())
	}
}

func TestGrid(t *testing.T) {
	c := labColumn()
	xs := c.Grid(200)

	if len(xs) != 201 {
		t.Fatalf("expected 201 nodes, got %d", len(xs))
	}
	if xs[0] >= 0 {
		t.Errorf("first node should lie in front of the inlet, got %g", xs[0])
	}
	if !scalar.EqualWithinAbs(xs[1], 0.001, 1e-15) || !scalar.EqualWithinAbs(xs[200], 0.2, 1e-15) {
		t.Errorf("unexpected span [%g, %g]", xs[1], xs[200])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("grid not increasing at %d", i)
		}
	}
}

func TestPoreVolumeAxis(t *testing.T) {
	pvs := PoreVolumeAxis(0.001, 10, 200)
	if len(pvs) != 200 || pvs[0] != 0.001 || !scalar.EqualWithinAbs(pvs[199], 10, 1e-12) {
		t.Errorf("unexpected axis: len=%d first=%g last=%g", len(pvs), pvs[0], pvs[len(pvs)-1])
	}
}

func TestValidate(t *testing.T) {
	if err := labColumn().Validate(); err != nil {
		t.Fatalf("lab column invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Column)
	}{
		{"zero length", func(c *Column) { c.Length = 0 }},
		{"negative radius", func(c *Column) { c.Radius = -1 }},
		{"no flow", func(c *Column) { c.FlowRate = 0 }},
		{"porosity above one", func(c *Column) { c.Porosity = 1.5 }},
		{"negative kd", func(c *Column) { c.Kd = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := labColumn()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidColumn) {
				t.Errorf("expected ErrInvalidColumn, got %v", err)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		q        Quantity
		value    float64
		from, to string
		want     float64
	}{
		{Reaction, 1, "1/h", "1/s", 1.0 / 3600},
		{Reaction, 1, "1/h", "1/d", 24},
		{Dispersion, 60, "m2/h", "m2/min", 1},
		{Flow, 10, "mL/h", "m3/s", 10e-6 / 3600},
		{Flow, 1000, "mL/h", "L/h", 1},
	}
	for _, tt := range tests {
		got, err := Convert(tt.q, tt.value, tt.from, tt.to)
		if err != nil {
			t.Fatalf("%s %s->%s: %v", tt.q, tt.from, tt.to, err)
		}
		if !scalar.EqualWithinRel(got, tt.want, 1e-12) {
			t.Errorf("%s %g %s->%s = %g, want %g", tt.q, tt.value, tt.from, tt.to, got, tt.want)
		}
	}

	if _, err := Convert(Flow, 1, "gal/h", "m3/s"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestUnitLabels(t *testing.T) {
	got := UnitLabels(Reaction)
	want := []string{"1/d", "1/h", "1/min", "1/s"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UnitLabels(Reaction) = %v, want %v", got, want)
		}
	}
}
