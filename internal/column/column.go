// Package column describes the laboratory column: its geometry, the flow
// through it and linear sorption onto the solid matrix.
package column

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var ErrInvalidColumn = errors.New("column: invalid geometry or flow")

// Column holds the physical set-up in SI units.
type Column struct {
	Length       float64 // [m]
	Radius       float64 // [m]
	FlowRate     float64 // [m3/s]
	Porosity     float64 // [-]
	SolidDensity float64 // [kg/m3]
	Kd           float64 // linear partitioning coefficient [m3/kg]
}

func (c Column) Validate() error {
	switch {
	case c.Length <= 0:
		return fmt.Errorf("length %g: %w", c.Length, ErrInvalidColumn)
	case c.Radius <= 0:
		return fmt.Errorf("radius %g: %w", c.Radius, ErrInvalidColumn)
	case c.FlowRate <= 0:
		return fmt.Errorf("flow rate %g: %w", c.FlowRate, ErrInvalidColumn)
	case c.Porosity <= 0 || c.Porosity > 1:
		return fmt.Errorf("porosity %g: %w", c.Porosity, ErrInvalidColumn)
	case c.SolidDensity < 0 || c.Kd < 0:
		return fmt.Errorf("sorption (rho_s=%g, Kd=%g): %w", c.SolidDensity, c.Kd, ErrInvalidColumn)
	}
	return nil
}

// Area is the cross-section [m2].
func (c Column) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// PoreSpace is the water-filled volume [m3].
func (c Column) PoreSpace() float64 {
	return c.Length * c.Area() * c.Porosity
}

// SeepageVelocity is the pore-water velocity [m/s].
func (c Column) SeepageVelocity() float64 {
	return c.FlowRate / (c.Area() * c.Porosity)
}

// PoreVolumeTime is the time [s] needed to flush the column once.
func (c Column) PoreVolumeTime() float64 {
	return c.Length / c.SeepageVelocity()
}

// BulkDensity is the dry bulk density (1-n)*rho_s [kg/m3].
func (c Column) BulkDensity() float64 {
	return (1 - c.Porosity) * c.SolidDensity
}

// Retardation is the linear-sorption retardation factor 1 + rho_b*Kd/n.
func (c Column) Retardation() float64 {
	return 1 + c.BulkDensity()*c.Kd/c.Porosity
}

// Grid subdivides the column into n equally spaced nodes starting at 0.5 %
// of its length, preceded by one node in front of the inlet at -5 %.
func (c Column) Grid(n int) []float64 {
	if n < 2 {
		return []float64{-0.05 * c.Length, c.Length}
	}
	xs := make([]float64, n+1)
	xs[0] = -0.05 * c.Length
	floats.Span(xs[1:], 0.005*c.Length, c.Length)
	return xs
}

// PoreVolumeAxis returns n equally spaced pore-volume multiples in [lo, hi].
func PoreVolumeAxis(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{hi}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
