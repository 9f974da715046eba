package transport

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositive indicates a velocity or dispersion coefficient <= 0.
	ErrNonPositive = errors.New("transport: coefficient must be positive")

	// ErrNegativeReaction indicates a negative first-order reaction rate.
	ErrNegativeReaction = errors.New("transport: reaction rate must not be negative")
)

// Params are the ADRE coefficients in SI units.
type Params struct {
	Velocity   float64 // seepage velocity [m/s]
	Dispersion float64 // dispersion coefficient [m2/s]
	Reaction   float64 // first-order reaction rate [1/s]
}

// Validate reports whether p describes a physical system. The evaluators
// themselves never call it.
func (p Params) Validate() error {
	if p.Velocity <= 0 {
		return fmt.Errorf("velocity %g: %w", p.Velocity, ErrNonPositive)
	}
	if p.Dispersion <= 0 {
		return fmt.Errorf("dispersion %g: %w", p.Dispersion, ErrNonPositive)
	}
	if p.Reaction < 0 {
		return fmt.Errorf("reaction %g: %w", p.Reaction, ErrNegativeReaction)
	}
	return nil
}

// Retarded scales all coefficients by a retardation factor r >= 1. Decay is
// taken to act on the dissolved phase only.
func (p Params) Retarded(r float64) Params {
	if r <= 0 {
		return p
	}
	return Params{
		Velocity:   p.Velocity / r,
		Dispersion: p.Dispersion / r,
		Reaction:   p.Reaction / r,
	}
}

// Gamma is the Ogata-Banks decay factor sqrt(1 + 4kD/v^2).
func Gamma(reac, disp, vel float64) float64 {
	return math.Sqrt(1 + 4*reac*disp/(vel*vel))
}
