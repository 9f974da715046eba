package transport

import "fmt"

// InjectionMode selects how solute enters the column.
type InjectionMode int

const (
	Continuous InjectionMode = iota
	Pulse
)

func (m InjectionMode) String() string {
	switch m {
	case Pulse:
		return "pulse"
	default:
		return "continuous"
	}
}

// ParseInjectionMode accepts "continuous" or "pulse".
func ParseInjectionMode(s string) (InjectionMode, error) {
	switch s {
	case "", "continuous":
		return Continuous, nil
	case "pulse":
		return Pulse, nil
	}
	return Continuous, fmt.Errorf("unknown injection mode: %s", s)
}

// Injection describes the inlet boundary. Duration [s] only applies to Pulse.
type Injection struct {
	Mode     InjectionMode
	Duration float64
}

// Evaluate returns the concentration at (x, t). A pulse of length Duration is
// the superposition of a continuous injection and a delayed negative one.
func (in Injection) Evaluate(s Solution, x, t float64, p Params) float64 {
	c := s.Concentration(x, t, p)
	if in.Mode != Pulse || t <= in.Duration {
		return c
	}
	c -= s.Concentration(x, t-in.Duration, p)
	if c < 0 {
		return 0
	}
	return c
}
