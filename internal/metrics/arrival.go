package metrics

import "fmt"

// Arrival is the first pore volume at which c reaches a threshold,
// interpolated linearly. Zero when the threshold is never reached.
type Arrival struct {
	name      string
	threshold float64
	prevPV    float64
	prevC     float64
	samples   int
	arrival   float64
	reached   bool
}

func NewArrival(threshold float64) *Arrival {
	return &Arrival{
		name:      fmt.Sprintf("arrival_c%02.0f", threshold*100),
		threshold: threshold,
	}
}

func (a *Arrival) Name() string { return a.name }

func (a *Arrival) Observe(pv, c float64) {
	defer func() {
		a.prevPV, a.prevC = pv, c
		a.samples++
	}()
	if a.reached || c < a.threshold {
		return
	}
	a.reached = true
	if a.samples == 0 || c == a.prevC {
		a.arrival = pv
		return
	}
	frac := (a.threshold - a.prevC) / (c - a.prevC)
	a.arrival = a.prevPV + frac*(pv-a.prevPV)
}

func (a *Arrival) Value() float64 { return a.arrival }

func (a *Arrival) Reset() {
	a.prevPV, a.prevC = 0, 0
	a.samples = 0
	a.arrival = 0
	a.reached = false
}

type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak { return &Peak{name: "peak"} }

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(pv, c float64) {
	if c > p.max {
		p.max = c
	}
}

func (p *Peak) Value() float64 { return p.max }
func (p *Peak) Reset()         { p.max = 0 }
