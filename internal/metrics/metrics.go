// Package metrics reduces breakthrough curves and profiles to scalars.
package metrics

// Metric accumulates a curve sample by sample, in increasing pore volume.
type Metric interface {
	Name() string
	Observe(pv, c float64)
	Value() float64
	Reset()
}

// Default returns the metrics reported for every run.
func Default() []Metric {
	return []Metric{
		NewArrival(0.5),
		NewPeak(),
		NewRecovery(),
		NewMeanArrival(),
	}
}

// Evaluate feeds a whole curve through ms and collects their values.
func Evaluate(ms []Metric, pvs, cs []float64) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for j := range pvs {
			m.Observe(pvs[j], cs[j])
		}
		out[m.Name()] = m.Value()
	}
	return out
}
