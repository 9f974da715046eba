package transport

// Series is a breakthrough curve observed at one location.
type Series struct {
	X              float64   // observation point [m]
	PoreVolumes    []float64 // time axis in pore volumes
	Concentrations []float64 // c/c0
}

// Breakthrough evaluates s at x for every pore-volume multiple in pvs.
// poreVolumeTime is the time [s] needed to flush the column once.
func Breakthrough(s Solution, inj Injection, x float64, pvs []float64, poreVolumeTime float64, p Params) Series {
	out := Series{
		X:              x,
		PoreVolumes:    append([]float64(nil), pvs...),
		Concentrations: make([]float64, len(pvs)),
	}
	for j, pv := range pvs {
		out.Concentrations[j] = inj.Evaluate(s, x, pv*poreVolumeTime, p)
	}
	return out
}

// Peak returns the largest concentration and the pore volume it occurs at.
func (s Series) Peak() (pv, c float64) {
	for j, v := range s.Concentrations {
		if j == 0 || v > c {
			pv, c = s.PoreVolumes[j], v
		}
	}
	return pv, c
}
