package metrics

// Recovery is the zeroth temporal moment of the curve, the integral of c
// over pore volumes (trapezoidal rule).
type Recovery struct {
	name    string
	prevPV  float64
	prevC   float64
	samples int
	sum     float64
}

func NewRecovery() *Recovery { return &Recovery{name: "recovery"} }

func (r *Recovery) Name() string { return r.name }

func (r *Recovery) Observe(pv, c float64) {
	if r.samples > 0 {
		r.sum += 0.5 * (c + r.prevC) * (pv - r.prevPV)
	}
	r.prevPV, r.prevC = pv, c
	r.samples++
}

func (r *Recovery) Value() float64 { return r.sum }

func (r *Recovery) Reset() {
	r.prevPV, r.prevC, r.sum = 0, 0, 0
	r.samples = 0
}

// MeanArrival is the normalised first temporal moment in pore volumes.
type MeanArrival struct {
	name    string
	prevPV  float64
	prevC   float64
	samples int
	m0, m1  float64
}

func NewMeanArrival() *MeanArrival { return &MeanArrival{name: "mean_arrival"} }

func (m *MeanArrival) Name() string { return m.name }

func (m *MeanArrival) Observe(pv, c float64) {
	if m.samples > 0 {
		dt := pv - m.prevPV
		m.m0 += 0.5 * (c + m.prevC) * dt
		m.m1 += 0.5 * (c*pv + m.prevC*m.prevPV) * dt
	}
	m.prevPV, m.prevC = pv, c
	m.samples++
}

func (m *MeanArrival) Value() float64 {
	if m.m0 == 0 {
		return 0
	}
	return m.m1 / m.m0
}

func (m *MeanArrival) Reset() {
	m.prevPV, m.prevC = 0, 0
	m.m0, m.m1 = 0, 0
	m.samples = 0
}
