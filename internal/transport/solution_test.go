package transport_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coltrans/internal/transport"
)

// Default lab column: 0.2 m long, 5 cm radius, 10 mL/h, porosity 0.5.
var (
	column = transport.Params{
		Velocity:   7.0736e-7,
		Dispersion: 3e-5 / 3600,
		Reaction:   3e-3 / 3600,
	}
	halfPoreVolume = 0.5 * 0.2 / 7.0736e-7
)

func grid(n int, length float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = length * float64(i+1) / float64(n)
	}
	return xs
}

var _ = Describe("closed-form solutions", func() {
	solutions := []transport.Solution{transport.Runkler{}, transport.OgataBanks{}}

	for _, s := range solutions {
		s := s

		Describe(s.Name(), func() {
			It("holds the inlet at 1 for x <= 0", func() {
				for _, x := range []float64{0, -1e-6, -0.01} {
					for _, t := range []float64{0, 1, halfPoreVolume, 1e9} {
						Expect(s.Concentration(x, t, column)).To(Equal(1.0))
					}
				}
			})

			It("is zero inside the column before injection starts", func() {
				Expect(s.Concentration(0.05, 0, column)).To(Equal(0.0))
			})

			It("stays within [0, 1]", func() {
				for _, x := range grid(200, 0.2) {
					c := s.Concentration(x, halfPoreVolume, column)
					Expect(c).To(BeNumerically(">=", 0))
					Expect(c).To(BeNumerically("<=", 1))
				}
			})

			It("does not increase along the column", func() {
				prev := s.Concentration(0, halfPoreVolume, column)
				for _, x := range grid(200, 0.2) {
					c := s.Concentration(x, halfPoreVolume, column)
					Expect(c).To(BeNumerically("<=", prev+1e-12))
					prev = c
				}
			})

			It("is reproducible", func() {
				a := transport.Profile(s, transport.Injection{}, grid(50, 0.2), halfPoreVolume, column, nil)
				b := transport.Profile(s, transport.Injection{}, grid(50, 0.2), halfPoreVolume, column, nil)
				Expect(a).To(Equal(b))
			})
		})
	}

	Describe("Ogata-Banks", func() {
		ob := transport.OgataBanks{}

		It("approaches the steady-state plateau", func() {
			x := 0.1
			plateau := transport.SteadyState(x, column)
			late := ob.Concentration(x, 50*2*halfPoreVolume, column)
			Expect(late).To(BeNumerically("~", plateau, 1e-9))
			Expect(plateau).To(BeNumerically("<", 1))
		})

		It("reaches 1 without decay", func() {
			p := column
			p.Reaction = 0
			Expect(transport.SteadyState(0.1, p)).To(Equal(1.0))
			Expect(ob.Concentration(0.1, 100*2*halfPoreVolume, p)).To(BeNumerically("~", 1, 1e-9))
		})

		It("adds the inlet reflection term to the Runkler front without decay", func() {
			p := column
			p.Reaction = 0
			for _, x := range grid(40, 0.2) {
				Expect(ob.Concentration(x, halfPoreVolume, p)).To(
					BeNumerically(">=", transport.Runkler{}.Concentration(x, halfPoreVolume, p)))
			}
		})

		It("stays finite for very small dispersion", func() {
			p := column
			p.Dispersion = 1e-6 / 3600
			for _, x := range grid(200, 0.2) {
				c := ob.Concentration(x, halfPoreVolume, p)
				Expect(math.IsNaN(c) || math.IsInf(c, 0)).To(BeFalse(), "x=%g", x)
			}
		})
	})

	Describe("pulse injection", func() {
		pulse := transport.Injection{Mode: transport.Pulse, Duration: 18000}

		It("empties the inlet once the pulse ends", func() {
			Expect(pulse.Evaluate(transport.Runkler{}, -0.01, 20000, column)).To(Equal(0.0))
			Expect(pulse.Evaluate(transport.Runkler{}, -0.01, 10000, column)).To(Equal(1.0))
		})

		It("never exceeds the continuous injection", func() {
			cont := transport.Injection{}
			for _, x := range grid(100, 0.2) {
				Expect(pulse.Evaluate(transport.OgataBanks{}, x, halfPoreVolume, column)).To(
					BeNumerically("<=", cont.Evaluate(transport.OgataBanks{}, x, halfPoreVolume, column)))
			}
		})
	})

	DescribeTable("Lookup",
		func(name, want string, ok bool) {
			s, err := transport.Lookup(name)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name()).To(Equal(want))
		},
		Entry("default", "", "runkler", true),
		Entry("runkler", "runkler", "runkler", true),
		Entry("ogata-banks", "ogata-banks", "ogata-banks", true),
		Entry("unknown", "crank-nicolson", "", false),
	)
})

var _ = Describe("reference values", func() {
	DescribeTable("profile at half a pore volume",
		func(x, runkler, ogataBanks float64) {
			Expect(transport.Runkler{}.Concentration(x, halfPoreVolume, column)).To(BeNumerically("~", runkler, 1e-12))
			Expect(transport.OgataBanks{}.Concentration(x, halfPoreVolume, column)).To(BeNumerically("~", ogataBanks, 1e-12))
		},
		Entry("x = 0.01 m", 0.01, 0.9606334070922748, 0.9846191420896256),
		Entry("x = 0.05 m", 0.05, 0.8122548153031898, 0.8737439919986165),
		Entry("x = 0.10 m", 0.10, 0.4647000500108525, 0.5458627509491047),
		Entry("x = 0.15 m", 0.15, 0.13852950737697264, 0.17742689743790205),
	)

	Describe("steep front", func() {
		steep := transport.Params{
			Velocity:   column.Velocity,
			Dispersion: 1e-12,
			Reaction:   column.Reaction,
		}
		t := 0.15 / steep.Velocity

		It("is zero ahead of the front", func() {
			Expect(transport.Runkler{}.Concentration(0.2, t, steep)).To(Equal(0.0))
			Expect(transport.OgataBanks{}.Concentration(0.2, t, steep)).To(Equal(0.0))
		})

		It("sits on the plateau behind the front", func() {
			plateau := transport.SteadyState(0.1, steep)
			c := transport.OgataBanks{}.Concentration(0.1, t, steep)
			Expect(math.IsNaN(c)).To(BeFalse())
			Expect(c).To(BeNumerically("~", plateau, 1e-12))
			Expect(transport.Runkler{}.Concentration(0.1, t, steep)).To(BeNumerically("~", math.Exp(-steep.Reaction*0.1/steep.Velocity), 1e-12))
		})
	})
})
