// Package transport evaluates closed-form solutions of the one-dimensional
// advection-dispersion-reaction equation (ADRE) for a column with a constant
// inlet concentration.
//
// Two solutions are provided:
//
//   - [Runkler]: the Runkler (1996) approximation used for the column profile
//   - [OgataBanks]: the Ogata-Banks (1962) solution with first-order decay,
//     used for the breakthrough curve
//
// All concentrations are normalised by the inlet concentration, so the inlet
// (x <= 0) is always 1.
//
// # Example
//
//	p := transport.Params{Velocity: 7e-7, Dispersion: 8e-9, Reaction: 8e-7}
//	c := transport.OgataBanks{}.Concentration(0.1, 3600, p)
//
// Evaluators are pure functions and safe for concurrent use.
package transport
