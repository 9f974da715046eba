// Package ensemble propagates parameter uncertainty through a closed-form
// transport solution.
//
// A [Spec] fixes everything except the reaction rate and the dispersion
// coefficient, which are drawn from a Latin Hypercube and mapped into their
// physical ranges. [Sweep] evaluates one concentration profile per member and
// [Summarize] reduces the resulting [Field] to per-position bands:
//
//	field, _ := ensemble.Sweep(ctx, spec, l1, l2)
//	bands, _ := ensemble.Summarize(field)
//
// Members are independent and evaluated in parallel; the result does not
// depend on the number of workers.
package ensemble
