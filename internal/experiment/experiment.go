// Package experiment assembles a column experiment from its configuration
// and computes everything the page and the CLI display.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/ensemble"
	"github.com/san-kum/coltrans/internal/metrics"
	"github.com/san-kum/coltrans/internal/sampling"
	"github.com/san-kum/coltrans/internal/transport"
)

type Experiment struct {
	cfg     *config.Config
	sampler *sampling.Sampler
	profile transport.Solution
	btc     transport.Solution
	metrics []metrics.Metric
}

// New validates cfg and prepares an experiment seeded with cfg.Seed.
func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	profile, err := transport.Lookup(cfg.Solution)
	if err != nil {
		return nil, err
	}
	btc, err := transport.Lookup(cfg.BTCSolution)
	if err != nil {
		return nil, err
	}
	return &Experiment{
		cfg:     cfg,
		sampler: sampling.NewSampler(cfg.Seed),
		profile: profile,
		btc:     btc,
		metrics: metrics.Default(),
	}, nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// AddMetric registers an additional breakthrough metric.
func (e *Experiment) AddMetric(m metrics.Metric) { e.metrics = append(e.metrics, m) }

// Retardation is 1 unless sorption is enabled.
func (e *Experiment) Retardation() float64 {
	if !e.cfg.Sorption {
		return 1
	}
	return e.cfg.Column().Retardation()
}

// Spec is the ensemble sweep at the configured time point.
func (e *Experiment) Spec() ensemble.Spec {
	col := e.cfg.Column()
	return ensemble.Spec{
		Solution:    e.profile,
		Injection:   e.cfg.InjectionSpec(),
		Grid:        col.Grid(e.cfg.NumNodes),
		Time:        col.PoreVolumeTime() * e.cfg.PoreVolumes(),
		Velocity:    col.SeepageVelocity(),
		Reaction:    e.cfg.ReactionRange(),
		Dispersion:  e.cfg.DispersionRange(),
		Retardation: e.Retardation(),
	}
}

// MeanParams are the coefficients at the centre of both uncertain ranges,
// used for the breakthrough curve.
func (e *Experiment) MeanParams() transport.Params {
	p := transport.Params{
		Velocity:   e.cfg.Column().SeepageVelocity(),
		Dispersion: e.cfg.DispersionRange().Mid(),
		Reaction:   e.cfg.ReactionRange().Mid(),
	}
	if r := e.Retardation(); r > 1 {
		p = p.Retarded(r)
	}
	return p
}

// Breakthrough evaluates the curve at x over the default pore-volume axis.
func (e *Experiment) Breakthrough(x float64) transport.Series {
	col := e.cfg.Column()
	pvs := column.PoreVolumeAxis(config.DefaultPVMin, config.DefaultPVMax, e.cfg.NumNodes)
	return transport.Breakthrough(e.btc, e.cfg.InjectionSpec(), x, pvs, col.PoreVolumeTime(), e.MeanParams())
}

// Run draws the Latin Hypercube, sweeps the ensemble and evaluates the
// breakthrough curve.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	col := e.cfg.Column()
	spec := e.Spec()

	l1, l2 := e.sampler.Pair(e.cfg.NumSamples)
	field, err := ensemble.Sweep(ctx, spec, l1, l2)
	if err != nil {
		return nil, fmt.Errorf("ensemble sweep: %w", err)
	}
	bands, err := ensemble.Summarize(field)
	if err != nil {
		return nil, fmt.Errorf("ensemble summary: %w", err)
	}

	central := ensemble.Central(spec)
	btc := e.Breakthrough(e.cfg.BTCLocation())

	res := &Result{
		Seed:           e.sampler.Seed(),
		Solution:       e.profile.Name(),
		BTCSolution:    e.btc.Name(),
		Injection:      e.cfg.InjectionSpec(),
		Column:         col,
		Velocity:       col.SeepageVelocity(),
		PoreVolumeTime: col.PoreVolumeTime(),
		PoreVolumes:    e.cfg.PoreVolumes(),
		Time:           spec.Time,
		Retardation:    spec.Retardation,
		Grid:           spec.Grid,
		Central:        central,
		Bands:          bands,
		Field:          field,
		L1:             l1,
		L2:             l2,
		Breakthrough:   btc,
		Metrics:        metrics.Evaluate(e.metrics, btc.PoreVolumes, btc.Concentrations),
	}

	res.Metrics["front_position"] = metrics.FrontPosition(spec.Grid, central, 0.5)
	_, width := bands.Width()
	res.Metrics["band_width"] = width
	res.Metrics["plateau"] = transport.SteadyState(btc.X, e.MeanParams())

	return res, nil
}
