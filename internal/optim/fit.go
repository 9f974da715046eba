package optim

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/storage"
	"github.com/san-kum/coltrans/internal/transport"
)

// Observation is a measured breakthrough curve.
type Observation struct {
	PoreVolumes    []float64
	Concentrations []float64
}

// ReadObservation reads a pore_volume,concentration CSV table.
func ReadObservation(r io.Reader) (*Observation, error) {
	cols, err := storage.ReadColumns(r, 2)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("observation: no rows")
	}
	return &Observation{PoreVolumes: cols[0], Concentrations: cols[1]}, nil
}

// Fit is the best dispersion/reaction pair on the grid, in SI units.
type Fit struct {
	Dispersion float64 // [m2/s]
	Reaction   float64 // [1/s]
	RMSE       float64
	Evaluated  int
}

// FitBreakthrough searches a points x points logarithmic grid spanning the
// dispersion and reaction slider bounds of cfg for the pair whose
// breakthrough curve best matches obs. Column, injection, sorption and
// observation point are taken from cfg.
func FitBreakthrough(ctx context.Context, cfg *config.Config, obs *Observation, points int) (*Fit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(obs.PoreVolumes) != len(obs.Concentrations) {
		return nil, fmt.Errorf("observation: %d pore volumes, %d concentrations", len(obs.PoreVolumes), len(obs.Concentrations))
	}
	if points < 1 {
		return nil, fmt.Errorf("fit: points must be positive, got %d", points)
	}
	solution, err := transport.Lookup(cfg.BTCSolution)
	if err != nil {
		return nil, err
	}

	dGrid, kGrid := FitGrids(cfg, points)

	col := cfg.Column()
	retardation := 1.0
	if cfg.Sorption {
		retardation = col.Retardation()
	}
	x := cfg.BTCLocation()
	inj := cfg.InjectionSpec()
	pvTime := col.PoreVolumeTime()
	velocity := col.SeepageVelocity()

	evaluated := 0
	objective := func(p map[string]float64) (float64, error) {
		params := transport.Params{Velocity: velocity, Dispersion: p["dispersion"], Reaction: p["reaction"]}
		if retardation > 1 {
			params = params.Retarded(retardation)
		}
		evaluated++
		s := transport.Breakthrough(solution, inj, x, obs.PoreVolumes, pvTime, params)
		return RMSE(s.Concentrations, obs.Concentrations), nil
	}

	gs := NewGridSearch([]string{"dispersion", "reaction"}, [][]float64{dGrid, kGrid})
	best, rmse, err := gs.Search(ctx, objective)
	if err != nil {
		return nil, err
	}
	return &Fit{Dispersion: best["dispersion"], Reaction: best["reaction"], RMSE: rmse, Evaluated: evaluated}, nil
}

// FitGrids are the dispersion [m2/s] and reaction [1/s] candidates searched
// by FitBreakthrough.
func FitGrids(cfg *config.Config, points int) (dispersion, reaction []float64) {
	s := cfg.Sliders
	fd := column.Units[column.Dispersion]["m2/h"]
	fk := column.Units[column.Reaction]["1/h"]
	dispersion = LogGrid(math.Exp(s.Dispersion.Min)*fd, math.Exp(s.Dispersion.Max)*fd, points)
	reaction = LogGrid(math.Exp(s.Reaction.Min)*fk, math.Exp(s.Reaction.Max)*fk, points)
	return dispersion, reaction
}
