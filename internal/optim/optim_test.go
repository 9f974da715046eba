package optim

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/transport"
)

func TestGridSearch(t *testing.T) {
	gs := NewGridSearch([]string{"a", "b"}, [][]float64{{-1, 0, 1, 2}, {0, 3, 5}})
	best, val, err := gs.Search(context.Background(), func(p map[string]float64) (float64, error) {
		return (p["a"]-1)*(p["a"]-1) + (p["b"]-3)*(p["b"]-3), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if best["a"] != 1 || best["b"] != 3 || val != 0 {
		t.Errorf("expected a=1 b=3 at 0, got %v at %g", best, val)
	}
}

func TestGridSearchNoCandidate(t *testing.T) {
	gs := NewGridSearch([]string{"a"}, [][]float64{{1, 2}})
	_, _, err := gs.Search(context.Background(), func(map[string]float64) (float64, error) {
		return 0, errors.New("fail")
	})
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("expected ErrNoCandidate, got %v", err)
	}
}

func TestGridSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gs := NewGridSearch([]string{"a"}, [][]float64{{1, 2}})
	_, _, err := gs.Search(ctx, func(map[string]float64) (float64, error) { return 0, nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLogGrid(t *testing.T) {
	g := LogGrid(1e-4, 1, 5)
	if len(g) != 5 {
		t.Fatalf("expected 5 values, got %d", len(g))
	}
	if !scalar.EqualWithinRel(g[0], 1e-4, 1e-12) || !scalar.EqualWithinRel(g[4], 1, 1e-12) {
		t.Errorf("grid ends %g..%g", g[0], g[4])
	}
	if !scalar.EqualWithinRel(g[2], 1e-2, 1e-9) {
		t.Errorf("expected geometric midpoint 1e-2, got %g", g[2])
	}
	if one := LogGrid(1, 100, 1); one[0] != 10 {
		t.Errorf("single point grid = %v", one)
	}
}

func TestRMSE(t *testing.T) {
	if got := RMSE([]float64{1, 2}, []float64{1, 4}); !scalar.EqualWithinAbs(got, math.Sqrt2, 1e-12) {
		t.Errorf("RMSE = %g, want sqrt(2)", got)
	}
	if !math.IsNaN(RMSE(nil, nil)) {
		t.Error("expected NaN for empty input")
	}
}

func TestFitBreakthroughRecoversGridPoint(t *testing.T) {
	cfg := config.DefaultConfig()
	const points = 10
	dGrid, kGrid := FitGrids(cfg, points)
	truth := transport.Params{
		Velocity:   cfg.Column().SeepageVelocity(),
		Dispersion: dGrid[4],
		Reaction:   kGrid[6],
	}

	pvs := column.PoreVolumeAxis(0.05, 5, 40)
	sol, err := transport.Lookup(cfg.BTCSolution)
	if err != nil {
		t.Fatal(err)
	}
	s := transport.Breakthrough(sol, cfg.InjectionSpec(), cfg.BTCLocation(), pvs, cfg.Column().PoreVolumeTime(), truth)
	obs := &Observation{PoreVolumes: pvs, Concentrations: s.Concentrations}

	fit, err := FitBreakthrough(context.Background(), cfg, obs, points)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if fit.Dispersion != dGrid[4] || fit.Reaction != kGrid[6] {
		t.Errorf("expected D=%g k=%g, got D=%g k=%g", dGrid[4], kGrid[6], fit.Dispersion, fit.Reaction)
	}
	if fit.RMSE != 0 {
		t.Errorf("expected exact match, got RMSE %g", fit.RMSE)
	}
	if fit.Evaluated != points*points {
		t.Errorf("expected %d evaluations, got %d", points*points, fit.Evaluated)
	}
}

func TestFitBreakthroughErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	obs := &Observation{PoreVolumes: []float64{1, 2}, Concentrations: []float64{0.5}}
	if _, err := FitBreakthrough(context.Background(), cfg, obs, 5); err == nil {
		t.Error("expected error for mismatched observation")
	}
	obs.Concentrations = append(obs.Concentrations, 0.7)
	if _, err := FitBreakthrough(context.Background(), cfg, obs, 0); err == nil {
		t.Error("expected error for zero points")
	}
}

func TestReadObservation(t *testing.T) {
	obs, err := ReadObservation(strings.NewReader("pore_volume,concentration\n0.5,0.1\n1.0,0.6\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(obs.PoreVolumes) != 2 || obs.Concentrations[1] != 0.6 {
		t.Errorf("unexpected observation %+v", obs)
	}
	if _, err := ReadObservation(strings.NewReader("pore_volume,concentration\n")); err == nil {
		t.Error("expected error for empty table")
	}
}
