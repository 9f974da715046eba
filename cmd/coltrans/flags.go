package main

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/coltrans/internal/config"
)

var (
	configFile  string
	preset      string
	seed        int64
	solution    string
	btcSolution string
	injection   string
	sorption    bool
	numNodes    int
	numSamples  int
	btcX        float64
	// slider values in display units
	poreVolumes   float64 // [PV]
	colLength     float64 // [m]
	colRadius     float64 // [m]
	flowRate      float64 // [mL/h]
	porosity      float64
	pulseDuration float64 // [s]
	solidDensity  float64 // [kg/m3]
	kd            float64 // [m3/kg]
	dispLo        float64 // [m2/h]
	dispHi        float64
	reacLo        float64 // [1/h]
	reacHi        float64
)

func addScenarioFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	s := def.Sliders

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for the Latin Hypercube")
	f.StringVar(&solution, "solution", def.Solution, "profile solution (runkler, ogata-banks)")
	f.StringVar(&btcSolution, "btc-solution", def.BTCSolution, "breakthrough solution (runkler, ogata-banks)")
	f.StringVar(&injection, "injection", def.Injection, "injection mode (continuous, pulse)")
	f.BoolVar(&sorption, "sorption", def.Sorption, "linear sorption")
	f.IntVar(&numNodes, "nodes", def.NumNodes, "column nodes")
	f.IntVar(&numSamples, "samples", def.NumSamples, "Latin Hypercube samples")
	f.Float64Var(&btcX, "btc-x", 0, "breakthrough location [m], half the column if 0")
	f.Float64Var(&poreVolumes, "pv", math.Exp(s.PoreVolume.Value), "displayed time [pore volumes]")
	f.Float64Var(&colLength, "length", s.ColumnLength.Value, "column length [m]")
	f.Float64Var(&colRadius, "radius", s.ColumnRadius.Value, "column radius [m]")
	f.Float64Var(&flowRate, "flow", s.FlowRate.Value, "flow rate [mL/h]")
	f.Float64Var(&porosity, "porosity", s.Porosity.Value, "porosity [-]")
	f.Float64Var(&pulseDuration, "pulse", s.PulseDuration.Value, "pulse duration [s]")
	f.Float64Var(&solidDensity, "rho-s", s.SolidDensity.Value, "solid density [kg/m3]")
	f.Float64Var(&kd, "kd", s.Kd.Value, "linear partitioning coefficient [m3/kg]")
	f.Float64Var(&dispLo, "disp-lo", math.Exp(s.Dispersion.Lo), "lower dispersion coefficient [m2/h]")
	f.Float64Var(&dispHi, "disp-hi", math.Exp(s.Dispersion.Hi), "upper dispersion coefficient [m2/h]")
	f.Float64Var(&reacLo, "reac-lo", math.Exp(s.Reaction.Lo), "lower reaction coefficient [1/h]")
	f.Float64Var(&reacHi, "reac-hi", math.Exp(s.Reaction.Hi), "upper reaction coefficient [1/h]")
}

// resolveConfig applies defaults, then the preset, then the config file,
// then every flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	fileSeed := int64(0)
	if configFile != "" {
		cfg.Seed = 0
		if err := cfg.Merge(configFile); err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		fileSeed = cfg.Seed
	}

	changed := cmd.Flags().Changed
	if fileSeed == 0 || changed("seed") {
		cfg.Seed = seed
	}
	if changed("solution") {
		cfg.Solution = solution
	}
	if changed("btc-solution") {
		cfg.BTCSolution = btcSolution
	}
	if changed("injection") {
		cfg.Injection = injection
	}
	if changed("sorption") {
		cfg.Sorption = sorption
	}
	if changed("nodes") {
		cfg.NumNodes = numNodes
	}
	if changed("samples") {
		cfg.NumSamples = numSamples
	}
	if changed("btc-x") {
		cfg.BTCX = btcX
	}

	s := &cfg.Sliders
	sliders := []struct {
		flag string
		dst  *float64
		v    float64
	}{
		{"length", &s.ColumnLength.Value, colLength},
		{"radius", &s.ColumnRadius.Value, colRadius},
		{"flow", &s.FlowRate.Value, flowRate},
		{"porosity", &s.Porosity.Value, porosity},
		{"pulse", &s.PulseDuration.Value, pulseDuration},
		{"rho-s", &s.SolidDensity.Value, solidDensity},
		{"kd", &s.Kd.Value, kd},
		{"pv", &s.PoreVolume.Value, math.Log(poreVolumes)},
		{"disp-lo", &s.Dispersion.Lo, math.Log(dispLo)},
		{"disp-hi", &s.Dispersion.Hi, math.Log(dispHi)},
		{"reac-lo", &s.Reaction.Lo, math.Log(reacLo)},
		{"reac-hi", &s.Reaction.Hi, math.Log(reacHi)},
	}
	for _, l := range sliders {
		if changed(l.flag) {
			*l.dst = l.v
		}
	}

	log.WithFields(logrus.Fields{
		"preset":    preset,
		"config":    configFile,
		"seed":      cfg.Seed,
		"solution":  cfg.Solution,
		"injection": cfg.Injection,
		"sorption":  cfg.Sorption,
	}).Debug("configuration resolved")
	return cfg, preset, nil
}
