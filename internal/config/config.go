package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/sampling"
	"github.com/san-kum/coltrans/internal/transport"
)

const (
	DefaultNodes   = 200
	DefaultSamples = 100
	DefaultPVMin   = 0.001
	DefaultPVMax   = 10.0
)

var ErrOutOfBounds = errors.New("config: value outside slider bounds")

// Slider is a single-valued control {min, max, step, value}.
type Slider struct {
	Min   float64 `yaml:"min" json:"min"`
	Max   float64 `yaml:"max" json:"max"`
	Step  float64 `yaml:"step" json:"step"`
	Value float64 `yaml:"value" json:"value"`
}

func (s Slider) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// RangeSlider is a two-handled control {min, max, step, lo, hi}.
type RangeSlider struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step" json:"step"`
	Lo   float64 `yaml:"lo" json:"lo"`
	Hi   float64 `yaml:"hi" json:"hi"`
}

// Sliders holds every control of the page. PoreVolume, Dispersion and
// Reaction are stored as natural logarithms of pore volumes, m2/h and 1/h.
type Sliders struct {
	PoreVolume    Slider      `yaml:"pore_volume" json:"pore_volume"`
	ColumnLength  Slider      `yaml:"column_length" json:"column_length"`
	ColumnRadius  Slider      `yaml:"column_radius" json:"column_radius"`
	FlowRate      Slider      `yaml:"flow_rate" json:"flow_rate"`
	Porosity      Slider      `yaml:"porosity" json:"porosity"`
	PulseDuration Slider      `yaml:"pulse_duration" json:"pulse_duration"`
	SolidDensity  Slider      `yaml:"solid_density" json:"solid_density"`
	Kd            Slider      `yaml:"kd" json:"kd"`
	Dispersion    RangeSlider `yaml:"dispersion" json:"dispersion"`
	Reaction      RangeSlider `yaml:"reaction" json:"reaction"`
}

type Config struct {
	Solution    string  `yaml:"solution"`
	BTCSolution string  `yaml:"btc_solution"`
	Injection   string  `yaml:"injection"`
	Sorption    bool    `yaml:"sorption"`
	NumNodes    int     `yaml:"num_nodes"`
	NumSamples  int     `yaml:"num_samples"`
	Seed        int64   `yaml:"seed"`
	BTCX        float64 `yaml:"btc_x"`
	Sliders     Sliders `yaml:"sliders"`
}

func logSlider(min, max, value float64, divisions int) Slider {
	lo, hi := math.Log(min), math.Log(max)
	return Slider{Min: lo, Max: hi, Step: (hi - lo) / float64(divisions), Value: math.Log(value)}
}

func logRange(min, max, lo, hi float64, divisions int) RangeSlider {
	a, b := math.Log(min), math.Log(max)
	return RangeSlider{Min: a, Max: b, Step: (b - a) / float64(divisions), Lo: math.Log(lo), Hi: math.Log(hi)}
}

func DefaultConfig() *Config {
	return &Config{
		Solution:    "runkler",
		BTCSolution: "ogata-banks",
		Injection:   "continuous",
		NumNodes:    DefaultNodes,
		NumSamples:  DefaultSamples,
		Sliders: Sliders{
			PoreVolume:    logSlider(DefaultPVMin, DefaultPVMax, 0.5, 1000),
			ColumnRadius:  Slider{Min: 0.005, Max: 0.2, Step: 0.0001, Value: 0.05},
			FlowRate:      Slider{Min: 1, Max: 50, Step: 0.1, Value: 10},
			Porosity:      Slider{Min: 0.01, Max: 1, Step: 0.01, Value: 0.5},
			PulseDuration: Slider{Min: 30, Max: 360000, Step: 30, Value: 18000},
			ColumnLength:  Slider{Min: 0.01, Max: 0.5, Step: 0.001, Value: 0.2},
			SolidDensity:  Slider{Min: 2000, Max: 3000, Step: 1, Value: 2650},
			Kd:            Slider{Min: 5e-5, Max: 5e-3, Step: 5e-5, Value: 2e-3},
			Dispersion:    logRange(1e-6, 1e-1, 1e-5, 5e-5, 300),
			Reaction:      logRange(1e-4, 1, 1e-3, 5e-3, 300),
		},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in a yaml file onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.NumNodes < 2 {
		return fmt.Errorf("config: num_nodes must be at least 2, got %d", c.NumNodes)
	}
	if c.NumSamples < 1 {
		return fmt.Errorf("config: num_samples must be positive, got %d", c.NumSamples)
	}
	if _, err := transport.Lookup(c.Solution); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := transport.Lookup(c.BTCSolution); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := transport.ParseInjectionMode(c.Injection); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	s := c.Sliders
	single := map[string]Slider{
		"pore_volume":    s.PoreVolume,
		"column_length":  s.ColumnLength,
		"column_radius":  s.ColumnRadius,
		"flow_rate":      s.FlowRate,
		"porosity":       s.Porosity,
		"pulse_duration": s.PulseDuration,
		"solid_density":  s.SolidDensity,
		"kd":             s.Kd,
	}
	for name, sl := range single {
		if !sl.Contains(sl.Value) {
			return fmt.Errorf("%s = %g not in [%g, %g]: %w", name, sl.Value, sl.Min, sl.Max, ErrOutOfBounds)
		}
	}
	for name, r := range map[string]RangeSlider{"dispersion": s.Dispersion, "reaction": s.Reaction} {
		if r.Lo > r.Hi || r.Lo < r.Min || r.Hi > r.Max {
			return fmt.Errorf("%s = [%g, %g] not in [%g, %g]: %w", name, r.Lo, r.Hi, r.Min, r.Max, ErrOutOfBounds)
		}
	}
	if c.BTCX < 0 || c.BTCX > s.ColumnLength.Value {
		return fmt.Errorf("btc_x = %g outside the column: %w", c.BTCX, ErrOutOfBounds)
	}

	return c.Column().Validate()
}

// Column converts the slider values to SI.
func (c *Config) Column() column.Column {
	flow, _ := column.ToSI(column.Flow, c.Sliders.FlowRate.Value, "mL/h")
	return column.Column{
		Length:       c.Sliders.ColumnLength.Value,
		Radius:       c.Sliders.ColumnRadius.Value,
		FlowRate:     flow,
		Porosity:     c.Sliders.Porosity.Value,
		SolidDensity: c.Sliders.SolidDensity.Value,
		Kd:           c.Sliders.Kd.Value,
	}
}

// PoreVolumes is the displayed time point in pore volumes.
func (c *Config) PoreVolumes() float64 {
	return math.Exp(c.Sliders.PoreVolume.Value)
}

// DispersionRange is the uncertain dispersion interval in m2/s.
func (c *Config) DispersionRange() sampling.Range {
	return expRange(c.Sliders.Dispersion, column.Dispersion, "m2/h")
}

// ReactionRange is the uncertain reaction interval in 1/s.
func (c *Config) ReactionRange() sampling.Range {
	return expRange(c.Sliders.Reaction, column.Reaction, "1/h")
}

func expRange(r RangeSlider, q column.Quantity, unit string) sampling.Range {
	f := column.Units[q][unit]
	return sampling.Range{Lo: math.Exp(r.Lo), Hi: math.Exp(r.Hi)}.Scale(f)
}

func (c *Config) InjectionSpec() transport.Injection {
	mode, _ := transport.ParseInjectionMode(c.Injection)
	return transport.Injection{Mode: mode, Duration: c.Sliders.PulseDuration.Value}
}

// BTCLocation is the breakthrough observation point; half the column unless set.
func (c *Config) BTCLocation() float64 {
	if c.BTCX > 0 {
		return c.BTCX
	}
	return c.Sliders.ColumnLength.Value / 2
}
