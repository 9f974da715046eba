package config

import (
	"math"
	"sort"
)

// Presets are named variations of the default column experiment.
var Presets = map[string]func(c *Config){
	"default": func(c *Config) {},
	"sorbing": func(c *Config) {
		c.Sorption = true
		c.Sliders.PoreVolume.Value = math.Log(3)
	},
	"pulse": func(c *Config) {
		c.Injection = "pulse"
		c.Sliders.PulseDuration.Value = 36000
	},
	"sorbing-pulse": func(c *Config) {
		c.Sorption = true
		c.Injection = "pulse"
		c.Sliders.PulseDuration.Value = 72000
		c.Sliders.PoreVolume.Value = math.Log(4)
	},
	"fast-decay": func(c *Config) {
		c.Sliders.Reaction.Lo = math.Log(5e-2)
		c.Sliders.Reaction.Hi = math.Log(2e-1)
	},
	"ogata-banks": func(c *Config) {
		c.Solution = "ogata-banks"
	},
	"long-column": func(c *Config) {
		c.Sliders.ColumnLength.Value = 0.5
		c.Sliders.FlowRate.Value = 25
		c.Sliders.Dispersion.Lo = math.Log(5e-5)
		c.Sliders.Dispersion.Hi = math.Log(5e-4)
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
