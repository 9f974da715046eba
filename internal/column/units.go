package column

import (
	"fmt"
	"sort"
)

// Quantity groups units that convert into each other.
type Quantity string

const (
	Reaction   Quantity = "reaction"
	Dispersion Quantity = "dispersion"
	Flow       Quantity = "flow"
)

// Units maps a unit label to the factor converting it to SI.
var Units = map[Quantity]map[string]float64{
	Reaction: {
		"1/s":   1,
		"1/min": 1.0 / 60,
		"1/h":   1.0 / 3600,
		"1/d":   1.0 / 86400,
	},
	Dispersion: {
		"m2/s":   1,
		"m2/min": 1.0 / 60,
		"m2/h":   1.0 / 3600,
		"m2/d":   1.0 / 86400,
	},
	Flow: {
		"m3/s":   1,
		"mL/min": 1e-6 / 60,
		"mL/h":   1e-6 / 3600,
		"L/h":    1e-3 / 3600,
	},
}

// DefaultUnit is the unit the page shows first.
var DefaultUnit = map[Quantity]string{
	Reaction:   "1/h",
	Dispersion: "m2/h",
	Flow:       "mL/h",
}

// ToSI converts value given in unit to SI.
func ToSI(q Quantity, value float64, unit string) (float64, error) {
	f, ok := Units[q][unit]
	if !ok {
		return 0, fmt.Errorf("unknown %s unit: %s", q, unit)
	}
	return value * f, nil
}

// Convert converts value between two units of the same quantity.
func Convert(q Quantity, value float64, from, to string) (float64, error) {
	si, err := ToSI(q, value, from)
	if err != nil {
		return 0, err
	}
	f, ok := Units[q][to]
	if !ok {
		return 0, fmt.Errorf("unknown %s unit: %s", q, to)
	}
	return si / f, nil
}

// UnitLabels lists the units of q ordered from the smallest SI factor.
func UnitLabels(q Quantity) []string {
	labels := make([]string, 0, len(Units[q]))
	for u := range Units[q] {
		labels = append(labels, u)
	}
	sort.Slice(labels, func(i, j int) bool {
		return Units[q][labels[i]] < Units[q][labels[j]]
	})
	return labels
}
