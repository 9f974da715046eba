package page

import (
	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/experiment"
)

// Model is everything the client script needs to redraw the page: the
// initial rendering, the control bounds, the unit tables and the Latin
// Hypercube draws that keep the browser ensemble identical to this one.
type Model struct {
	Solution       string                     `json:"solution"`
	BTCSolution    string                     `json:"btc_solution"`
	Injection      string                     `json:"injection"`
	Sorption       bool                       `json:"sorption"`
	NumNodes       int                        `json:"num_nodes"`
	Seed           int64                      `json:"seed"`
	PVMin          float64                    `json:"pv_min"`
	PVMax          float64                    `json:"pv_max"`
	BTCX           float64                    `json:"btc_x"`
	Velocity       float64                    `json:"velocity"`
	PoreVolumeTime float64                    `json:"pore_volume_time"`
	Retardation    float64                    `json:"retardation"`
	Sliders        config.Sliders             `json:"sliders"`
	Units          map[column.Quantity][]Unit `json:"units"`
	DefaultUnits   map[column.Quantity]string `json:"default_units"`
	L1             []float64                  `json:"l1"`
	L2             []float64                  `json:"l2"`
	Profile        Profile                    `json:"profile"`
	Breakthrough   Breakthrough               `json:"breakthrough"`
}

type Unit struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

type Profile struct {
	X             []float64 `json:"x"`
	Central       []float64 `json:"central"`
	Min           []float64 `json:"min"`
	Max           []float64 `json:"max"`
	LowerQuartile []float64 `json:"lower_quartile"`
	UpperQuartile []float64 `json:"upper_quartile"`
	Mean          []float64 `json:"mean"`
}

type Breakthrough struct {
	PoreVolume    []float64 `json:"pore_volume"`
	Concentration []float64 `json:"concentration"`
}

func NewModel(cfg *config.Config, res *experiment.Result) *Model {
	units := make(map[column.Quantity][]Unit, len(column.Units))
	for q, table := range column.Units {
		for _, label := range column.UnitLabels(q) {
			units[q] = append(units[q], Unit{Label: label, Factor: table[label]})
		}
	}

	b := res.Bands
	return &Model{
		Solution:       res.Solution,
		BTCSolution:    res.BTCSolution,
		Injection:      res.Injection.Mode.String(),
		Sorption:       cfg.Sorption,
		NumNodes:       cfg.NumNodes,
		Seed:           res.Seed,
		PVMin:          config.DefaultPVMin,
		PVMax:          config.DefaultPVMax,
		BTCX:           res.Breakthrough.X,
		Velocity:       res.Velocity,
		PoreVolumeTime: res.PoreVolumeTime,
		Retardation:    res.Retardation,
		Sliders:        cfg.Sliders,
		Units:          units,
		DefaultUnits:   column.DefaultUnit,
		L1:             res.L1,
		L2:             res.L2,
		Profile: Profile{
			X:             res.Grid,
			Central:       res.Central,
			Min:           b.Min,
			Max:           b.Max,
			LowerQuartile: b.LowerQuartile,
			UpperQuartile: b.UpperQuartile,
			Mean:          b.Mean,
		},
		Breakthrough: Breakthrough{
			PoreVolume:    res.Breakthrough.PoreVolumes,
			Concentration: res.Breakthrough.Concentrations,
		},
	}
}
