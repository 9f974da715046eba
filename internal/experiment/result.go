package experiment

import (
	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/ensemble"
	"github.com/san-kum/coltrans/internal/transport"
)

// Result is the complete initial rendering of one experiment.
type Result struct {
	Seed        int64
	Solution    string
	BTCSolution string
	Injection   transport.Injection

	Column         column.Column
	Velocity       float64 // [m/s]
	PoreVolumeTime float64 // [s]
	PoreVolumes    float64 // displayed time point [PV]
	Time           float64 // [s]
	Retardation    float64

	Grid    []float64
	Central []float64
	Bands   ensemble.Bands
	Field   ensemble.Field
	L1, L2  []float64

	Breakthrough transport.Series
	Metrics      map[string]float64
}
