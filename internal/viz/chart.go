package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coltrans/internal/ensemble"
)

type ChartOptions struct {
	Width   int
	Height  int
	Caption string
	Theme   Theme
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.Height <= 0 {
		o.Height = 12
	}
	if o.Theme.Name == "" {
		o.Theme = ThemeClassic
	}
	return o
}

// ProfileChart plots the envelope, the quartiles and the central profile
// over the column nodes on a fixed [0, 1] axis.
func ProfileChart(central []float64, bands ensemble.Bands, opts ChartOptions) (string, error) {
	if len(central) == 0 || len(central) != bands.Len() {
		return "", fmt.Errorf("profile chart: %d central values, %d band values", len(central), bands.Len())
	}
	opts = opts.withDefaults()
	t := opts.Theme

	return asciigraph.PlotMany(
		[][]float64{bands.Min, bands.Max, bands.LowerQuartile, bands.UpperQuartile, central},
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(opts.Caption),
		asciigraph.SeriesColors(t.Envelope, t.Envelope, t.Quartile, t.Quartile, t.Central),
	), nil
}

// BreakthroughChart plots the breakthrough concentrations.
func BreakthroughChart(cs []float64, opts ChartOptions) (string, error) {
	if len(cs) == 0 {
		return "", fmt.Errorf("breakthrough chart: no data")
	}
	opts = opts.withDefaults()

	return asciigraph.Plot(cs,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(opts.Caption),
		asciigraph.SeriesColors(opts.Theme.Curve),
	), nil
}
