package export

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/coltrans/internal/ensemble"
)

const (
	figWidth  = 6 * vg.Inch
	figHeight = 4 * vg.Inch
)

var (
	centralColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	bandColor    = color.RGBA{R: 31, G: 119, B: 180, A: 60}
	quartColor   = color.RGBA{R: 31, G: 119, B: 180, A: 120}
	btcColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func bandPolygon(xs, lo, hi []float64, c color.Color) (*plotter.Polygon, error) {
	pts := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: hi[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: xs[i], Y: lo[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Width = 0
	return poly, nil
}

// ProfilePlot shows the central profile over the column with the min/max and
// interquartile bands of the ensemble.
func ProfilePlot(grid, central []float64, bands ensemble.Bands, title string) (*plot.Plot, error) {
	if len(grid) != len(central) || bands.Len() != len(grid) {
		return nil, fmt.Errorf("profile plot: %d nodes, %d central values, %d band values",
			len(grid), len(central), bands.Len())
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "distance [m]"
	p.Y.Label.Text = "relative concentration [-]"
	p.Y.Min = 0
	p.Y.Max = 1

	outer, err := bandPolygon(grid, bands.Min, bands.Max, bandColor)
	if err != nil {
		return nil, err
	}
	inner, err := bandPolygon(grid, bands.LowerQuartile, bands.UpperQuartile, quartColor)
	if err != nil {
		return nil, err
	}
	line, err := plotter.NewLine(xys(grid, central))
	if err != nil {
		return nil, err
	}
	line.Color = centralColor
	line.Width = vg.Points(2)

	p.Add(outer, inner, line)
	p.Legend.Add("min/max", outer)
	p.Legend.Add("quartiles", inner)
	p.Legend.Add("central", line)
	p.Legend.Top = true
	return p, nil
}

// BreakthroughPlot shows concentration against pore volumes.
func BreakthroughPlot(pvs, cs []float64, title string) (*plot.Plot, error) {
	if len(pvs) != len(cs) {
		return nil, fmt.Errorf("breakthrough plot: %d pore volumes, %d concentrations", len(pvs), len(cs))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "pore volumes [-]"
	p.Y.Label.Text = "relative concentration [-]"
	p.Y.Min = 0

	line, err := plotter.NewLine(xys(pvs, cs))
	if err != nil {
		return nil, err
	}
	line.Color = btcColor
	line.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// WriteFigure renders p in format ("png", "svg", "pdf", ...).
func WriteFigure(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(figWidth, figHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveFigure writes p to path; the format follows the file extension.
func SaveFigure(p *plot.Plot, path string) error {
	return p.Save(figWidth, figHeight, path)
}

// FigurePaths derives the profile and breakthrough file names from base,
// e.g. out.png -> out-profile.png, out-btc.png.
func FigurePaths(base string) (profile, btc string) {
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".png"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "-profile" + ext, stem + "-btc" + ext
}
