package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/coltrans/internal/ensemble"
)

// frame maps data coordinates onto an SVG viewport with a margin.
type frame struct {
	width, height int
	margin        float64
	minX, maxX    float64
	minY, maxY    float64
}

func newFrame(xs []float64, minY, maxY float64, width, height int) frame {
	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}
	return frame{width: width, height: height, margin: 30, minX: minX, maxX: maxX, minY: minY, maxY: maxY}
}

func (f frame) x(v float64) float64 {
	w := float64(f.width) - 2*f.margin
	return f.margin + (v-f.minX)/(f.maxX-f.minX)*w
}

func (f frame) y(v float64) float64 {
	h := float64(f.height) - 2*f.margin
	return float64(f.height) - f.margin - (v-f.minY)/(f.maxY-f.minY)*h
}

func (f frame) header(sb *strings.Builder) {
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, f.width, f.height, f.width, f.height))
	// axes
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#444444" stroke-width="1" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, f.x(f.minX), f.y(f.maxY), f.x(f.minX), f.y(f.minY), f.x(f.maxX), f.y(f.minY)))
}

func (f frame) path(sb *strings.Builder, xs, ys []float64, stroke string, width float64) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, stroke, width))
	for i := range xs {
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.x(xs[i]), f.y(ys[i])))
	}
	sb.WriteString("\"/>\n")
}

// band fills the area between lo and hi.
func (f frame) band(sb *strings.Builder, xs, lo, hi []float64, fill string, opacity float64) {
	sb.WriteString(fmt.Sprintf(`<path fill="%s" fill-opacity="%.2f" stroke="none" d="M`, fill, opacity))
	for i := range xs {
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.x(xs[i]), f.y(hi[i])))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", f.x(xs[i]), f.y(lo[i])))
	}
	sb.WriteString(" Z\"/>\n")
}

// ProfileSVG draws the concentration profile with its min/max and quartile
// bands on a fixed [0, 1] concentration axis.
func ProfileSVG(grid, central []float64, bands ensemble.Bands, width, height int) string {
	if len(grid) < 2 || len(central) != len(grid) || bands.Len() != len(grid) {
		return ""
	}

	f := newFrame(grid, 0, 1, width, height)

	var sb strings.Builder
	f.header(&sb)
	f.band(&sb, grid, bands.Min, bands.Max, "#1f77b4", 0.2)
	f.band(&sb, grid, bands.LowerQuartile, bands.UpperQuartile, "#1f77b4", 0.4)
	f.path(&sb, grid, central, "#d62728", 2)
	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG draws a single curve, the breakthrough curve on the page.
func SeriesSVG(xs, ys []float64, width, height int, strokeColor string) string {
	if len(xs) < 2 || len(ys) != len(xs) {
		return ""
	}

	maxY := 1.0
	for _, y := range ys {
		if y > maxY {
			maxY = y
		}
	}
	f := newFrame(xs, 0, maxY, width, height)

	var sb strings.Builder
	f.header(&sb)
	f.path(&sb, xs, ys, strokeColor, 1.5)
	sb.WriteString("</svg>")
	return sb.String()
}
