package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme pairs lipgloss text colours with the asciigraph series colours of
// the charts.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color

	Central  asciigraph.AnsiColor
	Quartile asciigraph.AnsiColor
	Envelope asciigraph.AnsiColor
	Curve    asciigraph.AnsiColor
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Primary:   lipgloss.Color("#00ccff"),
		Secondary: lipgloss.Color("#888899"),
		Accent:    lipgloss.Color("#ff4444"),
		Muted:     lipgloss.Color("#666688"),
		Central:   asciigraph.Red,
		Quartile:  asciigraph.White,
		Envelope:  asciigraph.Gray,
		Curve:     asciigraph.Red,
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Muted:     lipgloss.Color("#4488aa"),
		Central:   asciigraph.Gold,
		Quartile:  asciigraph.SkyBlue,
		Envelope:  asciigraph.SteelBlue,
		Curve:     asciigraph.Gold,
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Muted:     lipgloss.Color("#005500"),
		Central:   asciigraph.Lime,
		Quartile:  asciigraph.Green,
		Envelope:  asciigraph.DarkGreen,
		Curve:     asciigraph.Lime,
	}

	Themes = []Theme{ThemeClassic, ThemeOcean, ThemeRetro}
)

// GetTheme returns a theme by name, the classic theme if unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
