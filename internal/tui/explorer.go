// Package tui is the terminal counterpart of the web page: a bubbletea
// program that steps the column parameters with the keyboard and redraws
// the profile and breakthrough charts.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/experiment"
	"github.com/san-kum/coltrans/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var solutions = []string{"runkler", "ogata-banks"}

// param is one adjustable slider value. Log parameters are shown as exp(v).
type param struct {
	name  string
	unit  string
	value *float64
	min   float64
	max   float64
	step  float64
	log   bool
	// pair keeps a range slider ordered: lo <= hi.
	lo, hi *float64
}

func (p param) display() float64 {
	if p.log {
		return math.Exp(*p.value)
	}
	return *p.value
}

func (p param) adjust(steps float64) {
	v := math.Min(math.Max(*p.value+steps*p.step, p.min), p.max)
	*p.value = v
	if p.lo != nil && p.hi != nil && *p.lo > *p.hi {
		if p.value == p.lo {
			*p.hi = *p.lo
		} else {
			*p.lo = *p.hi
		}
	}
}

type model struct {
	cfg    *config.Config
	params []param
	cursor int
	theme  int

	result *experiment.Result
	err    error

	width  int
	height int
}

// NewExplorer returns the explorer model for cfg. cfg is modified in place
// as the user moves the controls.
func NewExplorer(cfg *config.Config) *model {
	m := &model{cfg: cfg, width: 100, height: 40}
	m.params = buildParams(cfg)
	m.recompute()
	return m
}

func buildParams(cfg *config.Config) []param {
	s := &cfg.Sliders
	if cfg.BTCX <= 0 {
		cfg.BTCX = s.ColumnLength.Value / 2
	}
	slider := func(name, unit string, sl *config.Slider, log bool) param {
		return param{name: name, unit: unit, value: &sl.Value, min: sl.Min, max: sl.Max, step: sl.Step, log: log}
	}
	ranged := func(name, unit string, r *config.RangeSlider, hi bool) param {
		p := param{name: name, unit: unit, value: &r.Lo, min: r.Min, max: r.Max, step: r.Step, log: true, lo: &r.Lo, hi: &r.Hi}
		if hi {
			p.value = &r.Hi
		}
		return p
	}
	return []param{
		slider("pore volume", "PV", &s.PoreVolume, true),
		ranged("dispersion lo", "m2/h", &s.Dispersion, false),
		ranged("dispersion hi", "m2/h", &s.Dispersion, true),
		ranged("reaction lo", "1/h", &s.Reaction, false),
		ranged("reaction hi", "1/h", &s.Reaction, true),
		{name: "btc x", unit: "m", value: &cfg.BTCX, min: s.ColumnLength.Value * 0.005, max: s.ColumnLength.Value, step: s.ColumnLength.Step},
		slider("flow rate", "mL/h", &s.FlowRate, false),
		slider("porosity", "-", &s.Porosity, false),
		slider("pulse", "s", &s.PulseDuration, false),
		slider("kd", "m3/kg", &s.Kd, false),
	}
}

func (m *model) recompute() {
	exp, err := experiment.New(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	res, err := exp.Run(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.result, m.err = res, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	changed := true
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		changed = false
	case "down", "j":
		if m.cursor < len(m.params)-1 {
			m.cursor++
		}
		changed = false
	case "left", "h":
		m.params[m.cursor].adjust(-10)
	case "right", "l":
		m.params[m.cursor].adjust(10)
	case "H":
		m.params[m.cursor].adjust(-1)
	case "L":
		m.params[m.cursor].adjust(1)
	case "s":
		m.cfg.Solution = next(solutions, m.cfg.Solution)
	case "b":
		m.cfg.BTCSolution = next(solutions, m.cfg.BTCSolution)
	case "i":
		if m.cfg.Injection == "pulse" {
			m.cfg.Injection = "continuous"
		} else {
			m.cfg.Injection = "pulse"
		}
	case "o":
		m.cfg.Sorption = !m.cfg.Sorption
	case "n":
		m.cfg.Seed++
	case "t":
		m.theme = (m.theme + 1) % len(viz.Themes)
		changed = false
	default:
		changed = false
	}
	if changed {
		m.recompute()
	}
	return m, nil
}

func next(list []string, cur string) string {
	for i, s := range list {
		if s == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

func (m model) View() string {
	theme := viz.Themes[m.theme]
	title, _, _ := theme.Styled()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + title.Render("c o l t r a n s") + "  " + dim.Render(m.summary()) + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", 60)) + "\n\n")

	cw := m.width - 16
	if cw < 40 {
		cw = 40
	}
	ch := (m.height - len(m.params) - 14) / 2
	if ch < 6 {
		ch = 6
	}

	if m.err != nil {
		b.WriteString("  " + red.Render("error: "+m.err.Error()) + "\n\n")
	}
	if res := m.result; res != nil {
		profile, err := viz.ProfileChart(res.Central, res.Bands, viz.ChartOptions{
			Width: cw, Height: ch, Theme: theme,
			Caption: fmt.Sprintf("profile at %.3f PV (%s)", res.PoreVolumes, res.Solution),
		})
		if err == nil {
			b.WriteString(profile + "\n\n")
		}
		btc, err := viz.BreakthroughChart(res.Breakthrough.Concentrations, viz.ChartOptions{
			Width: cw, Height: ch, Theme: theme,
			Caption: fmt.Sprintf("breakthrough at x = %.3f m, 0 - %g PV (%s)", res.Breakthrough.X,
				config.DefaultPVMax, res.BTCSolution),
		})
		if err == nil {
			b.WriteString(btc + "\n\n")
		}
		_, width := res.Bands.Width()
		b.WriteString("  " + dim.Render("spread ") + viz.Sparkline(spread(res), 40) +
			dim.Render(fmt.Sprintf("  max %.3f", width)) + "\n\n")
	}

	for i, p := range m.params {
		val := fmt.Sprintf("%10.4g %s", p.display(), p.unit)
		if i == m.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", p.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("    " + dim.Render(fmt.Sprintf("%-14s", p.name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n" + dim.Render("  ↑↓ select  ←→ adjust  H/L fine  s/b solution  i injection  o sorption  n reseed  t theme  q quit") + "\n")
	return b.String()
}

func (m model) summary() string {
	inj := m.cfg.Injection
	if inj == "" {
		inj = "continuous"
	}
	sorption := "no sorption"
	if m.cfg.Sorption {
		sorption = "linear sorption"
	}
	s := fmt.Sprintf("%s, %s, seed %d", inj, sorption, m.cfg.Seed)
	if m.result != nil {
		s += fmt.Sprintf(", 1 PV = %.2f h, R = %.2f", m.result.PoreVolumeTime/3600, m.result.Retardation)
	}
	return s
}

func spread(res *experiment.Result) []float64 {
	out := make([]float64, res.Bands.Len())
	for i := range out {
		out[i] = res.Bands.Max[i] - res.Bands.Min[i]
	}
	return out
}

// Run starts the explorer in the alternate screen.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewExplorer(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
