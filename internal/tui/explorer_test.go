package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/coltrans/internal/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.NumNodes = 20
	cfg.NumSamples = 8
	cfg.Seed = 3
	return cfg
}

func press(m model, key string) model {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(model)
}

func TestExplorerInitial(t *testing.T) {
	m := *NewExplorer(testConfig())
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.result == nil {
		t.Fatal("expected an initial result")
	}
	view := m.View()
	for _, want := range []string{"pore volume", "dispersion lo", "breakthrough at x", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExplorerAdjust(t *testing.T) {
	cfg := testConfig()
	m := *NewExplorer(cfg)
	before := cfg.Sliders.PoreVolume.Value

	m = press(m, "right")
	if cfg.Sliders.PoreVolume.Value <= before {
		t.Error("right should increase the pore volume")
	}
	pv := m.result.PoreVolumes
	if math.Abs(pv-math.Exp(cfg.Sliders.PoreVolume.Value)) > 1e-12 {
		t.Errorf("result not recomputed: %g", pv)
	}

	for i := 0; i < 10000; i++ {
		m.params[0].adjust(1)
	}
	if cfg.Sliders.PoreVolume.Value != cfg.Sliders.PoreVolume.Max {
		t.Error("value should clamp at the slider maximum")
	}
}

func TestExplorerRangeOrder(t *testing.T) {
	cfg := testConfig()
	m := *NewExplorer(cfg)

	// dispersion lo
	m = press(m, "down")
	for i := 0; i < 20; i++ {
		m = press(m, "right")
	}
	d := cfg.Sliders.Dispersion
	if d.Lo > d.Hi {
		t.Errorf("range out of order: %g > %g", d.Lo, d.Hi)
	}
	if m.err != nil {
		t.Errorf("unexpected error: %v", m.err)
	}
}

func TestExplorerToggles(t *testing.T) {
	cfg := testConfig()
	m := *NewExplorer(cfg)

	m = press(m, "i")
	if cfg.Injection != "pulse" || m.result.Injection.Mode.String() != "pulse" {
		t.Error("i should switch to pulse injection")
	}
	m = press(m, "o")
	if !cfg.Sorption || m.result.Retardation <= 1 {
		t.Error("o should enable sorption")
	}
	m = press(m, "s")
	if cfg.Solution != "ogata-banks" || m.result.Solution != "ogata-banks" {
		t.Errorf("s should cycle the solution, got %s", cfg.Solution)
	}
	m = press(m, "t")
	if m.theme != 1 {
		t.Error("t should cycle the theme")
	}
	seed := cfg.Seed
	m = press(m, "n")
	if cfg.Seed != seed+1 || m.result.Seed != seed+1 {
		t.Error("n should reseed")
	}
}

func TestExplorerQuit(t *testing.T) {
	m := *NewExplorer(testConfig())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
