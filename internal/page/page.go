// Package page renders the self-contained interactive column page.
package page

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/coltrans/internal/column"
	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/experiment"
	"github.com/san-kum/coltrans/internal/export"
	"github.com/san-kum/coltrans/internal/transport"
)

//go:embed templates/index.html
var indexTemplate string

//go:embed assets/callback.js
var callbackScript string

const (
	IndexFile  = "index.html"
	ModelFile  = "themodel.json"
	ScriptFile = "callback.js"
)

// Options control which files Build writes.
type Options struct {
	Title string
	// WriteModel also writes the embedded model as themodel.json.
	WriteModel bool
	// ExternalScript writes callback.js next to the page and links it
	// instead of inlining it.
	ExternalScript bool
}

type Builder struct {
	opts Options
	tmpl *template.Template
	log  logrus.FieldLogger
}

func NewBuilder(opts Options, log logrus.FieldLogger) (*Builder, error) {
	if opts.Title == "" {
		opts.Title = "1D Column Transport"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Builder{opts: opts, tmpl: tmpl, log: log}, nil
}

// Build writes the page and its optional companions into dir and returns
// the path of index.html.
func (b *Builder) Build(dir string, cfg *config.Config, res *experiment.Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	model := NewModel(cfg, res)
	if b.opts.WriteModel {
		if err := writeFile(filepath.Join(dir, ModelFile), func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(model)
		}); err != nil {
			return "", err
		}
		b.log.WithField("path", filepath.Join(dir, ModelFile)).Debug("wrote model")
	}
	if b.opts.ExternalScript {
		if err := os.WriteFile(filepath.Join(dir, ScriptFile), []byte(callbackScript), 0644); err != nil {
			return "", err
		}
		b.log.WithField("path", filepath.Join(dir, ScriptFile)).Debug("wrote callback script")
	}

	path := filepath.Join(dir, IndexFile)
	if err := writeFile(path, func(w io.Writer) error {
		return b.Render(w, cfg, res)
	}); err != nil {
		return "", err
	}

	b.log.WithFields(logrus.Fields{
		"path":    path,
		"nodes":   len(res.Grid),
		"samples": len(res.L1),
	}).Info("page written")
	return path, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render executes the page template for one result.
func (b *Builder) Render(w io.Writer, cfg *config.Config, res *experiment.Result) error {
	data, err := b.templateData(cfg, res)
	if err != nil {
		return err
	}
	if err := b.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

type templateData struct {
	Title      string
	Meta       string
	Pulse      bool
	Sorption   bool
	Controls   []control
	Units      []unitSelect
	ProfileSVG template.HTML
	BTCSVG     template.HTML
	Model      template.JS
	Script     template.JS
	ScriptSrc  string
}

func (b *Builder) templateData(cfg *config.Config, res *experiment.Result) (templateData, error) {
	model, err := json.Marshal(NewModel(cfg, res))
	if err != nil {
		return templateData{}, fmt.Errorf("failed to encode model: %w", err)
	}

	data := templateData{
		Title: b.opts.Title,
		Meta: fmt.Sprintf("%s profile, %s breakthrough, %d samples, seed %d",
			res.Solution, res.BTCSolution, len(res.L1), res.Seed),
		Pulse:      res.Injection.Mode == transport.Pulse,
		Sorption:   cfg.Sorption,
		Controls:   controls(cfg, res),
		Units:      unitSelects(),
		ProfileSVG: template.HTML(export.ProfileSVG(res.Grid, res.Central, res.Bands, 600, 300)),
		BTCSVG:     template.HTML(export.SeriesSVG(res.Breakthrough.PoreVolumes, res.Breakthrough.Concentrations, 600, 300, "#d62728")),
		Model:      template.JS(model),
	}
	if b.opts.ExternalScript {
		data.ScriptSrc = ScriptFile
	} else {
		data.Script = template.JS(callbackScript)
	}
	return data, nil
}

// control is one slider row of the page.
type control struct {
	ID     string
	Title  string
	Label  string
	Min    float64
	Max    float64
	Step   string
	Value  float64
	Lo, Hi float64
	Range  bool
	Hidden bool
}

func slider(id, title, label string, s config.Slider) control {
	return control{ID: id, Title: title, Label: label, Min: s.Min, Max: s.Max, Step: stepAttr(s.Min, s.Step, s.Value), Value: s.Value}
}

func rangeSlider(id, title, label string, r config.RangeSlider) control {
	step := stepAttr(r.Min, r.Step, r.Lo)
	if step != "any" {
		step = stepAttr(r.Min, r.Step, r.Hi)
	}
	return control{ID: id, Title: title, Label: label, Min: r.Min, Max: r.Max, Step: step, Lo: r.Lo, Hi: r.Hi, Range: true}
}

// stepAttr is "any" when value is off the step grid, since browsers snap
// range inputs to it.
func stepAttr(min, step, value float64) string {
	if step <= 0 {
		return "any"
	}
	k := (value - min) / step
	if math.Abs(k-math.Round(k)) > 1e-6 {
		return "any"
	}
	return fmt.Sprint(step)
}

func controls(cfg *config.Config, res *experiment.Result) []control {
	s := cfg.Sliders
	disp, reac := cfg.DispersionRange(), cfg.ReactionRange()
	dispUnit, reacUnit := column.DefaultUnit[column.Dispersion], column.DefaultUnit[column.Reaction]
	dispF, reacF := column.Units[column.Dispersion][dispUnit], column.Units[column.Reaction][reacUnit]

	pulse := slider("pulse_duration", "Duration of Injection",
		fmt.Sprintf("%.1f [min]", s.PulseDuration.Value/60), s.PulseDuration)
	pulse.Hidden = res.Injection.Mode != transport.Pulse
	rho := slider("solid_density", "Solid Density",
		fmt.Sprintf("%.2f [kg/L]", s.SolidDensity.Value/1000), s.SolidDensity)
	rho.Hidden = !cfg.Sorption
	kd := slider("kd", "Linear Partitioning Coefficient",
		fmt.Sprintf("%.2f [L/kg]", s.Kd.Value*1000), s.Kd)
	kd.Hidden = !cfg.Sorption

	pv := slider("pore_volume", fmt.Sprintf("Pore Volume (1PV = %.2f h)", res.PoreVolumeTime/3600),
		fmt.Sprintf("%.4f [PV]", res.PoreVolumes), s.PoreVolume)

	return []control{
		pv,
		slider("column_length", "Column length", fmt.Sprintf("%.3f [m]", s.ColumnLength.Value), s.ColumnLength),
		slider("column_radius", "Column radius", fmt.Sprintf("%.3f [m]", s.ColumnRadius.Value), s.ColumnRadius),
		rangeSlider("reaction", "Reaction coefficient",
			fmt.Sprintf("%.2e - %.2e [%s]", reac.Lo/reacF, reac.Hi/reacF, reacUnit), s.Reaction),
		rangeSlider("dispersion", "Dispersion coefficient",
			fmt.Sprintf("%.2e - %.2e [%s]", disp.Lo/dispF, disp.Hi/dispF, dispUnit), s.Dispersion),
		slider("flow_rate", "Flow Rate", fmt.Sprintf("%.1f [mL/h]", s.FlowRate.Value), s.FlowRate),
		slider("porosity", "Porosity", fmt.Sprintf("%.2f [-]", s.Porosity.Value), s.Porosity),
		pulse,
		rho,
		kd,
	}
}

type unitSelect struct {
	Quantity column.Quantity
	Title    string
	Options  []unitOption
}

type unitOption struct {
	Label    string
	Selected bool
}

func unitSelects() []unitSelect {
	titles := []struct {
		q     column.Quantity
		title string
	}{
		{column.Reaction, "Reaction Unit:"},
		{column.Dispersion, "Dispersion Unit:"},
		{column.Flow, "Flow Rate Unit:"},
	}
	out := make([]unitSelect, 0, len(titles))
	for _, t := range titles {
		sel := unitSelect{Quantity: t.q, Title: t.title}
		for _, label := range column.UnitLabels(t.q) {
			sel.Options = append(sel.Options, unitOption{Label: label, Selected: label == column.DefaultUnit[t.q]})
		}
		out = append(out, sel)
	}
	return out
}
