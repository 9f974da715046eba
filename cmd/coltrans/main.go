package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/san-kum/coltrans/internal/config"
	"github.com/san-kum/coltrans/internal/ensemble"
	"github.com/san-kum/coltrans/internal/experiment"
	"github.com/san-kum/coltrans/internal/export"
	"github.com/san-kum/coltrans/internal/optim"
	"github.com/san-kum/coltrans/internal/page"
	"github.com/san-kum/coltrans/internal/storage"
	"github.com/san-kum/coltrans/internal/tui"
	"github.com/san-kum/coltrans/internal/viz"
)

var (
	dataDir   string
	verbose   bool
	themeName string
	// build
	outDir         string
	title          string
	openBrowser    bool
	writeModel     bool
	externalScript bool
	storeRun       bool
	// export-csv
	btcTable bool
	// figure
	figureOut string
	// fit
	fitPoints int
)

var log = logrus.New()

// main registers the commands and flags of the coltrans CLI and exits with
// status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "coltrans",
		Short: "1D column transport lab: closed-form ADRE profiles with uncertainty bands",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(logrus.InfoLevel)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".coltrans", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "write the interactive page",
		Args:  cobra.NoArgs,
		RunE:  buildPage,
	}
	addScenarioFlags(buildCmd)
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "site", "output directory")
	buildCmd.Flags().StringVar(&title, "title", "", "page title")
	buildCmd.Flags().BoolVar(&openBrowser, "open", false, "open the page in the browser")
	buildCmd.Flags().BoolVar(&writeModel, "model-json", false, "also write themodel.json")
	buildCmd.Flags().BoolVar(&externalScript, "external-js", false, "write callback.js next to the page instead of inlining it")
	buildCmd.Flags().BoolVar(&storeRun, "store", false, "also store the run in the data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute and store a run",
		Args:  cobra.NoArgs,
		RunE:  runExperiment,
	}
	addScenarioFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&themeName, "theme", "classic", "chart theme")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().BoolVar(&btcTable, "btc", false, "export the breakthrough curve instead of the profile")

	figureCmd := &cobra.Command{
		Use:   "figure [run_id]",
		Short: "render profile and breakthrough figures (png, svg, pdf)",
		Args:  cobra.ExactArgs(1),
		RunE:  figureRun,
	}
	figureCmd.Flags().StringVarP(&figureOut, "out", "o", "figure.png", "output file; -profile and -btc are appended")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	addScenarioFlags(configCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "explore the column interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addScenarioFlags(liveCmd)

	fitCmd := &cobra.Command{
		Use:   "fit [btc.csv]",
		Short: "fit dispersion and reaction to a measured breakthrough curve",
		Args:  cobra.ExactArgs(1),
		RunE:  fitBreakthrough,
	}
	addScenarioFlags(fitCmd)
	fitCmd.Flags().IntVar(&fitPoints, "points", 40, "grid points per parameter")

	rootCmd.AddCommand(buildCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, figureCmd, presetsCmd, configCmd, liveCmd, fitCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func compute(cmd *cobra.Command) (*config.Config, string, *experiment.Result, error) {
	cfg, presetName, err := resolveConfig(cmd)
	if err != nil {
		return nil, "", nil, err
	}
	exp, err := experiment.New(cfg)
	if err != nil {
		return nil, "", nil, err
	}

	start := time.Now()
	res, err := exp.Run(cmd.Context())
	if err != nil {
		return nil, "", nil, err
	}
	log.WithFields(logrus.Fields{
		"solution": res.Solution,
		"samples":  res.Field.Members(),
		"nodes":    len(res.Grid),
		"seed":     res.Seed,
		"elapsed":  time.Since(start).Round(time.Microsecond),
	}).Debug("ensemble computed")
	return cfg, presetName, res, nil
}

func buildPage(cmd *cobra.Command, args []string) error {
	cfg, presetName, res, err := compute(cmd)
	if err != nil {
		return err
	}

	b, err := page.NewBuilder(page.Options{
		Title:          title,
		WriteModel:     writeModel,
		ExternalScript: externalScript,
	}, log)
	if err != nil {
		return err
	}
	path, err := b.Build(outDir, cfg, res)
	if err != nil {
		return err
	}
	fmt.Println(path)

	if storeRun {
		if _, err := saveRun(presetName, res); err != nil {
			return err
		}
	}

	if openBrowser {
		if err := open.Run(path); err != nil {
			log.WithError(err).Warn("could not open browser")
		}
	}
	return nil
}

func saveRun(presetName string, res *experiment.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	runID, err := st.Save(presetName, res)
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{"run": runID, "dir": dataDir}).Info("run stored")
	return runID, nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	_, presetName, res, err := compute(cmd)
	if err != nil {
		return err
	}
	runID, err := saveRun(presetName, res)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("pore volume time: %.2f h, velocity: %.3e m/s, retardation: %.3f\n",
		res.PoreVolumeTime/3600, res.Velocity, res.Retardation)
	fmt.Println(viz.MetricsTable(res.Metrics, viz.ThemeClassic))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSOLUTION\tINJECTION\tPV\tR\tSAMPLES")

	for _, run := range runs {
		preset := run.Preset
		if preset == "" {
			preset = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.3f\t%.2f\t%d\n",
			run.ID,
			preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Solution,
			run.Injection,
			run.PoreVolumes,
			run.Retardation,
			run.Samples,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	profile, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	pvs, cs, err := st.LoadBreakthrough(runID)
	if err != nil {
		return err
	}
	if len(profile.X) == 0 || len(pvs) == 0 {
		return fmt.Errorf("run %s has no data", runID)
	}

	theme := viz.GetTheme(themeName)
	bands := ensemble.Bands{
		Min:           profile.Min,
		Max:           profile.Max,
		LowerQuartile: profile.LowerQuartile,
		UpperQuartile: profile.UpperQuartile,
		Mean:          profile.Mean,
	}
	graph, err := viz.ProfileChart(profile.Central, bands, viz.ChartOptions{
		Theme:   theme,
		Caption: fmt.Sprintf("%s profile at %.3f PV, x = %.3f..%.3f m", meta.Solution, meta.PoreVolumes, profile.X[0], profile.X[len(profile.X)-1]),
	})
	if err != nil {
		return err
	}
	fmt.Println(graph)
	fmt.Println()

	graph, err = viz.BreakthroughChart(cs, viz.ChartOptions{
		Theme:   theme,
		Caption: fmt.Sprintf("%s breakthrough at x = %.3f m, %.3g..%.3g PV", meta.BTCSolution, meta.BTCX, pvs[0], pvs[len(pvs)-1]),
	})
	if err != nil {
		return err
	}
	fmt.Println(graph)
	fmt.Println()

	fmt.Println(viz.MetricsTable(meta.Metrics, theme))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	data, err := storage.New(dataDir).Export(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, data)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	data, err := storage.New(dataDir).Export(args[0])
	if err != nil {
		return err
	}
	if len(data.Profile.X) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, data, btcTable)
}

func figureRun(cmd *cobra.Command, args []string) error {
	data, err := storage.New(dataDir).Export(args[0])
	if err != nil {
		return err
	}

	p := data.Profile
	bands := ensemble.Bands{Min: p.Min, Max: p.Max, LowerQuartile: p.LowerQuartile, UpperQuartile: p.UpperQuartile, Mean: p.Mean}
	profilePlot, err := export.ProfilePlot(p.X, p.Central, bands,
		fmt.Sprintf("%s, %.3f PV", data.Solution, data.PoreVolumes))
	if err != nil {
		return err
	}
	btcPlot, err := export.BreakthroughPlot(data.Breakthrough.PoreVolumes, data.Breakthrough.Concentrations,
		fmt.Sprintf("%s, x = %.3f m", data.BTCSolution, data.BTCX))
	if err != nil {
		return err
	}

	profilePath, btcPath := export.FigurePaths(figureOut)
	if err := export.SaveFigure(profilePlot, profilePath); err != nil {
		return err
	}
	if err := export.SaveFigure(btcPlot, btcPath); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"profile": profilePath, "btc": btcPath}).Info("figures written")
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	log.WithField("path", args[0]).Info("config written")
	return nil
}

func fitBreakthrough(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	obs, err := optim.ReadObservation(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	start := time.Now()
	fit, err := optim.FitBreakthrough(cmd.Context(), cfg, obs, fitPoints)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"points":    len(obs.PoreVolumes),
		"evaluated": fit.Evaluated,
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Debug("grid search finished")

	fmt.Printf("dispersion: %.4e m2/s (%.4e m2/h)\n", fit.Dispersion, fit.Dispersion*3600)
	fmt.Printf("reaction:   %.4e 1/s (%.4e 1/h)\n", fit.Reaction, fit.Reaction*3600)
	fmt.Printf("rmse:       %.4g\n", fit.RMSE)
	return nil
}
