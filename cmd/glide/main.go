package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/glide/internal/config"
	"github.com/san-kum/glide/internal/easing"
	"github.com/san-kum/glide/internal/export"
	"github.com/san-kum/glide/internal/logging"
	"github.com/san-kum/glide/internal/metrics"
	"github.com/san-kum/glide/internal/optim"
	"github.com/san-kum/glide/internal/sim"
	"github.com/san-kum/glide/internal/sink"
	"github.com/san-kum/glide/internal/storage"
	"github.com/san-kum/glide/internal/tui"
	"github.com/san-kum/glide/internal/viz"
)

var (
	dataDir   string
	logLevel  string
	logFormat string
	log       logging.Logger = logging.NewNoOpLogger()

	configFile string
	fps        int
	easeName   string
	modeName   string
	stepDur    float64
	showPlot   bool

	outPath   string
	svgWidth  int
	svgHeight int
	plotWidth int

	tuneMetric string
	tuneMin    float64
	tuneMax    float64
	tuneStep   float64

	theme  string
	broker string
	topic  string
	dryRun bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glide",
		Short: "additive animation blending lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log = logging.NewSlogLogger(level, logFormat, os.Stderr)
			return nil
		},
		RunE: runLive,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".glide", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.Flags().StringVar(&theme, "theme", "neon", "colour theme")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "simulate a scene and save its trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the trace after running")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an svg chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "svg height")

	easingsCmd := &cobra.Command{
		Use:   "easings",
		Short: "list easing functions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range easing.Names() {
				fmt.Println(name)
			}
		},
	}

	curveCmd := &cobra.Command{
		Use:   "curve [easing]",
		Short: "plot an easing curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCurve,
	}
	curveCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [easing...]",
		Short: "run one scene under several easings",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareEasings,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal demo",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "neon", "colour theme")

	streamCmd := &cobra.Command{
		Use:   "stream [preset]",
		Short: "play a scene in real time and publish frames over mqtt",
		Args:  cobra.MaximumNArgs(1),
		RunE:  streamScene,
	}
	addSceneFlags(streamCmd)
	streamCmd.Flags().StringVar(&broker, "broker", "", "mqtt broker url")
	streamCmd.Flags().StringVar(&topic, "topic", "", "mqtt topic")
	streamCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print frames instead of publishing")

	tuneCmd := &cobra.Command{
		Use:   "tune [preset]",
		Short: "search the default step duration that minimises a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tuneScene,
	}
	tuneCmd.Flags().StringVar(&configFile, "config", "", "scene file (yaml)")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "max_jump", "metric to minimise")
	tuneCmd.Flags().Float64Var(&tuneMin, "min", 0.1, "shortest duration in seconds")
	tuneCmd.Flags().Float64Var(&tuneMax, "max", 2, "longest duration in seconds")
	tuneCmd.Flags().Float64Var(&tuneStep, "step", 0.1, "duration increment in seconds")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportJSONCmd, exportSVGCmd, easingsCmd, curveCmd,
		presetsCmd, compareCmd, tuneCmd, liveCmd, streamCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scene file (yaml)")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().StringVar(&easeName, "easing", "", "default easing for steps")
	cmd.Flags().StringVar(&modeName, "mode", "", "default mode for steps")
	cmd.Flags().Float64Var(&stepDur, "duration", config.DefaultDuration, "default step duration in seconds")
}

// loadScene picks the config file, the named preset or "simple", then
// applies any flags that were set explicitly.
func loadScene(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	default:
		name := "simple"
		if len(args) > 0 {
			name = args[0]
		}
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("easing") {
		cfg.Easing = easeName
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = modeName
	}
	if cmd.Flags().Changed("duration") {
		cfg.Duration = stepDur
	}
	return cfg, nil
}

func newSimulator() *sim.Simulator {
	s := sim.New(sim.WithLogger(log))
	for _, m := range metrics.Standard() {
		s.AddMetric(m)
	}
	return s
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	sc, err := cfg.Scenario()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	result, err := newSimulator().Run(cmd.Context(), sc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(sc, result)
	if err != nil {
		return err
	}

	final := result.Final()
	fmt.Printf("run %s\n", runID)
	fmt.Printf("  samples %d  frames %d  registrations %d  (%s)\n",
		len(result.Samples), result.Frames, result.Registrations, elapsed.Round(time.Microsecond))
	fmt.Printf("  final %.4f  target %.4f  status %s\n", final.Value, final.Target, final.Status)
	printMetrics(result.Metrics)

	if showPlot {
		fmt.Println()
		fmt.Println(viz.PlotTrace(result, viz.PlotSize{Width: 80, Height: 12}))
	}
	return nil
}

func printMetrics(m map[string]float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range []string{"max_jump", "overshoot", "settle_time", "travel", "busy_frames"} {
		if v, ok := m[name]; ok {
			fmt.Fprintf(w, "  %s\t%.4f\n", name, v)
		}
	}
	w.Flush()
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
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tLENGTH\tSTEPS\tFRAMES\tFINAL SETTLE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%d\t%d\t%.3fs\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Length,
			run.Steps,
			run.Frames,
			run.Metrics["settle_time"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	result, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.PlotTrace(result, viz.PlotSize{Width: plotWidth, Height: 15}))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	result, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	return export.ExportJSON(outPath, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	result, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	svg := export.TraceToSVG(result, svgWidth, svgHeight, export.DefaultSVGStyle)
	if svg == "" {
		return fmt.Errorf("run %s has too few samples to draw", args[0])
	}

	path := outPath
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	fn, err := easing.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w (see 'glide easings')", err)
	}
	fmt.Println(viz.PlotEasing(args[0], fn, viz.PlotSize{Width: plotWidth, Height: 12}))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tEASING\tMODE\tSTEPS\tLENGTH")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1fs\n", name, p.Easing, p.Mode, len(p.Steps), p.Length)
	}
	return w.Flush()
}

func compareEasings(cmd *cobra.Command, args []string) error {
	base := config.GetPreset(args[0])
	if base == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}

	names := args[1:]
	scenarios := make([]sim.Scenario, 0, len(names))
	for _, name := range names {
		cfg := base.Clone()
		cfg.Name = name
		cfg.Easing = name
		for i := range cfg.Steps {
			cfg.Steps[i].Easing = ""
		}
		sc, err := cfg.Scenario()
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	start := time.Now()
	results, err := sim.NewEnsemble(newSimulator).Run(cmd.Context(), scenarios)
	if err != nil {
		return err
	}

	fmt.Printf("comparing easings for %s (%d runs in %s)\n\n", args[0], len(results), time.Since(start).Round(time.Microsecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EASING\tMAX JUMP\tOVERSHOOT\tSETTLE\tTRAVEL\tFRAMES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.3fs\t%.3f\t%d\n",
			r.Scenario,
			r.Metrics["max_jump"],
			r.Metrics["overshoot"],
			r.Metrics["settle_time"],
			r.Metrics["travel"],
			r.Frames,
		)
	}
	return w.Flush()
}

func tuneScene(cmd *cobra.Command, args []string) error {
	base, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	search := optim.NewGridSearch(optim.Param{
		Name:   "duration",
		Values: optim.Range(tuneMin, tuneMax, tuneStep),
	})
	build := func(params map[string]float64) (sim.Scenario, error) {
		cfg := base.Clone()
		cfg.Duration = params["duration"]
		return cfg.Scenario()
	}

	best, err := search.Search(cmd.Context(), build, newSimulator, tuneMetric)
	if err != nil {
		return err
	}
	log.Info("tuning finished", "scene", base.Name, "metric", tuneMetric, "tried", best.Tried)
	fmt.Printf("best duration for %s: %.3fs (%s = %.4f, %d candidates)\n",
		base.Name, best.Params["duration"], tuneMetric, best.Value, best.Tried)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	return tui.Run(viz.GetTheme(theme), log)
}

func streamScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	if broker != "" {
		cfg.MQTT.Broker = broker
	}
	if topic != "" {
		cfg.MQTT.Topic = topic
	}
	sc, err := cfg.Scenario()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	emit := func(s sim.Sample) {
		data, err := sink.Encode(sc.Name, s)
		if err != nil {
			log.Error("encode frame", "error", err)
			return
		}
		fmt.Println(string(data))
	}
	if !dryRun {
		pub, err := sink.Dial(cfg.MQTT, sink.WithLogger(log))
		if err != nil {
			return err
		}
		defer pub.Close()

		failures := 0
		obs := pub.Observer(sc.Name, &failures)
		emit = obs.OnFrame
		defer func() {
			if failures > 0 {
				log.Warn("some frames were not delivered", "failures", failures)
			}
		}()
	}

	return sim.New(sim.WithLogger(log)).Play(ctx, sc, emit)
}
