package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/j-vasquez/wrwind/internal/analysis"
	"github.com/j-vasquez/wrwind/internal/config"
	"github.com/j-vasquez/wrwind/internal/experiment"
	"github.com/j-vasquez/wrwind/internal/geom"
	"github.com/j-vasquez/wrwind/internal/orbit"
	"github.com/j-vasquez/wrwind/internal/render"
	"github.com/j-vasquez/wrwind/internal/storage"
	"github.com/j-vasquez/wrwind/internal/viz"
	"github.com/j-vasquez/wrwind/internal/wind"
	"github.com/spf13/cobra"
)

var (
	dataDir string

	mass1      float64
	mass2      float64
	separation float64
	ecc        float64
	rate       int
	multiplier float64
	windMode   string
	orbits     float64
	framesPer  int
	seed       int64
	capRadius  float64
	capSpeed   float64
	integrator string

	configFile string
	preset     string

	// Figure flags
	savePNG  bool
	saveGIF  bool
	saveSVG  bool
	viewMode string
	elev     float64
	azim     float64

	// Analysis
	bins int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wrwind",
		Short: "colliding-wind binary spiral simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wrwind", "data directory")

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "compute binary orbit parameters",
		RunE:  orbitParams,
	}
	addBinaryFlags(orbitCmd)
	orbitCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator for the numeric cross-check")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run wind simulation",
		RunE:  runSimulation,
	}
	addBinaryFlags(runCmd)
	addWindFlags(runCmd)
	addFigureFlags(runCmd)

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "re-render figures for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	addFigureFlags(renderCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal view",
		RunE:  runLive,
	}
	addBinaryFlags(liveCmd)
	addWindFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export star trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "azimuthal mode analysis of the final cloud",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bins, "bins", 64, "azimuthal bins")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the binary orbit",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addBinaryFlags(compareCmd)
	compareCmd.Flags().Float64Var(&orbits, "orbits", 1.0, "orbits to propagate")
	compareCmd.Flags().IntVar(&framesPer, "steps-per-orbit", 1000, "steps per orbit")

	rootCmd.AddCommand(orbitCmd, runCmd, renderCmd, liveCmd, listCmd, showCmd,
		exportCSVCmd, exportJSONCmd, analyzeCmd, presetsCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBinaryFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass1, "mass1", config.DefaultPrimaryMass, "primary mass (Msun)")
	cmd.Flags().Float64Var(&mass2, "mass2", config.DefaultCompanionMass, "companion mass (Msun)")
	cmd.Flags().Float64Var(&separation, "separation", config.DefaultSeparation, "orbital separation (AU)")
	cmd.Flags().Float64Var(&ecc, "ecc", 0, "eccentricity")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addWindFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rate, "rate", config.DefaultRate, "particles emitted per frame")
	cmd.Flags().Float64Var(&multiplier, "multiplier", config.DefaultMultiplier, "wind speed as multiple of the primary's orbital speed")
	cmd.Flags().StringVar(&windMode, "mode", "spherical", "emission mode: spherical or planar")
	cmd.Flags().Float64Var(&orbits, "orbits", config.DefaultOrbits, "orbits to simulate")
	cmd.Flags().IntVar(&framesPer, "frames-per-orbit", config.DefaultFramesPerOrbit, "frames per orbit")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().Float64Var(&capRadius, "capture-radius", config.DefaultCaptureRadius, "companion capture radius (AU)")
	cmd.Flags().Float64Var(&capSpeed, "capture-speed", config.DefaultCaptureSpeed, "infall speed inside the capture zone (AU/yr)")
}

func addFigureFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&savePNG, "png", false, "save final-frame PNG figure")
	cmd.Flags().BoolVar(&saveGIF, "gif", false, "save animated GIF")
	cmd.Flags().BoolVar(&saveSVG, "svg", false, "save orbit path SVG")
	cmd.Flags().StringVar(&viewMode, "view", "2d", "figure view: 2d (pole-on) or 3d (tilted)")
	cmd.Flags().Float64Var(&elev, "elev", 0, "viewing elevation override (degrees)")
	cmd.Flags().Float64Var(&azim, "azim", 0, "viewing azimuth override (degrees)")
}

// buildConfig resolves precedence: preset, then config file, then flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.Preset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	set := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	set("mass1", func() { cfg.Binary.PrimaryMass = mass1 })
	set("mass2", func() { cfg.Binary.CompanionMass = mass2 })
	set("separation", func() { cfg.Binary.Separation = separation })
	set("ecc", func() { cfg.Binary.Eccentricity = ecc })
	set("rate", func() { cfg.Wind.Rate = rate })
	set("multiplier", func() { cfg.Wind.Multiplier = multiplier })
	set("mode", func() { cfg.Wind.Mode = windMode })
	set("orbits", func() { cfg.Sim.Orbits = orbits })
	set("frames-per-orbit", func() { cfg.Sim.FramesPerOrbit = framesPer })
	set("seed", func() { cfg.Sim.Seed = seed })
	set("capture-radius", func() { cfg.Capture.Radius = capRadius })
	set("capture-speed", func() { cfg.Capture.Speed = capSpeed })

	if cfg.Sim.Seed == 0 {
		cfg.Sim.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func figureOptions(cfg *config.Config) render.Options {
	opts := render.DefaultOptions()
	opts.Width = cfg.Render.Width
	opts.Height = cfg.Render.Height
	if cfg.Sim.BoundsRadius > 0 {
		opts.Bounds = cfg.Sim.BoundsRadius
	}
	if viewMode == "3d" {
		opts.Elev = 30
	}
	if elev != 0 {
		opts.Elev = elev
	}
	if azim != 0 {
		opts.Azim = azim
	}
	return opts
}

func orbitParams(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	b, err := cfg.GetBinary()
	if err != nil {
		return err
	}

	period := b.Period()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "primary mass\t%.3f Msun\n", b.PrimaryMass)
	fmt.Fprintf(w, "companion mass\t%.3f Msun\n", b.CompanionMass)
	fmt.Fprintf(w, "separation\t%.3f AU\n", b.Separation)
	fmt.Fprintf(w, "period\t%.6f yr (%.2f d)\n", period, period*365.25)
	fmt.Fprintf(w, "mean motion\t%.4f rad/yr\n", b.MeanMotion())
	fmt.Fprintf(w, "primary orbit radius\t%.4f AU\n", b.PrimaryRadius())
	fmt.Fprintf(w, "companion orbit radius\t%.4f AU\n", b.CompanionRadius())
	fmt.Fprintf(w, "primary orbital speed\t%.4f AU/yr\n", b.PrimarySpeed())
	fmt.Fprintf(w, "companion orbital speed\t%.4f AU/yr\n", b.CompanionSpeed())
	if err := w.Flush(); err != nil {
		return err
	}

	// Numeric cross-check: one full period should close the orbit.
	registry := experiment.NewRegistry()
	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	sys := orbit.NewTwoBody(b)
	x := b.InitialState()
	x0 := x.Clone()
	e0 := sys.Energy(x)

	steps := 1000
	dt := period / float64(steps)
	t := 0.0
	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, t, dt)
		t += dt
	}

	closure := x.Sub(x0).Norm()
	drift := math.Abs(sys.Energy(x)-e0) / math.Abs(e0)
	fmt.Printf("\nnumeric check (%s, %d steps):\n", integrator, steps)
	fmt.Printf("  closure error: %.3e AU\n", closure)
	fmt.Printf("  energy drift:  %.3e\n", drift)

	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running wind simulation (%d frames, %d particles/frame)...\n",
		cfg.Frames(), cfg.Wind.Rate)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	runID, err := st.Save(cfg, exp.Binary().Period(), exp.WindSpeed(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("period: %.4f yr\n", exp.Binary().Period())
	fmt.Printf("wind speed: %.3f AU/yr\n", exp.WindSpeed())
	fmt.Printf("emitted: %d  captured: %d  live: %d\n",
		result.TotalEmitted, result.TotalCaptured, result.FinalLive)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	return saveFigures(cfg, result, runID)
}

func printMetrics(metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, metrics[name])
	}
}

func saveFigures(cfg *config.Config, result *wind.Result, runID string) error {
	if !savePNG && !saveGIF && !saveSVG {
		return nil
	}
	if len(result.Frames) == 0 {
		return fmt.Errorf("no frames to render")
	}

	opts := figureOptions(cfg)
	dir := cfg.Render.FiguresDir

	if savePNG {
		last := result.Frames[len(result.Frames)-1]
		path := fmt.Sprintf("%s/%s_%s.png", dir, runID, viewMode)
		if err := render.SavePNG(path, render.Figure(last, opts)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if saveGIF {
		path := fmt.Sprintf("%s/%s_%s.gif", dir, runID, viewMode)
		if err := render.SaveGIF(path, result.Frames, opts, cfg.Render.GIFDelay); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if saveSVG {
		var p1, p2 []geom.Vec3
		for _, f := range result.Frames {
			p1 = append(p1, f.Primary)
			p2 = append(p2, f.Companion)
		}
		path := fmt.Sprintf("%s/%s_orbit.svg", dir, runID)
		if err := render.SaveSVG(path, render.OrbitSVG(p1, p2, opts.Width, opts.Height)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.Config == nil {
		return fmt.Errorf("run %s has no stored config", runID)
	}

	// Rebuild the run deterministically from the stored config and seed.
	exp, err := experiment.New(meta.Config)
	if err != nil {
		return err
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	if !savePNG && !saveGIF && !saveSVG {
		savePNG = true
	}
	return saveFigures(meta.Config, result, runID)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	newSim := func() *wind.Simulator {
		e, err := experiment.New(cfg)
		if err != nil {
			return exp.Simulator()
		}
		return e.Simulator()
	}

	m := viz.NewModel(newSim, exp.SimConfig(), exp.Binary())
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tPERIOD\tWIND\tEMITTED\tCAPTURED\tLIVE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f yr\t%.3f AU/yr\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.PeriodYears,
			run.WindSpeed,
			run.TotalEmitted,
			run.TotalCaptured,
			run.FinalLive,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"frame", "time", "phase", "x1", "y1", "x2", "y2", "live", "captured"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Frame),
			strconv.FormatFloat(p.Time, 'f', 6, 64),
			strconv.FormatFloat(p.Phase, 'f', 6, 64),
			strconv.FormatFloat(p.Primary.X, 'f', 6, 64),
			strconv.FormatFloat(p.Primary.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Companion.X, 'f', 6, 64),
			strconv.FormatFloat(p.Companion.Y, 'f', 6, 64),
			strconv.Itoa(p.Live),
			strconv.Itoa(p.Captured),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSONStdout(args[0])
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	positions, _, err := st.LoadCloud(runID)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return fmt.Errorf("no particles in run %s", runID)
	}

	fmt.Printf("azimuthal analysis: %s (%d particles)\n\n", meta.ID, len(positions))

	hist := analysis.AzimuthalHistogram(positions, bins)
	graph := asciigraph.Plot(hist,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption("particles per azimuthal bin"),
	)
	fmt.Println(graph)
	fmt.Println()

	ps := analysis.PowerSpectrum(hist)
	if len(ps) > 1 {
		graph := asciigraph.Plot(ps[1:],
			asciigraph.Height(8),
			asciigraph.Width(72),
			asciigraph.Caption("azimuthal mode power (m >= 1)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	mode, power := analysis.DominantMode(hist)
	mean := ps[0] / float64(bins)
	fmt.Printf("dominant mode: m=%d (power %.1f)\n", mode, power)
	if mean > 0 {
		fmt.Printf("contrast: %.3f\n", power/ps[0])
	}

	bounds := config.DefaultBoundsRadius
	if meta.Config != nil && meta.Config.Sim.BoundsRadius > 0 {
		bounds = meta.Config.Sim.BoundsRadius
	}
	radial := analysis.RadialProfile(positions, 32, bounds)
	graph = asciigraph.Plot(radial,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("particles per radial shell"),
	)
	fmt.Println(graph)

	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	b, err := cfg.GetBinary()
	if err != nil {
		return err
	}

	steps := framesPer
	span := orbits
	if span <= 0 {
		span = 1
	}
	period := b.Period()
	dt := period / float64(steps)
	total := int(float64(steps) * span)

	registry := experiment.NewRegistry()

	fmt.Printf("comparing integrators over %.1f orbits (dt=%.6f yr)\n\n", span, dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tCLOSURE\tENERGY DRIFT\tTIME")

	for _, name := range args {
		integ, err := registry.GetIntegrator(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		sys := orbit.NewTwoBody(b)
		x := b.InitialState()
		x0 := x.Clone()
		e0 := sys.Energy(x)

		start := time.Now()
		t := 0.0
		for i := 0; i < total; i++ {
			x = integ.Step(sys, x, t, dt)
			t += dt
		}
		elapsed := time.Since(start)

		closure := x.Sub(x0).Norm()
		drift := math.Abs(sys.Energy(x)-e0) / math.Abs(e0)
		fmt.Fprintf(w, "%s\t%.3e AU\t%.3e\t%v\n", name, closure, drift, elapsed)
	}

	return w.Flush()
}
