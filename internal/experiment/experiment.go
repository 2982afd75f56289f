// Package experiment assembles wind simulations from configuration and
// provides the integrator registry for orbit propagation commands.
package experiment

import (
	"context"
	"strings"

	"github.com/j-vasquez/wrwind/internal/config"
	"github.com/j-vasquez/wrwind/internal/metrics"
	"github.com/j-vasquez/wrwind/internal/orbit"
	"github.com/j-vasquez/wrwind/internal/wind"
)

// Experiment binds a configured binary, emitter, and capture model into
// a runnable wind simulation.
type Experiment struct {
	cfg       *config.Config
	binary    orbit.Binary
	sim       *wind.Simulator
	simCfg    wind.Config
	windSpeed float64
}

// New assembles an experiment. The emitter launch shell defaults to the
// primary's barycentric orbit radius, and the wind speed is the
// configured multiple of the primary's orbital speed.
func New(cfg *config.Config) (*Experiment, error) {
	b, err := cfg.GetBinary()
	if err != nil {
		return nil, err
	}

	shell := cfg.Wind.ShellRadius
	if shell == 0 {
		shell = b.PrimaryRadius()
	}
	speed := cfg.Wind.Multiplier * b.PrimarySpeed()

	mode := wind.Spherical
	if strings.EqualFold(cfg.Wind.Mode, "planar") {
		mode = wind.Planar
	}

	emitter := wind.NewEmitter(shell, speed, mode, cfg.Sim.Seed)
	capture := wind.Capture{
		Radius:        cfg.Capture.Radius,
		Speed:         cfg.Capture.Speed,
		RemovalRadius: cfg.Capture.RemovalRadius,
	}

	sim := wind.New(b, emitter, capture)
	for _, m := range metrics.Defaults() {
		sim.AddMetric(m)
	}

	simCfg := wind.Config{
		Dt:            b.Period() / float64(cfg.Sim.FramesPerOrbit),
		Frames:        cfg.Frames(),
		Rate:          cfg.Wind.Rate,
		BoundsRadius:  cfg.Sim.BoundsRadius,
		MaxAge:        cfg.Wind.MaxAge,
		SnapshotEvery: cfg.Sim.SnapshotEvery,
		ValidateState: true,
	}

	return &Experiment{
		cfg:       cfg,
		binary:    b,
		sim:       sim,
		simCfg:    simCfg,
		windSpeed: speed,
	}, nil
}

func (e *Experiment) Run(ctx context.Context) (*wind.Result, error) {
	return e.sim.Run(ctx, e.simCfg)
}

// Simulator exposes the assembled simulator, for live views.
func (e *Experiment) Simulator() *wind.Simulator { return e.sim }

// SimConfig returns the derived frame-loop configuration.
func (e *Experiment) SimConfig() wind.Config { return e.simCfg }

// Binary returns the orbit parameters in use.
func (e *Experiment) Binary() orbit.Binary { return e.binary }

// WindSpeed returns the assembled terminal wind speed in AU/yr.
func (e *Experiment) WindSpeed() float64 { return e.windSpeed }
