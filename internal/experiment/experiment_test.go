package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/j-vasquez/wrwind/internal/config"
)

func TestRegistryIntegrators(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"euler", "rk4", "rk45", "leapfrog"} {
		integ, err := r.GetIntegrator(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if integ == nil {
			t.Errorf("%s: nil integrator", name)
		}
	}

	if _, err := r.GetIntegrator("symplectic-magic"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestNewDerivesWindSpeed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Wind.Multiplier = 2.0
	cfg.Sim.Seed = 1

	exp, err := New(cfg)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	b := exp.Binary()
	expected := 2.0 * b.PrimarySpeed()
	if math.Abs(exp.WindSpeed()-expected) > 1e-12 {
		t.Errorf("expected wind speed %f, got %f", expected, exp.WindSpeed())
	}

	// One orbit at 120 frames/orbit.
	simCfg := exp.SimConfig()
	if simCfg.Frames != 120 {
		t.Errorf("expected 120 frames, got %d", simCfg.Frames)
	}
	if math.Abs(simCfg.Dt*float64(cfg.Sim.FramesPerOrbit)-b.Period()) > 1e-9 {
		t.Errorf("frame dt does not tile the period")
	}
}

func TestNewRejectsBadBinary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Binary.PrimaryMass = -1

	if _, err := New(cfg); err == nil {
		t.Error("expected error for negative mass")
	}
}

func TestExperimentRunProducesSpiral(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sim.Seed = 42
	cfg.Wind.Rate = 50
	cfg.Sim.Orbits = 0.5

	exp, err := New(cfg)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 60 {
		t.Errorf("expected 60 snapshots, got %d", len(result.Frames))
	}
	if result.Metrics["population"] <= 0 {
		t.Error("expected positive mean population")
	}

	// The emission source actually moved along its orbit: half an orbit
	// carries the primary from (1.2, 0) to roughly (-1.2, 0).
	first := result.Frames[0].Primary
	last := result.Frames[len(result.Frames)-1].Primary
	if first.DistanceTo(last) < 1.0 {
		t.Errorf("primary barely moved: %f", first.DistanceTo(last))
	}
}
