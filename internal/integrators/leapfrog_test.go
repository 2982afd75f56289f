package integrators

import (
	"math"
	"testing"

	"github.com/j-vasquez/wrwind/internal/orbit"
)

func TestLeapfrogEnergyDrift(t *testing.T) {
	b := orbit.Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}
	sys := orbit.NewTwoBody(b)
	integ := NewLeapfrog()

	x := b.InitialState()
	e0 := sys.Energy(x)

	period := b.Period()
	steps := 2000
	dt := 5 * period / float64(steps) // five orbits

	tt := 0.0
	maxDrift := 0.0
	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, tt, dt)
		tt += dt
		drift := math.Abs(sys.Energy(x)-e0) / math.Abs(e0)
		maxDrift = math.Max(maxDrift, drift)
	}

	// Symplectic stepping bounds the energy error over many orbits.
	if maxDrift > 1e-2 {
		t.Errorf("leapfrog energy drift %e too large", maxDrift)
	}
}

func TestLeapfrogHarmonic(t *testing.T) {
	sys := &harmonic{}
	integ := NewLeapfrog()

	x := orbit.State{1.0, 0.0}
	dt := 0.01

	e0 := sys.Energy(x)
	for tt := 0.0; tt < 20*math.Pi; tt += dt {
		x = integ.Step(sys, x, tt, dt)
	}

	drift := math.Abs(sys.Energy(x)-e0) / e0
	if drift > 1e-3 {
		t.Errorf("energy drift %e over ten periods", drift)
	}
}
