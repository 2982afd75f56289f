package orbit

import (
	"math"
	"testing"
)

func TestTwoBodyDerivativeCircular(t *testing.T) {
	b := Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}
	tb := NewTwoBody(b)

	x := b.InitialState()
	dx := tb.Derive(x, 0)

	if len(dx) != tb.StateDim() {
		t.Fatalf("expected derivative dim %d, got %d", tb.StateDim(), len(dx))
	}

	// On a circular orbit the centripetal acceleration of the primary is
	// r1 * n^2 pointing at the barycenter.
	n := b.MeanMotion()
	expected := -b.PrimaryRadius() * n * n
	if math.Abs(dx[4]-expected) > 1e-6*math.Abs(expected) {
		t.Errorf("expected primary ax %f, got %f", expected, dx[4])
	}
	if math.Abs(dx[5]) > 1e-9 {
		t.Errorf("expected zero primary ay on the x axis, got %f", dx[5])
	}
}

func TestTwoBodyMomentumBalance(t *testing.T) {
	b := Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}
	tb := NewTwoBody(b)

	x := b.InitialState()
	dx := tb.Derive(x, 0)

	// Internal forces only: m1*a1 + m2*a2 == 0.
	fx := b.PrimaryMass*dx[4] + b.CompanionMass*dx[6]
	fy := b.PrimaryMass*dx[5] + b.CompanionMass*dx[7]
	if math.Abs(fx) > 1e-9 || math.Abs(fy) > 1e-9 {
		t.Errorf("net internal force (%e, %e), want zero", fx, fy)
	}
}

func TestTwoBodyEnergyNegativeForBoundOrbit(t *testing.T) {
	b := Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}
	tb := NewTwoBody(b)

	e := tb.Energy(b.InitialState())
	if e >= 0 {
		t.Errorf("expected bound orbit energy < 0, got %f", e)
	}

	// Virial: E = -G m1 m2 / (2a) on a circular orbit.
	expected := -MuG * b.PrimaryMass * b.CompanionMass / (2 * b.Separation)
	if math.Abs(e-expected) > 1e-6*math.Abs(expected) {
		t.Errorf("expected energy %f, got %f", expected, e)
	}
}
