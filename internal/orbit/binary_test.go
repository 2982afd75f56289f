package orbit

import (
	"errors"
	"math"
	"testing"
)

func TestBinaryKeplerThirdLaw(t *testing.T) {
	// In Msun/AU/yr units, P^2 = a^3 / (M1 + M2).
	tests := []struct {
		name string
		b    Binary
	}{
		{"sun-earth-like", Binary{PrimaryMass: 1, CompanionMass: 3e-6, Separation: 1}},
		{"wr-binary", Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}},
		{"equal-mass", Binary{PrimaryMass: 2, CompanionMass: 2, Separation: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.b.Period()
			expected := math.Sqrt(math.Pow(tt.b.Separation, 3) / tt.b.TotalMass())
			if math.Abs(p-expected) > 1e-10*expected {
				t.Errorf("expected period %f yr, got %f yr", expected, p)
			}
		})
	}
}

func TestBinaryBarycentricRadii(t *testing.T) {
	b := Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}

	r1 := b.PrimaryRadius()
	r2 := b.CompanionRadius()

	if math.Abs(r1+r2-b.Separation) > 1e-12 {
		t.Errorf("radii must sum to separation: %f + %f != %f", r1, r2, b.Separation)
	}

	// The heavier star sits closer to the barycenter: m1*r1 == m2*r2.
	if math.Abs(b.PrimaryMass*r1-b.CompanionMass*r2) > 1e-9 {
		t.Errorf("mass-weighted radii unbalanced: %f vs %f",
			b.PrimaryMass*r1, b.CompanionMass*r2)
	}
}

func TestBinaryPositionsOppositePhase(t *testing.T) {
	b := Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}

	for _, phase := range []float64{0, math.Pi / 3, math.Pi, 5.1} {
		p, c := b.PositionsAt(phase)

		if p.DistanceTo(c)-b.Separation > 1e-9 {
			t.Errorf("phase %f: star distance %f, want %f", phase, p.DistanceTo(c), b.Separation)
		}

		// Barycenter stays at the origin.
		bary := p.Scale(b.PrimaryMass).Add(c.Scale(b.CompanionMass)).Scale(1 / b.TotalMass())
		if bary.Length() > 1e-9 {
			t.Errorf("phase %f: barycenter drifted to %+v", phase, bary)
		}
	}
}

func TestBinarySpeeds(t *testing.T) {
	b := Binary{PrimaryMass: 1, CompanionMass: 1, Separation: 2}

	// Symmetric binary: both stars on r=1 circles with equal speeds.
	if math.Abs(b.PrimarySpeed()-b.CompanionSpeed()) > 1e-12 {
		t.Errorf("expected equal speeds, got %f and %f", b.PrimarySpeed(), b.CompanionSpeed())
	}

	expected := b.PrimaryRadius() * 2 * math.Pi / b.Period()
	if math.Abs(b.PrimarySpeed()-expected) > 1e-12 {
		t.Errorf("expected speed %f, got %f", expected, b.PrimarySpeed())
	}
}

func TestBinaryValidate(t *testing.T) {
	tests := []struct {
		name string
		b    Binary
		want error
	}{
		{"ok", Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}, nil},
		{"zero mass", Binary{PrimaryMass: 0, CompanionMass: 4, Separation: 4.2}, ErrNonPositiveMass},
		{"negative companion", Binary{PrimaryMass: 10, CompanionMass: -1, Separation: 4.2}, ErrNonPositiveMass},
		{"zero separation", Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 0}, ErrNonPositiveSeparation},
		{"hyperbolic", Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2, Eccentricity: 1.0}, ErrEccentricityRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBinaryInitialStateDim(t *testing.T) {
	b := Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}
	x := b.InitialState()
	if len(x) != 8 {
		t.Fatalf("expected state dim 8, got %d", len(x))
	}
	if !x.IsValid() {
		t.Error("expected valid initial state")
	}
}
