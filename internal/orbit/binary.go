package orbit

import (
	"math"

	"github.com/j-vasquez/wrwind/internal/geom"
)

// MuG is the gravitational constant in AU^3 / (Msun * yr^2).
// With these units G = 4 pi^2, so a 1 Msun / 1 AU orbit has a 1 yr period.
const MuG = 4 * math.Pi * math.Pi

// Binary describes a two-body star system on a circular orbit about its
// barycenter. The primary is the wind-driving star, the companion the
// absorber. Masses are in solar masses, the separation in AU.
type Binary struct {
	PrimaryMass   float64
	CompanionMass float64
	Separation    float64
	Eccentricity  float64
}

// Validate checks the physical parameters.
func (b Binary) Validate() error {
	if b.PrimaryMass <= 0 || b.CompanionMass <= 0 {
		return ErrNonPositiveMass
	}
	if b.Separation <= 0 {
		return ErrNonPositiveSeparation
	}
	if b.Eccentricity < 0 || b.Eccentricity >= 1 {
		return ErrEccentricityRange
	}
	return nil
}

// TotalMass returns the combined mass in solar masses.
func (b Binary) TotalMass() float64 {
	return b.PrimaryMass + b.CompanionMass
}

// Mu returns the gravitational parameter G*(M1+M2) in AU^3/yr^2.
func (b Binary) Mu() float64 {
	return MuG * b.TotalMass()
}

// Period returns the orbital period in years from Kepler's third law,
// P = 2 pi sqrt(a^3 / mu).
func (b Binary) Period() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(b.Separation, 3)/b.Mu())
}

// MeanMotion returns the mean angular velocity in rad/yr.
func (b Binary) MeanMotion() float64 {
	return 2 * math.Pi / b.Period()
}

// PrimaryRadius returns the primary's barycentric orbit radius in AU.
func (b Binary) PrimaryRadius() float64 {
	return b.Separation * b.CompanionMass / b.TotalMass()
}

// CompanionRadius returns the companion's barycentric orbit radius in AU.
func (b Binary) CompanionRadius() float64 {
	return b.Separation * b.PrimaryMass / b.TotalMass()
}

// PrimarySpeed returns the primary's circular orbital speed in AU/yr.
func (b Binary) PrimarySpeed() float64 {
	return b.PrimaryRadius() * b.MeanMotion()
}

// CompanionSpeed returns the companion's circular orbital speed in AU/yr.
func (b Binary) CompanionSpeed() float64 {
	return b.CompanionRadius() * b.MeanMotion()
}

// PositionsAt returns the barycentric positions of primary and companion
// at the given orbital phase in radians. The stars sit on opposite sides
// of the barycenter, so the companion leads the primary by pi.
func (b Binary) PositionsAt(phase float64) (primary, companion geom.Vec3) {
	sin, cos := math.Sincos(phase)
	primary = geom.Vec3{X: b.PrimaryRadius() * cos, Y: b.PrimaryRadius() * sin}
	companion = geom.Vec3{X: -b.CompanionRadius() * cos, Y: -b.CompanionRadius() * sin}
	return primary, companion
}

// InitialState returns the circular-orbit state vector for numeric
// propagation, position-first: [x1 y1 x2 y2 vx1 vy1 vx2 vy2].
// Both stars start on the x axis moving tangentially.
func (b Binary) InitialState() State {
	r1 := b.PrimaryRadius()
	r2 := b.CompanionRadius()
	n := b.MeanMotion()
	return State{
		r1, 0,
		-r2, 0,
		0, r1 * n,
		0, -r2 * n,
	}
}
