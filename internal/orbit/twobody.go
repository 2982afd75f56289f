package orbit

import "math"

// TwoBody is the gravitational two-body problem in the barycentric plane.
// State layout is position-first: [x1 y1 x2 y2 vx1 vy1 vx2 vy2].
type TwoBody struct {
	m1, m2    float64
	softening float64
}

// NewTwoBody builds the ODE system for a binary. Softening keeps the
// force finite if a degenerate state drives the stars together.
func NewTwoBody(b Binary) *TwoBody {
	return &TwoBody{
		m1:        b.PrimaryMass,
		m2:        b.CompanionMass,
		softening: 1e-6,
	}
}

func (tb *TwoBody) StateDim() int { return 8 }

func (tb *TwoBody) Derive(x State, _ float64) State {
	x1, y1 := x[0], x[1]
	x2, y2 := x[2], x[3]
	vx1, vy1 := x[4], x[5]
	vx2, vy2 := x[6], x[7]

	dx := x2 - x1
	dy := y2 - y1
	r := math.Sqrt(dx*dx + dy*dy + tb.softening*tb.softening)
	r3 := r * r * r

	ax1 := MuG * tb.m2 * dx / r3
	ay1 := MuG * tb.m2 * dy / r3
	ax2 := -MuG * tb.m1 * dx / r3
	ay2 := -MuG * tb.m1 * dy / r3

	return State{
		vx1, vy1,
		vx2, vy2,
		ax1, ay1,
		ax2, ay2,
	}
}

// Energy returns the total mechanical energy, conserved on an exact orbit.
func (tb *TwoBody) Energy(x State) float64 {
	dx := x[2] - x[0]
	dy := x[3] - x[1]
	r := math.Sqrt(dx*dx + dy*dy)

	ke := 0.5*tb.m1*(x[4]*x[4]+x[5]*x[5]) + 0.5*tb.m2*(x[6]*x[6]+x[7]*x[7])
	pe := -MuG * tb.m1 * tb.m2 / r
	return ke + pe
}

// Separation returns the instantaneous distance between the stars.
func (tb *TwoBody) Separation(x State) float64 {
	dx := x[2] - x[0]
	dy := x[3] - x[1]
	return math.Sqrt(dx*dx + dy*dy)
}
