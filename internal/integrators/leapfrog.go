package integrators

import "github.com/j-vasquez/wrwind/internal/orbit"

// Leapfrog is a kick-drift-kick symplectic stepper. It assumes the
// position-first state layout used by orbit.TwoBody, where the first
// half of the vector holds positions and the second half velocities.
type Leapfrog struct {
	scratch orbit.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) ensureScratch(n int) {
	if len(l.scratch) != n {
		l.scratch = make(orbit.State, n)
	}
}

func (l *Leapfrog) Step(sys orbit.System, x orbit.State, t, dt float64) orbit.State {
	n := len(x)
	half := n / 2
	l.ensureScratch(n)

	result := make(orbit.State, n)

	dx := sys.Derive(x, t)
	halfDt := 0.5 * dt

	// Half kick, then drift.
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dx[half+i]*halfDt
		result[i] = x[i] + result[half+i]*dt
	}

	// Accelerations at the drifted positions, second half kick.
	copy(l.scratch, result)
	dxNew := sys.Derive(l.scratch, t+dt)
	for i := 0; i < half; i++ {
		result[half+i] += dxNew[half+i] * halfDt
	}

	return result
}
