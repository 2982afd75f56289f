package integrators

import "github.com/j-vasquez/wrwind/internal/orbit"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys orbit.System, x orbit.State, t, dt float64) orbit.State {
	dx := sys.Derive(x, t)
	result := make(orbit.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
