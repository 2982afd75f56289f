package experiment

import (
	"fmt"

	"github.com/j-vasquez/wrwind/internal/integrators"
	"github.com/j-vasquez/wrwind/internal/orbit"
)

// Registry maps integrator names to constructors for the orbit
// propagation commands.
type Registry struct {
	integrators map[string]func() orbit.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() orbit.Integrator),
	}

	r.integrators["euler"] = func() orbit.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() orbit.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() orbit.Integrator { return integrators.NewRK45() }
	r.integrators["leapfrog"] = func() orbit.Integrator { return integrators.NewLeapfrog() }

	return r
}

func (r *Registry) GetIntegrator(name string) (orbit.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	return names
}
