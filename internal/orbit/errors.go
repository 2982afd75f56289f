package orbit

import "errors"

// Domain errors for orbital computations.
var (
	// ErrNonPositiveMass indicates a star mass that is zero or negative.
	ErrNonPositiveMass = errors.New("orbit: star mass must be positive")

	// ErrNonPositiveSeparation indicates a zero or negative orbital separation.
	ErrNonPositiveSeparation = errors.New("orbit: separation must be positive")

	// ErrEccentricityRange indicates an eccentricity outside [0, 1).
	ErrEccentricityRange = errors.New("orbit: eccentricity must be in [0, 1)")

	// ErrInvalidState indicates a state vector with NaN or Inf components.
	ErrInvalidState = errors.New("orbit: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates an adaptive timestep below its minimum.
	ErrStepTooSmall = errors.New("orbit: adaptive timestep below minimum")
)

// PropagationError wraps an error with propagation context.
type PropagationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *PropagationError) Error() string {
	return e.Wrapped.Error()
}

func (e *PropagationError) Unwrap() error {
	return e.Wrapped
}
