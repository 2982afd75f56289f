package wind

import "errors"

// Domain errors for wind simulation runs.
var (
	// ErrInvalidState indicates a particle with NaN or Inf components.
	ErrInvalidState = errors.New("wind: invalid particle state (NaN or Inf detected)")

	// ErrNoFrames indicates a run configured for zero frames.
	ErrNoFrames = errors.New("wind: frame count must be positive")

	// ErrNonPositiveDt indicates a zero or negative frame timestep.
	ErrNonPositiveDt = errors.New("wind: frame timestep must be positive")

	// ErrNoEmitter indicates a simulator assembled without an emitter.
	ErrNoEmitter = errors.New("wind: simulator has no emitter")
)

// RunError wraps an error with frame context.
type RunError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *RunError) Error() string {
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
