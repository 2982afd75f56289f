package wind

import (
	"context"

	"github.com/j-vasquez/wrwind/internal/geom"
	"github.com/j-vasquez/wrwind/internal/orbit"
)

// Config controls a wind simulation run.
type Config struct {
	Dt     float64 // years per frame
	Frames int     // total frames to simulate
	Rate   int     // particles emitted per frame

	// BoundsRadius culls particles farther than this from the
	// barycenter; zero disables the cull.
	BoundsRadius float64
	// MaxAge culls particles older than this many years; zero disables.
	MaxAge float64

	// SnapshotEvery records a frame snapshot every k frames (min 1).
	SnapshotEvery int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Frames:        120,
		Rate:          400,
		SnapshotEvery: 1,
		ValidateState: true,
	}
}

// Frame is a per-frame snapshot of the outflow.
type Frame struct {
	Index     int
	Time      float64
	Phase     float64
	Primary   geom.Vec3
	Companion geom.Vec3
	Positions []geom.Vec3
	Emitted   int
	Captured  int
	Live      int
}

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(f *Frame)
	Value() float64
	Reset()
}

// Observer is notified after every simulated frame.
type Observer interface {
	OnFrame(f *Frame)
}

// Result collects the output of a run.
type Result struct {
	Frames        []*Frame
	Metrics       map[string]float64
	TotalEmitted  int
	TotalCaptured int
	FinalLive     int
	Cloud         *Cloud
	Errors        []error
}

// Simulator advances a particle wind launched from the primary of a
// binary on its circular orbit, with absorption by the companion.
type Simulator struct {
	binary    orbit.Binary
	emitter   *Emitter
	capture   Capture
	cloud     *Cloud
	metrics   []Metric
	observers []Observer

	frame int
	time  float64
}

func New(b orbit.Binary, e *Emitter, cap Capture) *Simulator {
	return &Simulator{
		binary:  b,
		emitter: e,
		capture: cap,
		cloud:   NewCloud(4096),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Cloud exposes the live particle buffer, for live views.
func (s *Simulator) Cloud() *Cloud { return s.cloud }

// Binary returns the orbit driving the emission source.
func (s *Simulator) Binary() orbit.Binary { return s.binary }

func (s *Simulator) validate(cfg Config) error {
	if s.emitter == nil {
		return ErrNoEmitter
	}
	if cfg.Dt <= 0 {
		return ErrNonPositiveDt
	}
	if cfg.Frames <= 0 {
		return ErrNoFrames
	}
	return nil
}

// Step advances the simulation by one frame and returns its snapshot.
// Emission happens at the primary's current phase position, then the
// cloud advects, the companion captures, and out-of-scope particles
// are culled.
func (s *Simulator) Step(cfg Config) *Frame {
	phase := s.binary.MeanMotion() * s.time
	primary, companion := s.binary.PositionsAt(phase)

	s.emitter.Emit(s.cloud, primary, cfg.Rate)
	s.cloud.Advect(cfg.Dt)
	captured := s.capture.Apply(s.cloud, companion)

	if cfg.BoundsRadius > 0 || cfg.MaxAge > 0 {
		s.cloud.Compact(func(i int) bool {
			if cfg.BoundsRadius > 0 && s.cloud.Pos[i].Length() > cfg.BoundsRadius {
				return false
			}
			if cfg.MaxAge > 0 && s.cloud.Age[i] > cfg.MaxAge {
				return false
			}
			return true
		})
	}

	f := &Frame{
		Index:     s.frame,
		Time:      s.time,
		Phase:     phase,
		Primary:   primary,
		Companion: companion,
		Emitted:   cfg.Rate,
		Captured:  captured,
		Live:      s.cloud.Len(),
	}

	s.frame++
	s.time += cfg.Dt
	return f
}

// Run simulates cfg.Frames frames and collects snapshots and metrics.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validate(cfg); err != nil {
		return nil, err
	}

	every := cfg.SnapshotEvery
	if every < 1 {
		every = 1
	}

	result := &Result{
		Frames:  make([]*Frame, 0, cfg.Frames/every+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := s.Step(cfg)

		if cfg.ValidateState && !s.cloud.IsValid() {
			err := &RunError{Frame: f.Index, Time: f.Time, Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			break
		}

		result.TotalEmitted += f.Emitted
		result.TotalCaptured += f.Captured

		f.Positions = s.cloud.Positions()
		if f.Index%every == 0 {
			result.Frames = append(result.Frames, f)
		}

		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(f)
		}
	}

	result.FinalLive = s.cloud.Len()
	result.Cloud = s.cloud

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
