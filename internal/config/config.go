package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/j-vasquez/wrwind/internal/orbit"
)

// Default simulation constants. The stock binary reproduces a
// 1.2 AU / 3.0 AU pair of barycentric orbits (mass ratio 2.5).
const (
	DefaultPrimaryMass    = 10.0
	DefaultCompanionMass  = 4.0
	DefaultSeparation     = 4.2
	DefaultRate           = 400
	DefaultMultiplier     = 1.0
	DefaultFramesPerOrbit = 120
	DefaultOrbits         = 1.0
	DefaultCaptureRadius  = 2.5
	DefaultCaptureSpeed   = 2.5
	DefaultRemovalRadius  = 0.1
	DefaultBoundsRadius   = 10.0
	DefaultImageSize      = 800
	DefaultGIFDelay       = 8 // centiseconds per frame
)

type Config struct {
	Binary  BinaryConfig  `yaml:"binary"`
	Wind    WindConfig    `yaml:"wind"`
	Capture CaptureConfig `yaml:"capture"`
	Sim     SimConfig     `yaml:"sim"`
	Render  RenderConfig  `yaml:"render"`
}

type BinaryConfig struct {
	PrimaryMass   float64 `yaml:"primary_mass"`   // solar masses
	CompanionMass float64 `yaml:"companion_mass"` // solar masses
	Separation    float64 `yaml:"separation"`     // AU
	Eccentricity  float64 `yaml:"eccentricity"`
}

type WindConfig struct {
	Rate        int     `yaml:"rate"`         // particles per frame
	Multiplier  float64 `yaml:"multiplier"`   // wind speed as multiple of the primary's orbital speed
	ShellRadius float64 `yaml:"shell_radius"` // launch shell radius, AU; 0 = primary orbit radius
	Mode        string  `yaml:"mode"`         // "spherical" or "planar"
	MaxAge      float64 `yaml:"max_age"`      // years; 0 = no age cull
}

type CaptureConfig struct {
	Radius        float64 `yaml:"radius"`         // AU
	Speed         float64 `yaml:"speed"`          // AU/yr
	RemovalRadius float64 `yaml:"removal_radius"` // AU
}

type SimConfig struct {
	FramesPerOrbit int     `yaml:"frames_per_orbit"`
	Orbits         float64 `yaml:"orbits"`
	Seed           int64   `yaml:"seed"`
	BoundsRadius   float64 `yaml:"bounds_radius"`
	SnapshotEvery  int     `yaml:"snapshot_every"`
	Integrator     string  `yaml:"integrator"` // for orbit cross-checks
}

type RenderConfig struct {
	FiguresDir string `yaml:"figures_dir"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	GIFDelay   int    `yaml:"gif_delay"` // centiseconds per frame
}

func DefaultConfig() *Config {
	return &Config{
		Binary: BinaryConfig{
			PrimaryMass:   DefaultPrimaryMass,
			CompanionMass: DefaultCompanionMass,
			Separation:    DefaultSeparation,
		},
		Wind: WindConfig{
			Rate:       DefaultRate,
			Multiplier: DefaultMultiplier,
			Mode:       "spherical",
		},
		Capture: CaptureConfig{
			Radius:        DefaultCaptureRadius,
			Speed:         DefaultCaptureSpeed,
			RemovalRadius: DefaultRemovalRadius,
		},
		Sim: SimConfig{
			FramesPerOrbit: DefaultFramesPerOrbit,
			Orbits:         DefaultOrbits,
			BoundsRadius:   DefaultBoundsRadius,
			SnapshotEvery:  1,
			Integrator:     "rk4",
		},
		Render: RenderConfig{
			FiguresDir: "figures",
			Width:      DefaultImageSize,
			Height:     DefaultImageSize,
			GIFDelay:   DefaultGIFDelay,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetBinary builds and validates the orbit parameters.
func (c *Config) GetBinary() (orbit.Binary, error) {
	b := orbit.Binary{
		PrimaryMass:   c.Binary.PrimaryMass,
		CompanionMass: c.Binary.CompanionMass,
		Separation:    c.Binary.Separation,
		Eccentricity:  c.Binary.Eccentricity,
	}
	if err := b.Validate(); err != nil {
		return orbit.Binary{}, err
	}
	return b, nil
}

// Frames returns the total frame count for the configured orbit span.
func (c *Config) Frames() int {
	return int(float64(c.Sim.FramesPerOrbit) * c.Sim.Orbits)
}
