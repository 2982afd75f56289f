package config

// Presets are named starting points; unset fields fall back to defaults
// when applied through Preset().
var Presets = map[string]*Config{
	// Classic one-armed pinwheel: isotropic wind at the primary's
	// orbital speed, pole-on view.
	"pinwheel": {
		Binary: BinaryConfig{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2},
		Wind:   WindConfig{Rate: 400, Multiplier: 1.0, Mode: "spherical"},
		Sim:    SimConfig{FramesPerOrbit: 120, Orbits: 2},
	},
	// Fast wind washes out the spiral into a nearly isotropic outflow.
	"fast-wind": {
		Binary: BinaryConfig{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2},
		Wind:   WindConfig{Rate: 400, Multiplier: 8.0, Mode: "spherical"},
		Sim:    SimConfig{FramesPerOrbit: 120, Orbits: 1, BoundsRadius: 40},
	},
	// Slow wind tightens the spiral windings.
	"slow-wind": {
		Binary: BinaryConfig{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2},
		Wind:   WindConfig{Rate: 400, Multiplier: 0.4, Mode: "spherical"},
		Sim:    SimConfig{FramesPerOrbit: 120, Orbits: 3},
	},
	// Planar emission for the 2-D view of the spiral skeleton.
	"planar": {
		Binary: BinaryConfig{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2},
		Wind:   WindConfig{Rate: 400, Multiplier: 1.0, Mode: "planar"},
		Sim:    SimConfig{FramesPerOrbit: 120, Orbits: 2},
	},
	// Wide long-period pair with a strong accretor.
	"wide": {
		Binary:  BinaryConfig{PrimaryMass: 16, CompanionMass: 8, Separation: 12},
		Wind:    WindConfig{Rate: 300, Multiplier: 1.5, Mode: "spherical"},
		Capture: CaptureConfig{Radius: 5, Speed: 4, RemovalRadius: 0.3},
		Sim:     SimConfig{FramesPerOrbit: 180, Orbits: 1.5, BoundsRadius: 30},
	},
}

// Preset returns a full config for the named preset, with unset fields
// filled from the defaults, or nil if the name is unknown.
func Preset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Binary = p.Binary

	if p.Wind.Rate != 0 {
		cfg.Wind.Rate = p.Wind.Rate
	}
	if p.Wind.Multiplier != 0 {
		cfg.Wind.Multiplier = p.Wind.Multiplier
	}
	if p.Wind.Mode != "" {
		cfg.Wind.Mode = p.Wind.Mode
	}
	if p.Wind.ShellRadius != 0 {
		cfg.Wind.ShellRadius = p.Wind.ShellRadius
	}
	if p.Wind.MaxAge != 0 {
		cfg.Wind.MaxAge = p.Wind.MaxAge
	}
	if p.Capture.Radius != 0 {
		cfg.Capture.Radius = p.Capture.Radius
	}
	if p.Capture.Speed != 0 {
		cfg.Capture.Speed = p.Capture.Speed
	}
	if p.Capture.RemovalRadius != 0 {
		cfg.Capture.RemovalRadius = p.Capture.RemovalRadius
	}
	if p.Sim.FramesPerOrbit != 0 {
		cfg.Sim.FramesPerOrbit = p.Sim.FramesPerOrbit
	}
	if p.Sim.Orbits != 0 {
		cfg.Sim.Orbits = p.Sim.Orbits
	}
	if p.Sim.BoundsRadius != 0 {
		cfg.Sim.BoundsRadius = p.Sim.BoundsRadius
	}

	return cfg
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
