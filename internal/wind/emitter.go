package wind

import (
	"math"
	"math/rand"

	"github.com/j-vasquez/wrwind/internal/geom"
)

// Mode selects the emission geometry.
type Mode int

const (
	// Spherical emits isotropically over the full sphere.
	Spherical Mode = iota
	// Planar confines emission to the orbital plane (z = 0).
	Planar
)

func (m Mode) String() string {
	if m == Planar {
		return "planar"
	}
	return "spherical"
}

// Emitter launches wind particles from a spherical shell around the
// moving primary star. Directions are drawn uniformly: azimuth uniform
// on [0, 2pi), polar angle as acos of a uniform cosine, which avoids
// clustering at the poles.
type Emitter struct {
	ShellRadius float64 // launch shell radius around the star, AU
	Speed       float64 // terminal wind speed, AU/yr
	Mode        Mode

	rng *rand.Rand
}

func NewEmitter(shellRadius, speed float64, mode Mode, seed int64) *Emitter {
	return &Emitter{
		ShellRadius: shellRadius,
		Speed:       speed,
		Mode:        mode,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Emit appends n particles launched from the shell centered at the
// given star position. Each particle starts on the shell surface with
// a radially outward velocity of magnitude Speed.
func (e *Emitter) Emit(c *Cloud, center geom.Vec3, n int) {
	if n <= 0 {
		return
	}

	for i := 0; i < n; i++ {
		azimuth := e.rng.Float64() * 2 * math.Pi
		sinAz, cosAz := FastSinCos(azimuth)

		var sinPol, cosPol float64
		if e.Mode == Planar {
			sinPol, cosPol = 1, 0 // equator only
		} else {
			cosPol = 2*e.rng.Float64() - 1
			sinPol = math.Sqrt(1 - cosPol*cosPol)
		}

		dir := geom.Vec3{
			X: cosAz * sinPol,
			Y: sinAz * sinPol,
			Z: cosPol,
		}

		c.Append(center.Add(dir.Scale(e.ShellRadius)), dir.Scale(e.Speed))
	}
}
