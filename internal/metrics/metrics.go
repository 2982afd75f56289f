package metrics

import (
	"math"

	"github.com/j-vasquez/wrwind/internal/wind"
)

// Population tracks the mean number of live particles per frame.
type Population struct {
	total   int
	samples int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(f *wind.Frame) {
	p.total += f.Live
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *Population) Reset() {
	p.total = 0
	p.samples = 0
}

// CapturedFraction is the fraction of emitted particles the companion
// has accreted by the end of the run.
type CapturedFraction struct {
	emitted  int
	captured int
}

func NewCapturedFraction() *CapturedFraction { return &CapturedFraction{} }

func (c *CapturedFraction) Name() string { return "captured_fraction" }

func (c *CapturedFraction) Observe(f *wind.Frame) {
	c.emitted += f.Emitted
	c.captured += f.Captured
}

func (c *CapturedFraction) Value() float64 {
	if c.emitted == 0 {
		return 0
	}
	return float64(c.captured) / float64(c.emitted)
}

func (c *CapturedFraction) Reset() {
	c.emitted = 0
	c.captured = 0
}

// MeanRadius tracks the mean barycentric distance of the cloud on the
// final observed frame, a proxy for outflow extent.
type MeanRadius struct {
	last float64
}

func NewMeanRadius() *MeanRadius { return &MeanRadius{} }

func (m *MeanRadius) Name() string { return "mean_radius" }

func (m *MeanRadius) Observe(f *wind.Frame) {
	if len(f.Positions) == 0 {
		return
	}
	sum := 0.0
	for _, p := range f.Positions {
		sum += p.Length()
	}
	m.last = sum / float64(len(f.Positions))
}

func (m *MeanRadius) Value() float64 { return m.last }

func (m *MeanRadius) Reset() { m.last = 0 }

// Anisotropy measures azimuthal concentration of the outflow on the
// final observed frame: the mean resultant length of particle azimuth
// unit vectors. 0 means isotropic, 1 means fully collimated.
type Anisotropy struct {
	last float64
}

func NewAnisotropy() *Anisotropy { return &Anisotropy{} }

func (a *Anisotropy) Name() string { return "anisotropy" }

func (a *Anisotropy) Observe(f *wind.Frame) {
	if len(f.Positions) == 0 {
		return
	}
	var sumCos, sumSin float64
	n := 0
	for _, p := range f.Positions {
		r := math.Hypot(p.X, p.Y)
		if r == 0 {
			continue
		}
		sumCos += p.X / r
		sumSin += p.Y / r
		n++
	}
	if n == 0 {
		return
	}
	a.last = math.Hypot(sumCos, sumSin) / float64(n)
}

func (a *Anisotropy) Value() float64 { return a.last }

func (a *Anisotropy) Reset() { a.last = 0 }

// Defaults returns the standard metric set for a wind run.
func Defaults() []wind.Metric {
	return []wind.Metric{
		NewPopulation(),
		NewCapturedFraction(),
		NewMeanRadius(),
		NewAnisotropy(),
	}
}
