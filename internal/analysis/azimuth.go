// Package analysis extracts geometric structure from wind particle
// clouds: azimuthal profiles, their spectra, and radial extent.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/j-vasquez/wrwind/internal/geom"
)

// AzimuthalHistogram bins particle azimuths (projected onto the orbital
// plane) into the given number of equal-width bins over [0, 2pi).
func AzimuthalHistogram(positions []geom.Vec3, bins int) []float64 {
	hist := make([]float64, bins)
	if bins <= 0 {
		return hist
	}

	for _, p := range positions {
		if p.X == 0 && p.Y == 0 {
			continue
		}
		a := math.Atan2(p.Y, p.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		idx := int(a / (2 * math.Pi) * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		hist[idx]++
	}

	return hist
}

// PowerSpectrum returns the magnitude spectrum of the azimuthal profile.
// Index m is the strength of the m-armed mode; index 0 is the mean.
func PowerSpectrum(profile []float64) []float64 {
	if len(profile) == 0 {
		return nil
	}

	spectrum := fft.FFTReal(profile)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantMode returns the strongest non-zero azimuthal mode of the
// profile. A one-armed spiral reports 1, a ring reports 0 strength.
func DominantMode(profile []float64) (mode int, power float64) {
	ps := PowerSpectrum(profile)
	for m := 1; m < len(ps); m++ {
		if ps[m] > power {
			power = ps[m]
			mode = m
		}
	}
	return mode, power
}

// RadialProfile bins particle barycentric distances into equal-width
// shells out to rMax.
func RadialProfile(positions []geom.Vec3, bins int, rMax float64) []float64 {
	hist := make([]float64, bins)
	if bins <= 0 || rMax <= 0 {
		return hist
	}

	for _, p := range positions {
		r := p.Length()
		if r >= rMax {
			continue
		}
		hist[int(r/rMax*float64(bins))]++
	}

	return hist
}
