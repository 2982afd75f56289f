package analysis

import (
	"math"
	"testing"

	"github.com/j-vasquez/wrwind/internal/geom"
)

func TestAzimuthalHistogramBinning(t *testing.T) {
	positions := []geom.Vec3{
		{X: 1, Y: 0},  // azimuth 0
		{X: 0, Y: 1},  // azimuth pi/2
		{X: -1, Y: 0}, // azimuth pi
		{X: 0, Y: -1}, // azimuth 3pi/2
	}

	hist := AzimuthalHistogram(positions, 4)

	for i, want := range []float64{1, 1, 1, 1} {
		if hist[i] != want {
			t.Errorf("bin %d: expected %f, got %f", i, want, hist[i])
		}
	}
}

func TestAzimuthalHistogramSkipsOrigin(t *testing.T) {
	hist := AzimuthalHistogram([]geom.Vec3{{X: 0, Y: 0, Z: 3}}, 4)
	total := 0.0
	for _, h := range hist {
		total += h
	}
	if total != 0 {
		t.Errorf("expected on-axis particle to be skipped, histogram sum %f", total)
	}
}

func TestDominantModeSingleArm(t *testing.T) {
	// One-armed spiral: cos profile with a single azimuthal period.
	bins := 64
	profile := make([]float64, bins)
	for i := range profile {
		profile[i] = 10 + 5*math.Cos(float64(i)*2*math.Pi/float64(bins))
	}

	mode, power := DominantMode(profile)

	if mode != 1 {
		t.Errorf("expected dominant mode 1, got %d", mode)
	}
	if power <= 0 {
		t.Errorf("expected positive power, got %f", power)
	}
}

func TestDominantModeTwoArms(t *testing.T) {
	bins := 64
	profile := make([]float64, bins)
	for i := range profile {
		profile[i] = 10 + 5*math.Cos(2*float64(i)*2*math.Pi/float64(bins))
	}

	mode, _ := DominantMode(profile)
	if mode != 2 {
		t.Errorf("expected dominant mode 2, got %d", mode)
	}
}

func TestPowerSpectrumFlatProfile(t *testing.T) {
	profile := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	ps := PowerSpectrum(profile)

	if math.Abs(ps[0]-24) > 1e-9 {
		t.Errorf("expected DC power 24, got %f", ps[0])
	}
	for m := 1; m < len(ps); m++ {
		if ps[m] > 1e-9 {
			t.Errorf("mode %d: expected zero power for flat profile, got %f", m, ps[m])
		}
	}
}

func TestRadialProfile(t *testing.T) {
	positions := []geom.Vec3{
		{X: 0.5}, {X: 1.5}, {Y: 1.6}, {Z: 9.0}, {X: 20},
	}

	hist := RadialProfile(positions, 10, 10)

	if hist[0] != 1 {
		t.Errorf("expected 1 particle in first shell, got %f", hist[0])
	}
	if hist[1] != 2 {
		t.Errorf("expected 2 particles in second shell, got %f", hist[1])
	}
	if hist[9] != 1 {
		t.Errorf("expected 1 particle in outer shell, got %f", hist[9])
	}
}
