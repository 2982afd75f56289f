package geom

import (
	"math"
	"testing"
)

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	if math.Abs(v.Length()-5) > 1e-12 {
		t.Errorf("expected length 5, got %f", v.Length())
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{2, 0, 0}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Length())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("expected zero vector unchanged, got %+v", zero)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)

	if math.Abs(z.Z-1) > 1e-12 || math.Abs(z.X) > 1e-12 || math.Abs(z.Y) > 1e-12 {
		t.Errorf("expected +z, got %+v", z)
	}
}

func TestVec3IsValid(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsValid() {
		t.Error("expected finite vector to be valid")
	}
	if (Vec3{math.NaN(), 0, 0}).IsValid() {
		t.Error("expected NaN vector to be invalid")
	}
	if (Vec3{0, math.Inf(1), 0}).IsValid() {
		t.Error("expected Inf vector to be invalid")
	}
}
