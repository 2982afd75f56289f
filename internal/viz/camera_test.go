package viz

import (
	"math"
	"testing"

	"github.com/j-vasquez/wrwind/internal/geom"
)

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera(10)
	c := NewCanvas(40, 20)

	x, y, ok := cam.Project(geom.Vec3{}, c)
	if !ok {
		t.Fatal("origin not on canvas")
	}
	if x != (40*2-1)/2 && x != 40 {
		t.Errorf("origin x %d not near canvas center", x)
	}
	if y < 38 || y > 41 {
		t.Errorf("origin y %d not near canvas center", y)
	}
}

func TestCameraProjectOffscreen(t *testing.T) {
	cam := NewCamera(10)
	c := NewCanvas(40, 20)

	if _, _, ok := cam.Project(geom.Vec3{X: 50}, c); ok {
		t.Error("point beyond bounds reported on canvas")
	}
}

func TestCameraPoleOnDropsZ(t *testing.T) {
	cam := NewCamera(10)
	c := NewCanvas(40, 20)

	x0, y0, _ := cam.Project(geom.Vec3{X: 3, Y: 2}, c)
	x1, y1, _ := cam.Project(geom.Vec3{X: 3, Y: 2, Z: 8}, c)

	if x0 != x1 || y0 != y1 {
		t.Errorf("pole-on projection depends on z: (%d,%d) vs (%d,%d)", x0, y0, x1, y1)
	}
}

func TestCameraTiltMixesZ(t *testing.T) {
	cam := NewCamera(10)
	cam.Tilt(math.Pi / 2)
	c := NewCanvas(40, 20)

	// Edge-on, a point on the z axis moves off the vertical center.
	_, yc, _ := cam.Project(geom.Vec3{}, c)
	_, yz, _ := cam.Project(geom.Vec3{Z: 5}, c)
	if yz == yc {
		t.Error("tilted camera ignores z")
	}
}

func TestCameraZoomClamps(t *testing.T) {
	cam := NewCamera(10)
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom exceeded max: %f", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom below min: %f", cam.Zoom)
	}
}

func TestDrawCloud(t *testing.T) {
	cam := NewCamera(10)
	c := NewCanvas(40, 20)

	DrawCloud(c, cam, []geom.Vec3{{X: 1, Y: 1}, {X: -2, Y: 3}, {X: 500}})

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit != 2 {
		t.Errorf("expected 2 lit cells, got %d", lit)
	}
}
