package viz

import (
	"math"

	"github.com/j-vasquez/wrwind/internal/geom"
)

// Camera projects simulation space onto the braille canvas. It starts
// pole-on (looking down the orbital axis) and can be tilted and spun
// interactively.
type Camera struct {
	RotX, RotZ float64 // tilt and spin, radians
	Zoom       float64
	Bounds     float64 // half-extent of the viewed domain, AU
}

func NewCamera(bounds float64) *Camera {
	if bounds <= 0 {
		bounds = 10
	}
	return &Camera{Zoom: 1.0, Bounds: bounds}
}

func (c *Camera) Tilt(a float64) { c.RotX += a }
func (c *Camera) Spin(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()        { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()       { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// rotate applies spin about z, then tilt about x.
func (c *Camera) rotate(p geom.Vec3) geom.Vec3 {
	sz, cz := math.Sincos(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz

	sx, cx := math.Sincos(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project maps a point to sub-pixel canvas coordinates. The returned
// bool reports whether the point lies on the canvas.
func (c *Camera) Project(p geom.Vec3, canvas *Canvas) (int, int, bool) {
	rot := c.rotate(p).Scale(c.Zoom)

	sw := canvas.Width * 2
	sh := canvas.Height * 4

	// Orthographic: drop depth after rotation.
	px := int((rot.X/c.Bounds + 1) / 2 * float64(sw-1))
	py := int((1 - rot.Y/c.Bounds) / 2 * float64(sh-1))

	ok := px >= 0 && px < sw && py >= 0 && py < sh
	return px, py, ok
}

// DrawCloud plots every particle of the cloud onto the canvas.
func DrawCloud(canvas *Canvas, cam *Camera, positions []geom.Vec3) {
	for _, p := range positions {
		if x, y, ok := cam.Project(p, canvas); ok {
			canvas.Set(x, y)
		}
	}
}
