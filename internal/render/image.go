// Package render produces the output figures of a wind run: pole-on
// and projected 3-D PNG stills, animated GIFs, and SVG orbit paths.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/j-vasquez/wrwind/internal/geom"
	"github.com/j-vasquez/wrwind/internal/wind"
)

// Options controls figure geometry. Bounds is the half-extent of the
// plotted domain in AU; Elev and Azim are the 3-D viewing angles in
// degrees, matching the pole-on convention (Elev 90 looks down the
// orbital axis).
type Options struct {
	Width  int
	Height int
	Bounds float64
	Elev   float64
	Azim   float64
}

func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 800,
		Bounds: 10,
		Elev:   90,
		Azim:   180,
	}
}

var (
	colBg        = color.RGBA{10, 10, 14, 255}
	colParticle  = color.RGBA{90, 140, 220, 255}
	colPrimary   = color.RGBA{230, 70, 50, 255}
	colCompanion = color.RGBA{70, 110, 230, 255}
)

// project rotates a point into the viewing frame and drops depth.
// Azimuth spins about the orbital axis, elevation tilts toward the
// line of sight.
func (o Options) project(p geom.Vec3) (float64, float64) {
	az := o.Azim * math.Pi / 180
	el := o.Elev * math.Pi / 180

	sinAz, cosAz := math.Sincos(az)
	x := p.X*cosAz + p.Y*sinAz
	y := -p.X*sinAz + p.Y*cosAz

	sinEl, cosEl := math.Sincos(el)
	// Screen vertical mixes in-plane depth with height.
	v := y*sinEl + p.Z*cosEl
	return x, v
}

func (o Options) toPixel(x, y float64) (int, int, bool) {
	px := int((x + o.Bounds) / (2 * o.Bounds) * float64(o.Width-1))
	py := int((o.Bounds - y) / (2 * o.Bounds) * float64(o.Height-1))
	ok := px >= 0 && px < o.Width && py >= 0 && py < o.Height
	return px, py, ok
}

func fillDisk(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// Figure renders one frame of the outflow with the configured view.
// With the default pole-on view this is the 2-D figure; tilted angles
// give the 3-D projection.
func Figure(f *wind.Frame, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.SetRGBA(x, y, colBg)
		}
	}

	for _, p := range f.Positions {
		x, y := opts.project(p)
		if px, py, ok := opts.toPixel(x, y); ok {
			blendAdd(img, px, py, colParticle, 90)
		}
	}

	starRadius := opts.Width / 160
	if starRadius < 2 {
		starRadius = 2
	}

	x, y := opts.project(f.Primary)
	if px, py, ok := opts.toPixel(x, y); ok {
		fillDisk(img, px, py, starRadius, colPrimary)
	}

	x, y = opts.project(f.Companion)
	if px, py, ok := opts.toPixel(x, y); ok {
		fillDisk(img, px, py, starRadius/2+1, colCompanion)
	}

	return img
}

// blendAdd accumulates particle brightness so dense spiral arms
// saturate while stray particles stay faint.
func blendAdd(img *image.RGBA, x, y int, c color.RGBA, alpha uint32) {
	old := img.RGBAAt(x, y)
	add := func(base uint8, inc uint8) uint8 {
		v := uint32(base) + uint32(inc)*alpha/255
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: add(old.R, c.R),
		G: add(old.G, c.G),
		B: add(old.B, c.B),
		A: 255,
	})
}

// SavePNG writes an image to path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
