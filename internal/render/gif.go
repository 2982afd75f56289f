package render

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/j-vasquez/wrwind/internal/wind"
)

// gifPalette keeps the animation small: background, three particle
// intensities, and the two stars.
var gifPalette = color.Palette{
	color.RGBA{10, 10, 14, 255},
	color.RGBA{40, 60, 100, 255},
	color.RGBA{90, 140, 220, 255},
	color.RGBA{180, 220, 255, 255},
	color.RGBA{230, 70, 50, 255},
	color.RGBA{70, 110, 230, 255},
}

const (
	gifIdxBg = iota
	gifIdxFaint
	gifIdxMid
	gifIdxBright
	gifIdxPrimary
	gifIdxCompanion
)

func paletteFrame(f *wind.Frame, opts Options) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, opts.Width, opts.Height), gifPalette)

	// Accumulate hit counts, then quantize to the three intensities.
	hits := make([]uint8, opts.Width*opts.Height)
	for _, p := range f.Positions {
		x, y := opts.project(p)
		if px, py, ok := opts.toPixel(x, y); ok {
			if h := hits[py*opts.Width+px]; h < 255 {
				hits[py*opts.Width+px] = h + 1
			}
		}
	}

	for i, h := range hits {
		var idx uint8
		switch {
		case h == 0:
			idx = gifIdxBg
		case h == 1:
			idx = gifIdxFaint
		case h <= 3:
			idx = gifIdxMid
		default:
			idx = gifIdxBright
		}
		img.Pix[i] = idx
	}

	setDisk := func(cx, cy, r int, idx uint8) {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy > r*r {
					continue
				}
				x, y := cx+dx, cy+dy
				if x >= 0 && x < opts.Width && y >= 0 && y < opts.Height {
					img.Pix[y*opts.Width+x] = idx
				}
			}
		}
	}

	starRadius := opts.Width / 160
	if starRadius < 2 {
		starRadius = 2
	}

	x, y := opts.project(f.Primary)
	if px, py, ok := opts.toPixel(x, y); ok {
		setDisk(px, py, starRadius, gifIdxPrimary)
	}
	x, y = opts.project(f.Companion)
	if px, py, ok := opts.toPixel(x, y); ok {
		setDisk(px, py, starRadius/2+1, gifIdxCompanion)
	}

	return img
}

// SaveGIF renders every snapshot frame into a looping animation.
// Delay is in centiseconds per frame.
func SaveGIF(path string, frames []*wind.Frame, opts Options, delay int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, paletteFrame(f, opts))
		anim.Delay = append(anim.Delay, delay)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return gif.EncodeAll(out, &anim)
}
