package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/j-vasquez/wrwind/internal/geom"
)

// OrbitSVG draws the barycentric paths of both stars as an SVG figure.
func OrbitSVG(primary, companion []geom.Vec3, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0e"/>
`, width, height, width, height))

	bounds := 1.0
	for _, p := range append(append([]geom.Vec3{}, primary...), companion...) {
		for _, v := range []float64{p.X, p.Y} {
			if v > bounds {
				bounds = v
			}
			if -v > bounds {
				bounds = -v
			}
		}
	}
	bounds *= 1.1

	toScreen := func(p geom.Vec3) (float64, float64) {
		x := (p.X + bounds) / (2 * bounds) * float64(width)
		y := (bounds - p.Y) / (2 * bounds) * float64(height)
		return x, y
	}

	writePath := func(points []geom.Vec3, stroke string) {
		if len(points) < 2 {
			return
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i, p := range points {
			x, y := toScreen(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	writePath(primary, "#e64632")
	writePath(companion, "#466ee6")

	if len(primary) > 0 {
		x, y := toScreen(primary[len(primary)-1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="#e64632"/>`+"\n", x, y))
	}
	if len(companion) > 0 {
		x, y := toScreen(companion[len(companion)-1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#466ee6"/>`+"\n", x, y))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SaveSVG writes an SVG document to path, creating parent directories.
func SaveSVG(path, svg string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
