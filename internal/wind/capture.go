package wind

import "github.com/j-vasquez/wrwind/internal/geom"

// Capture models the companion star absorbing wind particles.
// Inside Radius a particle's velocity is replaced by a pull of
// magnitude Speed toward the companion; inside RemovalRadius the
// particle counts as accreted and is removed.
type Capture struct {
	Radius        float64 // absorption influence radius, AU
	Speed         float64 // infall speed, AU/yr
	RemovalRadius float64 // accretion radius, AU
}

// Apply redirects particles inside the capture radius toward the
// companion and culls accreted ones. Returns the number removed.
func (cap Capture) Apply(c *Cloud, companion geom.Vec3) int {
	n := c.Len()

	ParallelFor(n, 1024, func(start, end int) {
		for i := start; i < end; i++ {
			toStar := companion.Sub(c.Pos[i])
			d := toStar.Length()
			if d >= cap.Radius {
				continue
			}
			if d == 0 {
				continue // removed below, direction undefined
			}
			c.Vel[i] = toStar.Scale(cap.Speed / d)
		}
	})

	return c.Compact(func(i int) bool {
		return c.Pos[i].DistanceTo(companion) >= cap.RemovalRadius
	})
}
