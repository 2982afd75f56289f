package wind

import "github.com/j-vasquez/wrwind/internal/geom"

// Cloud holds the live wind particles in struct-of-arrays layout.
// The three slices always have equal length.
type Cloud struct {
	Pos []geom.Vec3
	Vel []geom.Vec3
	Age []float64
}

func NewCloud(capacity int) *Cloud {
	return &Cloud{
		Pos: make([]geom.Vec3, 0, capacity),
		Vel: make([]geom.Vec3, 0, capacity),
		Age: make([]float64, 0, capacity),
	}
}

func (c *Cloud) Len() int { return len(c.Pos) }

func (c *Cloud) Append(pos, vel geom.Vec3) {
	c.Pos = append(c.Pos, pos)
	c.Vel = append(c.Vel, vel)
	c.Age = append(c.Age, 0)
}

// Advect moves every particle by its velocity over dt and ages it.
func (c *Cloud) Advect(dt float64) {
	ParallelFor(c.Len(), 1024, func(start, end int) {
		for i := start; i < end; i++ {
			c.Pos[i] = c.Pos[i].Add(c.Vel[i].Scale(dt))
			c.Age[i] += dt
		}
	})
}

// Compact drops every particle for which keep returns false and
// returns the number removed. Order is preserved.
func (c *Cloud) Compact(keep func(i int) bool) int {
	w := 0
	for i := 0; i < c.Len(); i++ {
		if keep(i) {
			if w != i {
				c.Pos[w] = c.Pos[i]
				c.Vel[w] = c.Vel[i]
				c.Age[w] = c.Age[i]
			}
			w++
		}
	}
	removed := c.Len() - w
	c.Pos = c.Pos[:w]
	c.Vel = c.Vel[:w]
	c.Age = c.Age[:w]
	return removed
}

// Positions returns a copy of the live particle positions.
func (c *Cloud) Positions() []geom.Vec3 {
	out := make([]geom.Vec3, c.Len())
	copy(out, c.Pos)
	return out
}

// IsValid reports whether every particle has finite position and velocity.
func (c *Cloud) IsValid() bool {
	for i := 0; i < c.Len(); i++ {
		if !c.Pos[i].IsValid() || !c.Vel[i].IsValid() {
			return false
		}
	}
	return true
}
