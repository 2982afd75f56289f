package wind_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/j-vasquez/wrwind/internal/geom"
	"github.com/j-vasquez/wrwind/internal/orbit"
	"github.com/j-vasquez/wrwind/internal/wind"
)

var testBinary = orbit.Binary{PrimaryMass: 10, CompanionMass: 4, Separation: 4.2}

var _ = Describe("Emitter", func() {
	It("places particles on the launch shell", func() {
		e := wind.NewEmitter(1.2, 5.0, wind.Spherical, 42)
		c := wind.NewCloud(0)
		center := geom.Vec3{X: 3, Y: -1, Z: 0.5}

		e.Emit(c, center, 200)

		Expect(c.Len()).To(Equal(200))
		for i := 0; i < c.Len(); i++ {
			Expect(c.Pos[i].DistanceTo(center)).To(BeNumerically("~", 1.2, 1e-3))
		}
	})

	It("launches at the wind speed, radially outward", func() {
		e := wind.NewEmitter(1.2, 5.0, wind.Spherical, 42)
		c := wind.NewCloud(0)
		center := geom.Vec3{}

		e.Emit(c, center, 200)

		for i := 0; i < c.Len(); i++ {
			Expect(c.Vel[i].Length()).To(BeNumerically("~", 5.0, 1e-3))
			radial := c.Pos[i].Normalize().Dot(c.Vel[i].Normalize())
			Expect(radial).To(BeNumerically("~", 1.0, 1e-3))
		}
	})

	It("keeps planar emission in the orbital plane", func() {
		e := wind.NewEmitter(1.2, 5.0, wind.Planar, 42)
		c := wind.NewCloud(0)

		e.Emit(c, geom.Vec3{}, 100)

		for i := 0; i < c.Len(); i++ {
			Expect(c.Pos[i].Z).To(BeNumerically("~", 0, 1e-9))
			Expect(c.Vel[i].Z).To(BeNumerically("~", 0, 1e-9))
		}
	})

	It("is deterministic for a fixed seed", func() {
		emit := func(seed int64) []geom.Vec3 {
			e := wind.NewEmitter(1.2, 5.0, wind.Spherical, seed)
			c := wind.NewCloud(0)
			e.Emit(c, geom.Vec3{}, 50)
			return c.Positions()
		}

		Expect(emit(7)).To(Equal(emit(7)))
		Expect(emit(7)).NotTo(Equal(emit(8)))
	})

	It("covers both hemispheres", func() {
		e := wind.NewEmitter(1.0, 1.0, wind.Spherical, 42)
		c := wind.NewCloud(0)
		e.Emit(c, geom.Vec3{}, 2000)

		up, down := 0, 0
		for i := 0; i < c.Len(); i++ {
			if c.Pos[i].Z > 0 {
				up++
			} else {
				down++
			}
		}
		Expect(math.Abs(float64(up-down))).To(BeNumerically("<", 300))
	})
})

var _ = Describe("Capture", func() {
	cap := wind.Capture{Radius: 2.5, Speed: 0.5, RemovalRadius: 0.1}
	companion := geom.Vec3{X: -3, Y: 0, Z: 0}

	It("redirects particles inside the influence radius", func() {
		c := wind.NewCloud(0)
		c.Append(geom.Vec3{X: -2, Y: 0, Z: 0}, geom.Vec3{X: 1, Y: 1, Z: 0})

		removed := cap.Apply(c, companion)

		Expect(removed).To(BeZero())
		Expect(c.Vel[0].Length()).To(BeNumerically("~", 0.5, 1e-9))
		toward := companion.Sub(c.Pos[0]).Normalize()
		Expect(c.Vel[0].Normalize().Dot(toward)).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("leaves distant particles alone", func() {
		c := wind.NewCloud(0)
		vel := geom.Vec3{X: 1, Y: 1, Z: 0}
		c.Append(geom.Vec3{X: 5, Y: 5, Z: 0}, vel)

		cap.Apply(c, companion)

		Expect(c.Vel[0]).To(Equal(vel))
	})

	It("removes accreted particles", func() {
		c := wind.NewCloud(0)
		c.Append(companion.Add(geom.Vec3{X: 0.05}), geom.Vec3{})
		c.Append(geom.Vec3{X: 5, Y: 5, Z: 0}, geom.Vec3{})

		removed := cap.Apply(c, companion)

		Expect(removed).To(Equal(1))
		Expect(c.Len()).To(Equal(1))
	})
})

var _ = Describe("Simulator", func() {
	newSim := func() *wind.Simulator {
		e := wind.NewEmitter(1.2, 5.0, wind.Spherical, 42)
		cap := wind.Capture{Radius: 2.5, Speed: 0.5, RemovalRadius: 0.1}
		return wind.New(testBinary, e, cap)
	}

	It("runs the configured number of frames", func() {
		s := newSim()
		cfg := wind.Config{Dt: 0.001, Frames: 30, Rate: 50, SnapshotEvery: 1, ValidateState: true}

		result, err := s.Run(context.Background(), cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Frames).To(HaveLen(30))
		Expect(result.TotalEmitted).To(Equal(30 * 50))
		Expect(result.FinalLive).To(Equal(result.Cloud.Len()))
	})

	It("honors the snapshot cadence", func() {
		s := newSim()
		cfg := wind.Config{Dt: 0.001, Frames: 30, Rate: 10, SnapshotEvery: 10, ValidateState: true}

		result, err := s.Run(context.Background(), cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Frames).To(HaveLen(3))
	})

	It("rejects invalid configs", func() {
		s := newSim()

		_, err := s.Run(context.Background(), wind.Config{Dt: 0, Frames: 10, Rate: 1})
		Expect(err).To(MatchError(wind.ErrNonPositiveDt))

		_, err = s.Run(context.Background(), wind.Config{Dt: 0.01, Frames: 0, Rate: 1})
		Expect(err).To(MatchError(wind.ErrNoFrames))
	})

	It("stops when the context is canceled", func() {
		s := newSim()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Run(ctx, wind.Config{Dt: 0.001, Frames: 100, Rate: 10})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("culls particles beyond the bounds radius", func() {
		s := newSim()
		cfg := wind.Config{Dt: 0.05, Frames: 200, Rate: 20, BoundsRadius: 10, SnapshotEvery: 1}

		result, err := s.Run(context.Background(), cfg)

		Expect(err).NotTo(HaveOccurred())
		for _, p := range result.Cloud.Pos {
			Expect(p.Length()).To(BeNumerically("<=", 10+5.0*0.05+1e-9))
		}
	})

	It("captures part of the outflow", func() {
		e := wind.NewEmitter(1.2, 5.0, wind.Spherical, 42)
		cap := wind.Capture{Radius: 2.5, Speed: 30.0, RemovalRadius: 0.1}
		s := wind.New(testBinary, e, cap)
		// Enough frames for the wind to reach the companion and fall in.
		cfg := wind.Config{Dt: 0.01, Frames: 150, Rate: 100, SnapshotEvery: 1}

		result, err := s.Run(context.Background(), cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.TotalCaptured).To(BeNumerically(">", 0))
	})
})
