// Package wind simulates the particle outflow of a wind-driving star
// moving on a binary orbit.
//
// Each frame the [Emitter] launches particles isotropically from a
// spherical shell around the primary, the [Cloud] advects them at
// constant velocity, and [Capture] lets the companion star absorb
// particles that stray inside its influence radius. The rotation of
// the emission source collimates the outflow into a spiral.
//
// The [Simulator] orchestrates the frame loop and is not safe for
// concurrent use; particle advection itself is parallelized internally.
package wind
