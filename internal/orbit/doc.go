// Package orbit computes two-body orbital parameters for a binary star
// system and provides the gravitational ODE for numeric propagation.
//
// Units are solar masses, AU, and years, so the gravitational constant
// is G = 4 pi^2 and Kepler's third law reads P^2 = a^3 / (M1 + M2).
//
//   - [Binary]: closed-form circular-orbit parameters (period,
//     barycentric radii, orbital speeds, phase positions)
//   - [TwoBody]: the ODE system, for integrator cross-checks
//   - [State], [System], [Integrator]: propagation primitives
package orbit
