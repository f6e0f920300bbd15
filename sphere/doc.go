// SPDX-License-Identifier: MIT

// Package sphere maps the extended complex plane onto the unit Riemann sphere
// by stereographic projection, and back.
//
// With the north-pole convention a finite z = x + iy, D = 1 + |z|², maps to
//
//	(2x/D, 2y/D, (|z|² − 1)/D)
//
// so 0 lands on the south pole (0, 0, −1) and ∞ on the north pole (0, 0, 1).
// Projecting through the south pole instead swaps the roles of 0 and ∞.
// Sphere points are gonum r3.Vec values.
//
// All functions are pure and safe for concurrent use.
package sphere
