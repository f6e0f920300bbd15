// SPDX-License-Identifier: MIT

// Package riemann is a complex-number toolkit for the extended complex plane
// ℂ ∪ {∞}: one value type, the transcendental functions, Möbius
// transformations and the Riemann sphere.
//
// 🚀 What is riemann?
//
//	A small, dependency-light library that brings together:
//		• Arithmetic: Cartesian and polar storage, a single point at ∞,
//		  a configurable divide-by-zero policy
//		• Transcendentals: exp, log, pow, roots, trig, hyperbolic and inverses
//		• Möbius maps: evaluation on ℂ ∪ {∞}, fixed points, inverse,
//		  composition and classification
//		• Riemann sphere: stereographic projection through either pole
//		• Helpers: degree ≤ 2 solvers, plane geometry, seeded sampling
//
// Packages:
//
//	cnum/      — the Number type, arithmetic, policy, parsing and formatting
//	cmath/     — Exp, Log, Pow, Sqrt, Sin, Cos, ... on cnum.Number
//	algebra/   — linear and quadratic roots
//	mobius/    — z ↦ (az + b)/(cz + d)
//	sphere/    — projection to and from the unit sphere
//	geometry/  — distances, triangle area, line tests
//	sample/    — deterministic random points in plane regions
//	cmd/riemann — command-line front end
//
// Quick example:
//
//	z := cnum.FromCartesian(3, 4)
//	w, _ := cmath.Sqrt(z)                 // ≈ 2+i
//	p := sphere.ToSphere(cnum.Infinity()) // (0, 0, 1)
//
//	go get github.com/katalvlaran/riemann
package riemann
