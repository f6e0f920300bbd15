// SPDX-License-Identifier: MIT

// Package cnum is the arithmetic core of riemann: a complex-number value type
// over the extended plane (the complex plane plus a single point at infinity).
//
// 🚀 What is a Number?
//
//	A Number is an immutable value stored in one of two forms:
//	  • Cartesian — (real, imaginary)
//	  • Polar     — (modulus ≥ 0, argument ∈ [0, 2π))
//	or it is the point at infinity ∞ produced by Infinity().
//
//	The storage form chosen at construction is kept for the lifetime of the
//	value. Derived quantities (Real, Imaginary, Modulus, Argument) are computed
//	on demand from either form and never cached.
//
// ✨ Key features:
//   - Polar fast paths: polar × polar and polar ÷ polar stay polar
//   - Extended-plane algebra: ∞ + z = ∞, z / ∞ = 0, indeterminate forms
//     (∞−∞, ∞×0, 0/0, ∞/∞) reported as ErrIndeterminate
//   - Division-by-zero policy: ThrowException or ReturnInfinity (see Configure)
//   - Representation-aware equality with a tolerant cross-form fallback
//   - Canonical text forms "a±bi" and "r*exp(θ)" with Parse/UnmarshalText
//
// ⚙️ Usage:
//
//	z := cnum.FromCartesian(3, 4)
//	w, _ := cnum.FromPolar(2, math.Pi/2)
//	p, err := z.Mul(w)
//	q, err := cnum.Div(p, 2) // generic entry point, scalar right operand
//
// Concurrency:
//
//	Numbers are immutable and safe to share between goroutines. The only
//	shared state is the numeric Policy, stored atomically; set it once at
//	startup via Configure.
//
// Errors:
//
//	All failures are sentinels from errors.go wrapped with the operation name;
//	match them with errors.Is.
package cnum
