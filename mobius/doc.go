// SPDX-License-Identifier: MIT

// Package mobius implements Möbius (linear fractional) transformations
// z ↦ (az + b)/(cz + d), ad − bc ≠ 0, over the extended complex plane.
//
// 🚀 Totality on the extended plane
//
//	Evaluate never fails: the pole −d/c maps to ∞ and ∞ maps to a/c
//	(or to ∞ when c = 0), so every Transformation is a bijection of
//	the Riemann sphere onto itself.
//
// ✨ Key features:
//   - New validates ad − bc ≠ 0 and finite coefficients
//   - FixedPoints via the quadratic cz² + (d − a)z − b = 0 (algebra package)
//   - Inverse, Compose, Normalize (det = 1) and Classify by trace²
//   - Identity and a text form "(az+b)/(cz+d)"
//
// ⚙️ Usage:
//
//	inv, _ := mobius.New(cnum.Zero, cnum.One, cnum.One, cnum.Zero) // z ↦ 1/z
//	inv.Evaluate(cnum.Zero)       // ∞
//	inv.Evaluate(cnum.Infinity()) // 0
//
// Transformations are immutable values and safe for concurrent use.
package mobius
