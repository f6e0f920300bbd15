// SPDX-License-Identifier: MIT

// Package algebra solves polynomial equations of degree ≤ 2 over the complex
// numbers.
//
//	RootOfLinearEquation(a, b)    az + b = 0        → [] or [−b/a]
//	Discriminant(a, b, c)         b² − 4ac
//	RootsOfQuadratic(a, b, c)     az² + bz + c = 0  → [r₁, r₂] (or the linear case)
//
// Coefficients may be any cnum.Operand (a Number or a built-in scalar).
// The quadratic roots are returned in the order (−b + √Δ)/2a, (−b − √Δ)/2a
// with √ the principal square root, but are computed with the
// cancellation-free form q = −½(b ± √Δ), r = q/a, c/q.
//
// The equation 0 = 0 is reported as ErrAllRoots so callers can distinguish
// "every value is a root" from "no root" (an empty, nil-error result).
package algebra
