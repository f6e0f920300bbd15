// SPDX-License-Identifier: MIT

package cnum

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether z and w denote the same point of the extended plane.
//
//   - ∞ equals ∞ and nothing else.
//   - Same storage form: the raw stored pairs are compared exactly. Polar
//     arguments are normalized at construction, so arguments that differ by
//     whole turns compare equal.
//   - Mixed forms: the derived real and imaginary parts are compared within the
//     policy epsilon (absolute or relative), so FromCartesian(0, 1) equals
//     FromPolar(1, π/2) despite cos(π/2) rounding to 6e-17.
func (z Number) Equal(w Number) bool {
	if z.kind == Infinite || w.kind == Infinite {
		return z.kind == w.kind
	}
	if z.kind == w.kind {
		return z.a == w.a && z.b == w.b
	}
	return z.EqualWithin(w, CurrentPolicy().Epsilon)
}

// EqualWithin reports whether the real and imaginary parts of z and w agree
// within tol, absolutely or relatively. ∞ is only within tol of ∞.
func (z Number) EqualWithin(w Number, tol float64) bool {
	if z.kind == Infinite || w.kind == Infinite {
		return z.kind == w.kind
	}
	zr, zi := z.cart()
	wr, wi := w.cart()
	return approx(zr, wr, tol) && approx(zi, wi, tol)
}

func approx(a, b, tol float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}
