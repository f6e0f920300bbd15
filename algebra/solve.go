// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/riemann/cmath"
	"github.com/katalvlaran/riemann/cnum"
)

// RootOfLinearEquation returns the root of az + b = 0: a one-element slice
// [−b/a], or an empty slice when a = 0 and b ≠ 0.
//
// Errors:
//   - ErrAllRoots when a = b = 0.
//   - cnum.ErrUndefinedForInfinity when a coefficient is ∞.
func RootOfLinearEquation[T cnum.Operand](a, b T) ([]cnum.Number, error) {
	return linear(cnum.Lift(a), cnum.Lift(b))
}

// Discriminant returns b² − 4ac.
// Errors: cnum.ErrUndefinedForInfinity when a coefficient is ∞.
func Discriminant[T cnum.Operand](a, b, c T) (cnum.Number, error) {
	return discriminant(cnum.Lift(a), cnum.Lift(b), cnum.Lift(c))
}

// RootsOfQuadratic returns the two roots of az² + bz + c = 0, repeated roots
// included twice. When a = 0 it returns RootOfLinearEquation(b, c).
//
// Errors:
//   - ErrAllRoots when a = b = c = 0.
//   - cnum.ErrUndefinedForInfinity when a coefficient is ∞.
func RootsOfQuadratic[T cnum.Operand](a, b, c T) ([]cnum.Number, error) {
	return quadratic(cnum.Lift(a), cnum.Lift(b), cnum.Lift(c))
}

func linear(a, b cnum.Number) ([]cnum.Number, error) {
	if a.IsInfinity() || b.IsInfinity() {
		return nil, algebraErrorf("RootOfLinearEquation", cnum.ErrUndefinedForInfinity)
	}
	if a.Modulus() == 0 {
		if b.Modulus() == 0 {
			return nil, algebraErrorf("RootOfLinearEquation", ErrAllRoots)
		}
		return []cnum.Number{}, nil
	}
	r, err := b.Neg().Div(a)
	if err != nil {
		return nil, algebraErrorf("RootOfLinearEquation", err)
	}
	return []cnum.Number{r}, nil
}

func discriminant(a, b, c cnum.Number) (cnum.Number, error) {
	if a.IsInfinity() || b.IsInfinity() || c.IsInfinity() {
		return cnum.Number{}, algebraErrorf("Discriminant", cnum.ErrUndefinedForInfinity)
	}
	bb, _ := b.Mul(b)
	ac, _ := a.Mul(c)
	ac4, _ := ac.Scale(4)
	d, _ := bb.Sub(ac4)
	return d, nil
}

func quadratic(a, b, c cnum.Number) ([]cnum.Number, error) {
	d, err := discriminant(a, b, c)
	if err != nil {
		return nil, algebraErrorf("RootsOfQuadratic", cnum.ErrUndefinedForInfinity)
	}
	if a.Modulus() == 0 {
		return linear(b, c)
	}
	sqrtD, err := cmath.Sqrt(d)
	if err != nil {
		return nil, algebraErrorf("RootsOfQuadratic", err)
	}

	// q = −½(b + s·√Δ) with s = ±1 chosen so that b and s·√Δ do not cancel.
	br, bi, _ := b.Parts()
	sr, si, _ := sqrtD.Parts()
	s := 1.0
	if br*sr+bi*si < 0 {
		s = -1
	}
	signed, _ := sqrtD.Scale(s)
	q, _ := b.Add(signed).Scale(-0.5)

	var r1, r2 cnum.Number
	if q.Modulus() == 0 {
		// b = 0 and Δ = 0, so c = 0: double root at the origin.
		r1, r2 = cnum.Zero, cnum.Zero
	} else {
		qa, err := q.Div(a)
		if err != nil {
			return nil, algebraErrorf("RootsOfQuadratic", err)
		}
		cq, err := c.Div(q)
		if err != nil {
			return nil, algebraErrorf("RootsOfQuadratic", err)
		}
		// s = +1 gives q/a = (−b − √Δ)/2a; s = −1 gives q/a = (−b + √Δ)/2a.
		if s > 0 {
			r1, r2 = cq, qa
		} else {
			r1, r2 = qa, cq
		}
	}
	return []cnum.Number{r1, r2}, nil
}
