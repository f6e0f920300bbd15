// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"

	"github.com/katalvlaran/riemann/algebra"
	"github.com/katalvlaran/riemann/cmath"
	"github.com/katalvlaran/riemann/cnum"
)

// Transformation is the map z ↦ (az + b)/(cz + d) with ad − bc ≠ 0.
// The zero value is not valid; build one with New or Identity.
type Transformation struct {
	a, b, c, d cnum.Number
}

// New returns the transformation with coefficients a, b, c, d.
// Errors: ErrDegenerateTransformation if ad − bc = 0 or any coefficient is ∞.
func New(a, b, c, d cnum.Number) (Transformation, error) {
	for _, k := range [...]cnum.Number{a, b, c, d} {
		if k.IsInfinity() || k.IsNaN() {
			return Transformation{}, mobiusErrorf("New", ErrDegenerateTransformation)
		}
	}
	t := Transformation{a: a, b: b, c: c, d: d}
	if t.Determinant().Modulus() == 0 {
		return Transformation{}, mobiusErrorf("New", ErrDegenerateTransformation)
	}
	return t, nil
}

// Identity returns z ↦ z.
func Identity() Transformation {
	return Transformation{a: cnum.One, b: cnum.Zero, c: cnum.Zero, d: cnum.One}
}

// Coefficients returns (a, b, c, d).
func (t Transformation) Coefficients() (a, b, c, d cnum.Number) {
	return t.a, t.b, t.c, t.d
}

// Determinant returns ad − bc.
func (t Transformation) Determinant() cnum.Number {
	ad, _ := t.a.Mul(t.d)
	bc, _ := t.b.Mul(t.c)
	det, _ := ad.Sub(bc)
	return det
}

// Evaluate returns t(z). It is total on the extended plane:
//
//	z = ∞, c = 0      → ∞
//	z = ∞, c ≠ 0      → a/c
//	cz + d = 0        → ∞
//	otherwise         → (az + b)/(cz + d)
func (t Transformation) Evaluate(z cnum.Number) cnum.Number {
	if z.IsInfinity() {
		if isZero(t.c) {
			return cnum.Infinity()
		}
		q, _ := t.a.DivMode(t.c, cnum.ReturnInfinity)
		return q
	}
	cz, _ := t.c.Mul(z)
	den := cz.Add(t.d)
	if isZero(den) {
		return cnum.Infinity()
	}
	az, _ := t.a.Mul(z)
	q, _ := az.Add(t.b).DivMode(den, cnum.ReturnInfinity)
	return q
}

// FixedPoints returns the two fixed points of t, counted with multiplicity.
//
//   - c ≠ 0: the roots of cz² + (d − a)z − b = 0 in the order of
//     algebra.RootsOfQuadratic.
//   - c = 0, a ≠ d: [b/(d − a), ∞].
//   - c = 0, a = d: [∞, ∞]. This covers translations and the identity;
//     use IsIdentity to tell the identity apart.
func (t Transformation) FixedPoints() ([]cnum.Number, error) {
	if !isZero(t.c) {
		dma, _ := t.d.Sub(t.a)
		roots, err := algebra.RootsOfQuadratic(t.c, dma, t.b.Neg())
		if err != nil {
			return nil, mobiusErrorf("FixedPoints", err)
		}
		return roots, nil
	}
	if t.a.Equal(t.d) {
		return []cnum.Number{cnum.Infinity(), cnum.Infinity()}, nil
	}
	dma, _ := t.d.Sub(t.a)
	p, err := t.b.Div(dma)
	if err != nil {
		return nil, mobiusErrorf("FixedPoints", err)
	}
	return []cnum.Number{p, cnum.Infinity()}, nil
}

// IsIdentity reports whether t is z ↦ z: b = 0, c = 0 and a = d.
func (t Transformation) IsIdentity() bool {
	return isZero(t.b) && isZero(t.c) && t.a.Equal(t.d)
}

// Inverse returns t⁻¹ with coefficients (d, −b, −c, a).
func (t Transformation) Inverse() Transformation {
	return Transformation{a: t.d, b: t.b.Neg(), c: t.c.Neg(), d: t.a}
}

// Compose returns t∘u, the map z ↦ t(u(z)).
// Errors: ErrDegenerateTransformation if the product underflows to det = 0.
func (t Transformation) Compose(u Transformation) (Transformation, error) {
	dot := func(x, y, z, w cnum.Number) cnum.Number {
		xy, _ := x.Mul(y)
		zw, _ := z.Mul(w)
		return xy.Add(zw)
	}
	return New(
		dot(t.a, u.a, t.b, u.c),
		dot(t.a, u.b, t.b, u.d),
		dot(t.c, u.a, t.d, u.c),
		dot(t.c, u.b, t.d, u.d),
	)
}

// Normalize returns the same map with coefficients divided by √(ad − bc),
// so the determinant is 1.
func (t Transformation) Normalize() (Transformation, error) {
	s, err := cmath.Sqrt(t.Determinant())
	if err != nil {
		return Transformation{}, mobiusErrorf("Normalize", err)
	}
	div := func(k cnum.Number) cnum.Number {
		q, _ := k.Div(s)
		return q
	}
	return New(div(t.a), div(t.b), div(t.c), div(t.d))
}

// String returns "(az+b)/(cz+d)" with each coefficient parenthesized.
func (t Transformation) String() string {
	return fmt.Sprintf("((%s)z+(%s))/((%s)z+(%s))", t.a, t.b, t.c, t.d)
}

func isZero(z cnum.Number) bool {
	return z.IsFinite() && z.Modulus() == 0
}
