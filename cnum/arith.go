// SPDX-License-Identifier: MIT
// Package: cnum
//
// Purpose:
//   - The four operators over the extended plane plus negation and reciprocal.
//
// Extended-plane table (z finite, z ≠ 0):
//
//	∞ + w = ∞           ∞ − z = ∞          ∞ − ∞ → ErrIndeterminate
//	∞ × z = ∞           ∞ × 0 → ErrIndeterminate
//	z / ∞ = 0           ∞ / ∞ → ErrIndeterminate
//	z / 0 → policy      0 / 0 → ErrIndeterminate (every mode)
//
// Storage:
//   - Add/Sub always produce Cartesian values.
//   - Mul/Div keep the polar form when both operands are polar; otherwise Cartesian.

package cnum

import "math"

// Add returns z + w. Addition never fails: any sum involving ∞ is ∞.
func (z Number) Add(w Number) Number {
	if z.kind == Infinite || w.kind == Infinite {
		return Infinity()
	}
	zr, zi := z.cart()
	wr, wi := w.cart()
	return FromCartesian(zr+wr, zi+wi)
}

// Sub returns z − w.
// Errors: ErrIndeterminate for ∞ − ∞.
func (z Number) Sub(w Number) (Number, error) {
	zInf, wInf := z.kind == Infinite, w.kind == Infinite
	switch {
	case zInf && wInf:
		return Number{}, cnumErrorf("Sub", ErrIndeterminate)
	case zInf || wInf:
		return Infinity(), nil
	}
	zr, zi := z.cart()
	wr, wi := w.cart()
	return FromCartesian(zr-wr, zi-wi), nil
}

// Neg returns −z. The negation of ∞ is ∞.
func (z Number) Neg() Number {
	switch z.kind {
	case Infinite:
		return z
	case Polar:
		if z.a == 0 {
			return z
		}
		return Number{a: z.a, b: normalizeAngle(z.b + math.Pi), kind: Polar}
	default:
		return Number{a: -z.a, b: -z.b, kind: Cartesian}
	}
}

// Mul returns z × w. Two polar operands multiply moduli and add arguments,
// keeping the polar form; any other pair uses (ac − bd) + (ad + bc)i.
// Errors: ErrIndeterminate for ∞ × 0 (a polar zero counts as 0).
func (z Number) Mul(w Number) (Number, error) {
	if z.kind == Infinite || w.kind == Infinite {
		if z.isZero() || w.isZero() {
			return Number{}, cnumErrorf("Mul", ErrIndeterminate)
		}
		return Infinity(), nil
	}
	if z.kind == Polar && w.kind == Polar {
		return polarOf(z.a*w.a, z.b+w.b), nil
	}
	a, b := z.cart()
	c, d := w.cart()
	return FromCartesian(a*c-b*d, a*d+b*c), nil
}

// Div returns z / w under the process-wide division mode (see Configure).
func (z Number) Div(w Number) (Number, error) {
	return z.divMode("Div", w, CurrentPolicy().Division)
}

// DivMode returns z / w under the given division mode, ignoring the
// process-wide policy.
//
// Errors:
//   - ErrIndeterminate for 0/0 and ∞/∞.
//   - ErrDivisionByZero when w is a finite zero and mode is ThrowException.
//   - ErrInvalidArgument for an unknown mode.
func (z Number) DivMode(w Number, mode DivisionMode) (Number, error) {
	if !mode.valid() {
		return Number{}, cnumErrorf("DivMode", ErrInvalidArgument)
	}
	return z.divMode("DivMode", w, mode)
}

func (z Number) divMode(op string, w Number, mode DivisionMode) (Number, error) {
	// Stage 1: infinite divisor.
	if w.kind == Infinite {
		if z.kind == Infinite {
			return Number{}, cnumErrorf(op, ErrIndeterminate)
		}
		return Zero, nil
	}
	// Stage 2: zero divisor, resolved by policy.
	if w.isZero() {
		if z.isZero() {
			return Number{}, cnumErrorf(op, ErrIndeterminate)
		}
		if mode == ThrowException {
			return Number{}, cnumErrorf(op, ErrDivisionByZero)
		}
		return Infinity(), nil
	}
	// Stage 3: infinite dividend over a finite non-zero divisor.
	if z.kind == Infinite {
		return Infinity(), nil
	}
	// Stage 4: z·conj(w) / |w|², scaled so no intermediate overflows.
	if z.kind == Polar && w.kind == Polar {
		return polarOf(z.a/w.a, z.b-w.b), nil
	}
	a, b := z.cart()
	c, d := w.cart()
	re, im := smithDiv(a, b, c, d)
	return FromCartesian(re, im), nil
}

// smithDiv returns (a + bi)/(c + di) for c + di ≠ 0 by Smith's method:
// the divisor is scaled by its larger component before any product is formed.
func smithDiv(a, b, c, d float64) (re, im float64) {
	if math.Abs(c) >= math.Abs(d) {
		r := d / c
		den := c + d*r
		return (a + b*r) / den, (b - a*r) / den
	}
	r := c / d
	den := c*r + d
	return (a*r + b) / den, (b*r - a) / den
}

// Reciprocal returns 1/z under the process-wide division mode.
// The reciprocal of ∞ is 0.
func (z Number) Reciprocal() (Number, error) {
	return One.divMode("Reciprocal", z, CurrentPolicy().Division)
}

// Scale returns k·z for a real k. Polar values stay polar when k ≥ 0.
// Errors: ErrIndeterminate for 0·∞.
func (z Number) Scale(k float64) (Number, error) {
	if z.kind == Infinite {
		if k == 0 {
			return Number{}, cnumErrorf("Scale", ErrIndeterminate)
		}
		return z, nil
	}
	if z.kind == Polar && k >= 0 {
		return polarOf(z.a*k, z.b), nil
	}
	re, im := z.cart()
	return FromCartesian(re*k, im*k), nil
}

// polarOf builds a polar value from already-valid parts (modulus ≥ 0 or +Inf).
func polarOf(modulus, argument float64) Number {
	p, err := FromPolar(modulus, argument)
	if err != nil {
		// NaN modulus or argument from overflowing inputs; keep it visible.
		return Number{a: math.NaN(), b: math.NaN(), kind: Cartesian}
	}
	return p
}
