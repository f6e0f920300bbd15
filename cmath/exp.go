// SPDX-License-Identifier: MIT
// Package: cmath
//
// Purpose:
//   - Exp by truncated Taylor series, the principal Log and the power family
//     derived from them.
//
// Contract:
//   - ∞ input → cnum.ErrUndefinedForInfinity.
//   - Results are Cartesian; an overflowing result is ∞.

package cmath

import (
	"math"

	"github.com/katalvlaran/riemann/cnum"
)

// expTerms is the truncation order of the exponential series.
const expTerms = 30

// invFactorial[k] = 1/k! for k = 0..expTerms-1.
var invFactorial = func() [expTerms]float64 {
	var t [expTerms]float64
	f := 1.0
	for k := 0; k < expTerms; k++ {
		if k > 0 {
			f *= float64(k)
		}
		t[k] = 1 / f
	}
	return t
}()

// series evaluates Σ_{k<expTerms} (x+iy)^k/k! by Horner's rule.
func series(x, y float64) (re, im float64) {
	re = invFactorial[expTerms-1]
	for k := expTerms - 2; k >= 0; k-- {
		re, im = re*x-im*y+invFactorial[k], re*y+im*x
	}
	return re, im
}

// expPair returns e^(x+iy) as a pair. The imaginary part is reduced into
// [−π, π]; the real part is halved until |x| ≤ ½ and the factor squared back.
func expPair(x, y float64) (re, im float64) {
	c, s := series(0, math.Remainder(y, 2*math.Pi))
	halvings := 0
	for math.Abs(x) > 0.5 {
		x /= 2
		halvings++
	}
	m, _ := series(x, 0)
	for ; halvings > 0; halvings-- {
		m *= m
	}
	return m * c, m * s
}

// Exp returns e^z.
func Exp(z cnum.Number) (cnum.Number, error) {
	x, y, err := z.Parts()
	if err != nil {
		return cnum.Number{}, cmathErrorf("Exp", cnum.ErrUndefinedForInfinity)
	}
	return cnum.FromCartesian(expPair(x, y)), nil
}

// Log returns the principal natural logarithm ln|z| + i·Arg(z) with
// Arg ∈ (−π, π]; the branch cut is the negative real axis. Log(0) is ∞.
func Log(z cnum.Number) (cnum.Number, error) {
	if err := finite("Log", z); err != nil {
		return cnum.Number{}, err
	}
	r := z.Modulus()
	if r == 0 {
		return cnum.Infinity(), nil
	}
	theta, _ := z.PrincipalArgument()
	return cnum.FromCartesian(math.Log(r), theta), nil
}

// Log10 returns the principal base-10 logarithm of z.
func Log10(z cnum.Number) (cnum.Number, error) {
	return logBase("Log10", z, math.Ln10)
}

// Log2 returns the principal base-2 logarithm of z.
func Log2(z cnum.Number) (cnum.Number, error) {
	return logBase("Log2", z, math.Ln2)
}

func logBase(op string, z cnum.Number, lnBase float64) (cnum.Number, error) {
	l, err := Log(z)
	if err != nil {
		return cnum.Number{}, cmathErrorf(op, cnum.ErrUndefinedForInfinity)
	}
	return l.Scale(1 / lnBase)
}

// Abs returns |z|; +Inf for ∞.
func Abs(z cnum.Number) float64 { return z.Modulus() }

// Pow returns z^w = exp(w·Log z) on the principal branch. With
// ln|z| = l and Arg z = θ the exponent splits into
//
//	Re = Re w·l − Im w·θ,   Im = Im w·l + Re w·θ
//
// so Log is never materialized. A zero base follows the sign of Re w:
// 0^0 = 1, positive → 0, negative → ∞; a purely imaginary w is indeterminate.
//
// Errors: cnum.ErrUndefinedForInfinity if z or w is ∞; cnum.ErrIndeterminate
// for 0 raised to a purely imaginary power.
func Pow(z, w cnum.Number) (cnum.Number, error) {
	if z.IsInfinity() || w.IsInfinity() {
		return cnum.Number{}, cmathErrorf("Pow", cnum.ErrUndefinedForInfinity)
	}
	wr, wi, _ := w.Parts()
	r := z.Modulus()
	if r == 0 {
		switch {
		case wr == 0 && wi == 0:
			return cnum.One, nil
		case wr > 0:
			return cnum.Zero, nil
		case wr < 0:
			return cnum.Infinity(), nil
		default:
			return cnum.Number{}, cmathErrorf("Pow", cnum.ErrIndeterminate)
		}
	}
	l := math.Log(r)
	theta, _ := z.PrincipalArgument()
	return cnum.FromCartesian(expPair(wr*l-wi*theta, wi*l+wr*theta)), nil
}

// PowReal returns z^p for a real exponent p.
func PowReal(z cnum.Number, p float64) (cnum.Number, error) {
	return Pow(z, cnum.FromCartesian(p, 0))
}

// Sqrt returns the principal square root Pow(z, ½); Re ≥ 0.
func Sqrt(z cnum.Number) (cnum.Number, error) {
	if err := finite("Sqrt", z); err != nil {
		return cnum.Number{}, err
	}
	return PowReal(z, 0.5)
}

// Cbrt returns the principal cube root Pow(z, ⅓). For a negative real z this
// is not the real cube root: Cbrt(−8) = 1+√3i.
func Cbrt(z cnum.Number) (cnum.Number, error) {
	if err := finite("Cbrt", z); err != nil {
		return cnum.Number{}, err
	}
	return PowReal(z, 1.0/3)
}
