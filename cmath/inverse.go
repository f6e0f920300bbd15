// SPDX-License-Identifier: MIT
// Package: cmath
//
// Inverse trigonometric and hyperbolic functions in logarithmic closed form:
//
//	asin z  = −i·Log(iz + √(1 − z²))
//	acos z  = π/2 − asin z
//	atan z  = (i/2)·[Log(1 − iz) − Log(1 + iz)]
//	asinh z = Log(z + √(z² + 1))
//	acosh z = Log(z + √(z + 1)·√(z − 1))
//	atanh z = ½·[Log(1 + z) − Log(1 − z)]
//
// Results follow the principal branches of Sqrt and Log.

package cmath

import "github.com/katalvlaran/riemann/cnum"

var (
	minusI = cnum.FromCartesian(0, -1)
	halfI  = cnum.FromCartesian(0, 0.5)
)

// Asin returns the principal arcsine of z.
func Asin(z cnum.Number) (cnum.Number, error) {
	if err := finite("Asin", z); err != nil {
		return cnum.Number{}, err
	}
	zz, _ := z.Mul(z)
	root, err := Sqrt(cnum.One.Add(zz.Neg()))
	if err != nil {
		return cnum.Number{}, cmathErrorf("Asin", err)
	}
	iz, _ := cnum.I.Mul(z)
	l, err := Log(iz.Add(root))
	if err != nil {
		return cnum.Number{}, cmathErrorf("Asin", err)
	}
	return minusI.Mul(l)
}

// Acos returns the principal arccosine of z.
func Acos(z cnum.Number) (cnum.Number, error) {
	a, err := Asin(z)
	if err != nil {
		return cnum.Number{}, cmathErrorf("Acos", err)
	}
	return halfPi.Sub(a)
}

// Atan returns the principal arctangent of z. Atan(±i) is ∞.
func Atan(z cnum.Number) (cnum.Number, error) {
	if err := finite("Atan", z); err != nil {
		return cnum.Number{}, err
	}
	iz, _ := cnum.I.Mul(z)
	l1, _ := Log(cnum.One.Add(iz.Neg()))
	l2, _ := Log(cnum.One.Add(iz))
	d, err := l1.Sub(l2)
	if err != nil {
		return cnum.Number{}, cmathErrorf("Atan", err)
	}
	return halfI.Mul(d)
}

// Asinh returns the principal inverse hyperbolic sine of z.
func Asinh(z cnum.Number) (cnum.Number, error) {
	if err := finite("Asinh", z); err != nil {
		return cnum.Number{}, err
	}
	zz, _ := z.Mul(z)
	root, err := Sqrt(zz.Add(cnum.One))
	if err != nil {
		return cnum.Number{}, cmathErrorf("Asinh", err)
	}
	return Log(z.Add(root))
}

// Acosh returns the principal inverse hyperbolic cosine of z (Re ≥ 0).
func Acosh(z cnum.Number) (cnum.Number, error) {
	if err := finite("Acosh", z); err != nil {
		return cnum.Number{}, err
	}
	zm1, _ := cnum.Sub(z, 1)
	p, _ := Sqrt(cnum.Add(z, 1))
	m, _ := Sqrt(zm1)
	pm, err := p.Mul(m)
	if err != nil {
		return cnum.Number{}, cmathErrorf("Acosh", err)
	}
	return Log(z.Add(pm))
}

// Atanh returns the principal inverse hyperbolic tangent of z. Atanh(±1) is ∞.
func Atanh(z cnum.Number) (cnum.Number, error) {
	if err := finite("Atanh", z); err != nil {
		return cnum.Number{}, err
	}
	l1, _ := Log(cnum.One.Add(z))
	l2, _ := Log(cnum.One.Add(z.Neg()))
	d, err := l1.Sub(l2)
	if err != nil {
		return cnum.Number{}, cmathErrorf("Atanh", err)
	}
	return d.Scale(0.5)
}
