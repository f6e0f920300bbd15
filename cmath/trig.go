// SPDX-License-Identifier: MIT

package cmath

import "github.com/katalvlaran/riemann/cnum"

// Sin returns sin z = (e^{iz} − e^{−iz}) / 2i.
func Sin(z cnum.Number) (cnum.Number, error) {
	x, y, err := z.Parts()
	if err != nil {
		return cnum.Number{}, cmathErrorf("Sin", cnum.ErrUndefinedForInfinity)
	}
	ar, ai := expPair(-y, x)
	br, bi := expPair(y, -x)
	// (p + qi) / 2i = (q − pi) / 2
	return cnum.FromCartesian((ai-bi)/2, -(ar-br)/2), nil
}

// Cos returns cos z = (e^{iz} + e^{−iz}) / 2.
func Cos(z cnum.Number) (cnum.Number, error) {
	x, y, err := z.Parts()
	if err != nil {
		return cnum.Number{}, cmathErrorf("Cos", cnum.ErrUndefinedForInfinity)
	}
	ar, ai := expPair(-y, x)
	br, bi := expPair(y, -x)
	return cnum.FromCartesian((ar+br)/2, (ai+bi)/2), nil
}

// Tan returns sin z / cos z under the process-wide division mode.
func Tan(z cnum.Number) (cnum.Number, error) {
	s, err := Sin(z)
	if err != nil {
		return cnum.Number{}, cmathErrorf("Tan", cnum.ErrUndefinedForInfinity)
	}
	c, _ := Cos(z)
	return s.Div(c)
}

// Sinh returns sinh z = (e^z − e^{−z}) / 2.
func Sinh(z cnum.Number) (cnum.Number, error) {
	x, y, err := z.Parts()
	if err != nil {
		return cnum.Number{}, cmathErrorf("Sinh", cnum.ErrUndefinedForInfinity)
	}
	ar, ai := expPair(x, y)
	br, bi := expPair(-x, -y)
	return cnum.FromCartesian((ar-br)/2, (ai-bi)/2), nil
}

// Cosh returns cosh z = (e^z + e^{−z}) / 2.
func Cosh(z cnum.Number) (cnum.Number, error) {
	x, y, err := z.Parts()
	if err != nil {
		return cnum.Number{}, cmathErrorf("Cosh", cnum.ErrUndefinedForInfinity)
	}
	ar, ai := expPair(x, y)
	br, bi := expPair(-x, -y)
	return cnum.FromCartesian((ar+br)/2, (ai+bi)/2), nil
}

// Tanh returns sinh z / cosh z under the process-wide division mode.
func Tanh(z cnum.Number) (cnum.Number, error) {
	s, err := Sinh(z)
	if err != nil {
		return cnum.Number{}, cmathErrorf("Tanh", cnum.ErrUndefinedForInfinity)
	}
	c, _ := Cosh(z)
	return s.Div(c)
}
