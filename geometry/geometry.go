// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/riemann/cnum"
)

// Distance returns |b − a|.
func Distance(a, b cnum.Number) (float64, error) {
	d, err := diff("Distance", a, b)
	if err != nil {
		return 0, err
	}
	return d.Modulus(), nil
}

// DistanceSquared returns |b − a|².
func DistanceSquared(a, b cnum.Number) (float64, error) {
	d, err := diff("DistanceSquared", a, b)
	if err != nil {
		return 0, err
	}
	return d.ModulusSquared()
}

// TriangleArea returns the area of the triangle with vertices a, b, c:
// ½|cross(b − a, c − a)|. Degenerate triangles have area 0.
func TriangleArea(a, b, c cnum.Number) (float64, error) {
	u, err := diff("TriangleArea", a, b)
	if err != nil {
		return 0, err
	}
	v, err := diff("TriangleArea", a, c)
	if err != nil {
		return 0, err
	}
	return math.Abs(cross(u, v)) / 2, nil
}

// LinesParallel reports whether line a1b1 is parallel to line a2b2
// (including antiparallel and identical lines).
// Errors: ErrCoincidentPoints, cnum.ErrUndefinedForInfinity.
func LinesParallel(a1, b1, a2, b2 cnum.Number) (bool, error) {
	d1, d2, err := directions("LinesParallel", a1, b1, a2, b2)
	if err != nil {
		return false, err
	}
	return parallel(d1, d2), nil
}

// LinesIntersect reports whether line a1b1 and line a2b2 share a point:
// they are not parallel, or they are the same line.
// Errors: ErrCoincidentPoints, cnum.ErrUndefinedForInfinity.
func LinesIntersect(a1, b1, a2, b2 cnum.Number) (bool, error) {
	d1, d2, err := directions("LinesIntersect", a1, b1, a2, b2)
	if err != nil {
		return false, err
	}
	if !parallel(d1, d2) {
		return true, nil
	}
	w, _ := a2.Sub(a1)
	return parallel(d1, w), nil
}

// Intersection returns the single common point of line a1b1 and line a2b2.
// Errors: ErrParallelLines, ErrCoincidentPoints, cnum.ErrUndefinedForInfinity.
func Intersection(a1, b1, a2, b2 cnum.Number) (cnum.Number, error) {
	d1, d2, err := directions("Intersection", a1, b1, a2, b2)
	if err != nil {
		return cnum.Number{}, err
	}
	if parallel(d1, d2) {
		return cnum.Number{}, geometryErrorf("Intersection", ErrParallelLines)
	}
	w, _ := a2.Sub(a1)
	u1, u2 := unitScale(d1), unitScale(d2)
	s, _ := u1.Scale(cross(w, u2) / cross(u1, u2))
	return a1.Add(s), nil
}

func diff(op string, a, b cnum.Number) (cnum.Number, error) {
	if a.IsInfinity() || b.IsInfinity() {
		return cnum.Number{}, geometryErrorf(op, cnum.ErrUndefinedForInfinity)
	}
	d, _ := b.Sub(a)
	return d, nil
}

func directions(op string, a1, b1, a2, b2 cnum.Number) (d1, d2 cnum.Number, err error) {
	if d1, err = diff(op, a1, b1); err != nil {
		return
	}
	if d2, err = diff(op, a2, b2); err != nil {
		return
	}
	if d1.Modulus() == 0 || d2.Modulus() == 0 {
		err = geometryErrorf(op, ErrCoincidentPoints)
	}
	return
}

// cross returns Im(conj(u)·v) = ux·vy − uy·vx for finite u, v.
func cross(u, v cnum.Number) float64 {
	ux, uy, _ := u.Parts()
	vx, vy, _ := v.Parts()
	return ux*vy - uy*vx
}

// parallel compares directions rescaled to a unit max-component, so the test
// does not depend on their magnitude.
func parallel(u, v cnum.Number) bool {
	eps := cnum.CurrentPolicy().Epsilon
	u, v = unitScale(u), unitScale(v)
	return math.Abs(cross(u, v)) <= eps*u.Modulus()*v.Modulus()
}

func unitScale(z cnum.Number) cnum.Number {
	x, y, _ := z.Parts()
	m := math.Max(math.Abs(x), math.Abs(y))
	if m == 0 {
		return z
	}
	return cnum.FromCartesian(x/m, y/m)
}
