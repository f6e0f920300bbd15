// SPDX-License-Identifier: MIT

package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/riemann/cnum"
)

// Tolerance is the largest | |p| − 1 | accepted by FromSphere.
const Tolerance = 1e-9

// NorthPole and SouthPole are the images of ∞ and 0 under ToSphere.
var (
	NorthPole = r3.Vec{X: 0, Y: 0, Z: 1}
	SouthPole = r3.Vec{X: 0, Y: 0, Z: -1}
)

// ToSphere projects z with the north-pole convention. ∞, and any z whose
// |z|² overflows, maps to NorthPole without dividing.
func ToSphere(z cnum.Number) r3.Vec {
	x, y, err := z.Parts()
	if err != nil {
		return NorthPole
	}
	m2 := x*x + y*y
	if math.IsInf(m2, 1) {
		return NorthPole
	}
	d := 1 + m2
	return r3.Vec{X: 2 * x / d, Y: 2 * y / d, Z: (m2 - 1) / d}
}

// ToSpherePole projects z through the given pole. South projects
// 1/conj(z), with ∞ ↦ ToSphere(0) and 0 ↦ ToSphere(∞) handled directly.
// Errors: ErrInvalidPole for an unknown pole.
func ToSpherePole(z cnum.Number, pole Pole) (r3.Vec, error) {
	switch pole {
	case North:
		return ToSphere(z), nil
	case South:
		return ToSphere(flip(z)), nil
	default:
		return r3.Vec{}, sphereErrorf("ToSpherePole", ErrInvalidPole)
	}
}

// FromSphere inverts ToSphere: NorthPole ↦ ∞, otherwise (X + iY)/(1 − Z).
// Errors: ErrNotOnSphere if | |p| − 1 | > Tolerance or p has NaN components.
func FromSphere(p r3.Vec) (cnum.Number, error) {
	n := r3.Norm(p)
	if math.IsNaN(n) || math.Abs(n-1) > Tolerance {
		return cnum.Number{}, sphereErrorf("FromSphere", ErrNotOnSphere)
	}
	den := 1 - p.Z
	if den <= 0 {
		return cnum.Infinity(), nil
	}
	return cnum.FromCartesian(p.X/den, p.Y/den), nil
}

// FromSpherePole inverts ToSpherePole.
// Errors: ErrInvalidPole, ErrNotOnSphere.
func FromSpherePole(p r3.Vec, pole Pole) (cnum.Number, error) {
	if !pole.valid() {
		return cnum.Number{}, sphereErrorf("FromSpherePole", ErrInvalidPole)
	}
	z, err := FromSphere(p)
	if err != nil {
		return cnum.Number{}, err
	}
	if pole == South {
		return flip(z), nil
	}
	return z, nil
}

// ChordalDistance returns the Euclidean distance between the images of z
// and w on the sphere; it is finite for every pair, ∞ included, and at most 2.
func ChordalDistance(z, w cnum.Number) float64 {
	return r3.Norm(r3.Sub(ToSphere(z), ToSphere(w)))
}

// Antipode returns the point whose image is diametrically opposite that of
// z: −1/conj(z), with 0 ↔ ∞.
func Antipode(z cnum.Number) cnum.Number {
	return flip(z).Neg()
}

// flip returns 1/conj(z) with 0 ↔ ∞.
func flip(z cnum.Number) cnum.Number {
	switch {
	case z.IsInfinity():
		return cnum.Zero
	case z.Modulus() == 0:
		return cnum.Infinity()
	}
	zc, _ := z.Conjugate()
	r, _ := cnum.One.DivMode(zc, cnum.ReturnInfinity)
	return r
}
