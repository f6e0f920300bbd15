// SPDX-License-Identifier: MIT

package cnum

import (
	"math"
)

// tau is one full turn, the period of the polar argument.
const tau = 2 * math.Pi

var (
	// Zero is the Cartesian origin.
	Zero = FromCartesian(0, 0)
	// One is the Cartesian multiplicative identity.
	One = FromCartesian(1, 0)
	// I is the imaginary unit 0+1i.
	I = FromCartesian(0, 1)
)

// FromCartesian returns re + im·i stored in Cartesian form.
// A component equal to ±Inf yields Infinity(): the extended plane has
// a single point at infinity. NaN components are kept as given.
func FromCartesian(re, im float64) Number {
	if math.IsInf(re, 0) || math.IsInf(im, 0) {
		return Infinity()
	}
	return Number{a: re, b: im, kind: Cartesian}
}

// FromPolar returns modulus·e^(i·argument) stored in polar form.
//
// The argument is reduced modulo 2π into [0, 2π) here, at construction, so
// polar values whose arguments differ by whole turns are Equal. A zero
// modulus stores argument 0. A modulus of +Inf yields Infinity().
//
// Errors:
//   - ErrInvalidArgument if modulus < 0, modulus is NaN, or argument is not finite.
func FromPolar(modulus, argument float64) (Number, error) {
	if math.IsNaN(modulus) || modulus < 0 {
		return Number{}, cnumErrorf("FromPolar", ErrInvalidArgument)
	}
	if math.IsInf(modulus, 1) {
		return Infinity(), nil
	}
	if math.IsNaN(argument) || math.IsInf(argument, 0) {
		return Number{}, cnumErrorf("FromPolar", ErrInvalidArgument)
	}
	if modulus == 0 {
		return Number{a: 0, b: 0, kind: Polar}, nil
	}
	return Number{a: modulus, b: normalizeAngle(argument), kind: Polar}, nil
}

// MustPolar is like FromPolar but panics on error. Intended for constants
// and tests where the inputs are known to be valid.
func MustPolar(modulus, argument float64) Number {
	z, err := FromPolar(modulus, argument)
	if err != nil {
		panic(err)
	}
	return z
}

// Infinity returns the point at infinity. Every value it returns is Equal
// to every other.
func Infinity() Number {
	return Number{kind: Infinite}
}

// Lift converts a scalar or a Number into a Number. Scalars become Cartesian
// values with zero imaginary part; Numbers are returned unchanged.
func Lift[T Operand](v T) Number {
	switch x := any(v).(type) {
	case Number:
		return x
	case int:
		return FromCartesian(float64(x), 0)
	case int8:
		return FromCartesian(float64(x), 0)
	case int16:
		return FromCartesian(float64(x), 0)
	case int32:
		return FromCartesian(float64(x), 0)
	case int64:
		return FromCartesian(float64(x), 0)
	case uint:
		return FromCartesian(float64(x), 0)
	case uint8:
		return FromCartesian(float64(x), 0)
	case uint16:
		return FromCartesian(float64(x), 0)
	case uint32:
		return FromCartesian(float64(x), 0)
	case uint64:
		return FromCartesian(float64(x), 0)
	case float32:
		return FromCartesian(float64(x), 0)
	case float64:
		return FromCartesian(x, 0)
	}
	// unreachable: the Operand type set is closed
	return Number{}
}

// normalizeAngle reduces theta into [0, 2π).
func normalizeAngle(theta float64) float64 {
	r := math.Mod(theta, tau)
	if r < 0 {
		r += tau
	}
	// r+tau can round up to exactly tau for tiny negative r
	if r >= tau {
		r = 0
	}
	return r
}

// Kind reports the storage form of z.
func (z Number) Kind() Kind { return z.kind }

// IsInfinity reports whether z is the point at infinity.
func (z Number) IsInfinity() bool { return z.kind == Infinite }

// IsFinite reports whether z is a point of the plane (not ∞).
func (z Number) IsFinite() bool { return z.kind != Infinite }

// IsInfinity reports whether z is the point at infinity.
func IsInfinity(z Number) bool { return z.IsInfinity() }

// IsFinite reports whether z is a point of the plane (not ∞).
func IsFinite(z Number) bool { return z.IsFinite() }

// IsNaN reports whether any stored component of z is NaN.
func (z Number) IsNaN() bool {
	return z.kind != Infinite && (math.IsNaN(z.a) || math.IsNaN(z.b))
}

// cart returns the Cartesian decomposition of a finite z.
// The caller must rule out Infinite first.
func (z Number) cart() (re, im float64) {
	if z.kind == Polar {
		s, c := math.Sincos(z.b)
		return z.a * c, z.a * s
	}
	return z.a, z.b
}

// isZero reports whether z is exactly the origin, in either form.
func (z Number) isZero() bool {
	switch z.kind {
	case Polar:
		return z.a == 0
	case Cartesian:
		return z.a == 0 && z.b == 0
	default:
		return false
	}
}

// Parts returns (real, imaginary) of z.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) Parts() (re, im float64, err error) {
	if z.kind == Infinite {
		return 0, 0, cnumErrorf("Parts", ErrUndefinedForInfinity)
	}
	re, im = z.cart()
	return re, im, nil
}

// Real returns the real part of z.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) Real() (float64, error) {
	if z.kind == Infinite {
		return 0, cnumErrorf("Real", ErrUndefinedForInfinity)
	}
	re, _ := z.cart()
	return re, nil
}

// Imaginary returns the imaginary part of z.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) Imaginary() (float64, error) {
	if z.kind == Infinite {
		return 0, cnumErrorf("Imaginary", ErrUndefinedForInfinity)
	}
	_, im := z.cart()
	return im, nil
}

// Modulus returns |z|, or +Inf for the point at infinity.
func (z Number) Modulus() float64 {
	switch z.kind {
	case Polar:
		return z.a
	case Infinite:
		return math.Inf(1)
	default:
		return math.Hypot(z.a, z.b)
	}
}

// ModulusSquared returns |z|².
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) ModulusSquared() (float64, error) {
	switch z.kind {
	case Polar:
		return z.a * z.a, nil
	case Infinite:
		return 0, cnumErrorf("ModulusSquared", ErrUndefinedForInfinity)
	default:
		return z.a*z.a + z.b*z.b, nil
	}
}

// Argument returns the argument of z as stored: atan2(im, re) ∈ (−π, π] for
// Cartesian values, the normalized angle ∈ [0, 2π) for polar values.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) Argument() (float64, error) {
	switch z.kind {
	case Polar:
		return z.b, nil
	case Infinite:
		return 0, cnumErrorf("Argument", ErrUndefinedForInfinity)
	default:
		return math.Atan2(z.b, z.a), nil
	}
}

// PrincipalArgument returns the argument of z in (−π, π] regardless of the
// storage form. This is the branch used by the logarithm.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) PrincipalArgument() (float64, error) {
	theta, err := z.Argument()
	if err != nil {
		return 0, cnumErrorf("PrincipalArgument", ErrUndefinedForInfinity)
	}
	if theta > math.Pi {
		theta -= tau
	}
	return theta, nil
}

// Conjugate returns the complex conjugate, keeping the storage form:
// (re, −im) for Cartesian values, (modulus, −argument) for polar ones.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) Conjugate() (Number, error) {
	switch z.kind {
	case Polar:
		if z.a == 0 {
			return z, nil
		}
		return Number{a: z.a, b: normalizeAngle(-z.b), kind: Polar}, nil
	case Infinite:
		return Number{}, cnumErrorf("Conjugate", ErrUndefinedForInfinity)
	default:
		return Number{a: z.a, b: -z.b, kind: Cartesian}, nil
	}
}

// IsGaussianInteger reports whether z is finite and both its real and
// imaginary parts are integers.
func (z Number) IsGaussianInteger() bool {
	if z.kind == Infinite || z.IsNaN() {
		return false
	}
	re, im := z.cart()
	return re == math.Trunc(re) && im == math.Trunc(im)
}

// NearestGaussianInteger rounds both parts of z to the nearest integer
// (halves away from zero) and returns the result in Cartesian form.
// Errors: ErrUndefinedForInfinity if z is ∞.
func (z Number) NearestGaussianInteger() (Number, error) {
	if z.kind == Infinite {
		return Number{}, cnumErrorf("NearestGaussianInteger", ErrUndefinedForInfinity)
	}
	re, im := z.cart()
	return FromCartesian(math.Round(re), math.Round(im)), nil
}

// ToCartesian returns z re-stored in Cartesian form. ∞ is returned unchanged.
func (z Number) ToCartesian() Number {
	if z.kind != Polar {
		return z
	}
	re, im := z.cart()
	return FromCartesian(re, im)
}

// ToPolar returns z re-stored in polar form. ∞ is returned unchanged.
func (z Number) ToPolar() Number {
	if z.kind != Cartesian {
		return z
	}
	if z.IsNaN() {
		return Number{a: z.a, b: z.b, kind: Polar}
	}
	p, _ := FromPolar(math.Hypot(z.a, z.b), math.Atan2(z.b, z.a))
	return p
}

// RootsOfUnity returns the n-th roots of unity in polar form, ordered by
// argument: e^(2πik/n) for k = 0..n−1.
// Errors: ErrInvalidArgument if n ≤ 0.
func RootsOfUnity(n int) ([]Number, error) {
	if n <= 0 {
		return nil, cnumErrorf("RootsOfUnity", ErrInvalidArgument)
	}
	roots := make([]Number, n)
	step := tau / float64(n)
	for k := 0; k < n; k++ {
		roots[k] = Number{a: 1, b: normalizeAngle(step * float64(k)), kind: Polar}
	}
	return roots, nil
}
