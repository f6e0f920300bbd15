// SPDX-License-Identifier: MIT

package mobius

import (
	"math"

	"github.com/katalvlaran/riemann/cnum"
)

// Class is the conjugacy class of a transformation, read from
// σ = (a + d)² / (ad − bc).
type Class uint8

const (
	// IdentityClass is z ↦ z.
	IdentityClass Class = iota
	// Parabolic maps have σ = 4 and one fixed point (a translation when conjugated).
	Parabolic
	// Elliptic maps have real σ ∈ [0, 4) (rotations about two fixed points).
	Elliptic
	// Hyperbolic maps have real σ > 4 (pure dilations).
	Hyperbolic
	// Loxodromic maps have any other σ (spiralling dilations).
	Loxodromic
)

// String returns the lower-case name of c.
func (c Class) String() string {
	switch c {
	case IdentityClass:
		return "identity"
	case Parabolic:
		return "parabolic"
	case Elliptic:
		return "elliptic"
	case Hyperbolic:
		return "hyperbolic"
	case Loxodromic:
		return "loxodromic"
	default:
		return "unknown"
	}
}

// TraceSquared returns σ = (a + d)² / (ad − bc), which is invariant under
// rescaling of the coefficients.
func (t Transformation) TraceSquared() cnum.Number {
	tr := t.a.Add(t.d)
	tr2, _ := tr.Mul(tr)
	s, _ := tr2.Div(t.Determinant())
	return s
}

// Classify returns the conjugacy class of t. Real-ness of σ and σ = 4 are
// decided within the cnum policy epsilon.
func (t Transformation) Classify() Class {
	if t.IsIdentity() {
		return IdentityClass
	}
	eps := cnum.CurrentPolicy().Epsilon
	re, im, _ := t.TraceSquared().Parts()
	scale := math.Max(1, math.Abs(re))
	switch {
	case math.Abs(im) > eps*scale:
		return Loxodromic
	case math.Abs(re-4) <= eps*4:
		return Parabolic
	case re >= 0 && re < 4:
		return Elliptic
	case re > 4:
		return Hyperbolic
	default:
		return Loxodromic
	}
}
