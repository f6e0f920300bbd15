// SPDX-License-Identifier: MIT
// Package cnum_test contains unit tests for construction, accessors and
// equality of cnum.Number.
package cnum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/riemann/cnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tau = 2 * math.Pi

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFromPolar_Errors verifies that FromPolar rejects moduli and arguments
// outside its domain.
func TestFromPolar_Errors(t *testing.T) {
	cases := []struct {
		name     string
		modulus  float64
		argument float64
	}{
		{"NegativeModulus", -1, 0},
		{"NaNModulus", math.NaN(), 0},
		{"NaNArgument", 1, math.NaN()},
		{"InfArgument", 1, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cnum.FromPolar(tc.modulus, tc.argument)
			require.ErrorIs(t, err, cnum.ErrInvalidArgument)
		})
	}
}

// TestFromPolar_ZeroModulusDropsArgument ensures the origin stores argument 0.
func TestFromPolar_ZeroModulusDropsArgument(t *testing.T) {
	z, err := cnum.FromPolar(0, 1.3)
	require.NoError(t, err)
	arg, err := z.Argument()
	require.NoError(t, err)
	assert.Equal(t, 0.0, arg)
	assert.True(t, z.Equal(cnum.MustPolar(0, 2.9)), "all polar zeros are equal")
}

// TestFromPolar_NormalizesAtConstruction checks that arguments differing by
// whole turns produce equal values with an argument in [0, 2π).
func TestFromPolar_NormalizesAtConstruction(t *testing.T) {
	base := cnum.MustPolar(2, 0.5)
	for _, theta := range []float64{0.5 + tau, 0.5 - tau} {
		z := cnum.MustPolar(2, theta)
		assert.True(t, z.Equal(base), "θ=%v must normalize to 0.5", theta)
	}

	z := cnum.MustPolar(1, -math.Pi/2)
	arg, err := z.Argument()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, arg, 0.0)
	assert.Less(t, arg, tau)
	assert.InDelta(t, 3*math.Pi/2, arg, 1e-15)
}

// TestFromCartesian_InfiniteComponent maps any infinite component to ∞.
func TestFromCartesian_InfiniteComponent(t *testing.T) {
	assert.True(t, cnum.FromCartesian(math.Inf(1), 0).IsInfinity())
	assert.True(t, cnum.FromCartesian(1, math.Inf(-1)).IsInfinity())
	z, err := cnum.FromPolar(math.Inf(1), 0.3)
	require.NoError(t, err)
	assert.True(t, z.IsInfinity())
}

// TestLift verifies scalar lifting yields Cartesian values with zero imaginary part.
func TestLift(t *testing.T) {
	assert.Equal(t, cnum.FromCartesian(3, 0), cnum.Lift(3))
	assert.Equal(t, cnum.FromCartesian(2, 0), cnum.Lift(int8(2)))
	assert.Equal(t, cnum.FromCartesian(7, 0), cnum.Lift(uint64(7)))
	assert.Equal(t, cnum.FromCartesian(1.5, 0), cnum.Lift(float32(1.5)))
	assert.Equal(t, cnum.Cartesian, cnum.Lift(-4.25).Kind())

	p := cnum.MustPolar(2, 1)
	assert.Equal(t, p, cnum.Lift(p), "a Number lifts to itself")
}

// TestInfinity_Singleton ensures every Infinity() is equal to every other
// and to no finite value.
func TestInfinity_Singleton(t *testing.T) {
	assert.True(t, cnum.Infinity().Equal(cnum.Infinity()))
	assert.True(t, cnum.IsInfinity(cnum.Infinity()))
	assert.False(t, cnum.IsFinite(cnum.Infinity()))
	assert.False(t, cnum.Infinity().Equal(cnum.Zero))
	assert.False(t, cnum.FromCartesian(1e308, 1e308).Equal(cnum.Infinity()))
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestAccessors_Infinity verifies that component accessors fail on ∞ and that
// Modulus reports +Inf.
func TestAccessors_Infinity(t *testing.T) {
	inf := cnum.Infinity()

	_, err := inf.Real()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, err = inf.Imaginary()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, err = inf.Argument()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, err = inf.PrincipalArgument()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, err = inf.ModulusSquared()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, err = inf.Conjugate()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, err = inf.NearestGaussianInteger()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
	_, _, err = inf.Parts()
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)

	assert.True(t, math.IsInf(inf.Modulus(), 1))
}

// TestAccessors_BothForms checks the derived quantities of each storage form.
func TestAccessors_BothForms(t *testing.T) {
	c := cnum.FromCartesian(3, -4)
	re, im, err := c.Parts()
	require.NoError(t, err)
	assert.Equal(t, 3.0, re)
	assert.Equal(t, -4.0, im)
	assert.Equal(t, 5.0, c.Modulus())
	m2, err := c.ModulusSquared()
	require.NoError(t, err)
	assert.Equal(t, 25.0, m2)
	arg, err := c.Argument()
	require.NoError(t, err)
	assert.Equal(t, math.Atan2(-4, 3), arg)

	p := cnum.MustPolar(2, math.Pi/3)
	re, err = p.Real()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, re, 1e-15)
	im, err = p.Imaginary()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3), im, 1e-15)
	assert.Equal(t, 2.0, p.Modulus())
	m2, err = p.ModulusSquared()
	require.NoError(t, err)
	assert.Equal(t, 4.0, m2)
	assert.Equal(t, cnum.Polar, p.Kind(), "reading derived parts keeps the form")
}

// TestPrincipalArgument maps stored polar arguments above π into (−π, π].
func TestPrincipalArgument(t *testing.T) {
	z := cnum.MustPolar(1, 3*math.Pi/2)
	arg, err := z.PrincipalArgument()
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/2, arg, 1e-15)

	arg, err = cnum.FromCartesian(-1, 0).PrincipalArgument()
	require.NoError(t, err)
	assert.Equal(t, math.Pi, arg)
}

// TestRoundTrip_AcrossForms checks Cartesian→polar→Cartesian reconstruction.
func TestRoundTrip_AcrossForms(t *testing.T) {
	values := []cnum.Number{
		cnum.FromCartesian(3, -4),
		cnum.FromCartesian(-0.25, 7.5),
		cnum.MustPolar(2, 1),
		cnum.MustPolar(0.5, 5.5),
	}
	for _, z := range values {
		re, im, err := z.Parts()
		require.NoError(t, err)
		assert.True(t, cnum.FromCartesian(re, im).Equal(z), "cartesian round trip of %v", z)

		arg, err := z.Argument()
		require.NoError(t, err)
		back, err := cnum.FromPolar(z.Modulus(), arg)
		require.NoError(t, err)
		assert.True(t, back.Equal(z), "polar round trip of %v", z)

		assert.True(t, z.ToPolar().Equal(z))
		assert.True(t, z.ToCartesian().Equal(z))
	}
}

//----------------------------------------------------------------------------//
// Equality
//----------------------------------------------------------------------------//

// TestEqual_CrossRepresentation covers the mixed-form fallback.
func TestEqual_CrossRepresentation(t *testing.T) {
	assert.True(t, cnum.FromCartesian(1, 0).Equal(cnum.MustPolar(1, 0)))
	assert.True(t, cnum.FromCartesian(0, 1).Equal(cnum.MustPolar(1, math.Pi/2)))
	assert.True(t, cnum.FromCartesian(-1, 0).Equal(cnum.MustPolar(1, math.Pi)))
	assert.False(t, cnum.FromCartesian(1, 0).Equal(cnum.MustPolar(1, 0.1)))
	assert.True(t, cnum.Zero.Equal(cnum.MustPolar(0, 0)), "polar zero equals Cartesian zero")
}

// TestEqual_Scalars compares against plain scalars via the generic entry point.
func TestEqual_Scalars(t *testing.T) {
	assert.True(t, cnum.Equal(cnum.FromCartesian(3, 0), 3))
	assert.True(t, cnum.Equal(cnum.FromCartesian(2.5, 0), 2.5))
	assert.False(t, cnum.Equal(cnum.FromCartesian(3, 1), 3))
	assert.True(t, cnum.Equal(cnum.MustPolar(2, 0), 2))
	assert.True(t, cnum.Equal(cnum.MustPolar(0, 1), 0))
	assert.False(t, cnum.Equal(cnum.Infinity(), 0))
}

// TestEqual_NaN ensures NaN components never compare equal.
func TestEqual_NaN(t *testing.T) {
	n := cnum.FromCartesian(math.NaN(), 0)
	assert.True(t, n.IsNaN())
	assert.False(t, n.Equal(n))
	assert.False(t, n.EqualWithin(n, 1))
}

// TestEqualWithin honours the supplied tolerance.
func TestEqualWithin(t *testing.T) {
	a := cnum.FromCartesian(1, 1)
	b := cnum.FromCartesian(1+1e-7, 1)
	assert.False(t, a.Equal(b))
	assert.True(t, a.EqualWithin(b, 1e-6))
	assert.False(t, a.EqualWithin(b, 1e-9))
	assert.True(t, cnum.Infinity().EqualWithin(cnum.Infinity(), 0))
	assert.False(t, cnum.Infinity().EqualWithin(a, 1e300))
}

//----------------------------------------------------------------------------//
// Gaussian integers, conjugate, roots of unity
//----------------------------------------------------------------------------//

// TestGaussianIntegers checks the predicate and the rounding helper.
func TestGaussianIntegers(t *testing.T) {
	assert.True(t, cnum.FromCartesian(2, -3).IsGaussianInteger())
	assert.True(t, cnum.Zero.IsGaussianInteger())
	assert.False(t, cnum.FromCartesian(2.5, 1).IsGaussianInteger())
	assert.False(t, cnum.Infinity().IsGaussianInteger())
	assert.False(t, cnum.FromCartesian(math.NaN(), 1).IsGaussianInteger())

	g, err := cnum.FromCartesian(2.5, -1.4).NearestGaussianInteger()
	require.NoError(t, err)
	assert.True(t, g.Equal(cnum.FromCartesian(3, -1)))
	assert.Equal(t, cnum.Cartesian, g.Kind())
}

// TestConjugate keeps the storage form and satisfies z·z̄ = |z|².
func TestConjugate(t *testing.T) {
	c := cnum.FromCartesian(3, 4)
	cc, err := c.Conjugate()
	require.NoError(t, err)
	assert.Equal(t, cnum.FromCartesian(3, -4), cc)

	p := cnum.MustPolar(2, 0.7)
	pc, err := p.Conjugate()
	require.NoError(t, err)
	assert.Equal(t, cnum.Polar, pc.Kind())
	assert.True(t, pc.Equal(cnum.MustPolar(2, -0.7)))

	for _, z := range []cnum.Number{c, p, cnum.FromCartesian(-1.5, 0.25), cnum.MustPolar(3, 4)} {
		zc, err := z.Conjugate()
		require.NoError(t, err)
		prod, err := z.Mul(zc)
		require.NoError(t, err)
		m2, err := z.ModulusSquared()
		require.NoError(t, err)
		assert.True(t, prod.EqualWithin(cnum.Lift(m2), 1e-12), "z·z̄ for %v = %v", z, prod)
	}
}

// TestRootsOfUnity checks order, values and the vanishing sum.
func TestRootsOfUnity(t *testing.T) {
	roots, err := cnum.RootsOfUnity(4)
	require.NoError(t, err)
	require.Len(t, roots, 4)
	want := []cnum.Number{cnum.One, cnum.I, cnum.FromCartesian(-1, 0), cnum.FromCartesian(0, -1)}
	for k := range want {
		assert.True(t, roots[k].Equal(want[k]), "root %d = %v", k, roots[k])
		assert.Equal(t, cnum.Polar, roots[k].Kind())
	}

	for n := 2; n <= 16; n++ {
		roots, err := cnum.RootsOfUnity(n)
		require.NoError(t, err)
		sum := cnum.Zero
		for _, r := range roots {
			sum = sum.Add(r)
		}
		assert.True(t, sum.EqualWithin(cnum.Zero, 1e-12), "sum of %d roots = %v", n, sum)
	}

	one, err := cnum.RootsOfUnity(1)
	require.NoError(t, err)
	assert.True(t, one[0].Equal(cnum.One))

	_, err = cnum.RootsOfUnity(0)
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)
	_, err = cnum.RootsOfUnity(-3)
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)
}
