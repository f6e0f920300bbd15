// SPDX-License-Identifier: MIT
// Package algebra_test contains unit tests for the linear and quadratic solvers.
package algebra_test

import (
	"testing"

	"github.com/katalvlaran/riemann/algebra"
	"github.com/katalvlaran/riemann/cnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// residual evaluates az² + bz + c.
func residual(t *testing.T, a, b, c, z cnum.Number) cnum.Number {
	t.Helper()
	zz, err := z.Mul(z)
	require.NoError(t, err)
	azz, err := a.Mul(zz)
	require.NoError(t, err)
	bz, err := b.Mul(z)
	require.NoError(t, err)
	return azz.Add(bz).Add(c)
}

//----------------------------------------------------------------------------//
// Linear
//----------------------------------------------------------------------------//

// TestRootOfLinearEquation covers the unique root, no root and every root.
func TestRootOfLinearEquation(t *testing.T) {
	r, err := algebra.RootOfLinearEquation(2, -4)
	require.NoError(t, err)
	require.Len(t, r, 1)
	assert.True(t, cnum.Equal(r[0], 2))

	r, err = algebra.RootOfLinearEquation(cnum.I, cnum.One)
	require.NoError(t, err)
	require.Len(t, r, 1)
	assert.True(t, r[0].EqualWithin(cnum.I, tol), "iz + 1 = 0 → z = i, got %v", r[0])

	r, err = algebra.RootOfLinearEquation(cnum.MustPolar(0, 1), cnum.One)
	require.NoError(t, err)
	assert.Empty(t, r, "0z + 1 = 0 has no root")

	_, err = algebra.RootOfLinearEquation(0, 0)
	assert.ErrorIs(t, err, algebra.ErrAllRoots)

	_, err = algebra.RootOfLinearEquation(cnum.Infinity(), cnum.One)
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
}

//----------------------------------------------------------------------------//
// Quadratic
//----------------------------------------------------------------------------//

// TestDiscriminant checks b² − 4ac.
func TestDiscriminant(t *testing.T) {
	d, err := algebra.Discriminant(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, cnum.Equal(d, -8))

	d, err = algebra.Discriminant(cnum.One, cnum.I, cnum.One)
	require.NoError(t, err)
	assert.True(t, cnum.Equal(d, -5))

	_, err = algebra.Discriminant(cnum.One, cnum.Infinity(), cnum.One)
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)
}

// TestRootsOfQuadratic_Order verifies (−b+√Δ)/2a comes first.
func TestRootsOfQuadratic_Order(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    [2]cnum.Number
	}{
		{"DistinctReal", 1, -3, 2, [2]cnum.Number{cnum.FromCartesian(2, 0), cnum.FromCartesian(1, 0)}},
		{"PositiveB", 1, 3, 2, [2]cnum.Number{cnum.FromCartesian(-1, 0), cnum.FromCartesian(-2, 0)}},
		{"Imaginary", 1, 0, 4, [2]cnum.Number{cnum.FromCartesian(0, 2), cnum.FromCartesian(0, -2)}},
		{"Double", 1, 2, 1, [2]cnum.Number{cnum.FromCartesian(-1, 0), cnum.FromCartesian(-1, 0)}},
		{"Origin", 1, 0, 0, [2]cnum.Number{cnum.Zero, cnum.Zero}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := algebra.RootsOfQuadratic(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			require.Len(t, r, 2)
			for i := range r {
				assert.True(t, r[i].EqualWithin(tc.want[i], tol), "root %d: want %v, got %v", i, tc.want[i], r[i])
			}
		})
	}
}

// TestRootsOfQuadratic_ComplexCoefficients checks residuals on complex input.
func TestRootsOfQuadratic_ComplexCoefficients(t *testing.T) {
	sets := [][3]cnum.Number{
		{cnum.FromCartesian(1, 1), cnum.FromCartesian(-2, 3), cnum.FromCartesian(0.5, -4)},
		{cnum.MustPolar(2, 1), cnum.FromCartesian(0, -1), cnum.FromCartesian(7, 0)},
	}
	for _, s := range sets {
		r, err := algebra.RootsOfQuadratic(s[0], s[1], s[2])
		require.NoError(t, err)
		require.Len(t, r, 2)
		for _, z := range r {
			res := residual(t, s[0], s[1], s[2], z)
			assert.True(t, res.EqualWithin(cnum.Zero, 1e-9), "residual %v at %v", res, z)
		}
	}
}

// TestRootsOfQuadratic_SmallRootAccuracy shows the small root of
// z² + 10⁶z + 1 keeps full relative precision.
func TestRootsOfQuadratic_SmallRootAccuracy(t *testing.T) {
	r, err := algebra.RootsOfQuadratic(1, 1e6, 1)
	require.NoError(t, err)
	small, err := r[0].Real()
	require.NoError(t, err)
	assert.InEpsilon(t, -1.000000000001e-6, small, 1e-12)
}

// TestRootsOfQuadratic_Degenerate falls back to the linear solver.
func TestRootsOfQuadratic_Degenerate(t *testing.T) {
	r, err := algebra.RootsOfQuadratic(0, 2, -4)
	require.NoError(t, err)
	require.Len(t, r, 1)
	assert.True(t, cnum.Equal(r[0], 2))

	r, err = algebra.RootsOfQuadratic(0, 0, 5)
	require.NoError(t, err)
	assert.Empty(t, r)

	_, err = algebra.RootsOfQuadratic(0, 0, 0)
	assert.ErrorIs(t, err, algebra.ErrAllRoots)
}
