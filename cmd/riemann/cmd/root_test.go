// SPDX-License-Identifier: MIT
// Package cmd_test drives the command tree end to end.
package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/riemann/cmd/riemann/cmd"
	"github.com/katalvlaran/riemann/cnum"
	"github.com/katalvlaran/riemann/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs one invocation with no config file in scope and returns the
// lines written to stdout.
func execute(t *testing.T, args ...string) ([]string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	before := cnum.CurrentPolicy()
	t.Cleanup(func() { cnum.SetPolicy(before) })

	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	text := strings.TrimSpace(out.String())
	if text == "" {
		return nil, err
	}
	return strings.Split(text, "\n"), err
}

//----------------------------------------------------------------------------//

// TestEval covers unary, binary and real-valued functions.
func TestEval(t *testing.T) {
	cases := []struct {
		args []string
		want []string
	}{
		{[]string{"eval", "exp", "0"}, []string{"1"}},
		{[]string{"eval", "abs", "3-4i"}, []string{"5"}},
		{[]string{"eval", "arg", "i"}, []string{"1.5707963267948966"}},
		{[]string{"eval", "mul", "i", "i"}, []string{"-1"}},
		{[]string{"eval", "add", "1+i", "2"}, []string{"3+i"}},
		{[]string{"eval", "conj", "2+3i"}, []string{"2-3i"}},
		{[]string{"eval", "div", "1", "0", "--division-mode", "infinity"}, []string{"∞"}},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			got, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEval_Errors checks that arithmetic failures surface as errors.
func TestEval_Errors(t *testing.T) {
	_, err := execute(t, "eval", "div", "1", "0")
	assert.ErrorIs(t, err, cnum.ErrDivisionByZero)

	_, err = execute(t, "eval", "log", "∞")
	assert.ErrorIs(t, err, cnum.ErrUndefinedForInfinity)

	_, err = execute(t, "eval", "frobnicate", "1")
	assert.ErrorContains(t, err, "unknown function")

	_, err = execute(t, "eval", "exp", "1+")
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)

	_, err = execute(t, "eval", "div", "1", "0", "--division-mode", "saturate")
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)
}

// TestSolve covers the quadratic, linear and degenerate cases.
func TestSolve(t *testing.T) {
	got, err := execute(t, "solve", "1", "--", "-3", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, got)

	got, err = execute(t, "solve", "2", "--", "-4")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, got)

	got, err = execute(t, "solve", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"every value is a root"}, got)

	got, err = execute(t, "solve", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"no roots"}, got)
}

// TestRoots prints roots of unity in polar form.
func TestRoots(t *testing.T) {
	got, err := execute(t, "roots", "2", "--format", "polar")
	require.NoError(t, err)
	assert.Equal(t, []string{"exp(0)", "exp(3.141592653589793)"}, got)

	_, err = execute(t, "roots", "0")
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)

	_, err = execute(t, "roots", "2", "--format", "hex")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

//----------------------------------------------------------------------------//

// TestMobius covers coefficient flags and named transforms.
func TestMobius(t *testing.T) {
	got, err := execute(t, "mobius", "eval", "-a", "0", "-b", "1", "-c", "1", "-d", "0", "2", "∞", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.5", "0", "∞"}, got)

	got, err = execute(t, "mobius", "fixed")
	require.NoError(t, err)
	assert.Equal(t, []string{"every point is fixed"}, got)

	got, err = execute(t, "mobius", "classify", "-a", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"hyperbolic σ=4.5"}, got)

	got, err = execute(t, "mobius", "fixed", "-a", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "∞"}, got)

	_, err = execute(t, "mobius", "eval", "-a", "1", "-b", "2", "-c", "1", "-d", "2", "0")
	assert.ErrorContains(t, err, "degenerate")
}

// TestMobius_NamedTransform loads a transform from a config file.
func TestMobius_NamedTransform(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riemann.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[transforms.shift]
a = "1"
b = "2-i"
c = "0"
d = "1"
`), 0o600))

	got, err := execute(t, "--config", path, "mobius", "eval", "--name", "shift", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3-i"}, got)

	got, err = execute(t, "--config", path, "mobius", "classify", "--name", "shift")
	require.NoError(t, err)
	assert.Equal(t, []string{"parabolic σ=4"}, got)

	_, err = execute(t, "--config", path, "mobius", "fixed", "--name", "nope")
	assert.ErrorIs(t, err, config.ErrUnknownTransform)
}

//----------------------------------------------------------------------------//

// TestSphere covers both poles and the distance subcommand.
func TestSphere(t *testing.T) {
	got, err := execute(t, "sphere", "project", "0", "∞")
	require.NoError(t, err)
	assert.Equal(t, []string{"0 0 -1", "0 0 1"}, got)

	got, err = execute(t, "sphere", "project", "--pole", "south", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0 0 1"}, got)

	got, err = execute(t, "sphere", "unproject", "0", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"∞"}, got)

	got, err = execute(t, "sphere", "distance", "0", "∞")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, got)

	_, err = execute(t, "sphere", "unproject", "1", "1", "1")
	assert.Error(t, err)

	_, err = execute(t, "sphere", "project", "--pole", "east", "0")
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)
}

// TestGeometry covers distance, area and intersection output.
func TestGeometry(t *testing.T) {
	got, err := execute(t, "geometry", "distance", "0", "3+4i")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, got)

	got, err = execute(t, "geometry", "area", "0", "1", "i")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.5"}, got)

	got, err = execute(t, "geometry", "intersect", "0", "1", "i", "1+i")
	require.NoError(t, err)
	assert.Equal(t, []string{"lines are parallel"}, got)

	got, err = execute(t, "geometry", "intersect", "0", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"lines coincide"}, got)
}

// TestSample checks determinism under a fixed seed.
func TestSample(t *testing.T) {
	first, err := execute(t, "sample", "disc", "--seed", "5", "--count", "3", "--center", "1+i")
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := execute(t, "sample", "disc", "--seed", "5", "--count", "3", "--center", "1+i")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	got, err := execute(t, "sample", "rect", "--count", "2", "2", "2", "3", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"2+3i", "2+3i"}, got)

	_, err = execute(t, "sample", "annulus", "--min-radius", "2", "--max-radius", "1")
	assert.ErrorIs(t, err, cnum.ErrInvalidArgument)
}

// TestVersion prints the version banner.
func TestVersion(t *testing.T) {
	got, err := execute(t, "version")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "riemann v"+cmd.Version, got[0])
}
