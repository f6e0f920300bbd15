// SPDX-License-Identifier: MIT
// Package cmath: error helpers.
// cmath declares no sentinels of its own; it returns the cnum set
// (cnum.ErrUndefinedForInfinity, cnum.ErrIndeterminate) tagged with the
// function name, so callers match a single family via errors.Is.

package cmath

import (
	"fmt"

	"github.com/katalvlaran/riemann/cnum"
)

// cmathErrorf tags err with the function that produced it.
func cmathErrorf(op string, err error) error {
	return fmt.Errorf("cmath.%s: %w", op, err)
}

// finite rejects the point at infinity for op.
func finite(op string, z cnum.Number) error {
	if z.IsInfinity() {
		return cmathErrorf(op, cnum.ErrUndefinedForInfinity)
	}
	return nil
}
