// SPDX-License-Identifier: MIT
// Package cnum: sentinel error set.
// All operations return these sentinels wrapped with the operation name
// (see cnumErrorf); tests and callers match them via errors.Is.

package cnum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for arguments outside an operation's domain:
	// a negative or NaN modulus, a non-finite polar argument, n ≤ 0 roots of
	// unity, or a malformed literal passed to Parse.
	ErrInvalidArgument = errors.New("cnum: invalid argument")

	// ErrUndefinedForInfinity is returned when a quantity with no meaning at ∞
	// (real part, imaginary part, argument, modulus², conjugate) is requested
	// from the point at infinity.
	ErrUndefinedForInfinity = errors.New("cnum: undefined for infinity")

	// ErrIndeterminate signals an indeterminate form: ∞−∞, ∞×0, 0/0 or ∞/∞.
	ErrIndeterminate = errors.New("cnum: indeterminate form")

	// ErrDivisionByZero is returned when dividing by a finite zero under
	// the ThrowException division mode.
	ErrDivisionByZero = errors.New("cnum: division by zero")
)

// cnumErrorf tags err with the operation that produced it.
func cnumErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
