// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/riemann/cnum"
)

var (
	// ErrCoincidentPoints is returned when the two points defining a line are equal.
	// It also matches cnum.ErrInvalidArgument.
	ErrCoincidentPoints = fmt.Errorf("geometry: points defining a line must be distinct: %w", cnum.ErrInvalidArgument)

	// ErrParallelLines is returned by Intersection for parallel (or identical) lines.
	ErrParallelLines = errors.New("geometry: lines are parallel")
)

func geometryErrorf(op string, err error) error {
	return fmt.Errorf("geometry.%s: %w", op, err)
}
