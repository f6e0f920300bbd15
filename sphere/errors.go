// SPDX-License-Identifier: MIT

package sphere

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/riemann/cnum"
)

var (
	// ErrInvalidPole is returned for a Pole other than North or South.
	// It also matches cnum.ErrInvalidArgument.
	ErrInvalidPole = fmt.Errorf("sphere: invalid pole: %w", cnum.ErrInvalidArgument)

	// ErrNotOnSphere is returned when a point is farther than Tolerance from the unit sphere.
	ErrNotOnSphere = errors.New("sphere: point is not on the unit sphere")
)

func sphereErrorf(op string, err error) error {
	return fmt.Errorf("sphere.%s: %w", op, err)
}
