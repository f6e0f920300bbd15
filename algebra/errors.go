// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"
)

// ErrAllRoots is returned for the equation 0 = 0, where every complex number is a root.
var ErrAllRoots = errors.New("algebra: every value is a root")

func algebraErrorf(op string, err error) error {
	return fmt.Errorf("algebra.%s: %w", op, err)
}
