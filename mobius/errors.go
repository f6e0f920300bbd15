// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"

	"github.com/katalvlaran/riemann/cnum"
)

var (
	// ErrDegenerateTransformation is returned by New when ad − bc = 0 or a
	// coefficient is ∞. It also matches cnum.ErrInvalidArgument.
	ErrDegenerateTransformation = fmt.Errorf("mobius: degenerate transformation: %w", cnum.ErrInvalidArgument)
)

func mobiusErrorf(op string, err error) error {
	return fmt.Errorf("mobius.%s: %w", op, err)
}
