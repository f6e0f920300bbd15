// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"

	"github.com/katalvlaran/riemann/cnum"
)

// ErrInvalidRegion is returned for empty or malformed regions: min > max,
// a negative or non-finite bound, or an angular span wider than 2π.
// It also matches cnum.ErrInvalidArgument.
var ErrInvalidRegion = fmt.Errorf("sample: invalid region: %w", cnum.ErrInvalidArgument)

func sampleErrorf(op, detail string, err error) error {
	return fmt.Errorf("sample.%s: %s: %w", op, detail, err)
}
