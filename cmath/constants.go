// SPDX-License-Identifier: MIT

package cmath

import (
	"math"

	"github.com/katalvlaran/riemann/cnum"
)

// Real constants lifted into the complex plane (zero imaginary part).
var (
	E   = cnum.FromCartesian(math.E, 0)
	Pi  = cnum.FromCartesian(math.Pi, 0)
	Tau = cnum.FromCartesian(2*math.Pi, 0)
)

var halfPi = cnum.FromCartesian(math.Pi/2, 0)
