// SPDX-License-Identifier: MIT

package mobius_test

import (
	"fmt"

	"github.com/katalvlaran/riemann/cnum"
	"github.com/katalvlaran/riemann/mobius"
)

// ExampleTransformation_Evaluate shows z ↦ 1/z swapping 0 and ∞.
func ExampleTransformation_Evaluate() {
	inv, err := mobius.New(cnum.Zero, cnum.One, cnum.One, cnum.Zero)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(inv.Evaluate(cnum.Zero), inv.Evaluate(cnum.Infinity()), inv.Evaluate(cnum.FromCartesian(0, 2)))
	// Output: ∞ 0 -0.5i
}

// ExampleTransformation_FixedPoints lists the fixed points of z ↦ 2z.
func ExampleTransformation_FixedPoints() {
	dilation, _ := mobius.New(cnum.FromCartesian(2, 0), cnum.Zero, cnum.Zero, cnum.One)
	fp, _ := dilation.FixedPoints()
	fmt.Println(fp, dilation.Classify())
	// Output: [0 ∞] hyperbolic
}
