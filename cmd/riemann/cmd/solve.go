// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/algebra"
	"github.com/katalvlaran/riemann/cnum"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve A B [C]",
		Short: "Solve A·z + B = 0 or A·z² + B·z + C = 0",
		Long: `Print the roots of a linear (two coefficients) or quadratic
(three coefficients) equation, one per line.

Examples:
  riemann solve 1 -- -3 2
  riemann solve 1 0 1`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseNumbers(args)
			if err != nil {
				return err
			}

			var roots []cnum.Number
			if len(k) == 2 {
				roots, err = algebra.RootOfLinearEquation(k[0], k[1])
			} else {
				var disc cnum.Number
				if disc, err = algebra.Discriminant(k[0], k[1], k[2]); err == nil {
					a.log.Debug("discriminant", "value", disc.String())
				}
				roots, err = algebra.RootsOfQuadratic(k[0], k[1], k[2])
			}
			switch {
			case errors.Is(err, algebra.ErrAllRoots):
				fmt.Fprintln(cmd.OutOrStdout(), "every value is a root")
				return nil
			case err != nil:
				return fmt.Errorf("solve: %w", err)
			case len(roots) == 0:
				fmt.Fprintln(cmd.OutOrStdout(), "no roots")
				return nil
			}
			for _, r := range roots {
				a.printNumber(cmd, r)
			}
			return nil
		},
	}
}
