// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/cnum"
)

func newRootsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roots N",
		Short: "List the N-th roots of unity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("roots: N must be an integer: %w", cnum.ErrInvalidArgument)
			}
			roots, err := cnum.RootsOfUnity(n)
			if err != nil {
				return fmt.Errorf("roots: %w", err)
			}
			for _, r := range roots {
				a.printNumber(cmd, r)
			}
			return nil
		},
	}
}
