// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/geometry"
)

func newGeometryCmd(a *app) *cobra.Command {
	geometryCmd := &cobra.Command{
		Use:   "geometry",
		Short: "Plane geometry on complex points",
	}
	printFloat := func(cmd *cobra.Command, x float64) {
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(x, 'g', -1, 64))
	}

	geometryCmd.AddCommand(
		&cobra.Command{
			Use:   "distance A B",
			Short: "Print |A − B|",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := parseNumbers(args)
				if err != nil {
					return err
				}
				d, err := geometry.Distance(p[0], p[1])
				if err != nil {
					return err
				}
				printFloat(cmd, d)
				return nil
			},
		},
		&cobra.Command{
			Use:   "area A B C",
			Short: "Print the area of triangle ABC",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := parseNumbers(args)
				if err != nil {
					return err
				}
				s, err := geometry.TriangleArea(p[0], p[1], p[2])
				if err != nil {
					return err
				}
				printFloat(cmd, s)
				return nil
			},
		},
		&cobra.Command{
			Use:   "intersect A1 B1 A2 B2",
			Short: "Intersect line A1B1 with line A2B2",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := parseNumbers(args)
				if err != nil {
					return err
				}
				z, err := geometry.Intersection(p[0], p[1], p[2], p[3])
				if errors.Is(err, geometry.ErrParallelLines) {
					same, lerr := geometry.LinesIntersect(p[0], p[1], p[2], p[3])
					if lerr == nil && same {
						fmt.Fprintln(cmd.OutOrStdout(), "lines coincide")
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), "lines are parallel")
					}
					return nil
				}
				if err != nil {
					return err
				}
				a.printNumber(cmd, z)
				return nil
			},
		},
	)
	return geometryCmd
}
