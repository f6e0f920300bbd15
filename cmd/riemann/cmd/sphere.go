// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/riemann/sphere"
)

func formatVec(p r3.Vec) string {
	f := func(x float64) string { return strconv.FormatFloat(x+0, 'g', -1, 64) }
	return f(p.X) + " " + f(p.Y) + " " + f(p.Z)
}

func newSphereCmd(a *app) *cobra.Command {
	var poleFlag string
	pole := func() (sphere.Pole, error) {
		if poleFlag == "" {
			return a.cfg.Pole, nil
		}
		return sphere.ParsePole(poleFlag)
	}

	sphereCmd := &cobra.Command{
		Use:   "sphere",
		Short: "Stereographic projection onto the unit sphere",
		Long: `Stereographic projection between the extended plane and the unit
sphere. With the north convention ∞ sits at (0, 0, 1) and 0 at (0, 0, -1);
--pole south swaps them.

Examples:
  riemann sphere project 1 i ∞
  riemann sphere unproject 0 0 1
  riemann sphere distance 0 ∞`,
	}
	sphereCmd.PersistentFlags().StringVar(&poleFlag, "pole", "", "north or south (default: config file, north)")

	sphereCmd.AddCommand(
		&cobra.Command{
			Use:   "project Z...",
			Short: "Print the sphere point X Y Z of each number",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := pole()
				if err != nil {
					return err
				}
				zs, err := parseNumbers(args)
				if err != nil {
					return err
				}
				for _, z := range zs {
					v, err := sphere.ToSpherePole(z, p)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), formatVec(v))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "unproject X Y Z",
			Short: "Print the number whose image is the sphere point (X, Y, Z)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := pole()
				if err != nil {
					return err
				}
				var c [3]float64
				for i, s := range args {
					if c[i], err = strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("coordinate %d: %w", i+1, err)
					}
				}
				z, err := sphere.FromSpherePole(r3.Vec{X: c[0], Y: c[1], Z: c[2]}, p)
				if err != nil {
					return err
				}
				a.printNumber(cmd, z)
				return nil
			},
		},
		&cobra.Command{
			Use:   "distance Z W",
			Short: "Print the chordal distance between two numbers",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				zs, err := parseNumbers(args)
				if err != nil {
					return err
				}
				d := sphere.ChordalDistance(zs[0], zs[1])
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d, 'g', -1, 64))
				return nil
			},
		},
		&cobra.Command{
			Use:   "antipode Z",
			Short: "Print the number diametrically opposite on the sphere",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				zs, err := parseNumbers(args)
				if err != nil {
					return err
				}
				a.printNumber(cmd, sphere.Antipode(zs[0]))
				return nil
			},
		},
	)
	return sphereCmd
}
