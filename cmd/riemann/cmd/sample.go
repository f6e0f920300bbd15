// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/cnum"
	"github.com/katalvlaran/riemann/sample"
)

// sampleFlags are shared by every region subcommand.
type sampleFlags struct {
	seed   int64
	count  int
	center string
	minR   float64
	maxR   float64
	minArg float64
	maxArg float64
}

func newSampleCmd(a *app) *cobra.Command {
	f := &sampleFlags{}
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Seeded random points in plane regions",
		Long: `Draw --count seeded random points, uniform by area, from a region.

Examples:
  riemann sample disc --center 1+i --max-radius 0.5 --count 3
  riemann sample rect --seed 7 -- -1 1 -1 1
  riemann sample sector --max-radius 2 --min-arg 0 --max-arg 1.57`,
	}
	pf := sampleCmd.PersistentFlags()
	pf.Int64Var(&f.seed, "seed", 0, "random seed (0 selects the default seed)")
	pf.IntVarP(&f.count, "count", "n", 1, "number of points")
	pf.StringVar(&f.center, "center", "0", "region center")
	pf.Float64Var(&f.minR, "min-radius", 0, "inner radius")
	pf.Float64Var(&f.maxR, "max-radius", 1, "outer radius")
	pf.Float64Var(&f.minArg, "min-arg", 0, "first bounding angle")
	pf.Float64Var(&f.maxArg, "max-arg", 0, "second bounding angle")

	// run draws f.count points from draw and prints them.
	run := func(cmd *cobra.Command, draw func(*sample.Sampler, cnum.Number) (cnum.Number, error)) error {
		if f.count < 0 {
			return fmt.Errorf("sample: --count %d: %w", f.count, cnum.ErrInvalidArgument)
		}
		center, err := cnum.Parse(f.center)
		if err != nil {
			return fmt.Errorf("sample: --center: %w", err)
		}
		s := sample.New(f.seed)
		a.log.Debug("sampling", "seed", s.Seed(), "count", f.count)
		for i := 0; i < f.count; i++ {
			z, err := draw(s, center)
			if err != nil {
				return err
			}
			a.printNumber(cmd, z)
		}
		return nil
	}

	var rect [4]float64
	sampleCmd.AddCommand(
		&cobra.Command{
			Use:   "rect MINRE MAXRE MINIM MAXIM",
			Short: "Points of an axis-aligned rectangle",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				for i, s := range args {
					x, err := cnum.Parse(s)
					if err != nil {
						return fmt.Errorf("bound %d: %w", i+1, err)
					}
					if rect[i], err = x.Real(); err != nil {
						return fmt.Errorf("bound %d: %w", i+1, err)
					}
				}
				return run(cmd, func(s *sample.Sampler, _ cnum.Number) (cnum.Number, error) {
					return s.InRectangle(rect[0], rect[1], rect[2], rect[3])
				})
			},
		},
		&cobra.Command{
			Use:   "disc",
			Short: "Points with |z − center| ≤ max-radius",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(s *sample.Sampler, c cnum.Number) (cnum.Number, error) {
					return s.InDisc(c, f.maxR)
				})
			},
		},
		&cobra.Command{
			Use:   "annulus",
			Short: "Points with min-radius ≤ |z − center| ≤ max-radius",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(s *sample.Sampler, c cnum.Number) (cnum.Number, error) {
					return s.InAnnulus(c, f.minR, f.maxR)
				})
			},
		},
		&cobra.Command{
			Use:   "sector",
			Short: "Points of the annular sector between min-arg and max-arg",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(s *sample.Sampler, c cnum.Number) (cnum.Number, error) {
					return s.InAnnularSector(c, f.minR, f.maxR, f.minArg, f.maxArg)
				})
			},
		},
	)
	return sampleCmd
}
