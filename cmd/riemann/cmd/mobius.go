// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/mobius"
)

// mobiusFlags selects the transformation a mobius subcommand works on.
type mobiusFlags struct {
	name       string
	a, b, c, d string
}

// transform resolves the flags: a named transform from the config file wins
// over explicit coefficients.
func (f *mobiusFlags) transform(a *app) (mobius.Transformation, error) {
	if f.name != "" {
		return a.cfg.Transform(f.name)
	}
	k, err := parseNumbers([]string{f.a, f.b, f.c, f.d})
	if err != nil {
		return mobius.Transformation{}, err
	}
	return mobius.New(k[0], k[1], k[2], k[3])
}

func newMobiusCmd(a *app) *cobra.Command {
	f := &mobiusFlags{}
	mobiusCmd := &cobra.Command{
		Use:   "mobius",
		Short: "Work with z ↦ (a·z + b)/(c·z + d)",
		Long: `Work with the Möbius transformation z ↦ (a·z + b)/(c·z + d).

The transformation is given either by --name (a [transforms.NAME] table of the
config file) or by the coefficient flags -a, -b, -c, -d (default: identity).

Examples:
  riemann mobius eval -a 0 -b 1 -c 1 -d 0 2 ∞
  riemann mobius fixed --name invert
  riemann mobius classify -a 2 -d 1`,
	}
	pf := mobiusCmd.PersistentFlags()
	pf.StringVar(&f.name, "name", "", "named transform from the config file")
	pf.StringVarP(&f.a, "a", "a", "1", "coefficient a")
	pf.StringVarP(&f.b, "b", "b", "0", "coefficient b")
	pf.StringVarP(&f.c, "c", "c", "0", "coefficient c")
	pf.StringVarP(&f.d, "d", "d", "1", "coefficient d")

	mobiusCmd.AddCommand(
		&cobra.Command{
			Use:   "eval Z...",
			Short: "Evaluate the transformation at each point",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := f.transform(a)
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				zs, err := parseNumbers(args)
				if err != nil {
					return err
				}
				a.log.Debug("mobius eval", "transform", t.String(), "points", len(zs))
				for _, z := range zs {
					a.printNumber(cmd, t.Evaluate(z))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "fixed",
			Short: "Print the fixed points",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				t, err := f.transform(a)
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				if t.IsIdentity() {
					fmt.Fprintln(cmd.OutOrStdout(), "every point is fixed")
					return nil
				}
				pts, err := t.FixedPoints()
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				for _, p := range pts {
					a.printNumber(cmd, p)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "inverse",
			Short: "Print the inverse transformation",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				t, err := f.transform(a)
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Inverse())
				return nil
			},
		},
		&cobra.Command{
			Use:   "classify",
			Short: "Print the conjugacy class and the normalized trace",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				t, err := f.transform(a)
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s σ=%s\n", t.Classify(), a.cfg.FormatNumber(t.TraceSquared()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "compose",
			Short: "Compose with a second named transform: t∘u",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := f.transform(a)
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				u, err := a.cfg.Transform(args[0])
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				tu, err := t.Compose(u)
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				n, err := tu.Normalize()
				if err != nil {
					return fmt.Errorf("mobius: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			},
		},
	)
	return mobiusCmd
}
