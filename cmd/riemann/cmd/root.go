// SPDX-License-Identifier: MIT

// Package cmd implements the riemann command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/cnum"
	"github.com/katalvlaran/riemann/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	verbose  bool
	division string
	format   string

	cfg     *config.Config
	log     *slog.Logger
	restore cnum.Policy
}

// Execute runs the command tree against os.Args.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		printError("riemann", err)
		return err
	}
	return nil
}

// NewRootCmd builds a fresh command tree. Output goes to cmd.OutOrStdout,
// logs and errors to cmd.ErrOrStderr.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "riemann",
		Short: "Complex numbers on the extended plane",
		Long: `riemann evaluates complex arithmetic, transcendental functions,
Möbius transformations and the stereographic projection from the command line.

Numbers are written as "3-4i", "i", "(3, 4)", "2*exp(1.5)" or "∞".
Put "--" before the first positional argument when it starts with "-".

Commands:
  eval      - apply a function (exp, log, sin, pow, ...)
  solve     - roots of a linear or quadratic equation
  roots     - n-th roots of unity
  mobius    - evaluate, invert or classify a Möbius transformation
  sphere    - project to and from the Riemann sphere
  geometry  - distances, areas and line intersections
  sample    - seeded random points in plane regions`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { cnum.SetPolicy(a.restore) },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file, .toml or .yaml (default: $"+config.EnvVar+", ./riemann.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	flags.StringVar(&a.division, "division-mode", "", "division by zero: throw or infinity (overrides the config file)")
	flags.StringVar(&a.format, "format", "", "output format: cartesian or polar (overrides the config file)")

	rootCmd.AddCommand(
		newEvalCmd(a),
		newSolveCmd(a),
		newRootsCmd(a),
		newMobiusCmd(a),
		newSphereCmd(a),
		newGeometryCmd(a),
		newSampleCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides and installs the
// numeric policy.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.division != "" {
		if err := a.cfg.Division.UnmarshalText([]byte(a.division)); err != nil {
			return fmt.Errorf("--division-mode: %w", err)
		}
	}
	if a.format != "" {
		a.cfg.Format = config.Format(a.format)
		if a.cfg.Format != config.FormatCartesian && a.cfg.Format != config.FormatPolar {
			return fmt.Errorf("--format %q: %w", a.format, config.ErrInvalidConfig)
		}
	}

	a.restore = a.cfg.Apply()
	a.log.Debug("policy installed",
		"division", a.cfg.Division,
		"epsilon", *a.cfg.Epsilon,
		"format", a.cfg.Format,
		"transforms", len(a.cfg.Transforms))

	return nil
}

// printNumber writes z in the configured format.
func (a *app) printNumber(cmd *cobra.Command, z cnum.Number) {
	fmt.Fprintln(cmd.OutOrStdout(), a.cfg.FormatNumber(z))
}

// parseNumbers parses every argument as a number literal.
func parseNumbers(args []string) ([]cnum.Number, error) {
	out := make([]cnum.Number, len(args))
	for i, s := range args {
		z, err := cnum.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = z
	}
	return out, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
