// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/cmath"
	"github.com/katalvlaran/riemann/cnum"
)

// unaryFuncs lists the one-argument functions known to eval.
var unaryFuncs = map[string]func(cnum.Number) (cnum.Number, error){
	"exp":   cmath.Exp,
	"log":   cmath.Log,
	"log10": cmath.Log10,
	"log2":  cmath.Log2,
	"sqrt":  cmath.Sqrt,
	"cbrt":  cmath.Cbrt,
	"sin":   cmath.Sin,
	"cos":   cmath.Cos,
	"tan":   cmath.Tan,
	"sinh":  cmath.Sinh,
	"cosh":  cmath.Cosh,
	"tanh":  cmath.Tanh,
	"asin":  cmath.Asin,
	"acos":  cmath.Acos,
	"atan":  cmath.Atan,
	"asinh": cmath.Asinh,
	"acosh": cmath.Acosh,
	"atanh": cmath.Atanh,
	"neg":   func(z cnum.Number) (cnum.Number, error) { return z.Neg(), nil },
	"conj":  func(z cnum.Number) (cnum.Number, error) { return z.Conjugate() },
	"inv":   func(z cnum.Number) (cnum.Number, error) { return z.Reciprocal() },
}

// binaryFuncs lists the two-argument functions known to eval.
var binaryFuncs = map[string]func(z, w cnum.Number) (cnum.Number, error){
	"add": func(z, w cnum.Number) (cnum.Number, error) { return z.Add(w), nil },
	"sub": cnum.Number.Sub,
	"mul": cnum.Number.Mul,
	"div": cnum.Number.Div,
	"pow": cmath.Pow,
}

func funcNames() string {
	names := []string{"abs", "arg"}
	for n := range unaryFuncs {
		names = append(names, n)
	}
	for n := range binaryFuncs {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval FUNC Z [W]",
		Short: "Apply a function to one or two numbers",
		Long: `Apply a function to one or two numbers.

Functions: ` + funcNames() + `

Examples:
  riemann eval exp 3.141592653589793i
  riemann eval pow 2 i
  riemann eval div 1 0 --division-mode infinity`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			zs, err := parseNumbers(args[1:])
			if err != nil {
				return err
			}
			a.log.Debug("eval", "func", name, "args", args[1:])

			switch {
			case name == "abs" && len(zs) == 1:
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(zs[0].Modulus(), 'g', -1, 64))
				return nil
			case name == "arg" && len(zs) == 1:
				theta, err := zs[0].PrincipalArgument()
				if err != nil {
					return fmt.Errorf("arg: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(theta, 'g', -1, 64))
				return nil
			}

			if f, ok := unaryFuncs[name]; ok && len(zs) == 1 {
				r, err := f(zs[0])
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				a.printNumber(cmd, r)
				return nil
			}
			if f, ok := binaryFuncs[name]; ok && len(zs) == 2 {
				r, err := f(zs[0], zs[1])
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				a.printNumber(cmd, r)
				return nil
			}
			return fmt.Errorf("unknown function %q with %d argument(s)", name, len(zs))
		},
	}
}
