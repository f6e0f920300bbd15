// SPDX-License-Identifier: MIT

// Package cmath is the transcendental layer of riemann: exponential,
// logarithm, power, trigonometric and hyperbolic functions (and their
// inverses) over cnum.Number, built from first principles.
//
// 🚀 How values are computed
//
//	Exp is a truncated Taylor series Σ_{k=0}^{29} z^k/k! accumulated with a
//	precomputed reciprocal-factorial table. Everything else reduces to Exp
//	and the principal logarithm:
//
//	  Log(z)  = ln|z| + i·Arg(z),   Arg ∈ (−π, π]
//	  Pow(z,w)= exp(w·Log z),       Sqrt = Pow(z, ½), Cbrt = Pow(z, ⅓)
//	  Sin, Cos, Sinh, Cosh via Euler identities; Tan = Sin/Cos, Tanh = Sinh/Cosh
//	  Asin, Acos, Atan, Asinh, Acosh, Atanh via their logarithmic closed forms
//
// ✨ Accuracy
//
//	The series is summed on a reduced argument: the imaginary part is taken
//	modulo 2π and the real part is halved until it is at most ½, then the
//	real factor is squared back. Thirty terms are then far more than enough
//	(the truncated tail is below 1e-17), and the relative error stays within a
//	few ulps multiplied by the number of squarings. Without the reduction the
//	same truncation degrades quickly past |z| ≈ 10. Inverse functions follow
//	the principal branches of Sqrt and Log and inherit their cuts.
//
// ⚙️ Usage:
//
//	w, err := cmath.Exp(cnum.FromCartesian(0, math.Pi)) // ≈ −1
//	r, err := cmath.Sqrt(cnum.FromCartesian(-4, 0))      // 2i
//
// Errors:
//
//	Every function rejects ∞ with cnum.ErrUndefinedForInfinity. Log(0) is ∞,
//	and functions whose closed form passes through Log(0) (Atan(±i),
//	Atanh(±1)) return ∞ rather than failing.
package cmath
