// SPDX-License-Identifier: MIT

package cnum

// Generic entry points. The right operand may be any scalar or a Number; it
// is lifted with Lift before the matching Number method runs, so there is one
// implementation per operator regardless of operand type.
//
//	s := cnum.Add(z, 1)
//	p, err := cnum.Mul(z, 2.5)
//	ok := cnum.Equal(z, 3)

// Add returns z + w.
func Add[T Operand](z Number, w T) Number { return z.Add(Lift(w)) }

// Sub returns z − w.
func Sub[T Operand](z Number, w T) (Number, error) { return z.Sub(Lift(w)) }

// Mul returns z × w.
func Mul[T Operand](z Number, w T) (Number, error) { return z.Mul(Lift(w)) }

// Div returns z / w under the process-wide division mode.
func Div[T Operand](z Number, w T) (Number, error) { return z.Div(Lift(w)) }

// Equal reports whether z equals w; a scalar w is a Cartesian value with
// zero imaginary part.
func Equal[T Operand](z Number, w T) bool { return z.Equal(Lift(w)) }
