// SPDX-License-Identifier: MIT

package cnum

// Kind is the storage form of a Number.
type Kind uint8

const (
	// Cartesian values store (real, imaginary).
	Cartesian Kind = iota
	// Polar values store (modulus, argument) with modulus ≥ 0 and argument in [0, 2π).
	Polar
	// Infinite marks the point at infinity; it has no components.
	Infinite
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	case Infinite:
		return "infinity"
	default:
		return "unknown"
	}
}

// Number is an immutable point of the extended complex plane.
//
// The zero value is the Cartesian origin 0+0i. Values built with
// different storage forms may be equal under Equal while differing under ==;
// always compare with Equal.
type Number struct {
	a, b float64 // (re, im) for Cartesian, (modulus, argument) for Polar
	kind Kind
}

// Real is the set of built-in scalar types that lift into a Number.
type Real interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Operand is any right-hand operand accepted by the generic arithmetic
// entry points: a scalar or a Number.
type Operand interface {
	Real | Number
}
