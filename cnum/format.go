// SPDX-License-Identifier: MIT

package cnum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InfinitySymbol is the text form of the point at infinity.
const InfinitySymbol = "∞"

// String returns the canonical Cartesian form "a+bi" / "a-bi".
// A zero imaginary part prints the real part alone, a zero real part prints
// "bi" alone, and unit coefficients are elided ("i", "-i", "2+i").
// Infinity prints as InfinitySymbol and a value with a NaN part as "NaN".
func (z Number) String() string {
	if z.kind == Infinite {
		return InfinitySymbol
	}
	re, im := z.cart()
	if math.IsNaN(re) || math.IsNaN(im) {
		return "NaN"
	}
	if im == 0 {
		return formatFloat(re)
	}
	var imPart string
	switch im {
	case 1:
		imPart = "i"
	case -1:
		imPart = "-i"
	default:
		imPart = formatFloat(im) + "i"
	}
	if re == 0 {
		return imPart
	}
	if im > 0 {
		return formatFloat(re) + "+" + imPart
	}
	return formatFloat(re) + imPart
}

// StringPolar returns the canonical polar form "r*exp(θ)", eliding a unit
// modulus ("exp(θ)"). The origin prints as "0", infinity as InfinitySymbol
// and a value with a NaN part as "NaN".
// θ is the stored argument for polar values and atan2(im, re) otherwise.
func (z Number) StringPolar() string {
	if z.kind == Infinite {
		return InfinitySymbol
	}
	r := z.Modulus()
	theta, _ := z.Argument()
	if math.IsNaN(r) || math.IsNaN(theta) {
		return "NaN"
	}
	if r == 0 {
		return "0"
	}
	if r == 1 {
		return "exp(" + formatFloat(theta) + ")"
	}
	return formatFloat(r) + "*exp(" + formatFloat(theta) + ")"
}

// MarshalText implements encoding.TextMarshaler: polar values use the polar
// form, everything else the Cartesian form, so storage survives a round trip.
func (z Number) MarshalText() ([]byte, error) {
	if z.kind == Polar {
		return []byte(z.StringPolar()), nil
	}
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (z *Number) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// Parse reads a Number from s. Accepted forms:
//
//	"3", "-2.5e3", "i", "-i", "4i", "3+4i", "3-i", "1e-3+2E+2i"  Cartesian
//	"(3 4)", "(3, 4)"                                              Cartesian pair
//	"exp(1.5)", "2*exp(1.5)", "2*exp(1.5i)"                        polar
//	"∞", "inf", "infinity"                                         ∞
//
// Errors: ErrInvalidArgument for anything else.
func Parse(s string) (Number, error) {
	in := strings.TrimSpace(s)
	switch strings.ToLower(in) {
	case "":
		return Number{}, fmt.Errorf("Parse %q: %w", s, ErrInvalidArgument)
	case InfinitySymbol, "inf", "+inf", "infinity", "+infinity":
		return Infinity(), nil
	}
	if strings.Contains(in, "exp(") {
		return parsePolar(s, in)
	}
	re, im, ok := splitCartesian(in)
	if !ok {
		return Number{}, fmt.Errorf("Parse %q: %w", s, ErrInvalidArgument)
	}
	r, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return Number{}, fmt.Errorf("Parse %q: real part: %w", s, ErrInvalidArgument)
	}
	i, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return Number{}, fmt.Errorf("Parse %q: imaginary part: %w", s, ErrInvalidArgument)
	}
	return FromCartesian(r, i), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Number {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// parsePolar handles "[r*]exp(θ)" with an optional i next to θ.
func parsePolar(orig, in string) (Number, error) {
	idx := strings.Index(in, "exp(")
	if !strings.HasSuffix(in, ")") {
		return Number{}, fmt.Errorf("Parse %q: %w", orig, ErrInvalidArgument)
	}
	modulus := 1.0
	if prefix := strings.TrimSpace(in[:idx]); prefix != "" {
		prefix = strings.TrimSpace(strings.TrimSuffix(prefix, "*"))
		m, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return Number{}, fmt.Errorf("Parse %q: modulus: %w", orig, ErrInvalidArgument)
		}
		modulus = m
	}
	arg := strings.TrimSpace(in[idx+len("exp(") : len(in)-1])
	arg = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(arg, "i"), "i"))
	arg = strings.TrimSpace(strings.Trim(arg, "*"))
	theta, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return Number{}, fmt.Errorf("Parse %q: argument: %w", orig, ErrInvalidArgument)
	}
	z, err := FromPolar(modulus, theta)
	if err != nil {
		return Number{}, fmt.Errorf("Parse %q: %w", orig, err)
	}
	return z, nil
}

// splitCartesian converts the Cartesian spellings into separate real and
// imaginary strings.
func splitCartesian(s string) (string, string, bool) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		mid := strings.ReplaceAll(s[1:len(s)-1], ",", " ")
		f := strings.Fields(mid)
		switch len(f) {
		case 1:
			return f[0], "0", true
		case 2:
			return f[0], f[1], true
		default:
			return "", "", false
		}
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "I", "i")
	if !strings.HasSuffix(s, "i") {
		return s, "0", true
	}
	core := s[:len(s)-1]
	idx := lastSignNotInExponent(core)
	if idx <= 0 {
		return "0", unitCoefficient(core), true
	}
	return core[:idx], unitCoefficient(core[idx:]), true
}

// unitCoefficient maps the elided coefficients "", "+", "-" to "1", "1", "-1".
func unitCoefficient(s string) string {
	switch s {
	case "", "+":
		return "1"
	case "-":
		return "-1"
	}
	return s
}

// lastSignNotInExponent finds the last '+'/'-' that is not part of an
// exponent and not at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '+' || s[i] == '-' {
			if s[i-1] != 'e' && s[i-1] != 'E' {
				return i
			}
		}
	}
	return -1
}

func formatFloat(x float64) string {
	if x == 0 {
		x = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
