// SPDX-License-Identifier: MIT

package sphere

import (
	"fmt"
	"strings"
)

// Pole selects which pole of the sphere the point at infinity projects to.
type Pole int

const (
	// North sends ∞ to (0, 0, 1) and 0 to (0, 0, −1).
	North Pole = iota
	// South sends ∞ to (0, 0, −1) and 0 to (0, 0, 1).
	South
)

// String returns "north" or "south".
func (p Pole) String() string {
	switch p {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Pole(%d)", int(p))
	}
}

// ParsePole reads "north"/"n" or "south"/"s", case-insensitively.
// Errors: ErrInvalidPole otherwise.
func ParsePole(s string) (Pole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	}
	return 0, sphereErrorf(fmt.Sprintf("ParsePole %q", s), ErrInvalidPole)
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePole.
func (p *Pole) UnmarshalText(text []byte) error {
	v, err := ParsePole(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Pole) valid() bool { return p == North || p == South }
