// SPDX-License-Identifier: MIT

// Package cnum: process-wide numeric policy.
// This file defines:
//   - DivisionMode and its text codec (used by configuration files),
//   - documented defaults (constants),
//   - Option / WithX constructors (panic on nonsensical values),
//   - Configure / CurrentPolicy backed by an atomic pointer.
//
// The policy is global configuration: set it once at startup, before
// arithmetic runs concurrently. Reads are atomic loads, so a late write is
// memory-safe but takes effect only for operations that start after it.
// Callers that need a per-call policy use Number.DivMode instead.
package cnum

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// DivisionMode selects how division by a finite zero is handled.
type DivisionMode int

const (
	// ThrowException makes every division by zero fail with ErrDivisionByZero.
	ThrowException DivisionMode = iota

	// ReturnInfinity makes z/0 return ∞ for z ≠ 0. 0/0 still fails with ErrIndeterminate.
	ReturnInfinity
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDivisionMode is the division policy in effect until Configure is called.
	DefaultDivisionMode = ThrowException

	// DefaultEpsilon is the absolute-or-relative tolerance used when two values
	// stored in different forms are compared by Equal.
	DefaultEpsilon = 1e-12
)

const (
	panicEpsilonInvalid  = "cnum: WithEpsilon: eps must be finite, non-negative"
	panicDivisionInvalid = "cnum: WithDivisionMode: unknown division mode"
)

// String returns the configuration spelling of m.
func (m DivisionMode) String() string {
	switch m {
	case ThrowException:
		return "throw"
	case ReturnInfinity:
		return "infinity"
	default:
		return fmt.Sprintf("DivisionMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m DivisionMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, cnumErrorf("DivisionMode.MarshalText", ErrInvalidArgument)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Accepted spellings are
// "throw", "throwexception", "exception" and "infinity", "inf" (case-insensitive).
func (m *DivisionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "throw", "throwexception", "exception":
		*m = ThrowException
	case "infinity", "inf":
		*m = ReturnInfinity
	default:
		return fmt.Errorf("DivisionMode.UnmarshalText %q: %w", text, ErrInvalidArgument)
	}
	return nil
}

func (m DivisionMode) valid() bool {
	return m == ThrowException || m == ReturnInfinity
}

// Policy is an immutable snapshot of the numeric policy.
type Policy struct {
	Division DivisionMode // how z/0 behaves
	Epsilon  float64      // cross-representation equality tolerance, ≥ 0
}

// Option mutates a Policy under construction.
type Option func(*Policy)

// WithDivisionMode sets the division-by-zero mode.
// Panics if mode is not ThrowException or ReturnInfinity.
func WithDivisionMode(mode DivisionMode) Option {
	if !mode.valid() {
		panic(panicDivisionInvalid)
	}
	return func(p *Policy) { p.Division = mode }
}

// WithEpsilon sets the tolerance used for cross-representation equality.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(p *Policy) { p.Epsilon = eps }
}

// DefaultPolicy returns the policy in effect before any Configure call.
func DefaultPolicy() Policy {
	return Policy{Division: DefaultDivisionMode, Epsilon: DefaultEpsilon}
}

var policy atomic.Pointer[Policy]

func init() {
	p := DefaultPolicy()
	policy.Store(&p)
}

// Configure replaces the process-wide policy with DefaultPolicy modified by opts
// and returns the previous policy, so tests can restore it:
//
//	prev := cnum.Configure(cnum.WithDivisionMode(cnum.ReturnInfinity))
//	defer cnum.SetPolicy(prev)
func Configure(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}
	return SetPolicy(p)
}

// SetPolicy stores p as the process-wide policy and returns the previous one.
// Invalid fields are replaced by their defaults.
func SetPolicy(p Policy) Policy {
	if !p.Division.valid() {
		p.Division = DefaultDivisionMode
	}
	if math.IsNaN(p.Epsilon) || math.IsInf(p.Epsilon, 0) || p.Epsilon < 0 {
		p.Epsilon = DefaultEpsilon
	}
	return *policy.Swap(&p)
}

// CurrentPolicy returns the process-wide policy.
func CurrentPolicy() Policy {
	return *policy.Load()
}
