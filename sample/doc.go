// SPDX-License-Identifier: MIT

// Package sample draws pseudo-random complex numbers uniformly (by area)
// from regions of the plane: rectangles, discs, annuli, sectors and annular
// sectors.
//
// Determinism: a Sampler is seeded explicitly; the same seed yields the same
// sequence on every platform. Seed 0 selects DefaultSeed. There is no
// time-based source.
//
// Concurrency: a Sampler wraps a math/rand.Rand and is NOT safe for
// concurrent use. Give each goroutine its own stream with Derive.
package sample
