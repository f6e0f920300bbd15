// SPDX-License-Identifier: MIT

package sample

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/riemann/cnum"
)

// DefaultSeed is used when New is called with seed 0.
const DefaultSeed int64 = 1

const tau = 2 * math.Pi

// Sampler is a deterministic source of random points.
type Sampler struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Sampler seeded with seed (0 ⇒ DefaultSeed).
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Sampler{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the effective seed of s.
func (s *Sampler) Seed() int64 { return s.seed }

// Derive returns an independent Sampler for the given stream id. Deriving
// does not consume from s, so the same (seed, stream) pair always yields the
// same child.
func (s *Sampler) Derive(stream uint64) *Sampler {
	return New(deriveSeed(s.seed, stream))
}

// deriveSeed mixes parent and stream with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		// 0 would alias DefaultSeed in New
		x = 1<<63 | 1
	}
	return int64(x)
}

// InRectangle returns a point with real part in [minRe, maxRe) and
// imaginary part in [minIm, maxIm).
// Errors: ErrInvalidRegion if a bound is not finite or min > max.
func (s *Sampler) InRectangle(minRe, maxRe, minIm, maxIm float64) (cnum.Number, error) {
	for _, v := range [...]float64{minRe, maxRe, minIm, maxIm} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return cnum.Number{}, sampleErrorf("InRectangle", "non-finite bound", ErrInvalidRegion)
		}
	}
	if minRe > maxRe {
		return cnum.Number{}, sampleErrorf("InRectangle", "minRe > maxRe", ErrInvalidRegion)
	}
	if minIm > maxIm {
		return cnum.Number{}, sampleErrorf("InRectangle", "minIm > maxIm", ErrInvalidRegion)
	}
	re := minRe + s.rng.Float64()*(maxRe-minRe)
	im := minIm + s.rng.Float64()*(maxIm-minIm)
	return cnum.FromCartesian(re, im), nil
}

// InAnnularSector returns a point center + r·e^{iθ} with r ∈ [minRadius,
// maxRadius] and θ ∈ [minArg, maxArg], uniform by area: r² is uniform on
// [minRadius², maxRadius²].
//
// Errors:
//   - ErrInvalidRegion if a bound is not finite, minRadius < 0,
//     minRadius > maxRadius, minArg > maxArg or maxArg − minArg > 2π.
//   - cnum.ErrUndefinedForInfinity if center is ∞.
func (s *Sampler) InAnnularSector(center cnum.Number, minRadius, maxRadius, minArg, maxArg float64) (cnum.Number, error) {
	const op = "InAnnularSector"
	if center.IsInfinity() {
		return cnum.Number{}, sampleErrorf(op, "center", cnum.ErrUndefinedForInfinity)
	}
	for _, v := range [...]float64{minRadius, maxRadius, minArg, maxArg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return cnum.Number{}, sampleErrorf(op, "non-finite bound", ErrInvalidRegion)
		}
	}
	switch {
	case minRadius < 0:
		return cnum.Number{}, sampleErrorf(op, "negative radius", ErrInvalidRegion)
	case minRadius > maxRadius:
		return cnum.Number{}, sampleErrorf(op, "minRadius > maxRadius", ErrInvalidRegion)
	case minArg > maxArg:
		return cnum.Number{}, sampleErrorf(op, "minArg > maxArg", ErrInvalidRegion)
	case maxArg-minArg > tau:
		return cnum.Number{}, sampleErrorf(op, "angular span exceeds 2π", ErrInvalidRegion)
	}
	theta := minArg + s.rng.Float64()*(maxArg-minArg)
	lo, hi := minRadius*minRadius, maxRadius*maxRadius
	r := math.Sqrt(lo + s.rng.Float64()*(hi-lo))
	offset, err := cnum.FromPolar(r, theta)
	if err != nil {
		return cnum.Number{}, sampleErrorf(op, "offset", err)
	}
	return center.Add(offset), nil
}

// InSector returns a point of the circular sector of radius maxRadius
// between minArg and maxArg around center.
func (s *Sampler) InSector(center cnum.Number, maxRadius, minArg, maxArg float64) (cnum.Number, error) {
	return s.InAnnularSector(center, 0, maxRadius, minArg, maxArg)
}

// InAnnulus returns a point with minRadius ≤ |z − center| ≤ maxRadius.
func (s *Sampler) InAnnulus(center cnum.Number, minRadius, maxRadius float64) (cnum.Number, error) {
	return s.InAnnularSector(center, minRadius, maxRadius, 0, tau)
}

// InDisc returns a point with |z − center| ≤ radius.
func (s *Sampler) InDisc(center cnum.Number, radius float64) (cnum.Number, error) {
	return s.InAnnularSector(center, 0, radius, 0, tau)
}
