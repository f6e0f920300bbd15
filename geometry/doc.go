// SPDX-License-Identifier: MIT

// Package geometry provides plane-geometry helpers on complex numbers:
// distances, triangle area, and line parallelism / intersection, where a
// line is given by two distinct points.
//
// Every helper works on finite points only and returns
// cnum.ErrUndefinedForInfinity when handed ∞; for distances on the extended
// plane use sphere.ChordalDistance.
//
// Parallelism is decided by the cross product of the direction vectors,
// relative to the cnum policy epsilon, so antiparallel directions count as
// parallel.
package geometry
