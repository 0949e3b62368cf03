// SPDX-License-Identifier: MIT

// Package chain samples bead conformations of a flexible chain.
//
// A Generator turns a sequence of steric radii into one Conformation: the
// centres of N spheres in which consecutive spheres touch and no two spheres
// overlap. SARW is the self-avoiding random walk implementation used by
// default; callers may substitute their own Generator.
//
// Randomness is always explicit. Every call receives its own *rand.Rand and
// NewStream derives independent, reproducible streams from a run seed, one
// per ensemble member or bootstrap round. A *rand.Rand is not safe for
// concurrent use; never share one between goroutines.
package chain
