// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag
// via %w); callers and tests match them with errors.Is. No kernel panics on
// user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so the origin is obvious in the
// error chains produced by the mda reduction.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add of
	// different shapes, a non-square input to LU, or an ensemble whose
	// members disagree in shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot is met during LU/Inverse, or
	// when the condition number of a matrix is not finite.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEmptyEnsemble is returned by Mean when no matrices are supplied.
	ErrEmptyEnsemble = errors.New("matrix: empty ensemble")

	// ErrBlockSize is returned by BlockTrace when the block edge is not
	// positive or does not divide the matrix dimension.
	ErrBlockSize = errors.New("matrix: block size does not tile the matrix")
)
