// SPDX-License-Identifier: MIT

package chain

import "errors"

var (
	// ErrEmptyChain is returned when no radii are supplied.
	ErrEmptyChain = errors.New("chain: empty chain")

	// ErrInvalidRadius is returned for a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("chain: radius must be positive and finite")

	// ErrGeneratorFailed is returned when the walk cannot place every bead
	// within its attempt and restart budget.
	ErrGeneratorFailed = errors.New("chain: generator failed to converge")

	// ErrConstraint is returned by Check when a conformation breaks chain
	// connectivity or overlaps.
	ErrConstraint = errors.New("chain: conformation violates chain constraints")
)
