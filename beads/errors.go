// SPDX-License-Identifier: MIT
// Package beads: sentinel error set. Match with errors.Is; the wrapped
// message carries the offending substring or residue.

package beads

import "errors"

var (
	// ErrMalformedSequence indicates bad bracket structure or an empty segment.
	ErrMalformedSequence = errors.New("beads: malformed sequence")

	// ErrUnknownResidue indicates a residue code absent from the mass table.
	ErrUnknownResidue = errors.New("beads: unknown residue")

	// ErrInvalidParameter indicates a non-physical radius, density or
	// hydration value, or a missing mass table.
	ErrInvalidParameter = errors.New("beads: invalid parameter")
)
