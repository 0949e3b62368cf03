// SPDX-License-Identifier: MIT

package mda

import (
	"errors"

	"github.com/katalvlaran/glmmda/beads"
	"github.com/katalvlaran/glmmda/ensemble"
)

var (
	// ErrSingularMatrix is returned when the trace-reduced mobility matrix is
	// singular or too ill-conditioned to invert, at top level or in any
	// bootstrap round.
	ErrSingularMatrix = errors.New("mda: singular trace matrix")

	// ErrInvalidParameter is returned for out-of-range numeric options or
	// inconsistent tensor input.
	ErrInvalidParameter = errors.New("mda: invalid parameter")

	// ErrComputation is returned when the conformer generator or the
	// mobility evaluator fails.
	ErrComputation = ensemble.ErrComputation

	// ErrMalformedSequence is returned for bad bracket structure or an empty segment.
	ErrMalformedSequence = beads.ErrMalformedSequence

	// ErrUnknownResidue is returned for a residue missing from the mass table.
	ErrUnknownResidue = beads.ErrUnknownResidue
)
