// SPDX-License-Identifier: MIT

package ensemble

import "errors"

var (
	// ErrComputation wraps a failure reported by a generator or evaluator.
	ErrComputation = errors.New("ensemble: computation failed")

	// ErrInvalidParameter indicates a bad ensemble size, missing collaborator
	// or inconsistent radius arrays.
	ErrInvalidParameter = errors.New("ensemble: invalid parameter")
)
