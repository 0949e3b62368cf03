// SPDX-License-Identifier: MIT

package hydro

import "errors"

var (
	// ErrInvalidInput is returned for empty input, mismatched lengths or a
	// non-positive or non-finite radius or coordinate.
	ErrInvalidInput = errors.New("hydro: invalid input")

	// ErrNonFinite is returned when a tensor entry evaluates to NaN or ±Inf.
	ErrNonFinite = errors.New("hydro: non-finite tensor entry")
)
