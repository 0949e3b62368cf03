// SPDX-License-Identifier: MIT
// Package matrix - small constructors used by callers and tests.

package matrix

// FromRows builds a Dense from a rectangular slice of rows.
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows,
// ErrNaNInf for non-finite values.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(r, c, flat)
}
