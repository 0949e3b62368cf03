// SPDX-License-Identifier: MIT
// Package matrix - ensemble reductions.
//
// Purpose:
//   - Mean: element-wise average of equally shaped matrices (ensemble average).
//   - BlockTrace: collapse every b×b diagonal-aligned sub-block to its trace.
//   - SumAll: sum of every entry.
//   - Condition: 2-norm condition number, computed by gonum's SVD.
//
// Determinism:
//   - Mean accumulates members in slice order, then divides once by M, so the
//     result does not depend on how the ensemble was produced.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mean returns the element-wise mean of ms as a fresh Dense.
//
// Implementation:
//   - Stage 1: validate len(ms) > 0 and copy ms[0] into the accumulator.
//   - Stage 2: check each further member against ms[0], add it in place in
//     slice order, then divide each entry by len(ms).
//
// Errors:
//   - ErrEmptyEnsemble, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(M*r*c), Space O(r*c) independent of M.
func Mean(ms []Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMean, ErrEmptyEnsemble)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMean, fmt.Errorf("member 0: %w", err))
	}

	acc, err := denseCopy(ms[0])
	if err != nil {
		return nil, matrixErrorf(opMean, err)
	}
	for idx := 1; idx < len(ms); idx++ {
		if err = ValidateBinarySameShape(acc, ms[idx]); err != nil {
			return nil, matrixErrorf(opMean, fmt.Errorf("member %d: %w", idx, err))
		}
		if err = accumulate(acc, ms[idx]); err != nil {
			return nil, matrixErrorf(opMean, fmt.Errorf("member %d: %w", idx, err))
		}
	}

	count := float64(len(ms))
	for idx := range acc.data {
		acc.data[idx] /= count
	}

	return acc, nil
}

// BlockTrace partitions the square matrix m into b×b blocks and returns the
// (n/b)×(n/b) matrix whose (i,j) entry is the trace of block (i,j).
// For a 3N×3N mobility tensor and b=3 this is the per-bead-pair trace.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square), ErrBlockSize.
//
// Complexity:
//   - Time O(n²/b), Space O((n/b)²).
func BlockTrace(m Matrix, b int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opBlockTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opBlockTrace, err)
	}
	n := m.Rows()
	if b <= 0 || n%b != 0 {
		return nil, matrixErrorf(opBlockTrace, ErrBlockSize)
	}

	src, ok := m.(*Dense)
	if !ok {
		var err error
		if src, err = toDense(m); err != nil {
			return nil, matrixErrorf(opBlockTrace, err)
		}
	}

	blocks := n / b
	out, err := NewDense(blocks, blocks)
	if err != nil {
		return nil, matrixErrorf(opBlockTrace, err)
	}
	var i, j, d int
	var tr float64
	for i = 0; i < blocks; i++ {
		for j = 0; j < blocks; j++ {
			tr = ZeroSum
			for d = 0; d < b; d++ {
				tr += src.data[(i*b+d)*n+j*b+d]
			}
			out.data[i*blocks+j] = tr
		}
	}

	return out, nil
}

// SumAll returns the sum of every entry of m.
// Errors: ErrNilMatrix.
func SumAll(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSumAll, err)
	}
	if d, ok := m.(*Dense); ok {
		return floats.Sum(d.data), nil
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opSumAll, err)
	}

	return floats.Sum(d.data), nil
}

// Condition returns the 2-norm condition number of the square matrix m.
// A singular matrix yields ErrSingular instead of +Inf.
//
// Complexity: one SVD, Time O(n³).
func Condition(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	d, ok := m.(*Dense)
	if !ok {
		var err error
		if d, err = toDense(m); err != nil {
			return 0, matrixErrorf(opCondition, err)
		}
	}

	cond := mat.Cond(mat.NewDense(d.r, d.c, d.RowMajor()), 2)
	if math.IsInf(cond, 0) || math.IsNaN(cond) {
		return cond, matrixErrorf(opCondition, ErrSingular)
	}

	return cond, nil
}
