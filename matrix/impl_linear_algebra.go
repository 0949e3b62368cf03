// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the GLM-MDA
// reduction: element-wise addition, Doolittle LU and inversion.
// All functions perform strict fail-fast validation and return sentinel errors
// wrapped with an operation tag.
//
// Notes:
//   - Every kernel has a *Dense fast path over flat slices and a generic At/Set fallback.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for substitutions and accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opInverse    = "Inverse"
	opLU         = "LU"
	opMean       = "Mean"
	opBlockTrace = "BlockTrace"
	opSumAll     = "SumAll"
	opCondition  = "Condition"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Only call with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Copy A, then accumulate B into the copy.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Inputs are never mutated.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err = accumulate(res, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// accumulate adds src into dst in place. Shapes must already match.
// A *Dense src takes a single flat loop; anything else is read in i→j order.
func accumulate(dst *Dense, src Matrix) error {
	if ds, ok := src.(*Dense); ok {
		for idx, v := range ds.data {
			dst.data[idx] += v
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[i*dst.c+j] += v
		}
	}

	return nil
}

// Inverse computes A^{-1} using Doolittle LU factorization without pivoting.
// The input must be non-nil and square. Returns ErrSingular on a zero pivot.
// Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: LU(m) → L (unit lower), U (upper).
//   - Stage 2: For each basis column e_col: forward solve L*y = e_col,
//     backward solve U*x = y, write x into column col of a flat result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓) and no pivoting.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The trace-reduced mobility matrix is symmetric positive definite for any
//     physical conformer ensemble, so the unpivoted factorization is stable there.
//     Callers that cannot guarantee this should check Condition first.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	lMat, uMat, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	ld, ok := lMat.(*Dense)
	if !ok {
		if ld, err = toDense(lMat); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}
	ud, ok := uMat.(*Dense)
	if !ok {
		if ud, err = toDense(uMat); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	var baseUi, baseLi int
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += ld.data[baseLi+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseUi = i * n
			for k = i + 1; k < n; k++ {
				sum += ud.data[baseUi+k] * x[k]
			}
			pivot = ud.data[baseUi+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i = 0; i < n; i++ {
			invDense.data[i*n+col] = x[i]
		}
	}

	return invDense, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	lRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	uRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		lRaw.data[i*n+i] = 1.0
	}

	// Read the input through a flat view; non-Dense inputs are copied once.
	src, ok := m.(*Dense)
	if !ok {
		if src, err = toDense(m); err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
	}

	var i, j, k int
	var sum, pivot float64
	var baseI, baseJ int
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lRaw.data[baseI+k] * uRaw.data[k*n+j]
			}
			uRaw.data[baseI+j] = src.data[baseI+j] - sum
		}

		pivot = uRaw.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += lRaw.data[baseJ+k] * uRaw.data[k*n+i]
			}
			lRaw.data[baseJ+i] = (src.data[baseJ+i] - sum) / pivot
		}
	}

	return lRaw, uRaw, nil
}

// denseCopy returns a private *Dense copy of m.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	return toDense(m)
}

// toDense materializes any Matrix as a *Dense in i→j order.
func toDense(m Matrix) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
