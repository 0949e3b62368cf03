// SPDX-License-Identifier: MIT

package mda

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/glmmda/matrix"
)

// DefaultMaxCondition is the largest accepted 2-norm condition number of the
// trace-reduced matrix.
const DefaultMaxCondition = 1e12

// EffectiveRadius reduces an ensemble of 3N×3N mobility tensors to the
// GLM-MDA hydrodynamic radius: mean over the ensemble, 3×3 block traces,
// inverse, sum of all entries, divided by 2π.
//
// maxCond bounds the condition number of the trace matrix; maxCond <= 0 or
// +Inf disables the check, leaving only exact singularity.
//
// Errors:
//   - ErrInvalidParameter for an empty ensemble, a nil tensor or mismatched shapes.
//   - ErrSingularMatrix when the trace matrix cannot be inverted reliably.
//
// The result depends only on the tensors and their order.
func EffectiveRadius(tensors []*matrix.Dense, maxCond float64) (float64, error) {
	if len(tensors) == 0 {
		return 0, fmt.Errorf("%w: empty ensemble", ErrInvalidParameter)
	}
	ms := make([]matrix.Matrix, len(tensors))
	for i, t := range tensors {
		if t == nil {
			return 0, fmt.Errorf("%w: tensor %d is nil", ErrInvalidParameter, i)
		}
		ms[i] = t
	}

	mean, err := matrix.Mean(ms)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	trace, err := matrix.BlockTrace(mean, 3)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	if maxCond > 0 && !math.IsInf(maxCond, 1) {
		cond, err := matrix.Condition(trace)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
		if cond > maxCond {
			return 0, fmt.Errorf("%w: condition number %.3g exceeds %.3g", ErrSingularMatrix, cond, maxCond)
		}
	}

	inv, err := matrix.Inverse(trace)
	if errors.Is(err, matrix.ErrSingular) {
		return 0, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
	}
	if err != nil {
		return 0, err
	}
	total, err := matrix.SumAll(inv)
	if err != nil {
		return 0, err
	}

	rh := total / (2 * math.Pi)
	if math.IsNaN(rh) || math.IsInf(rh, 0) {
		return 0, fmt.Errorf("%w: non-finite radius", ErrSingularMatrix)
	}

	return rh, nil
}
