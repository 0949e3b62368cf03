// SPDX-License-Identifier: MIT

package mda

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/glmmda/chain"
	"github.com/katalvlaran/glmmda/ensemble"
	"github.com/katalvlaran/glmmda/matrix"
)

// bootstrapSalt separates bootstrap streams from conformer streams of the same seed.
const bootstrapSalt int64 = 0x5bd1e995

// Bootstrap estimates the Monte Carlo uncertainty of EffectiveRadius.
// Round r draws len(tensors) indices with replacement from the stream
// chain.NewStream(seed^bootstrapSalt, r) and reduces the resampled ensemble.
// The result is the population standard deviation over rounds.
//
// rounds == 0 returns (nil, nil): no uncertainty is computed.
//
// Errors:
//   - ErrInvalidParameter for rounds < 0 or an empty ensemble.
//   - the first failing round (typically ErrSingularMatrix); no round is skipped.
func Bootstrap(ctx context.Context, tensors []*matrix.Dense, rounds int, seed int64, workers int, maxCond float64) (*float64, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: bootstrap rounds %d", ErrInvalidParameter, rounds)
	}
	if rounds == 0 {
		return nil, nil
	}
	m := len(tensors)
	if m == 0 {
		return nil, fmt.Errorf("%w: empty ensemble", ErrInvalidParameter)
	}

	radii := make([]float64, rounds)
	err := ensemble.Parallel(ctx, workers, rounds, func(_ context.Context, r int) error {
		rng := chain.NewStream(seed^bootstrapSalt, r)
		resampled := make([]*matrix.Dense, m)
		for k := range resampled {
			resampled[k] = tensors[rng.Intn(m)]
		}
		rh, err := EffectiveRadius(resampled, maxCond)
		if err != nil {
			return fmt.Errorf("bootstrap round %d: %w", r, err)
		}
		radii[r] = rh

		return nil
	})
	if err != nil {
		return nil, err
	}

	_, sigma := stat.PopMeanStdDev(radii, nil)
	if math.IsNaN(sigma) {
		// identical radii can round the variance just below zero
		sigma = 0
	}

	return &sigma, nil
}
