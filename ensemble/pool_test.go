// SPDX-License-Identifier: MIT
package ensemble_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmmda/ensemble"
)

func TestParallel_VisitsEveryIndexOnce(t *testing.T) {
	const n = 100
	hits := make([]int32, n)
	err := ensemble.Parallel(context.Background(), 7, n, func(_ context.Context, i int) error {
		atomic.AddInt32(&hits[i], 1)
		return nil
	})
	require.NoError(t, err)
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestParallel_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ensemble.Parallel(context.Background(), 1, 10, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestParallel_Empty(t *testing.T) {
	require.NoError(t, ensemble.Parallel(context.Background(), 4, 0, nil))
}

func TestParallel_SkipsJobsAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	var ran int32
	err := ensemble.Parallel(context.Background(), 1, 50, func(_ context.Context, i int) error {
		if atomic.AddInt32(&ran, 1) == 1 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran), "jobs dequeued after the failure must not run")
}

func TestParallel_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran int32
	err := ensemble.Parallel(ctx, 3, 10, func(context.Context, int) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(&ran))
}
