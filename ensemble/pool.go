// SPDX-License-Identifier: MIT
// Package ensemble - fail-fast parallel loop on a tunny pool.

package ensemble

import (
	"context"
	"runtime"
	"sync"

	"github.com/Jeffail/tunny"
)

// Job processes item i. It must only write state owned by item i.
type Job func(ctx context.Context, i int) error

// Parallel runs job for every i in [0, n) on a pool of workers goroutines
// (GOMAXPROCS when workers < 1). The first failure cancels the context passed
// to outstanding jobs and is returned; later failures are dropped. Parallel
// returns only after every started job has finished. Jobs dequeued after
// the cancellation do not run.
func Parallel(ctx context.Context, workers, n int, job Job) error {
	if n <= 0 {
		return ctx.Err()
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}

	// Failures cancel inside the worker, before it can take the next payload.
	pool := tunny.NewFunc(workers, func(payload interface{}) interface{} {
		if err := ctx.Err(); err != nil {
			fail(err)
			return nil
		}
		if err := job(ctx, payload.(int)); err != nil {
			fail(err)
		}

		return nil
	})
	defer pool.Close()

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pool.Process(i)
		}(i)
	}
	wg.Wait()

	return first
}
