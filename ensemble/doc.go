// SPDX-License-Identifier: MIT

// Package ensemble samples a conformer ensemble and evaluates one mobility
// tensor per conformer.
//
// Members are independent: member i draws from its own RNG stream
// chain.NewStream(seed, i) and runs as one job on a tunny worker pool, so a
// seeded run yields the same ensemble for any worker count. The returned
// slice is ordered by member index, which ties every tensor to the
// conformation it was computed from.
//
// Any generator or evaluator failure aborts the whole call with
// ErrComputation; there is no partial ensemble.
package ensemble
