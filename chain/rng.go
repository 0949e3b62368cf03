// SPDX-License-Identifier: MIT
// Package chain - deterministic RNG streams.
//
// Goals:
//   - Determinism: same (seed, stream) ⇒ identical draws on every platform.
//   - Independence: streams for different indices are decorrelated, so the
//     result of a parallel run does not depend on worker scheduling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Create one stream per job.

package chain

import "math/rand"

// defaultSeed replaces seed==0 so the zero value still yields a fixed stream.
const defaultSeed int64 = 1

// NewStream returns the RNG for stream index i of a run seeded with seed.
// Policy: seed==0 ⇒ defaultSeed.
//
// Complexity: O(1).
func NewStream(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer so neighbouring streams are uncorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
