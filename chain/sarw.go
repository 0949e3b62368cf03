// SPDX-License-Identifier: MIT
// Package chain - self-avoiding random walk of touching spheres.
//
// Algorithm:
//   - Bead 0 sits at the origin.
//   - Bead i is placed at distance r[i-1]+r[i] from bead i-1 along a uniformly
//     random direction (normalized Gaussian triple). The trial is rejected if
//     it overlaps any bead j < i-1.
//   - After MaxAttempts rejections for one bead the whole chain restarts; after
//     MaxRestarts restarts Generate fails with ErrGeneratorFailed.
//
// Complexity: O(N²) distance checks per accepted chain.

package chain

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Defaults for the SARW retry budget.
const (
	DefaultMaxAttempts = 1000
	DefaultMaxRestarts = 100
)

// overlapTolerance is the relative slack allowed when comparing centre
// distances against contact distances.
const overlapTolerance = 1e-9

// SARW is the default Generator. The zero value is not usable; use NewSARW.
type SARW struct {
	maxAttempts int
	maxRestarts int
}

var _ Generator = (*SARW)(nil)

// Option configures a SARW.
type Option func(*SARW)

// WithMaxAttempts sets the number of trial directions per bead.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("chain: WithMaxAttempts(%d): must be >= 1", n))
	}

	return func(s *SARW) { s.maxAttempts = n }
}

// WithMaxRestarts sets how many times a stuck chain is rebuilt from scratch.
// Panics if n < 0.
func WithMaxRestarts(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("chain: WithMaxRestarts(%d): must be >= 0", n))
	}

	return func(s *SARW) { s.maxRestarts = n }
}

// NewSARW returns a SARW generator with the given options applied over defaults.
func NewSARW(opts ...Option) *SARW {
	s := &SARW{maxAttempts: DefaultMaxAttempts, maxRestarts: DefaultMaxRestarts}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate builds one self-avoiding conformation for steric.
//
// Errors: ErrEmptyChain, ErrInvalidRadius, ErrGeneratorFailed.
func (s *SARW) Generate(rng *rand.Rand, steric []float64) (Conformation, error) {
	if err := validateRadii(steric); err != nil {
		return nil, err
	}

	out := make(Conformation, len(steric))
	var restart, stuckAt int
	for restart = 0; restart <= s.maxRestarts; restart++ {
		if stuckAt = s.walk(rng, steric, out); stuckAt < 0 {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: bead %d unplaceable after %d restarts", ErrGeneratorFailed, stuckAt, s.maxRestarts)
}

// walk fills out in place. It returns -1 on success, else the index of the
// bead that could not be placed.
func (s *SARW) walk(rng *rand.Rand, steric []float64, out Conformation) int {
	out[0] = r3.Vec{}
	var i, attempt int
	var trial r3.Vec
	for i = 1; i < len(steric); i++ {
		step := steric[i-1] + steric[i]
		placed := false
		for attempt = 0; attempt < s.maxAttempts; attempt++ {
			trial = r3.Add(out[i-1], r3.Scale(step, randomDirection(rng)))
			if !overlaps(out[:i-1], steric, trial, steric[i]) {
				placed = true
				break
			}
		}
		if !placed {
			return i
		}
		out[i] = trial
	}

	return -1
}

// overlaps reports whether a sphere of radius r at p overlaps any of placed.
func overlaps(placed Conformation, steric []float64, p r3.Vec, r float64) bool {
	var contact float64
	for j, q := range placed {
		contact = steric[j] + r
		if r3.Norm2(r3.Sub(p, q)) < contact*contact*(1-overlapTolerance) {
			return true
		}
	}

	return false
}

// randomDirection draws a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand) r3.Vec {
	for {
		v := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if n := r3.Norm(v); n > 1e-12 {
			return r3.Scale(1/n, v)
		}
	}
}
