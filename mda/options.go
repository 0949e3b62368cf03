// SPDX-License-Identifier: MIT
// Package mda: functional configuration for Compute.
//
// Policy:
//   - WithX constructors never validate numbers; Compute does, returning
//     ErrInvalidParameter, so user input never panics.
//   - Nil collaborators (generator, evaluator, cache, logger)
//     are programmer errors and panic at construction.

package mda

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/glmmda/beads"
	"github.com/katalvlaran/glmmda/cache"
	"github.com/katalvlaran/glmmda/chain"
	"github.com/katalvlaran/glmmda/hydro"
)

// Defaults for the ensemble and bootstrap sizes.
const (
	DefaultEnsembleSize    = 30
	DefaultBootstrapRounds = 10
)

// Option configures Compute.
type Option func(*options)

type options struct {
	params          beads.Params
	ensembleSize    int
	bootstrapRounds int
	seed            int64
	seeded          bool
	workers         int
	progress        io.Writer
	generator       chain.Generator
	evaluator       hydro.Evaluator
	maxCond         float64
	store           cache.Store
	cacheID         string
	customized      bool
	logger          *log.Logger
	keepEnsemble    bool
}

func defaultOptions() options {
	return options{
		params:          beads.DefaultParams(),
		ensembleSize:    DefaultEnsembleSize,
		bootstrapRounds: DefaultBootstrapRounds,
		generator:       chain.NewSARW(),
		evaluator:       hydro.GRPY{},
		maxCond:         DefaultMaxCondition,
		logger:          log.New(io.Discard, "", 0),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStericRadius sets the linker bead steric radius (Å).
func WithStericRadius(r float64) Option { return func(o *options) { o.params.StericRadius = r } }

// WithHydrodynamicRadius sets the linker bead hydrodynamic radius (Å).
func WithHydrodynamicRadius(r float64) Option {
	return func(o *options) { o.params.HydrodynamicRadius = r }
}

// WithEffectiveDensity sets the protein density used to size domains (Da/Å³).
func WithEffectiveDensity(rho float64) Option {
	return func(o *options) { o.params.EffectiveDensity = rho }
}

// WithHydrationThickness sets the hydration shell added to domains (Å).
func WithHydrationThickness(h float64) Option {
	return func(o *options) { o.params.HydrationThickness = h }
}

// WithMasses replaces the residue mass table. The map is copied.
func WithMasses(m beads.Masses) Option {
	var cp beads.Masses
	if m != nil {
		cp = make(beads.Masses, len(m))
		for k, v := range m {
			cp[k] = v
		}
	}

	return func(o *options) { o.params.Masses = cp }
}

// WithEnsembleSize sets the number of conformers M (>= 1).
func WithEnsembleSize(n int) Option { return func(o *options) { o.ensembleSize = n } }

// WithBootstrapRounds sets the number of bootstrap rounds; 0 disables the
// uncertainty estimate.
func WithBootstrapRounds(n int) Option { return func(o *options) { o.bootstrapRounds = n } }

// WithSeed makes the run reproducible. Without it a clock-derived seed is
// used and reported in Result.Seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers sets the worker pool size; 0 means GOMAXPROCS.
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithProgress draws a progress bar of conformer evaluation to w.
func WithProgress(w io.Writer) Option { return func(o *options) { o.progress = w } }

// WithGenerator replaces the conformer generator. Panics on nil.
func WithGenerator(g chain.Generator) Option {
	if g == nil {
		panic("mda: WithGenerator(nil)")
	}

	return func(o *options) {
		o.generator = g
		o.customized = true
	}
}

// WithEvaluator replaces the mobility evaluator. Panics on nil.
func WithEvaluator(e hydro.Evaluator) Option {
	if e == nil {
		panic("mda: WithEvaluator(nil)")
	}

	return func(o *options) {
		o.evaluator = e
		o.customized = true
	}
}

// WithMaxCondition bounds the condition number of the trace matrix;
// 0 disables the bound.
func WithMaxCondition(c float64) Option { return func(o *options) { o.maxCond = c } }

// WithCache stores and reuses results of seeded runs. Runs with a custom
// generator or evaluator also need WithCacheIdentity. Panics on nil.
func WithCache(s cache.Store) Option {
	if s == nil {
		panic("mda: WithCache(nil)")
	}

	return func(o *options) { o.store = s }
}

// WithCacheIdentity names the generator and evaluator in the cache key.
// Runs with a custom collaborator are cached only when it is set; callers
// must give differently behaving collaborators different identities.
func WithCacheIdentity(id string) Option { return func(o *options) { o.cacheID = id } }

// cacheable reports whether the result of a run may be stored and reused.
func (o *options) cacheable() bool {
	if o.store == nil || !o.seeded || o.keepEnsemble {
		return false
	}

	return !o.customized || o.cacheID != ""
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("mda: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithKeepEnsemble returns the sampled conformers and tensors in Result.Ensemble.
// Such runs bypass the cache.
func WithKeepEnsemble() Option { return func(o *options) { o.keepEnsemble = true } }

func (o *options) validate() error {
	switch {
	case o.ensembleSize < 1:
		return fmt.Errorf("%w: ensemble size %d, want >= 1", ErrInvalidParameter, o.ensembleSize)
	case o.bootstrapRounds < 0:
		return fmt.Errorf("%w: bootstrap rounds %d, want >= 0", ErrInvalidParameter, o.bootstrapRounds)
	case o.workers < 0:
		return fmt.Errorf("%w: workers %d, want >= 0", ErrInvalidParameter, o.workers)
	case !(o.maxCond >= 0):
		return fmt.Errorf("%w: max condition %g", ErrInvalidParameter, o.maxCond)
	}
	if err := o.params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return nil
}
