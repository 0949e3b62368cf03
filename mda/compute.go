// SPDX-License-Identifier: MIT

package mda

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/glmmda/beads"
	"github.com/katalvlaran/glmmda/ensemble"
	"github.com/katalvlaran/glmmda/progress"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the outcome of one Compute call.
type Result struct {
	// RunID correlates log lines of one call.
	RunID string `json:"run_id"`
	// ProteinRh is the hydrodynamic radius in Å.
	ProteinRh float64 `json:"protein_rh"`
	// ProteinRhSigma is the bootstrap uncertainty in Å; nil when bootstrap is disabled.
	ProteinRhSigma  *float64 `json:"protein_rh_sigma,omitempty"`
	Seed            int64    `json:"seed"`
	EnsembleSize    int      `json:"ensemble_size"`
	BootstrapRounds int      `json:"bootstrap_rounds"`
	Beads           int      `json:"beads"`
	// Cached is set when the result came from the cache.
	Cached bool `json:"-"`
	// Ensemble holds the members when WithKeepEnsemble is set.
	Ensemble []ensemble.Member `json:"-"`
}

// Compute estimates the hydrodynamic radius of sequence.
//
// Flow: validate options → parse → expand → (cache lookup) → sample ensemble →
// reduce → bootstrap → (cache store). Parsing completes before any conformer
// is generated, so a malformed sequence never reaches the sampler.
//
// Errors:
//   - ErrInvalidParameter, ErrMalformedSequence, ErrUnknownResidue (input).
//   - ErrComputation (generator/evaluator), ErrSingularMatrix (reduction).
//   - ctx.Err() on cancellation.
func Compute(ctx context.Context, sequence string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	runID := uuid.New().String()
	logger := o.logger

	desc, err := beads.Parse(sequence, o.params)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	radii := beads.Expand(desc)

	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	logger.Printf("[%s] %d beads in %d groups, ensemble %d, bootstrap %d, seed %d",
		runID, radii.Len(), len(desc), o.ensembleSize, o.bootstrapRounds, o.seed)

	useCache := o.cacheable()
	if o.store != nil && o.seeded && !useCache && o.customized && !o.keepEnsemble {
		logger.Printf("[%s] cache skipped: custom collaborators without identity", runID)
	}
	var key string
	if useCache {
		key = fingerprint(sequence, &o)
		if res, ok := lookup(&o, key, runID); ok {
			return res, nil
		}
	}

	cfg := ensemble.Config{
		Size:      o.ensembleSize,
		Seed:      o.seed,
		Workers:   o.workers,
		Generator: o.generator,
		Evaluator: o.evaluator,
	}
	var bar *progress.Bar
	if o.progress != nil {
		bar = progress.New(o.progress, "conformers", o.ensembleSize)
		cfg.OnDone = bar.Increment
	}
	started := time.Now()
	members, err := ensemble.Sample(ctx, radii, cfg)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	logger.Printf("[%s] ensemble sampled in %v", runID, time.Since(started))

	tensors := ensemble.Tensors(members)
	rh, err := EffectiveRadius(tensors, o.maxCond)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	sigma, err := Bootstrap(ctx, tensors, o.bootstrapRounds, o.seed, o.workers, o.maxCond)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	res := &Result{
		RunID:           runID,
		ProteinRh:       rh,
		ProteinRhSigma:  sigma,
		Seed:            o.seed,
		EnsembleSize:    o.ensembleSize,
		BootstrapRounds: o.bootstrapRounds,
		Beads:           radii.Len(),
	}
	if o.keepEnsemble {
		res.Ensemble = members
	}
	logger.Printf("[%s] rh = %.4f Å", runID, rh)

	if useCache {
		store(&o, key, res)
	}

	return res, nil
}

// lookup returns a cached result re-stamped with runID. Cache failures are
// logged and treated as misses.
func lookup(o *options, key, runID string) (*Result, bool) {
	data, ok, err := o.store.Get(key)
	if err != nil {
		o.logger.Printf("[%s] cache get: %v", runID, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	res := &Result{}
	if err := json.Unmarshal(data, res); err != nil {
		o.logger.Printf("[%s] cache decode: %v", runID, err)
		return nil, false
	}
	res.RunID = runID
	res.Cached = true
	o.logger.Printf("[%s] cache hit", runID)

	return res, true
}

func store(o *options, key string, res *Result) {
	data, err := json.Marshal(res)
	if err != nil {
		o.logger.Printf("[%s] cache encode: %v", res.RunID, err)
		return
	}
	if err := o.store.Set(key, data); err != nil {
		o.logger.Printf("[%s] cache set: %v", res.RunID, err)
	}
}

// fingerprint identifies every input that influences a seeded result.
// Collaborators enter as their type plus the caller's cache identity; for
// the defaults the type alone is exact. Workers and progress do not count.
func fingerprint(sequence string, o *options) string {
	codes := make([]rune, 0, len(o.params.Masses))
	for r := range o.params.Masses {
		codes = append(codes, r)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "v2|%s|%g|%g|%g|%g|", sequence,
		o.params.StericRadius, o.params.HydrodynamicRadius, o.params.EffectiveDensity, o.params.HydrationThickness)
	for _, r := range codes {
		fmt.Fprintf(&b, "%c=%g,", r, o.params.Masses[r])
	}
	fmt.Fprintf(&b, "|%d|%d|%d|%g|%T|%T|%q", o.ensembleSize, o.bootstrapRounds, o.seed, o.maxCond,
		o.generator, o.evaluator, o.cacheID)
	sum := sha256.Sum256([]byte(b.String()))

	return hex.EncodeToString(sum[:])
}
