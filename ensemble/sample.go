// SPDX-License-Identifier: MIT

package ensemble

import (
	"context"
	"fmt"

	"github.com/katalvlaran/glmmda/beads"
	"github.com/katalvlaran/glmmda/chain"
	"github.com/katalvlaran/glmmda/hydro"
	"github.com/katalvlaran/glmmda/matrix"
)

// Member is one ensemble entry: a conformation and its mobility tensor.
type Member struct {
	Index        int
	Conformation chain.Conformation
	Mobility     *matrix.Dense
}

// Config controls Sample.
type Config struct {
	// Size is the number of members, >= 1.
	Size int
	// Seed is the run seed; member i uses chain.NewStream(Seed, i).
	Seed int64
	// Workers is the pool size; < 1 means GOMAXPROCS.
	Workers   int
	Generator chain.Generator
	Evaluator hydro.Evaluator
	// OnDone, when set, is called once per finished member from worker
	// goroutines; it must be safe for concurrent use.
	OnDone func()
}

// Sample generates cfg.Size conformations from radii.Steric and evaluates
// each with radii.Hydrodynamic.
//
// Errors:
//   - ErrInvalidParameter for Size < 1, nil collaborators or radius arrays of
//     different or zero length.
//   - ErrComputation wrapping the first collaborator failure.
//   - ctx.Err() when ctx is cancelled first.
func Sample(ctx context.Context, radii beads.Radii, cfg Config) ([]Member, error) {
	if err := cfg.validate(radii); err != nil {
		return nil, err
	}

	n := radii.Len()
	members := make([]Member, cfg.Size)
	err := Parallel(ctx, cfg.Workers, cfg.Size, func(_ context.Context, i int) error {
		conf, err := cfg.Generator.Generate(chain.NewStream(cfg.Seed, i), radii.Steric)
		if err != nil {
			return fmt.Errorf("%w: member %d: generate: %w", ErrComputation, i, err)
		}
		if len(conf) != n {
			return fmt.Errorf("%w: member %d: generator returned %d beads, want %d", ErrComputation, i, len(conf), n)
		}
		mu, err := cfg.Evaluator.Mobility(conf, radii.Hydrodynamic)
		if err != nil {
			return fmt.Errorf("%w: member %d: mobility: %w", ErrComputation, i, err)
		}
		if mu == nil || mu.Rows() != 3*n || mu.Cols() != 3*n {
			return fmt.Errorf("%w: member %d: mobility tensor is not %dx%d", ErrComputation, i, 3*n, 3*n)
		}
		members[i] = Member{Index: i, Conformation: conf, Mobility: mu}
		if cfg.OnDone != nil {
			cfg.OnDone()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

// Tensors returns the mobility tensors of members in index order.
func Tensors(members []Member) []*matrix.Dense {
	out := make([]*matrix.Dense, len(members))
	for i := range members {
		out[i] = members[i].Mobility
	}

	return out
}

func (cfg Config) validate(radii beads.Radii) error {
	switch {
	case cfg.Size < 1:
		return fmt.Errorf("%w: ensemble size %d", ErrInvalidParameter, cfg.Size)
	case cfg.Generator == nil:
		return fmt.Errorf("%w: nil generator", ErrInvalidParameter)
	case cfg.Evaluator == nil:
		return fmt.Errorf("%w: nil evaluator", ErrInvalidParameter)
	case radii.Len() == 0 || len(radii.Hydrodynamic) != radii.Len():
		return fmt.Errorf("%w: %d steric vs %d hydrodynamic radii",
			ErrInvalidParameter, len(radii.Steric), len(radii.Hydrodynamic))
	}

	return nil
}
