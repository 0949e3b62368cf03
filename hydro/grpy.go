// SPDX-License-Identifier: MIT
// Package hydro - generalized Rotne-Prager-Yamakawa translational tensor.
//
// For beads i≠j at separation r = |x_i - x_j|, unit vector r̂ and radii a_i, a_j,
// the block is μ_ij = A·I + B·r̂r̂ with
//
//   r > a_i+a_j (disjoint):
//     A = (1 + (a_i²+a_j²)/(3r²)) / (8πr)
//     B = (1 - (a_i²+a_j²)/r²)   / (8πr)
//   |a_i-a_j| < r ≤ a_i+a_j (partial overlap):
//     A = (16r³(a_i+a_j) - ((a_i-a_j)² + 3r²)²) / (32r³) / (6π a_i a_j)
//     B = 3((a_i-a_j)² - r²)² / (32r³) / (6π a_i a_j)
//   r ≤ |a_i-a_j| (one bead inside the other):
//     A = 1/(6π max(a_i,a_j)), B = 0
//
// and the self block is μ_ii = I/(6π a_i). All three branches agree at the
// branch boundaries, so μ is continuous in the geometry.

package hydro

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/glmmda/chain"
	"github.com/katalvlaran/glmmda/matrix"
)

// Evaluator computes the 3N×3N mobility tensor of one conformation.
type Evaluator interface {
	Mobility(positions chain.Conformation, radii []float64) (*matrix.Dense, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(positions chain.Conformation, radii []float64) (*matrix.Dense, error)

// Mobility calls f(positions, radii).
func (f EvaluatorFunc) Mobility(positions chain.Conformation, radii []float64) (*matrix.Dense, error) {
	return f(positions, radii)
}

// GRPY is the default Evaluator. The zero value is ready to use.
type GRPY struct{}

var _ Evaluator = GRPY{}

// Mobility returns the GRPY translational tensor for positions and radii.
//
// Errors: ErrInvalidInput, ErrNonFinite.
// Complexity: O(N²) time, O(N²) space.
func (GRPY) Mobility(positions chain.Conformation, radii []float64) (*matrix.Dense, error) {
	n := len(positions)
	if n == 0 || n != len(radii) {
		return nil, fmt.Errorf("%w: %d positions, %d radii", ErrInvalidInput, n, len(radii))
	}
	for i, a := range radii {
		if !(a > 0) || math.IsInf(a, 0) {
			return nil, fmt.Errorf("%w: radius[%d] = %g", ErrInvalidInput, i, a)
		}
		p := positions[i]
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return nil, fmt.Errorf("%w: position[%d] = %v", ErrInvalidInput, i, p)
		}
	}

	mu, err := matrix.NewDense(3*n, 3*n)
	if err != nil {
		return nil, err
	}

	var (
		i, j     int
		iso, dya float64
		unit     r3.Vec
		blk      [3][3]float64
	)
	for i = 0; i < n; i++ {
		iso = 1 / (6 * math.Pi * radii[i])
		for d := 0; d < 3; d++ {
			if err = mu.Set(3*i+d, 3*i+d, iso); err != nil {
				return nil, fmt.Errorf("%w: self block %d: %v", ErrNonFinite, i, err)
			}
		}
		for j = i + 1; j < n; j++ {
			iso, dya, unit = Pair(r3.Sub(positions[i], positions[j]), radii[i], radii[j])
			blk = block(iso, dya, unit)
			if err = setSymmetric(mu, i, j, &blk); err != nil {
				return nil, fmt.Errorf("%w: block (%d,%d): %v", ErrNonFinite, i, j, err)
			}
		}
	}

	return mu, nil
}

// Pair returns the isotropic coefficient A, the dyadic coefficient B and the
// unit separation vector r̂ of the off-diagonal block for separation sep.
// r̂ is zero when the beads coincide; B is then zero as well.
func Pair(sep r3.Vec, ai, aj float64) (iso, dyad float64, unit r3.Vec) {
	r := r3.Norm(sep)
	big, small := math.Max(ai, aj), math.Min(ai, aj)

	switch {
	case r <= big-small:
		return 1 / (6 * math.Pi * big), 0, r3.Vec{}
	case r <= ai+aj:
		unit = r3.Scale(1/r, sep)
		diff2 := (ai - aj) * (ai - aj)
		r3c := 32 * r * r * r
		pre := 1 / (6 * math.Pi * ai * aj)
		t := diff2 + 3*r*r
		iso = pre * (16*r*r*r*(ai+aj) - t*t) / r3c
		u := diff2 - r*r
		dyad = pre * 3 * u * u / r3c

		return iso, dyad, unit
	default:
		unit = r3.Scale(1/r, sep)
		s2 := (ai*ai + aj*aj) / (r * r)
		pre := 1 / (8 * math.Pi * r)

		return pre * (1 + s2/3), pre * (1 - s2), unit
	}
}

// block assembles A·I + B·r̂r̂.
func block(iso, dyad float64, u r3.Vec) [3][3]float64 {
	c := [3]float64{u.X, u.Y, u.Z}
	var b [3][3]float64
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			b[p][q] = dyad * c[p] * c[q]
		}
		b[p][p] += iso
	}

	return b
}

// setSymmetric writes blk into block (i,j) and its transpose into (j,i).
func setSymmetric(mu *matrix.Dense, i, j int, blk *[3][3]float64) error {
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			if err := mu.Set(3*i+p, 3*j+q, blk[p][q]); err != nil {
				return err
			}
			if err := mu.Set(3*j+q, 3*i+p, blk[p][q]); err != nil {
				return err
			}
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
