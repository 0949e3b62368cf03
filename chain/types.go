// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Conformation holds the N bead centres of one chain realization, in bead order.
type Conformation []r3.Vec

// Generator produces one conformation for the given steric radii.
// Implementations must consume randomness only from rng.
type Generator interface {
	Generate(rng *rand.Rand, steric []float64) (Conformation, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(rng *rand.Rand, steric []float64) (Conformation, error)

// Generate calls f(rng, steric).
func (f GeneratorFunc) Generate(rng *rand.Rand, steric []float64) (Conformation, error) {
	return f(rng, steric)
}

// Centroid returns the unweighted mean of the bead centres.
func (c Conformation) Centroid() r3.Vec {
	var sum r3.Vec
	if len(c) == 0 {
		return sum
	}
	for _, p := range c {
		sum = r3.Add(sum, p)
	}

	return r3.Scale(1/float64(len(c)), sum)
}

// Extent returns the largest distance from the centroid to a bead surface.
func (c Conformation) Extent(radii []float64) float64 {
	centre := c.Centroid()
	var ext float64
	for i, p := range c {
		d := r3.Norm(r3.Sub(p, centre))
		if i < len(radii) {
			d += radii[i]
		}
		ext = math.Max(ext, d)
	}

	return ext
}

// Check verifies that consecutive beads touch and no pair overlaps,
// both within the relative tolerance tol.
//
// Errors: ErrEmptyChain, ErrInvalidRadius, ErrConstraint.
// Complexity: O(N²).
func Check(c Conformation, steric []float64, tol float64) error {
	if err := validateRadii(steric); err != nil {
		return err
	}
	if len(c) != len(steric) {
		return fmt.Errorf("%w: %d positions for %d radii", ErrConstraint, len(c), len(steric))
	}
	var i, j int
	var d, contact float64
	for i = 1; i < len(c); i++ {
		contact = steric[i-1] + steric[i]
		d = r3.Norm(r3.Sub(c[i], c[i-1]))
		if math.Abs(d-contact) > tol*contact {
			return fmt.Errorf("%w: beads %d-%d at %g, want contact %g", ErrConstraint, i-1, i, d, contact)
		}
		for j = 0; j < i-1; j++ {
			contact = steric[j] + steric[i]
			if d = r3.Norm(r3.Sub(c[i], c[j])); d < contact*(1-tol) {
				return fmt.Errorf("%w: beads %d and %d overlap (%g < %g)", ErrConstraint, j, i, d, contact)
			}
		}
	}

	return nil
}

func validateRadii(steric []float64) error {
	if len(steric) == 0 {
		return ErrEmptyChain
	}
	for i, r := range steric {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: radius[%d] = %g", ErrInvalidRadius, i, r)
		}
	}

	return nil
}
