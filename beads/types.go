// SPDX-License-Identifier: MIT

package beads

import "fmt"

// Physical defaults, in Angstrom and Da/Å³.
const (
	// DefaultStericRadius is the excluded-volume radius of a linker bead.
	DefaultStericRadius = 1.9025

	// DefaultHydrodynamicRadius is the hydrodynamic radius of a linker bead.
	DefaultHydrodynamicRadius = 4.2

	// DefaultEffectiveDensity is the protein density used to size domains.
	DefaultEffectiveDensity = 0.52

	// DefaultHydrationThickness is the hydration shell added to a domain.
	DefaultHydrationThickness = 3.0
)

// Group is a run of Count physically identical beads.
// Invariant: Count >= 1 and both radii > 0.
type Group struct {
	HydrodynamicRadius float64
	StericRadius       float64
	Count              int
}

// Description is the compact bead description of a sequence, in sequence order.
type Description []Group

// Beads returns the total bead count, Σ Count over groups with Count > 0.
func (d Description) Beads() int {
	var n int
	for _, g := range d {
		if g.Count > 0 {
			n += g.Count
		}
	}

	return n
}

// Radii holds the per-bead radius arrays; both slices have length N.
type Radii struct {
	Steric       []float64
	Hydrodynamic []float64
}

// Len returns the bead count N.
func (r Radii) Len() int { return len(r.Steric) }

// Params configures Parse.
type Params struct {
	StericRadius       float64
	HydrodynamicRadius float64
	EffectiveDensity   float64
	HydrationThickness float64
	Masses             Masses
}

// DefaultParams returns the documented defaults with a fresh mass table.
func DefaultParams() Params {
	return Params{
		StericRadius:       DefaultStericRadius,
		HydrodynamicRadius: DefaultHydrodynamicRadius,
		EffectiveDensity:   DefaultEffectiveDensity,
		HydrationThickness: DefaultHydrationThickness,
		Masses:             DefaultMasses(),
	}
}

// Validate reports ErrInvalidParameter for non-positive radii or density,
// a negative hydration thickness or a nil mass table.
func (p Params) Validate() error {
	switch {
	case !(p.StericRadius > 0):
		return paramErrorf("steric radius", p.StericRadius)
	case !(p.HydrodynamicRadius > 0):
		return paramErrorf("hydrodynamic radius", p.HydrodynamicRadius)
	case !(p.EffectiveDensity > 0):
		return paramErrorf("effective density", p.EffectiveDensity)
	case !(p.HydrationThickness >= 0):
		return paramErrorf("hydration thickness", p.HydrationThickness)
	case p.Masses == nil:
		return fmt.Errorf("%w: nil mass table", ErrInvalidParameter)
	}

	return nil
}

func paramErrorf(name string, v float64) error {
	return fmt.Errorf("%w: %s = %g", ErrInvalidParameter, name, v)
}
