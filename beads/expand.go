// SPDX-License-Identifier: MIT

package beads

// Expand flattens d into per-bead radius arrays, repeating each group's radii
// Count times in group order. Groups with Count < 1 contribute nothing.
//
// Complexity: O(N) time and space.
func Expand(d Description) Radii {
	n := d.Beads()
	out := Radii{
		Steric:       make([]float64, 0, n),
		Hydrodynamic: make([]float64, 0, n),
	}
	for _, g := range d {
		for k := 0; k < g.Count; k++ {
			out.Steric = append(out.Steric, g.StericRadius)
			out.Hydrodynamic = append(out.Hydrodynamic, g.HydrodynamicRadius)
		}
	}

	return out
}
