// SPDX-License-Identifier: MIT

// Package hydro evaluates translational hydrodynamic mobility tensors of bead
// conformations.
//
// An Evaluator maps N bead centres and N hydrodynamic radii to the 3N×3N
// translational-translational mobility tensor μ, where the 3×3 block (i,j)
// gives the velocity of bead i per unit force on bead j. GRPY implements the
// generalized Rotne-Prager-Yamakawa approximation (Zuk, Wajnryb, Mizerski,
// Szymczak 2014) for unequal, possibly overlapping spheres in a fluid of unit
// viscosity. Results are symmetric by construction.
package hydro
