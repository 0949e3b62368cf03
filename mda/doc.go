// SPDX-License-Identifier: MIT

// Package mda estimates the hydrodynamic radius of a protein with the
// ensemble-averaged minimum dissipation approximation (GLM-MDA).
//
// Pipeline of Compute:
//
//	sequence ─Parse→ bead groups ─Expand→ per-bead radii
//	         ─Sample→ M conformers, M mobility tensors μ_k (3N×3N)
//	         ─EffectiveRadius→ R_h
//	         ─Bootstrap→ σ(R_h)
//
// EffectiveRadius reduces the ensemble as
//
//	R_h = Σ_ij [ (tr₃ ⟨μ⟩)⁻¹ ]_ij / (2π)
//
// where ⟨μ⟩ is the element-wise ensemble mean and tr₃ replaces every 3×3
// bead-pair block by its trace. The order (mean, trace, invert, sum) is part
// of the approximation: averaging and inversion do not commute.
//
// Bootstrap resamples the M tensors with replacement, repeats the reduction
// per round and reports the population standard deviation of the rounds.
//
// Randomness is explicit: a run seed feeds one stream per conformer and one
// per bootstrap round, so a seeded Compute is reproducible for any worker
// count, and reproducible results may be cached.
package mda
