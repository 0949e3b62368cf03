// SPDX-License-Identifier: MIT

// Package beads turns an annotated protein sequence into the coarse-grained
// bead model used by the GLM-MDA estimator.
//
// A sequence is a run of one-letter residue codes. Structured domains are
// enclosed in square brackets, for example "MSEQ[ACDEFGHIK]GGSG":
//
//   - every residue of a free (unbracketed) run becomes one linker bead with
//     the configured steric and hydrodynamic radii;
//   - every bracketed domain becomes exactly one large bead whose radius is
//     its excluded-volume radius plus a hydration shell.
//
// Parse produces the compact, run-length Description; Expand flattens it into
// per-bead radius arrays. Group order mirrors sequence order, and downstream
// stages rely on bead i of the arrays matching bead i of a conformation.
//
// The residue mass table is explicit configuration (Params.Masses); there is
// no package-level mutable state.
package beads
