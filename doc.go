// Package glmmda estimates hydrodynamic radii of intrinsically disordered and
// partially structured proteins with the ensemble-averaged minimum
// dissipation approximation (GLM-MDA).
//
// 🚀 What is glmmda?
//
//	A small, deterministic, dependency-light toolkit that brings together:
//		• Bead model: annotated sequence → linker beads + one bead per [domain]
//		• Conformers: self-avoiding random walks of touching spheres
//		• Hydrodynamics: generalized Rotne-Prager-Yamakawa mobility tensors
//		• Reduction: ensemble mean → 3×3 traces → inverse → Σ / 2π
//		• Uncertainty: parallel bootstrap over the sampled tensors
//
// Under the hood, everything is organized under these subpackages:
//
//	beads/     sequence parser, residue masses, per-bead radius expansion
//	chain/     Generator interface, SARW implementation, seeded RNG streams
//	hydro/     Evaluator interface, GRPY translational tensor
//	matrix/    dense row-major matrices: LU, Inverse, Mean, BlockTrace
//	ensemble/  tunny-pooled conformer sampling and tensor evaluation
//	mda/       EffectiveRadius, Bootstrap and the Compute entry point
//	cache/     LRU and Redis result stores for seeded runs
//	progress/  terminal progress bar
//	render/    PNG snapshots of conformers
//
// Quick example:
//
//	res, err := mda.Compute(ctx, "MSEQ[ACDEFGHIK]GGSG", mda.WithSeed(7))
//	// res.ProteinRh, *res.ProteinRhSigma in Angstrom
//
//	go install github.com/katalvlaran/glmmda/cmd/glmmda
package glmmda
