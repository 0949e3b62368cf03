// Package matrix provides the dense linear algebra behind the GLM-MDA
// reduction.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking, and an optional finite-only policy.
//   - Validators shared by every kernel (nil, shape, square, symmetry).
//   - Kernels: Add, LU (Doolittle) and Inverse.
//   - Ensemble reductions used by hydrodynamic averaging: Mean over a set of
//     equally shaped matrices, BlockTrace (trace of every b×b sub-block),
//     SumAll, and Condition (2-norm condition number via gonum).
//
// All loops run in a fixed order, so identical inputs produce bit-identical
// outputs. Mobility tensors for N beads are 3N×3N; block (i,j) occupies rows
// 3i..3i+2 and columns 3j..3j+2.
//
// See the examples in this package for usage patterns.
package matrix
