// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// PageRank solver.
//
// What & Why:
//
//	Dense is a row-major float64 matrix stored in one flat slice. It is the
//	representation of the column-stochastic transition matrix: small graphs,
//	O(N²) memory, O(N²) per matrix-vector product.
//
// The package provides:
//
//   - NewDense / At / Set / Clone with bounds checking (errors, never panics).
//   - MulVec, the serial y = M·x kernel, and MulVecParallel, which splits the
//     rows into contiguous blocks computed by an errgroup of workers.
//   - ColSums for stochasticity checks, Equal for bit-exact comparison.
//
// Determinism:
//
//	Every kernel walks rows and columns in fixed i→j order. The parallel
//	kernel assigns each row to exactly one worker, so its output is
//	bit-identical to MulVec.
//
// Complexity:
//
//	At/Set O(1); Clone, MulVec, ColSums, Equal O(r*c).
package matrix
