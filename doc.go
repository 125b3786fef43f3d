// Package pagerank is an in-memory toolkit for ranking the pages of a small
// directed web graph.
//
// 🚀 What is inside?
//
//	pagerank/ — Graph (ordered adjacency list), BuildStochastic (dense
//	            column-stochastic matrix) and the power-iteration solver
//	matrix/   — row-major Dense matrix, serial & worker-parallel MatVec
//	examples/ — runnable walkthrough on a documentation-site graph
//
// ✨ Why dense?
//
//   - Graphs are small: O(N²) memory keeps the code obvious and exact.
//   - Deterministic: fixed node order, fixed loop order, bit-identical
//     results with or without worker parallelism.
//
// Quick ASCII example:
//
//	a ──▶ b ──▶ c ──▶ a
//
//	a 3-cycle: every page ends with rank 1/3.
//
//	go get github.com/katalvlaran/pagerank
package pagerank
