// SPDX-License-Identifier: MIT

// Package pagerank computes the PageRank distribution of a small directed
// web graph with the power method over a dense transition matrix.
//
// 🚀 What is PageRank?
//
//	A random surfer follows one of the current page's out-links with
//	probability beta and teleports to a uniformly random page otherwise.
//	PageRank is the stationary visitation probability of that walk, i.e. the
//	dominant eigenvector of the damped transition matrix.
//
// ✨ Key pieces:
//   - Graph: ordered, closed-universe adjacency list (node id → out-links).
//     Insertion order (or ascending id order for FromMap) fixes every index.
//   - BuildStochastic: dense column-stochastic matrix M,
//     M[row][col] = 1/outdeg(col) when col links to row.
//   - Model.Solve / Model.Ranks: power iteration
//     R ← beta·M·R + (1 − sum(beta·M·R))/N until Σ|ΔR| ≤ epsilon.
//
// ⚙️ Usage:
//
//	g := pagerank.NewGraph()
//	_ = g.AddNode("a", "b", "c")
//	_ = g.AddNode("b", "c")
//	_ = g.AddNode("c", "a")
//
//	m, err := pagerank.New(g, pagerank.DefaultBeta)
//	ranks, err := m.Ranks(1e-9, pagerank.WithMaxIterations(200))
//
// Dangling nodes (no out-links) produce all-zero columns; the mass they lose
// is returned uniformly with the teleport share, so ranks always sum to 1.
//
// Errors are sentinels (ErrEmptyGraph, ErrUnknownNode, ErrInvalidBeta,
// ErrInvalidEpsilon, ErrNotConverged, ErrOptionViolation) matched via errors.Is.
//
// Performance:
//
//   - Build: O(N² · avg out-degree) time, O(N²) memory.
//   - Each step: O(N²); WithWorkers(k) splits rows across k goroutines.
package pagerank
