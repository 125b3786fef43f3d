// SPDX-License-Identifier: MIT

package pagerank

import "sort"

// Result is the outcome of one Solve call.
type Result struct {
	// IDs lists the node ids in canonical order; Ranks[i] belongs to IDs[i].
	IDs []string

	// Ranks is the final rank vector.
	Ranks []float64

	// Iterations is the number of power-iteration steps performed; 0 when
	// ConvergenceSum halts on the start vector (epsilon ≥ 1).
	Iterations int

	// Delta is the last halt-condition value (L1 distance or sum difference).
	Delta float64

	// Residual is the last mass S = 1 − sum(beta·M×R) redistributed evenly.
	Residual float64

	// Converged reports whether Delta ≤ epsilon was reached within the cap.
	Converged bool
}

// Score pairs a node id with its rank.
type Score struct {
	ID   string
	Rank float64
}

// Rank returns the rank of id.
// Complexity: O(N) scan of IDs; use Top or index Ranks directly in hot loops.
func (r *Result) Rank(id string) (float64, bool) {
	for i, v := range r.IDs {
		if v == id {
			return r.Ranks[i], true
		}
	}

	return 0, false
}

// Top returns the k highest-ranked nodes, rank descending, ties broken by
// canonical order. k <= 0 or k > N returns all nodes.
func (r *Result) Top(k int) []Score {
	out := make([]Score, len(r.IDs))
	for i, id := range r.IDs {
		out[i] = Score{ID: id, Rank: r.Ranks[i]}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Rank > out[b].Rank })
	if k > 0 && k < len(out) {
		out = out[:k]
	}

	return out
}
