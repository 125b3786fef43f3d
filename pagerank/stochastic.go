// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pagerank/matrix"
)

// BuildStochastic converts g into its dense column-stochastic transition
// matrix M, indexed by the canonical node order:
//
//	M[row][col] = 1/outdeg(col)   if node col links to node row
//	M[row][col] = 0               otherwise
//
// Implementation:
//   - Stage 1: validate the graph (nil, empty, closed universe).
//   - Stage 2: for each target row, for each source col, test membership of
//     row's id in col's out-link list.
//
// Behavior highlights:
//   - Pure function of g; repeated calls yield bit-identical matrices.
//   - A dangling node (zero out-links) yields an all-zero column; the solver
//     redistributes that lost mass.
//   - A target listed twice in one out-link list still contributes a single
//     1/outdeg entry (membership semantics); the list length is the out-degree.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrUnknownNode.
//
// Complexity:
//   - Time O(N² · avg out-degree), Space O(N²).
func BuildStochastic(g *Graph) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Len()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("BuildStochastic: %w", err)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("BuildStochastic: %w", err)
	}
	var row, col int
	for row = 0; row < n; row++ {
		target := g.ids[row]
		for col = 0; col < n; col++ {
			out := g.links[col]
			if !slices.Contains(out, target) {
				continue
			}
			if err = m.Set(row, col, 1.0/float64(len(out))); err != nil {
				return nil, fmt.Errorf("BuildStochastic: %w", err)
			}
		}
	}

	return m, nil
}
