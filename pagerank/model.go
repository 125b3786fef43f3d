// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/pagerank/matrix"
)

// Model binds a graph to a damping factor. Both are fixed at construction:
// New snapshots the graph, so later AddNode calls on the caller's copy do
// not affect the model. A Model holds no iteration state; each Solve owns
// its matrix and vector buffers, so concurrent Solve calls are safe.
type Model struct {
	graph *Graph
	beta  float64
}

// New validates the inputs and returns a Model.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrInvalidBeta.
//
// Closed-universe violations are reported by StochasticMatrix/Solve
// (ErrUnknownNode), at matrix-build time.
func New(g *Graph, beta float64) (*Model, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	if err := validateBeta(beta); err != nil {
		return nil, err
	}

	return &Model{graph: g.Clone(), beta: beta}, nil
}

// Beta returns the damping factor.
func (m *Model) Beta() float64 { return m.beta }

// IDs returns the node ids in canonical order (the rank vector's order).
func (m *Model) IDs() []string { return m.graph.IDs() }

// StochasticMatrix returns the column-stochastic transition matrix of the
// model's graph. See BuildStochastic.
func (m *Model) StochasticMatrix() (*matrix.Dense, error) {
	return BuildStochastic(m.graph)
}

// Ranks runs the power iteration and returns the rank vector in canonical
// order. It is Solve without the diagnostics.
func (m *Model) Ranks(epsilon float64, opts ...Option) ([]float64, error) {
	res, err := m.Solve(epsilon, opts...)
	if err != nil {
		return nil, err
	}

	return res.Ranks, nil
}

// Solve computes the PageRank vector by power iteration.
//
// Implementation:
//   - Stage 1: validate epsilon and options (all violations aggregated).
//   - Stage 2: M = BuildStochastic(graph), built once; R = 1/N everywhere.
//   - Stage 3: repeat
//     R_new = beta·(M×R); S = 1 − sum(R_new); R_new[i] += S/N
//     until the halt condition (Options.Convergence) is ≤ epsilon.
//
// Behavior highlights:
//   - Redistributing S/N restores the mass lost both to damping and to
//     dangling columns, so sum(R) stays 1 and dangling nodes get the usual
//     uniform treatment.
//   - When the iteration cap is hit, Solve returns the last Result together
//     with an error wrapping ErrNotConverged.
//
// Errors:
//   - ErrInvalidEpsilon, ErrOptionViolation (aggregated, match via errors.Is).
//   - ErrUnknownNode from the matrix build.
//   - ErrNotConverged; ctx.Err(); errors returned by the OnIteration hook.
//
// Complexity:
//   - Time O(N²) per step (O(N²/workers) wall-clock), Space O(N²).
func (m *Model) Solve(epsilon float64, opts ...Option) (*Result, error) {
	o, optErr := gatherOptions(opts...)
	if err := validateParams(m.beta, epsilon, optErr); err != nil {
		return nil, err
	}

	mat, err := BuildStochastic(m.graph)
	if err != nil {
		return nil, err
	}
	n := mat.Rows()
	share := 1.0 / float64(n)
	r := make([]float64, n)
	for i := range r {
		r[i] = share
	}

	res := &Result{IDs: m.graph.IDs()}
	var next []float64
	var sum, residual, delta float64
	if o.Convergence == ConvergenceSum {
		// Against the all-zero "previous" vector the first check is
		// sum(R0) − 0 = 1, so epsilon ≥ 1 halts before any step.
		if delta = haltValue(o.Convergence, r, make([]float64, n)); delta <= epsilon {
			res.Ranks, res.Delta, res.Converged = r, delta, true

			return res, nil
		}
	}
	for iter := 1; ; iter++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("pagerank: solve: %w", err)
		}
		if o.Workers > 1 {
			next, err = mat.MulVecParallel(o.Ctx, r, o.Workers)
		} else {
			next, err = mat.MulVec(r)
		}
		if err != nil {
			return nil, fmt.Errorf("pagerank: solve: %w", err)
		}

		sum = 0
		for i := range next {
			next[i] *= m.beta
			sum += next[i]
		}
		residual = 1 - sum
		for i := range next {
			next[i] += residual / float64(n)
		}

		delta = haltValue(o.Convergence, next, r)
		r = next
		res.Ranks, res.Iterations, res.Delta, res.Residual = r, iter, delta, residual

		if err = o.OnIteration(iter, delta); err != nil {
			return nil, fmt.Errorf("pagerank: iteration %d: %w", iter, err)
		}
		if delta <= epsilon {
			res.Converged = true

			return res, nil
		}
		if iter >= o.MaxIterations {
			return res, fmt.Errorf("%w after %d iterations (delta=%g, epsilon=%g)",
				ErrNotConverged, iter, delta, epsilon)
		}
	}
}

// haltValue is the quantity compared against epsilon.
// The legacy sum criterion compares totals only.
func haltValue(c Convergence, cur, prev []float64) float64 {
	var acc float64
	switch c {
	case ConvergenceSum:
		for i := range cur {
			acc += cur[i] - prev[i]
		}
	default:
		for i := range cur {
			acc += math.Abs(cur[i] - prev[i])
		}
	}

	return acc
}

func validateBeta(beta float64) error {
	if math.IsNaN(beta) || beta <= 0 || beta > 1 {
		return fmt.Errorf("%w (got %g)", ErrInvalidBeta, beta)
	}

	return nil
}

// validateParams reports every parameter violation at once.
func validateParams(beta, epsilon float64, optErr error) error {
	var merr *multierror.Error
	if err := validateBeta(beta); err != nil {
		merr = multierror.Append(merr, err)
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w (got %g)", ErrInvalidEpsilon, epsilon))
	}
	if optErr != nil {
		merr = multierror.Append(merr, optErr)
	}

	return merr.ErrorOrNil()
}
