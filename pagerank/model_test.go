package pagerank_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pagerank/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustModel builds a Model from an ordered list of (id, links) pairs.
func mustModel(t *testing.T, beta float64, nodes ...[]string) *pagerank.Model {
	t.Helper()
	g := pagerank.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n[0], n[1:]...))
	}
	m, err := pagerank.New(g, beta)
	require.NoError(t, err)

	return m
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s
}

// TestNew_Validation covers nil graph, empty graph and beta bounds.
func TestNew_Validation(t *testing.T) {
	_, err := pagerank.New(nil, 0.85)
	require.ErrorIs(t, err, pagerank.ErrGraphNil)

	_, err = pagerank.New(pagerank.NewGraph(), 0.85)
	require.ErrorIs(t, err, pagerank.ErrEmptyGraph)

	g := pagerank.NewGraph()
	require.NoError(t, g.AddNode("a", "a"))
	for _, beta := range []float64{0, -0.1, 1.0000001, math.NaN(), math.Inf(1)} {
		_, err = pagerank.New(g, beta)
		require.ErrorIs(t, err, pagerank.ErrInvalidBeta, "beta=%v", beta)
	}
	m, err := pagerank.New(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Beta())
}

// TestSolve_SelfLoop: a single self-looping node ranks 1 for any beta.
func TestSolve_SelfLoop(t *testing.T) {
	for _, beta := range []float64{0.1, 0.5, 0.85, 1} {
		m := mustModel(t, beta, []string{"a", "a"})
		res, err := m.Solve(1e-12)
		require.NoError(t, err)
		require.Len(t, res.Ranks, 1)
		assert.InDelta(t, 1.0, res.Ranks[0], 1e-12, "beta=%v", beta)
		assert.True(t, res.Converged)
		assert.Equal(t, 1, res.Iterations)
	}
}

// TestSolve_SymmetricPair: a↔b must rank equally.
func TestSolve_SymmetricPair(t *testing.T) {
	const eps = 1e-10
	m := mustModel(t, 0.85, []string{"a", "b"}, []string{"b", "a"})
	ranks, err := m.Ranks(eps)
	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.InDelta(t, ranks[0], ranks[1], eps)
	assert.InDelta(t, 0.5, ranks[0], eps)
}

// TestSolve_ThreeNodeCycle checks the closed-form fixed point of
// a→{b,c}, b→c, c→a with beta = 0.85.
func TestSolve_ThreeNodeCycle(t *testing.T) {
	m := mustModel(t, 0.85,
		[]string{"a", "b", "c"},
		[]string{"b", "c"},
		[]string{"c", "a"})
	res, err := m.Solve(1e-12)
	require.NoError(t, err)

	// A = .05 + .85C, B = .05 + .425A, C = .05 + .85(A/2 + B).
	a := 0.128625 / 0.3316875
	b := 0.05 + 0.425*a
	c := 0.0925 + 0.78625*a
	assert.InDeltaSlice(t, []float64{a, b, c}, res.Ranks, 1e-9)
	assert.InDelta(t, 1.0, sum(res.Ranks), 1e-12)

	top := res.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].ID)
	assert.Equal(t, "a", top[1].ID)
	r, ok := res.Rank("b")
	assert.True(t, ok)
	assert.InDelta(t, b, r, 1e-9)
	_, ok = res.Rank("zz")
	assert.False(t, ok)
}

// TestSolve_DanglingNode: dangling mass is redistributed, the solve
// terminates and the ranks stay a probability distribution.
func TestSolve_DanglingNode(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a", "b"}, []string{"b"})

	mat, err := m.StochasticMatrix()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, mat.ColSums())

	res, err := m.Solve(1e-12)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	for _, v := range res.Ranks {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.InDelta(t, 1.0, sum(res.Ranks), 1e-12)
	// r_a = (1 - .85 r_a)/2
	assert.InDelta(t, 0.5/1.425, res.Ranks[0], 1e-9)
}

// TestSolve_AllDangling: with every column zero the ranks stay uniform.
func TestSolve_AllDangling(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a"}, []string{"b"}, []string{"c"})
	ranks, err := m.Ranks(1e-12)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, ranks, 1e-15)
}

// TestSolve_EpsilonMonotonic: a smaller epsilon never takes fewer steps.
func TestSolve_EpsilonMonotonic(t *testing.T) {
	m := mustModel(t, 0.85,
		[]string{"a", "b", "c"},
		[]string{"b", "c", "d"},
		[]string{"c", "a"},
		[]string{"d", "a", "b"})

	prev := 0
	for _, eps := range []float64{1e-1, 1e-2, 1e-4, 1e-6, 1e-8, 1e-10, 1e-12} {
		res, err := m.Solve(eps)
		require.NoError(t, err, "eps=%g", eps)
		assert.GreaterOrEqual(t, res.Iterations, prev, "eps=%g", eps)
		assert.LessOrEqual(t, res.Delta, eps)
		prev = res.Iterations
	}
}

// TestSolve_NotConverged: the iteration cap surfaces ErrNotConverged with
// the partial result.
func TestSolve_NotConverged(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a", "b"}, []string{"b", "a", "b"})

	res, err := m.Solve(1e-12, pagerank.WithMaxIterations(1))
	require.ErrorIs(t, err, pagerank.ErrNotConverged)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.InDeltaSlice(t, []float64{0.2875, 0.7125}, res.Ranks, 1e-12)
	assert.InDelta(t, 0.15, res.Residual, 1e-12)

	ranks, err := m.Ranks(1e-12, pagerank.WithMaxIterations(1))
	require.ErrorIs(t, err, pagerank.ErrNotConverged)
	assert.Nil(t, ranks)
}

// TestSolve_InvalidParams aggregates epsilon and option violations.
func TestSolve_InvalidParams(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a", "a"})

	for _, eps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := m.Solve(eps)
		require.ErrorIs(t, err, pagerank.ErrInvalidEpsilon, "eps=%v", eps)
	}

	_, err := m.Solve(-1, pagerank.WithMaxIterations(0), pagerank.WithWorkers(-2))
	require.ErrorIs(t, err, pagerank.ErrInvalidEpsilon)
	require.ErrorIs(t, err, pagerank.ErrOptionViolation)
	assert.Contains(t, err.Error(), "MaxIterations")
	assert.Contains(t, err.Error(), "Workers")
}

// TestSolve_UnknownNode: malformed graphs fail at matrix-build time.
func TestSolve_UnknownNode(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a", "b"})

	_, err := m.StochasticMatrix()
	require.ErrorIs(t, err, pagerank.ErrUnknownNode)
	_, err = m.Ranks(1e-9)
	require.ErrorIs(t, err, pagerank.ErrUnknownNode)
}

// TestSolve_SumConvergence: the legacy total-based criterion halts after
// one step because redistribution keeps the total at 1.
func TestSolve_SumConvergence(t *testing.T) {
	m := mustModel(t, 0.85,
		[]string{"a", "b", "c"},
		[]string{"b", "c"},
		[]string{"c", "a"})

	res, err := m.Solve(1e-9, pagerank.WithConvergence(pagerank.ConvergenceSum))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 1.0, sum(res.Ranks), 1e-12)

	_, err = m.Solve(1e-9, pagerank.WithConvergence(pagerank.Convergence(42)))
	require.ErrorIs(t, err, pagerank.ErrOptionViolation)
}

// TestSolve_WorkersMatchSerial: the parallel product yields bit-identical ranks.
func TestSolve_WorkersMatchSerial(t *testing.T) {
	g := pagerank.NewGraph()
	const n = 24
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('A' + i))
	}
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, ids[(i+1)%n], ids[(i*7+3)%n]))
	}
	m, err := pagerank.New(g, 0.85)
	require.NoError(t, err)

	serial, err := m.Ranks(1e-12)
	require.NoError(t, err)
	parallel, err := m.Ranks(1e-12, pagerank.WithWorkers(5))
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

// TestSolve_Hooks covers the progress hook and context cancellation.
func TestSolve_Hooks(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a", "b"}, []string{"b", "a", "b"})

	var steps []int
	res, err := m.Solve(1e-9, pagerank.WithOnIteration(func(iter int, _ float64) error {
		steps = append(steps, iter)

		return nil
	}))
	require.NoError(t, err)
	require.Len(t, steps, res.Iterations)
	assert.Equal(t, 1, steps[0])

	stop := errors.New("stop")
	_, err = m.Solve(1e-9, pagerank.WithOnIteration(func(iter int, _ float64) error {
		if iter == 2 {
			return stop
		}

		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Solve(1e-9, pagerank.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestModel_SnapshotsGraph: later AddNode calls do not leak into the model.
func TestModel_SnapshotsGraph(t *testing.T) {
	g := pagerank.NewGraph()
	require.NoError(t, g.AddNode("a", "a"))
	m, err := pagerank.New(g, 0.85)
	require.NoError(t, err)
	require.NoError(t, g.AddNode("b", "a"))

	assert.Equal(t, []string{"a"}, m.IDs())
	ranks, err := m.Ranks(1e-9)
	require.NoError(t, err)
	assert.Len(t, ranks, 1)
}

// TestSolve_SumConvergenceLargeEpsilon: with epsilon ≥ 1 the sum criterion
// is already met against the all-zero start, so the uniform vector is
// returned without stepping.
func TestSolve_SumConvergenceLargeEpsilon(t *testing.T) {
	m := mustModel(t, 0.85, []string{"a", "b"}, []string{"b", "b"})

	var steps int
	res, err := m.Solve(2, pagerank.WithConvergence(pagerank.ConvergenceSum),
		pagerank.WithOnIteration(func(int, float64) error {
			steps++

			return nil
		}))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, 0, steps)
	assert.Equal(t, []float64{0.5, 0.5}, res.Ranks)
	assert.InDelta(t, 1.0, res.Delta, 1e-15)

	// Below 1 the first step is taken.
	res, err = m.Solve(0.5, pagerank.WithConvergence(pagerank.ConvergenceSum))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.InDeltaSlice(t, []float64{0.075, 0.925}, res.Ranks, 1e-12)
}
