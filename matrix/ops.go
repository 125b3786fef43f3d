// SPDX-License-Identifier: MIT

// Package matrix - kernels over Dense: matrix-vector products, column sums,
// bit-exact equality.

package matrix

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// MulVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MulVec").
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if err := m.checkVec(x); err != nil {
		return nil, err
	}
	y := make([]float64, m.r)
	m.mulRows(x, y, 0, m.r)

	return y, nil
}

// MulVecParallel computes y = m * x with the rows split into at most
// `workers` contiguous blocks, each computed by one goroutine of an errgroup.
// Every row is produced by exactly one worker with the same loop as MulVec,
// so the result is bit-identical to the serial kernel.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidWorkers.
//   - ctx.Err() when ctx is cancelled before all blocks complete.
//
// Complexity: Time O(r*c / workers) wall-clock, Space O(r).
func (m *Dense) MulVecParallel(ctx context.Context, x []float64, workers int) ([]float64, error) {
	if err := m.checkVec(x); err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%s: %w", ctxMulVec, ErrInvalidWorkers)
	}
	if workers > m.r {
		workers = m.r
	}
	if workers == 1 {
		return m.MulVec(x)
	}

	y := make([]float64, m.r)
	block := (m.r + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < m.r; lo += block {
		lo, hi := lo, min(lo+block, m.r)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m.mulRows(x, y, lo, hi) // disjoint slice of y per worker

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMulVec, err)
	}

	return y, nil
}

// mulRows writes y[i] = Σ_j m[i,j]*x[j] for i in [lo, hi).
func (m *Dense) mulRows(x, y []float64, lo, hi int) {
	var i, j, base int
	var acc, xv float64
	for i = lo; i < hi; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}
}

func (m *Dense) checkVec(x []float64) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxMulVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return fmt.Errorf("%s: len(x)=%d, cols=%d: %w", ctxMulVec, len(x), m.c, ErrDimensionMismatch)
	}

	return nil
}

// ColSums returns the sum of every column. For a column-stochastic matrix
// each entry is 1, except all-zero columns which sum to 0.
// Complexity: O(r*c).
func (m *Dense) ColSums() []float64 {
	sums := make([]float64, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			sums[j] += m.data[i*m.c+j]
		}
	}

	return sums
}

// Equal reports whether m and other have the same shape and bit-identical
// entries (math.Float64bits), so -0 and +0 differ.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if math.Float64bits(m.data[k]) != math.Float64bits(other.data[k]) {
			return false
		}
	}

	return true
}
