// SPDX-License-Identifier: MIT

// Package pagerank: functional options for the power-iteration solver.
//
// An invalid Option (e.g. a negative iteration cap) is recorded internally
// and surfaced as ErrOptionViolation when Solve/Ranks is invoked; option
// constructors never panic.
package pagerank

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Convergence selects the halt condition of the power iteration.
type Convergence int

const (
	// ConvergenceL1 halts once Σ|R_new[i] − R_old[i]| ≤ epsilon.
	ConvergenceL1 Convergence = iota

	// ConvergenceSum halts once sum(R_new) − sum(R_old) ≤ epsilon. This compares
	// only the vector totals. R_old starts as the all-zero vector, so
	// epsilon ≥ 1 returns the uniform start vector after zero steps; otherwise
	// redistribution keeps the total at 1 and it halts after the first step.
	// Kept for parity with the legacy criterion.
	ConvergenceSum
)

// String implements fmt.Stringer.
func (c Convergence) String() string {
	switch c {
	case ConvergenceL1:
		return "l1"
	case ConvergenceSum:
		return "sum"
	default:
		return fmt.Sprintf("Convergence(%d)", int(c))
	}
}

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultBeta is the customary damping factor.
	DefaultBeta = 0.85

	// DefaultEpsilon is a practical L1 tolerance for float64 ranks.
	DefaultEpsilon = 1e-9

	// DefaultMaxIterations caps the power iteration so it always terminates.
	DefaultMaxIterations = 1000

	// DefaultWorkers = 1 selects the serial matrix-vector product.
	DefaultWorkers = 1

	// DefaultConvergence is the entrywise L1 criterion.
	DefaultConvergence = ConvergenceL1
)

// Option configures Solve/Ranks via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the solve.
type Options struct {
	// Ctx is checked once per iteration; cancellation aborts the solve.
	Ctx context.Context

	// MaxIterations caps the number of power-iteration steps (> 0).
	MaxIterations int

	// Convergence selects the halt condition.
	Convergence Convergence

	// Workers > 1 runs the matrix-vector product on that many goroutines.
	Workers int

	// OnIteration is called after every step with the 1-based step number
	// and the halt-condition value. A non-nil return aborts the solve and
	// is propagated.
	OnIteration func(iter int, delta float64) error

	// violations recorded during option parsing
	err *multierror.Error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - MaxIterations = DefaultMaxIterations
//   - Convergence = ConvergenceL1
//   - Workers = 1 (serial)
//   - no-op OnIteration hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		Convergence:   DefaultConvergence,
		Workers:       DefaultWorkers,
		OnIteration:   func(int, float64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations caps the iteration count.
//
//	n > 0: stop with ErrNotConverged after n steps
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.violate(fmt.Errorf("%w: MaxIterations must be > 0 (%d)", ErrOptionViolation, n))

			return
		}
		o.MaxIterations = n
	}
}

// WithConvergence selects the halt condition.
func WithConvergence(c Convergence) Option {
	return func(o *Options) {
		switch c {
		case ConvergenceL1, ConvergenceSum:
			o.Convergence = c
		default:
			o.violate(fmt.Errorf("%w: unknown convergence %s", ErrOptionViolation, c))
		}
	}
}

// WithWorkers parallelizes the matrix-vector product across n goroutines.
// Results are bit-identical to the serial product.
//
//	n >= 1: use n workers (1 = serial)
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.violate(fmt.Errorf("%w: Workers must be > 0 (%d)", ErrOptionViolation, n))

			return
		}
		o.Workers = n
	}
}

// WithOnIteration registers a per-step progress hook.
func WithOnIteration(fn func(iter int, delta float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

func (o *Options) violate(err error) {
	o.err = multierror.Append(o.err, err)
}

// gatherOptions applies opts over DefaultOptions and returns the effective
// configuration together with every recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err.ErrorOrNil()
}
