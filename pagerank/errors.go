// SPDX-License-Identifier: MIT

package pagerank

import "errors"

// Sentinel errors. Every message carries the "pagerank:" prefix; returned
// errors wrap these with context, so callers match them via errors.Is.
var (
	// ErrGraphNil is returned if a nil *Graph is passed.
	ErrGraphNil = errors.New("pagerank: graph is nil")

	// ErrEmptyGraph is returned when the graph has zero nodes; the uniform
	// start vector 1/N is undefined.
	ErrEmptyGraph = errors.New("pagerank: empty graph")

	// ErrUnknownNode is returned when an out-link targets an id that is not a
	// node of the graph (closed-universe violation).
	ErrUnknownNode = errors.New("pagerank: unknown node reference")

	// ErrDuplicateNode is returned by AddNode when the id is already present.
	ErrDuplicateNode = errors.New("pagerank: duplicate node")

	// ErrEmptyNodeID is returned by AddNode for the empty string id.
	ErrEmptyNodeID = errors.New("pagerank: empty node id")

	// ErrInvalidBeta is returned when the damping factor is outside (0, 1].
	ErrInvalidBeta = errors.New("pagerank: beta must be in (0, 1]")

	// ErrInvalidEpsilon is returned when epsilon is not a finite value > 0.
	ErrInvalidEpsilon = errors.New("pagerank: epsilon must be finite and > 0")

	// ErrNotConverged is returned when the iteration cap is reached before the
	// halt condition holds.
	ErrNotConverged = errors.New("pagerank: did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")
)
