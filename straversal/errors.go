// Package straversal holds the pieces every strategy engine in this module
// shares: the lifecycle error taxonomy (spec.md §7), the calculation-limit
// counter, and the cursor helpers (go_to, go_for_vertices_in,
// go_for_depth_range / go_for_distance_range) built generically over any
// concrete strategy's pull-based iterator (spec.md §4.5).
//
// There is no base "Strategy" type here: per spec.md §9 ("flatten... shared
// code goes into free functions parameterised on the trait"), each concrete
// engine package (bfs, dfs, dijkstra, ...) defines its own Run type and
// simply calls into these free functions from its own GoTo/GoForXxx
// methods.
package straversal

import "errors"

// Sentinel errors shared by every strategy engine.
var (
	// ErrConfiguration is returned when two options passed to a
	// constructor or StartFrom are mutually exclusive or otherwise
	// incompatible (spec.md §7's "configuration error").
	ErrConfiguration = errors.New("straversal: invalid or mutually exclusive options")

	// ErrMissingStart is returned when neither a single start vertex nor a
	// set of start vertices was given to StartFrom.
	ErrMissingStart = errors.New("straversal: no start vertex or start vertices given")

	// ErrNotStarted is returned when a cursor method is called on a run
	// that was never produced by StartFrom (defensive; the exported API
	// makes this hard to trigger, since StartFrom is the only constructor
	// of a run).
	ErrNotStarted = errors.New("straversal: run was not produced by StartFrom")

	// ErrCalculationLimitExceeded is returned when a strategy's internal
	// step counter, set via WithCalculationLimit, reaches zero.
	ErrCalculationLimitExceeded = errors.New("straversal: calculation limit exceeded")

	// ErrVertexNotFound is returned by GoTo (and by bidirectional
	// StartFrom) when the stream is exhausted without ever reporting the
	// requested vertex, and fail-silently was not requested.
	ErrVertexNotFound = errors.New("straversal: target vertex not found before stream was exhausted")
)
