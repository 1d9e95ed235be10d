// Package dijkstra computes single-source shortest paths over a
// caller-supplied weighted successor function using a lazy-decrease-key
// min-heap (spec.md §4.10): a vertex's distance is only finalised once it
// is popped, ties are broken LIFO by discovery order, and in non-tree mode
// a finalised vertex's stored distance is reset to the weight policy's
// zero value once it is no longer needed, to free weight-object memory
// while still blocking any later (non-negative) candidate from improving it.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/lazytraverse/gear"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

// ErrNegativeWeight is reported when a relaxed edge carries a weight below
// the weight policy's zero: returned by StartFrom while expanding a start
// vertex, or via Err after Next. Edges are validated lazily, one at a time
// as each is relaxed, since successor functions are generated on demand
// and cannot be pre-scanned.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Options configures one StartFrom call.
type Options[V any, VId comparable, W gear.Number] struct {
	Ctx context.Context

	// BuildPaths enables predecessor (and, for labeled traversals, label)
	// recording.
	BuildPaths bool

	// IsTree skips the stale-distance reset optimisation entirely: every
	// vertex is assumed reachable by exactly one path, so there is nothing
	// to block (spec.md §3 "tree mode, which skips bookkeeping by
	// contract").
	IsTree bool

	// KeepDistances, in non-tree mode, preserves each vertex's true
	// finalised distance instead of resetting it to zero once popped.
	KeepDistances bool

	// HasMaxDistance / MaxDistance: once the minimum distance in the heap
	// exceeds MaxDistance, the run stops without finalising that vertex.
	HasMaxDistance bool
	MaxDistance    W

	// CalculationLimit caps the number of finalised (reported) vertices;
	// negative means unlimited (spec.md §5).
	CalculationLimit int64

	// KnownDistances, if non-nil, is used (and mutated in place) as the
	// distance map instead of a fresh one allocated from the gear — a
	// caller-owned warm start (spec.md §5's "known_distances").
	KnownDistances gear.VertexMap[VId, W]

	// AlreadyVisited plays the role of the finalised-vertex set.
	AlreadyVisited gear.VertexSet[VId]

	FailSilently bool

	err error
}

// Option configures Dijkstra behavior via functional arguments.
type Option[V any, VId comparable, W gear.Number] func(*Options[V, VId, W])

// DefaultOptions returns Options with background context, non-tree mode,
// no path building, no distance cap, and unlimited calculation limit.
func DefaultOptions[V any, VId comparable, W gear.Number]() Options[V, VId, W] {
	return Options[V, VId, W]{
		Ctx:              context.Background(),
		CalculationLimit: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V any, VId comparable, W gear.Number](ctx context.Context) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBuildPaths enables predecessor recording.
func WithBuildPaths[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.BuildPaths = true }
}

// WithTree switches to tree mode (skips the post-finalisation distance
// reset).
func WithTree[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.IsTree = true }
}

// WithKeepDistances preserves finalised distances instead of resetting them
// to zero (non-tree mode only).
func WithKeepDistances[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.KeepDistances = true }
}

// WithMaxDistance caps exploration: once the minimum heap distance exceeds
// max, the run stops.
func WithMaxDistance[V any, VId comparable, W gear.Number](max W) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) {
		o.HasMaxDistance = true
		o.MaxDistance = max
	}
}

// WithCalculationLimit caps the number of finalised vertices. n < 0 means
// unlimited.
func WithCalculationLimit[V any, VId comparable, W gear.Number](n int64) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.CalculationLimit = n }
}

// WithKnownDistances supplies a caller-owned distance map, used as a warm
// start and mutated in place for the duration of the run.
func WithKnownDistances[V any, VId comparable, W gear.Number](dist gear.VertexMap[VId, W]) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.KnownDistances = dist }
}

// WithAlreadyVisited supplies a caller-owned finalised-vertex set, mutated
// in place for the duration of the run.
func WithAlreadyVisited[V any, VId comparable, W gear.Number](set gear.VertexSet[VId]) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.AlreadyVisited = set }
}

// WithFailSilently makes GoTo return (false, nil) instead of an error when
// the target vertex is never reported.
func WithFailSilently[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.FailSilently = true }
}
