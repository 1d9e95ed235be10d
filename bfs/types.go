// Package bfs provides breadth-first search over any caller-defined graph:
// the caller supplies a successor function (spec.md §4.15) instead of a
// stored graph, and BFS produces a lazy stream of reported vertices,
// maintaining depth and optional predecessor paths as public fields the
// caller may inspect between steps (spec.md §4.6). The visited set is
// internal unless the caller supplies its own via WithAlreadyVisited.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lazytraverse/gear"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Options configures one StartFrom call.
type Options[V any, VId comparable] struct {
	// Ctx allows cancellation; checked once per suspension point.
	Ctx context.Context

	// BuildPaths enables predecessor recording so the Paths field can reconstruct
	// vertex paths after the run.
	BuildPaths bool

	// IsTree skips visited-set bookkeeping entirely: every neighbor is
	// reported every time it is reached (spec.md §3: "tree mode, which
	// skips bookkeeping by contract"). A vertex reachable along several
	// paths is reported once per path, and on a graph with a reachable
	// cycle the run does not terminate unless MaxDepth bounds it.
	IsTree bool

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 (default)
	// means unlimited.
	MaxDepth int

	// CalculationLimit caps the number of reported vertices; negative
	// means unlimited (spec.md §5).
	CalculationLimit int64

	// AlreadyVisited, if non-nil, is used (and mutated in place) as the
	// visited set instead of a fresh one allocated from the gear
	// (spec.md §5: caller-supplied collections are owned by the caller).
	AlreadyVisited gear.VertexSet[VId]

	// FailSilently switches GoTo's "not found" error into a sentinel
	// (false, nil) return instead of propagating straversal.ErrVertexNotFound.
	FailSilently bool

	err error
}

// Option configures BFS behavior via functional arguments. An invalid
// Option records an error that StartFrom surfaces as ErrOptionViolation.
type Option[V any, VId comparable] func(*Options[V, VId])

// DefaultOptions returns Options with sane defaults: background context, no
// path building, non-tree, unlimited depth and calculation limit.
func DefaultOptions[V any, VId comparable]() Options[V, VId] {
	return Options[V, VId]{
		Ctx:              context.Background(),
		CalculationLimit: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V any, VId comparable](ctx context.Context) Option[V, VId] {
	return func(o *Options[V, VId]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBuildPaths enables predecessor recording.
func WithBuildPaths[V any, VId comparable]() Option[V, VId] {
	return func(o *Options[V, VId]) { o.BuildPaths = true }
}

// WithTree switches to tree mode (no visited bookkeeping).
func WithTree[V any, VId comparable]() Option[V, VId] {
	return func(o *Options[V, VId]) { o.IsTree = true }
}

// WithMaxDepth stops exploring beyond depth d. d must be >= 0.
func WithMaxDepth[V any, VId comparable](d int) Option[V, VId] {
	return func(o *Options[V, VId]) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = d
	}
}

// WithCalculationLimit caps the number of reported vertices. n < 0 means
// unlimited.
func WithCalculationLimit[V any, VId comparable](n int64) Option[V, VId] {
	return func(o *Options[V, VId]) { o.CalculationLimit = n }
}

// WithAlreadyVisited supplies a caller-owned visited set, mutated in place
// for the duration of the run.
func WithAlreadyVisited[V any, VId comparable](set gear.VertexSet[VId]) Option[V, VId] {
	return func(o *Options[V, VId]) { o.AlreadyVisited = set }
}

// WithFailSilently makes GoTo return (false, nil) instead of an error when
// the target vertex is never reported.
func WithFailSilently[V any, VId comparable]() Option[V, VId] {
	return func(o *Options[V, VId]) { o.FailSilently = true }
}
