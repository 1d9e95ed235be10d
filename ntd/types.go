// Package ntd implements the neighbors-then-depth traversal: a stack-based,
// DFS-like strategy that reports every successor of the vertex currently
// being expanded, in the order the successor function yields them, before
// descending into the first of them (spec.md §4.8). Run.Depth is always
// maintained.
package ntd

import (
	"context"
	"errors"

	"github.com/katalvlaran/lazytraverse/gear"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("ntd: invalid option supplied")

// Options configures one StartFrom call.
type Options[V any, VId comparable] struct {
	Ctx context.Context

	// BuildPaths enables predecessor recording so the Paths field can reconstruct
	// vertex paths after the run.
	BuildPaths bool

	// MaxDepth, if > 0, stops descending past this depth: vertices at
	// depth MaxDepth are still reported, just not expanded, so nothing
	// deeper is reported.
	MaxDepth int

	// CalculationLimit caps the number of reported vertices; negative
	// means unlimited (spec.md §5).
	CalculationLimit int64

	// AlreadyVisited, if non-nil, is used (and mutated in place) as the
	// visited set instead of a fresh one allocated from the gear.
	AlreadyVisited gear.VertexSet[VId]

	// FailSilently switches GoTo's "not found" error into a sentinel
	// (false, nil) return instead of propagating straversal.ErrVertexNotFound.
	FailSilently bool

	err error
}

// Option configures NTD behavior via functional arguments.
type Option[V any, VId comparable] func(*Options[V, VId])

// DefaultOptions returns Options with sane defaults: background context, no
// path building, unlimited depth and calculation limit.
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

// WithMaxDepth stops descending past depth d; d must be >= 0.
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
