package mst

import (
	"context"

	"github.com/katalvlaran/lazytraverse/gear"
)

// Options configures one StartFrom call.
type Options[V any, VId comparable, W gear.Number] struct {
	Ctx context.Context

	// CalculationLimit caps the number of reported edges; negative means
	// unlimited.
	CalculationLimit int64

	// AlreadyVisited plays the role of the visited-vertex set, mutated in
	// place for the duration of the run.
	AlreadyVisited gear.VertexSet[VId]

	FailSilently bool

	err error
}

// Option configures MST behavior via functional arguments.
type Option[V any, VId comparable, W gear.Number] func(*Options[V, VId, W])

// DefaultOptions returns Options with background context and unlimited
// calculation limit.
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

// WithCalculationLimit caps the number of reported edges. n < 0 means
// unlimited.
func WithCalculationLimit[V any, VId comparable, W gear.Number](n int64) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.CalculationLimit = n }
}

// WithAlreadyVisited supplies a caller-owned visited-vertex set, mutated
// in place for the duration of the run.
func WithAlreadyVisited[V any, VId comparable, W gear.Number](set gear.VertexSet[VId]) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.AlreadyVisited = set }
}

// WithFailSilently makes GoTo return (false, nil) instead of an error when
// the target vertex is never reported.
func WithFailSilently[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.FailSilently = true }
}
