package infbranch

import (
	"context"
	"errors"

	"github.com/katalvlaran/lazytraverse/gear"
)

// ErrNegativeWeight is returned when a relaxed edge carries a negative
// weight; this strategy, like dijkstra, assumes non-negative edge weights
// and additionally requires them sorted ascending per vertex.
var ErrNegativeWeight = errors.New("infbranch: negative edge weight encountered")

// Options configures one StartFrom call.
type Options[V any, VId comparable, W gear.Number] struct {
	Ctx context.Context

	BuildPaths bool

	// StoreDistances keeps a finalised vertex's distance in the distances
	// map after it is reported; when false (the default) the entry is
	// overwritten with the weight policy's zero once the vertex is
	// reported. Entries are never removed from the map.
	StoreDistances bool

	// CalculationLimit caps the number of finalised (reported) vertices;
	// negative means unlimited.
	CalculationLimit int64

	// CombinedCalculationLimit caps the total number of per-vertex
	// expansion steps (successor-generator pulls) across the whole run,
	// independent of how many vertices those pulls end up reporting
	// (spec.md §5's "combined_calculation_limit... counts expansions
	// globally"). Negative means unlimited.
	CombinedCalculationLimit int64

	FailSilently bool

	err error
}

// Option configures strategy behavior via functional arguments.
type Option[V any, VId comparable, W gear.Number] func(*Options[V, VId, W])

// DefaultOptions returns Options with background context, distances not
// retained after finalisation, and unlimited calculation limits.
func DefaultOptions[V any, VId comparable, W gear.Number]() Options[V, VId, W] {
	return Options[V, VId, W]{
		Ctx:                      context.Background(),
		CalculationLimit:         -1,
		CombinedCalculationLimit: -1,
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

// WithStoreDistances keeps finalised distances in the distance map after
// they are reported, instead of overwriting them with zero.
func WithStoreDistances[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.StoreDistances = true }
}

// WithCalculationLimit caps the number of finalised vertices. n < 0 means
// unlimited.
func WithCalculationLimit[V any, VId comparable, W gear.Number](n int64) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.CalculationLimit = n }
}

// WithCombinedCalculationLimit caps the total number of successor-pull
// steps across the whole run. n < 0 means unlimited.
func WithCombinedCalculationLimit[V any, VId comparable, W gear.Number](n int64) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.CombinedCalculationLimit = n }
}

// WithFailSilently makes GoTo return (false, nil) instead of an error when
// the target vertex is never reported.
func WithFailSilently[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.FailSilently = true }
}
