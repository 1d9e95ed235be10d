package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/lazytraverse/gear"
)

// ErrNegativeWeight is reported when a relaxed edge carries a negative
// weight: returned by StartFrom while expanding a start vertex, or via Err
// after Next. A* (like dijkstra) assumes non-negative edge weights.
var ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

// Heuristic estimates the remaining path length ("guess") from v to the
// goal. Returning the weight policy's Infinity() marks v as provably
// unreachable toward the current goal (spec.md §8 scenario 4's h(4)=infinity).
type Heuristic[V any, W gear.Number] func(v V) W

// Options configures one StartFrom call.
type Options[V any, VId comparable, W gear.Number] struct {
	Ctx context.Context

	BuildPaths bool

	// CalculationLimit caps the number of finalised (reported) vertices;
	// negative means unlimited.
	CalculationLimit int64

	// KnownDistances, if non-nil, is used (and mutated in place) as the
	// distance map instead of a fresh one allocated from the gear.
	KnownDistances gear.VertexMap[VId, W]

	// KnownPathLengthGuesses, if non-nil, is used (and mutated in place)
	// as the path_length_guesses map (spec.md §4.11).
	KnownPathLengthGuesses gear.VertexMap[VId, W]

	// AlreadyVisited plays the role of the finalised-vertex set.
	AlreadyVisited gear.VertexSet[VId]

	FailSilently bool

	err error
}

// Option configures A* behavior via functional arguments.
type Option[V any, VId comparable, W gear.Number] func(*Options[V, VId, W])

// DefaultOptions returns Options with background context, no path
// building, and unlimited calculation limit.
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

// WithCalculationLimit caps the number of finalised vertices. n < 0 means
// unlimited.
func WithCalculationLimit[V any, VId comparable, W gear.Number](n int64) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.CalculationLimit = n }
}

// WithKnownDistances supplies a caller-owned distance map, mutated in
// place for the duration of the run.
func WithKnownDistances[V any, VId comparable, W gear.Number](dist gear.VertexMap[VId, W]) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.KnownDistances = dist }
}

// WithKnownPathLengthGuesses supplies a caller-owned path_length_guesses
// map, mutated in place for the duration of the run.
func WithKnownPathLengthGuesses[V any, VId comparable, W gear.Number](guesses gear.VertexMap[VId, W]) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.KnownPathLengthGuesses = guesses }
}

// WithAlreadyVisited supplies a caller-owned finalised-vertex set.
func WithAlreadyVisited[V any, VId comparable, W gear.Number](set gear.VertexSet[VId]) Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.AlreadyVisited = set }
}

// WithFailSilently makes GoTo return (false, nil) instead of an error when
// the target vertex is never reported.
func WithFailSilently[V any, VId comparable, W gear.Number]() Option[V, VId, W] {
	return func(o *Options[V, VId, W]) { o.FailSilently = true }
}
