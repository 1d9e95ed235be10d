package bidirectional

import (
	"context"

	"github.com/katalvlaran/lazytraverse/gear"
)

// BFSOptions configures one bidirectional BFS Search call.
type BFSOptions[V any, VId comparable] struct {
	Ctx context.Context

	// CalculationLimit caps the number of vertices expanded across both
	// sides combined; negative means unlimited.
	CalculationLimit int64

	FailSilently bool

	err error
}

// BFSOption configures BFSOptions via functional arguments.
type BFSOption[V any, VId comparable] func(*BFSOptions[V, VId])

// DefaultBFSOptions returns BFSOptions with background context and an
// unlimited calculation limit.
func DefaultBFSOptions[V any, VId comparable]() BFSOptions[V, VId] {
	return BFSOptions[V, VId]{Ctx: context.Background(), CalculationLimit: -1}
}

// WithBFSContext sets a custom context for cancellation.
func WithBFSContext[V any, VId comparable](ctx context.Context) BFSOption[V, VId] {
	return func(o *BFSOptions[V, VId]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBFSCalculationLimit caps the number of vertices expanded across both
// sides combined. n < 0 means unlimited.
func WithBFSCalculationLimit[V any, VId comparable](n int64) BFSOption[V, VId] {
	return func(o *BFSOptions[V, VId]) { o.CalculationLimit = n }
}

// WithBFSFailSilently makes Search return the documented sentinel result
// (Found=false, Length=-1) instead of an error when no path exists.
func WithBFSFailSilently[V any, VId comparable]() BFSOption[V, VId] {
	return func(o *BFSOptions[V, VId]) { o.FailSilently = true }
}

// DijkstraOptions configures one bidirectional Dijkstra Search call.
type DijkstraOptions[V any, VId comparable, W gear.Number] struct {
	Ctx context.Context

	CalculationLimit int64

	FailSilently bool

	err error
}

// DijkstraOption configures DijkstraOptions via functional arguments.
type DijkstraOption[V any, VId comparable, W gear.Number] func(*DijkstraOptions[V, VId, W])

// DefaultDijkstraOptions returns DijkstraOptions with background context
// and an unlimited calculation limit.
func DefaultDijkstraOptions[V any, VId comparable, W gear.Number]() DijkstraOptions[V, VId, W] {
	return DijkstraOptions[V, VId, W]{Ctx: context.Background(), CalculationLimit: -1}
}

// WithDijkstraContext sets a custom context for cancellation.
func WithDijkstraContext[V any, VId comparable, W gear.Number](ctx context.Context) DijkstraOption[V, VId, W] {
	return func(o *DijkstraOptions[V, VId, W]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDijkstraCalculationLimit caps the number of vertices finalised
// across both sides combined. n < 0 means unlimited.
func WithDijkstraCalculationLimit[V any, VId comparable, W gear.Number](n int64) DijkstraOption[V, VId, W] {
	return func(o *DijkstraOptions[V, VId, W]) { o.CalculationLimit = n }
}

// WithDijkstraFailSilently makes Search return the documented sentinel
// result (Found=false, Distance=infinity) instead of an error when no
// path exists.
func WithDijkstraFailSilently[V any, VId comparable, W gear.Number]() DijkstraOption[V, VId, W] {
	return func(o *DijkstraOptions[V, VId, W]) { o.FailSilently = true }
}
