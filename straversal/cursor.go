package straversal

import (
	"context"
	"iter"
)

// VertexIterator is the minimal shape every strategy's pull-based run
// exposes: Next advances exactly one reported-vertex step (spec.md §4.5
// point 3) and Vertex returns the vertex that step just reported.
type VertexIterator[V any] interface {
	Next(ctx context.Context) bool
	Vertex() V
}

// GoTo consumes the run until it reports the vertex whose id equals
// target, returning (true, nil) on success. If the stream is exhausted
// first, it returns (false, ErrVertexNotFound) — callers implementing
// fail_silently translate that into their own sentinel instead of
// propagating the error (spec.md §4.5 "go_to(v) consumes until v is
// reported").
func GoTo[V any, VId comparable](ctx context.Context, r VertexIterator[V], vertexToID func(V) VId, target VId) (bool, error) {
	for r.Next(ctx) {
		if vertexToID(r.Vertex()) == target {
			return true, nil
		}
	}
	return false, ErrVertexNotFound
}

// GoForVerticesIn returns a lazy sequence that filters the run's reported
// vertices down to those whose id is a member of ids (spec.md §4.5
// "go_for_vertices_in(set) filters the stream").
func GoForVerticesIn[V any, VId comparable](ctx context.Context, r VertexIterator[V], vertexToID func(V) VId, ids map[VId]struct{}) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			v := r.Vertex()
			if _, ok := ids[vertexToID(v)]; ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// GoForRange implements the shared dropwhile/takewhile semantics behind
// go_for_depth_range and go_for_distance_range (spec.md §4.5): key reports
// the current depth/distance for the vertex just reported; vertices with
// key < lo are dropped, and iteration stops (without reporting) as soon as
// key >= hi. hi < 0 means "no upper bound".
func GoForRange[V any](ctx context.Context, r VertexIterator[V], key func() int64, lo, hi int64) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			k := key()
			if k < lo {
				continue
			}
			if hi >= 0 && k >= hi {
				return
			}
			if !yield(r.Vertex()) {
				return
			}
		}
	}
}
