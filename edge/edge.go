// Package edge normalises the four successor-function shapes a caller may
// supply (bare neighbor, weighted edge, labeled edge, weighted labeled
// edge) into a single canonical signature that every strategy engine in
// this module consumes (spec.md §4.15).
//
// Unlike the Python original, which accepts at most one of three optional
// constructor keyword arguments and validates mutual exclusivity at
// runtime, this package expresses the same contract structurally: callers
// pick exactly one of the four constructors below, so "supplying two
// variants at once" is not representable and needs no runtime check.
package edge

import "iter"

// Edge is the canonical edge shape every NextFunc yields. HasWeight and
// HasLabel record which of Weight/Label actually came from the caller's
// successor function, mirroring spec.md §9's "canonical tuple tagged by
// two compile-time flags".
type Edge[V any, W any, L any] struct {
	To        V
	Weight    W
	HasWeight bool
	Label     L
	HasLabel  bool
}

// LabeledEdge is the shape a next-labeled-edges successor function yields
// when no weight is involved.
type LabeledEdge[V any, L any] struct {
	To    V
	Label L
}

// NextFunc is the canonical successor function signature every strategy
// engine calls: given a vertex, yield its outgoing edges.
type NextFunc[V any, W any, L any] func(v V) iter.Seq[Edge[V, W, L]]

// Unified bundles a canonicalised NextFunc with the two flags strategies
// need: EdgesWithData (is there anything beyond the neighbor itself? drives
// whether the public Edge/Weight fields are meaningful) and LabeledEdges
// (are labels available, so that labeled-path reconstruction is legal?).
type Unified[V any, W any, L any] struct {
	Next          NextFunc[V, W, L]
	EdgesWithData bool
	LabeledEdges  bool
}

// FromVertices adapts a bare-neighbor successor function (next_vertices).
func FromVertices[V any, W any, L any](fn func(v V) iter.Seq[V]) Unified[V, W, L] {
	return Unified[V, W, L]{
		Next: func(v V) iter.Seq[Edge[V, W, L]] {
			return func(yield func(Edge[V, W, L]) bool) {
				for n := range fn(v) {
					if !yield(Edge[V, W, L]{To: n}) {
						return
					}
				}
			}
		},
		EdgesWithData: false,
		LabeledEdges:  false,
	}
}

// FromWeightedEdges adapts a weighted-unlabeled successor function
// (next_edges yielding (neighbor, weight) pairs).
func FromWeightedEdges[V any, W any, L any](fn func(v V) iter.Seq2[V, W]) Unified[V, W, L] {
	return Unified[V, W, L]{
		Next: func(v V) iter.Seq[Edge[V, W, L]] {
			return func(yield func(Edge[V, W, L]) bool) {
				for n, w := range fn(v) {
					if !yield(Edge[V, W, L]{To: n, Weight: w, HasWeight: true}) {
						return
					}
				}
			}
		},
		EdgesWithData: true,
		LabeledEdges:  false,
	}
}

// FromLabeledEdges adapts an unweighted-labeled successor function
// (next_labeled_edges yielding (neighbor, label) pairs).
func FromLabeledEdges[V any, W any, L any](fn func(v V) iter.Seq[LabeledEdge[V, L]]) Unified[V, W, L] {
	return Unified[V, W, L]{
		Next: func(v V) iter.Seq[Edge[V, W, L]] {
			return func(yield func(Edge[V, W, L]) bool) {
				for le := range fn(v) {
					if !yield(Edge[V, W, L]{To: le.To, Label: le.Label, HasLabel: true}) {
						return
					}
				}
			}
		},
		EdgesWithData: true,
		LabeledEdges:  true,
	}
}

// FromWeightedLabeledEdges adapts a fully-tagged successor function
// (next_labeled_edges yielding (neighbor, weight, label) triples).
func FromWeightedLabeledEdges[V any, W any, L any](fn func(v V) iter.Seq[Edge[V, W, L]]) Unified[V, W, L] {
	return Unified[V, W, L]{
		Next: func(v V) iter.Seq[Edge[V, W, L]] {
			return func(yield func(Edge[V, W, L]) bool) {
				for e := range fn(v) {
					e.HasWeight = true
					e.HasLabel = true
					if !yield(e) {
						return
					}
				}
			}
		},
		EdgesWithData: true,
		LabeledEdges:  true,
	}
}
