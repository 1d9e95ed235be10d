// Package path implements the lazy path container spec.md §4.4 describes:
// a view over a predecessor map (and optional label map) that reconstructs
// vertex- or labeled-edge paths without ever materialising them during
// traversal. Construction is O(1); iterating a view costs O(path length).
package path

import (
	"errors"
	"iter"
	"reflect"

	"github.com/katalvlaran/lazytraverse/gear"
)

// Sentinel errors for path container operations (spec.md §7).
var (
	// ErrNoPath is returned when the terminal vertex has no recorded
	// predecessor chain (it was never reached by the traversal that built
	// this container).
	ErrNoPath = errors.New("path: no path for given vertex")

	// ErrNullVertex is returned when the caller passes the nil/zero value of
	// a pointer-, interface-, map-, slice-, chan- or func-shaped vertex type
	// instead of a real vertex (spec.md §7 "none instead of vertex given").
	// Value-shaped vertex types (int, string, a plain struct, ...) have no
	// such sentinel and never trigger this check.
	ErrNullVertex = errors.New("path: none instead of vertex given")

	// ErrLabelsUnavailable is returned when labeled-edge iteration is
	// requested on a container built without edge labels.
	ErrLabelsUnavailable = errors.New("path: labeled edges requested but this path has no labels")
)

// isNullVertex reports whether v is the nil value of a reference-shaped
// type. V is an unconstrained type parameter (any vertex, possibly
// non-hashable per spec.md §3), so this is the only general way to detect
// "null instead of vertex" across all instantiations; value-shaped types
// (ints, strings, plain structs) can never be nil and always return false.
func isNullVertex(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Edge is an unlabeled step of a reconstructed path.
type Edge[V any] struct {
	From, To V
}

// LabeledEdge is a labeled step of a reconstructed path.
type LabeledEdge[V any, L any] struct {
	From, To V
	Label    L
}

// Container holds references to the predecessor map built by a traversal
// (and, for labeled traversals, the parallel label map) plus the
// vertex-to-id function used to key them. It does not own the maps: their
// lifetime must not exceed the strategy run that built them.
type Container[V any, VId comparable, L any] struct {
	vertexToID   func(V) VId
	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]
	labeled      bool
	roots        gear.VertexSet[VId]
}

// NewContainer builds a path container over the given predecessor map.
// roots marks the start vertices (path reconstruction stops there even if
// no predecessor entry exists for them). labels/labeled are optional: pass
// labeled=false and a nil labels map for unlabeled traversals.
func NewContainer[V any, VId comparable, L any](
	vertexToID func(V) VId,
	predecessors gear.VertexMap[VId, V],
	roots gear.VertexSet[VId],
	labels gear.VertexMap[VId, L],
	labeled bool,
) *Container[V, VId, L] {
	return &Container[V, VId, L]{
		vertexToID:   vertexToID,
		predecessors: predecessors,
		roots:        roots,
		labels:       labels,
		labeled:      labeled,
	}
}

// Contains reports whether v has a reconstructable path (it is a root, or
// it has a recorded predecessor).
func (c *Container[V, VId, L]) Contains(v V) bool {
	id := c.vertexToID(v)
	return c.roots.Has(id) || c.predecessors.Has(id)
}

// Predecessor returns the direct predecessor of v, if one was recorded.
func (c *Container[V, VId, L]) Predecessor(v V) (V, bool) {
	return c.predecessors.Get(c.vertexToID(v))
}

// To returns a lazy view of the path ending at v. It fails with
// ErrNullVertex if v is the nil value of a reference-shaped vertex type, or
// ErrNoPath if v was never reached by the traversal that built this
// container.
func (c *Container[V, VId, L]) To(v V) (View[V, VId, L], error) {
	if isNullVertex(v) {
		return View[V, VId, L]{}, ErrNullVertex
	}
	if !c.Contains(v) {
		return View[V, VId, L]{}, ErrNoPath
	}
	return View[V, VId, L]{c: c, terminal: v}, nil
}

// View is a lazy reconstruction of one path, anchored at a terminal vertex.
type View[V any, VId comparable, L any] struct {
	c        *Container[V, VId, L]
	terminal V
}

// VerticesToStart yields the path's vertices starting at the terminal
// vertex and walking back to (and including) the start vertex.
func (v View[V, VId, L]) VerticesToStart() iter.Seq[V] {
	return func(yield func(V) bool) {
		cur := v.terminal
		for {
			if !yield(cur) {
				return
			}
			id := v.c.vertexToID(cur)
			if v.c.roots.Has(id) {
				return
			}
			pred, ok := v.c.predecessors.Get(id)
			if !ok {
				return
			}
			cur = pred
		}
	}
}

// collectToStart materialises VerticesToStart; used internally to reverse
// it for VerticesFromStart and to build edge views.
func (v View[V, VId, L]) collectToStart() []V {
	out := make([]V, 0, 8)
	for x := range v.VerticesToStart() {
		out = append(out, x)
	}
	return out
}

// VerticesFromStart yields the path's vertices starting at the start
// vertex and ending at the terminal vertex.
func (v View[V, VId, L]) VerticesFromStart() iter.Seq[V] {
	return func(yield func(V) bool) {
		chain := v.collectToStart()
		for i := len(chain) - 1; i >= 0; i-- {
			if !yield(chain[i]) {
				return
			}
		}
	}
}

// EdgesFromStart yields the path's unlabeled edges from the start vertex
// toward the terminal vertex. Its length is one less than the number of
// vertices in the path.
func (v View[V, VId, L]) EdgesFromStart() iter.Seq[Edge[V]] {
	return func(yield func(Edge[V]) bool) {
		chain := v.collectToStart() // terminal..start order
		for i := len(chain) - 1; i > 0; i-- {
			if !yield(Edge[V]{From: chain[i], To: chain[i-1]}) {
				return
			}
		}
	}
}

// EdgesToStart yields the same edges as EdgesFromStart but in the reverse
// order: terminal-adjacent edge first.
func (v View[V, VId, L]) EdgesToStart() iter.Seq[Edge[V]] {
	return func(yield func(Edge[V]) bool) {
		chain := v.collectToStart() // terminal..start order
		for i := 0; i < len(chain)-1; i++ {
			if !yield(Edge[V]{From: chain[i+1], To: chain[i]}) {
				return
			}
		}
	}
}

// LabeledEdgesFromStart yields labeled edges from the start vertex toward
// the terminal vertex. It fails with ErrLabelsUnavailable if this
// container was built without edge labels.
func (v View[V, VId, L]) LabeledEdgesFromStart() (iter.Seq[LabeledEdge[V, L]], error) {
	if !v.c.labeled {
		return nil, ErrLabelsUnavailable
	}
	return func(yield func(LabeledEdge[V, L]) bool) {
		chain := v.collectToStart()
		for i := len(chain) - 1; i > 0; i-- {
			label, _ := v.c.labels.Get(v.c.vertexToID(chain[i-1]))
			if !yield(LabeledEdge[V, L]{From: chain[i], To: chain[i-1], Label: label}) {
				return
			}
		}
	}, nil
}

// LabeledEdgesToStart yields the same labeled edges in reverse order.
func (v View[V, VId, L]) LabeledEdgesToStart() (iter.Seq[LabeledEdge[V, L]], error) {
	if !v.c.labeled {
		return nil, ErrLabelsUnavailable
	}
	return func(yield func(LabeledEdge[V, L]) bool) {
		chain := v.collectToStart()
		for i := 0; i < len(chain)-1; i++ {
			label, _ := v.c.labels.Get(v.c.vertexToID(chain[i]))
			if !yield(LabeledEdge[V, L]{From: chain[i+1], To: chain[i], Label: label}) {
				return
			}
		}
	}, nil
}
