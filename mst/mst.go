package mst

import (
	"container/heap"
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Flex is the explicit-configuration MST strategy.
type Flex[V any, VId comparable, W gear.Number, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       gear.Gear[V, VId, W]
}

// NewFlex builds a Flex MST strategy.
func NewFlex[V any, VId comparable, W gear.Number, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g gear.Gear[V, VId, W],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

// Edge is the reported spanning-forest edge, exposed on Run.Edge.
type Edge[V any, W gear.Number, L any] struct {
	From, To V
	Weight   W
	Label    L
	HasLabel bool
}

// item is one heap entry: a candidate out-edge discovered from an already
// visited vertex. tieBreaker increases with discovery order (FIFO on
// ties) — the reverse of dijkstra/astar's decreasing tie-breaker, so among
// equal-weight edges the earliest-found one is popped first.
type item[V any, W gear.Number, L any] struct {
	from       V
	to         V
	weight     W
	label      L
	hasLabel   bool
	tieBreaker int64
}

type itemHeap[V any, W gear.Number, L any] []*item[V, W, L]

func (h itemHeap[V, W, L]) Len() int { return len(h) }
func (h itemHeap[V, W, L]) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].tieBreaker < h[j].tieBreaker
}
func (h itemHeap[V, W, L]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *itemHeap[V, W, L]) Push(x any)   { *h = append(*h, x.(*item[V, W, L])) }
func (h *itemHeap[V, W, L]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// StartFrom begins an MST run rooted at starts. Every vertex in starts is
// marked visited without a reported edge (spec.md §8: MST reports exactly
// |reachable_vertices| - |start_vertices| edges).
func (s *Flex[V, VId, W, L]) StartFrom(starts []V, opts ...Option[V, VId, W]) (*Run[V, VId, W, L], error) {
	if len(starts) == 0 {
		return nil, straversal.ErrMissingStart
	}
	o := DefaultOptions[V, VId, W]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	visited := o.AlreadyVisited
	if visited == nil {
		visited = s.gear.NewVisited()
	}

	r := &Run[V, VId, W, L]{
		strategy: s,
		opts:     o,
		limit:    straversal.NewCalculationLimit(o.CalculationLimit),
		visited:  visited,
	}

	heap.Init(&r.heap)
	for _, v := range starts {
		id := s.vertexToID(v)
		if visited.Has(id) {
			continue
		}
		visited.Add(id)
		r.pushEdgesFrom(v)
	}

	return r, nil
}

// Run is the iterator StartFrom returns.
type Run[V any, VId comparable, W gear.Number, L any] struct {
	strategy *Flex[V, VId, W, L]
	opts     Options[V, VId, W]
	limit    *straversal.CalculationLimit

	heap       itemHeap[V, W, L]
	nextTie    int64
	visited    gear.VertexSet[VId]

	// Edge is the spanning-forest edge the last Next call reported.
	Edge Edge[V, W, L]

	cur V
	err error
}

func (r *Run[V, VId, W, L]) pushEdgesFrom(v V) {
	for e := range r.strategy.next.Next(v) {
		r.nextTie++
		heap.Push(&r.heap, &item[V, W, L]{
			from: v, to: e.To, weight: e.Weight,
			label: e.Label, hasLabel: e.HasLabel,
			tieBreaker: r.nextTie,
		})
	}
}

// Vertex returns the head vertex of the most recently reported edge.
func (r *Run[V, VId, W, L]) Vertex() V { return r.cur }

// Err returns the error that stopped iteration, if any.
func (r *Run[V, VId, W, L]) Err() error { return r.err }

// Next advances MST by exactly one reported edge, in weight-nondecreasing
// order (ties broken FIFO by discovery).
func (r *Run[V, VId, W, L]) Next(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			r.err = ctx.Err()
			return false
		case <-r.opts.Ctx.Done():
			r.err = r.opts.Ctx.Err()
			return false
		default:
		}

		if r.heap.Len() == 0 {
			return false
		}
		top := heap.Pop(&r.heap).(*item[V, W, L])
		id := r.strategy.vertexToID(top.to)
		if r.visited.Has(id) {
			continue
		}

		visited := r.visited
		visited.Add(id)
		r.cur = top.to
		r.Edge = Edge[V, W, L]{From: top.from, To: top.to, Weight: top.weight, Label: top.label, HasLabel: top.hasLabel}
		r.pushEdgesFrom(top.to)

		if err := r.limit.Consume(); err != nil {
			r.err = err
			return false
		}
		return true
	}
}

// GoTo consumes the run until it reports v as an edge's head vertex.
func (r *Run[V, VId, W, L]) GoTo(ctx context.Context, v V) (bool, error) {
	ok, err := straversal.GoTo[V, VId](ctx, r, r.strategy.vertexToID, r.strategy.vertexToID(v))
	if err != nil && r.opts.FailSilently {
		return false, nil
	}
	return ok, err
}

// All returns a sequence over every reported edge's head vertex.
func (r *Run[V, VId, W, L]) All(ctx context.Context) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			if !yield(r.cur) {
				return
			}
		}
	}
}

// MST is the convenience, non-Flex alias.
type MST[V comparable, W gear.Number, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex MST strategy over comparable vertices, using the
// hash-backed default gear bound to wp.
func New[V comparable, W gear.Number, L any](next edge.Unified[V, W, L], wp gear.WeightPolicy[W]) *MST[V, W, L] {
	return &MST[V, W, L]{NewFlex[V, V, W, L](next, identity[V], gear.NewDefaultGear[V, V, W](wp))}
}

func identity[V comparable](v V) V { return v }
