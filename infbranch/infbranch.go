package infbranch

import (
	"container/heap"
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/path"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Flex is the explicit-configuration strategy. next's successor function
// MUST yield each vertex's out-edges in ascending weight order; this is a
// caller contract, not something this package can verify for a generator
// that may never finish (spec.md §4.13).
type Flex[V any, VId comparable, W gear.Number, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       gear.Gear[V, VId, W]
}

// NewFlex builds a Flex strategy.
func NewFlex[V any, VId comparable, W gear.Number, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g gear.Gear[V, VId, W],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

// cont is the resumable pull-cursor over one vertex's (possibly infinite)
// successor sequence, obtained via iter.Pull so at most one edge is ever
// materialised ahead of need.
type cont[V any, W gear.Number, L any] struct {
	owner     V
	ownerDist W
	pull      func() (edge.Edge[V, W, L], bool)
	stop      func()
}

// item is one heap entry: either a real relaxation candidate to a
// neighbor vertex, or a continuation marker standing in for "there may be
// a cheaper-or-equal edge still unread from this vertex's generator".
// Both are compared on key, which for a continuation is a safe lower
// bound (the owner's distance plus the weight of the edge most recently
// read from that generator, since ascending order guarantees the next one
// is no cheaper; a freshly armed continuation starts at zero).
type item[V any, W gear.Number, L any] struct {
	key        W
	tieBreaker int64
	candidate  bool

	// candidate fields
	v         V
	edgeCount int
	from      V
	label     L
	hasLabel  bool

	// continuation field
	c *cont[V, W, L]
}

type itemHeap[V any, W gear.Number, L any] []*item[V, W, L]

func (h itemHeap[V, W, L]) Len() int { return len(h) }
func (h itemHeap[V, W, L]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
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

// StartFrom begins a run.
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

	wp := s.gear.Weight()
	distances := s.gear.NewDistances()
	visited := s.gear.NewVisited()

	var predecessors gear.VertexMap[VId, V]
	var labels gear.VertexMap[VId, L]
	if o.BuildPaths {
		predecessors = s.gear.NewPredecessors()
		if s.next.LabeledEdges {
			labels = gear.WrapLabels[VId, L](s.gear.NewLabels())
		}
	}
	roots := s.gear.NewVisited()
	for _, v := range starts {
		roots.Add(s.vertexToID(v))
	}

	r := &Run[V, VId, W, L]{
		strategy:         s,
		opts:             o,
		limit:            straversal.NewCalculationLimit(o.CalculationLimit),
		combinedLimit:    straversal.NewCalculationLimit(o.CombinedCalculationLimit),
		wp:               wp,
		distances:        distances,
		visited:          visited,
		predecessors:     predecessors,
		labels:           labels,
	}
	if o.BuildPaths {
		r.Paths = path.NewContainer[V, VId, L](s.vertexToID, predecessors, roots, labels, s.next.LabeledEdges)
	}

	heap.Init(&r.heap)
	// Start vertices are pre-visited and have their continuation armed
	// immediately, but never themselves pushed as a reportable candidate,
	// matching the "pre-visited, not reported" contract bfs and dijkstra
	// follow (spec.md §4.6).
	for _, v := range starts {
		id := s.vertexToID(v)
		d := wp.Zero()
		distances.Set(id, d)
		visited.Add(id)
		r.pushContinuation(v, d, 0)
	}

	return r, nil
}

// Run is the iterator StartFrom returns.
type Run[V any, VId comparable, W gear.Number, L any] struct {
	strategy *Flex[V, VId, W, L]
	opts     Options[V, VId, W]
	limit    *straversal.CalculationLimit
	combinedLimit *straversal.CalculationLimit

	wp      gear.WeightPolicy[W]
	heap    itemHeap[V, W, L]
	nextTie int64

	distances gear.VertexMap[VId, W]
	visited   gear.VertexSet[VId]

	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]

	// Distance is the finalised distance of the vertex the last Next call
	// reported.
	Distance W
	// Depth is the number of edges on the reported vertex's shortest path.
	Depth int
	// Paths is nil unless WithBuildPaths was set.
	Paths *path.Container[V, VId, L]

	cur    V
	err    error
	closed bool
}

func (r *Run[V, VId, W, L]) pushContinuation(owner V, ownerDist W, initialKey W) {
	next, stop := iter.Pull(r.strategy.next.Next(owner))
	c := &cont[V, W, L]{owner: owner, ownerDist: ownerDist, pull: next, stop: stop}
	r.nextTie++
	heap.Push(&r.heap, &item[V, W, L]{key: initialKey, tieBreaker: r.nextTie, candidate: false, c: c})
}

// Vertex returns the vertex the most recent successful Next reported.
func (r *Run[V, VId, W, L]) Vertex() V { return r.cur }

// Err returns the error that stopped iteration, if any.
func (r *Run[V, VId, W, L]) Err() error { return r.err }

// Close releases every still-open successor-generator cursor. Callers
// that abandon a run before it reports false from Next should call Close
// to let any in-flight generators unwind; it is always safe to call and
// is idempotent.
func (r *Run[V, VId, W, L]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for _, it := range r.heap {
		if !it.candidate {
			it.c.stop()
		}
	}
	r.heap = nil
}

func (r *Run[V, VId, W, L]) recordPredecessor(nID VId, owner V, label L) {
	if r.predecessors == nil {
		return
	}
	r.predecessors.Set(nID, owner)
	if r.labels != nil {
		r.labels.Set(nID, label)
	}
}

// Next advances the search by exactly one finalised vertex, in
// distance-nondecreasing order, pulling at most one unread edge from any
// single vertex's successor generator per step.
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

		if !top.candidate {
			if err := r.combinedLimit.Consume(); err != nil {
				r.err = err
				top.c.stop()
				return false
			}
			e, ok := top.c.pull()
			if !ok {
				top.c.stop()
				continue
			}
			if e.Weight < r.wp.Zero() {
				r.err = ErrNegativeWeight
				top.c.stop()
				return false
			}
			nd := top.c.ownerDist + e.Weight
			if r.wp.Overflowed(nd) {
				r.err = gear.ErrOverflow
				top.c.stop()
				return false
			}
			r.nextTie++
			heap.Push(&r.heap, &item[V, W, L]{
				key: nd, tieBreaker: r.nextTie, candidate: true,
				v: e.To, from: top.c.owner, label: e.Label, hasLabel: e.HasLabel,
			})
			// The generator may still hold a cheaper-or-equal edge;
			// re-arm a continuation at the distance through the just-read
			// edge as the new safe lower bound.
			r.nextTie++
			heap.Push(&r.heap, &item[V, W, L]{key: nd, tieBreaker: r.nextTie, candidate: false, c: top.c})
			continue
		}

		id := r.strategy.vertexToID(top.v)
		if r.visited.Has(id) {
			continue // already finalised via a cheaper path, or a start vertex
		}

		r.visited.Add(id)
		r.distances.Set(id, top.key)
		r.recordPredecessor(id, top.from, top.label)
		r.cur, r.Distance, r.Depth = top.v, top.key, top.edgeCount+1
		if !r.opts.StoreDistances {
			r.distances.Set(id, r.wp.Zero())
		}

		r.pushContinuation(top.v, top.key, r.wp.Zero())

		if err := r.limit.Consume(); err != nil {
			r.err = err
			return false
		}
		return true
	}
}

// GoTo consumes the run until it reports v.
func (r *Run[V, VId, W, L]) GoTo(ctx context.Context, v V) (bool, error) {
	ok, err := straversal.GoTo[V, VId](ctx, r, r.strategy.vertexToID, r.strategy.vertexToID(v))
	if err != nil && r.opts.FailSilently {
		return false, nil
	}
	return ok, err
}

// All returns a sequence over every finalised vertex.
func (r *Run[V, VId, W, L]) All(ctx context.Context) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			if !yield(r.cur) {
				return
			}
		}
	}
}

// Strategy is the convenience, non-Flex alias.
type Strategy[V comparable, W gear.Number, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex strategy over comparable vertices, using the
// hash-backed default gear bound to wp.
func New[V comparable, W gear.Number, L any](next edge.Unified[V, W, L], wp gear.WeightPolicy[W]) *Strategy[V, W, L] {
	return &Strategy[V, W, L]{NewFlex[V, V, W, L](next, identity[V], gear.NewDefaultGear[V, V, W](wp))}
}

func identity[V comparable](v V) V { return v }
