package dijkstra

import (
	"container/heap"
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/path"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Flex is the explicit-configuration Dijkstra strategy.
type Flex[V any, VId comparable, W gear.Number, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       gear.Gear[V, VId, W]
}

// NewFlex builds a Flex Dijkstra strategy.
func NewFlex[V any, VId comparable, W gear.Number, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g gear.Gear[V, VId, W],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

// item is one heap entry: a candidate distance to a vertex, tagged with a
// monotonically decreasing tie-breaker (so equal-distance entries behave
// as LIFO by discovery order, matching A*'s tie direction) and the number
// of edges on the candidate path (exposed as Run.Depth).
type item[V any, W gear.Number] struct {
	v          V
	dist       W
	tieBreaker int64
	edgeCount  int
}

// itemHeap is the lazy-decrease-key min-heap: relaxing an edge pushes a new
// entry rather than mutating one in place; stale entries are discarded on
// pop once the vertex they name is already finalised.
type itemHeap[V any, W gear.Number] []*item[V, W]

func (h itemHeap[V, W]) Len() int { return len(h) }
func (h itemHeap[V, W]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].tieBreaker < h[j].tieBreaker
}
func (h itemHeap[V, W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *itemHeap[V, W]) Push(x any)   { *h = append(*h, x.(*item[V, W])) }
func (h *itemHeap[V, W]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// StartFrom begins a Dijkstra run.
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
	distances := o.KnownDistances
	if distances == nil {
		distances = s.gear.NewDistances()
	}
	visited := o.AlreadyVisited
	if visited == nil {
		visited = s.gear.NewVisited()
	}
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
		strategy:     s,
		opts:         o,
		limit:        straversal.NewCalculationLimit(o.CalculationLimit),
		wp:           wp,
		distances:    distances,
		visited:      visited,
		predecessors: predecessors,
		labels:       labels,
	}
	if o.BuildPaths {
		r.Paths = path.NewContainer[V, VId, L](s.vertexToID, predecessors, roots, labels, s.next.LabeledEdges)
	}

	heap.Init(&r.heap)
	// Start vertices are pre-visited and expanded immediately, but never
	// themselves reported (spec.md §8 scenario 2: Dijkstra from 0 yields
	// [2,1,3], never 0 itself) — the same "pre-visited, not reported"
	// contract spec.md §4.6 states for BFS.
	for _, v := range starts {
		id := s.vertexToID(v)
		if r.visited.Has(id) {
			continue
		}
		d, ok := distances.Get(id)
		if !ok {
			d = wp.Zero()
			distances.Set(id, d)
		}
		r.visited.Add(id)
		r.expand(v, d, 0)
		if r.err != nil {
			return nil, r.err
		}
	}

	return r, nil
}

// expand relaxes every out-edge of v (whose own finalised distance is d,
// reached via edgeCount edges from a start vertex) into the heap. Shared
// between StartFrom (for start vertices, which are expanded but never
// reported) and Next (for every vertex popped off the heap).
func (r *Run[V, VId, W, L]) expand(v V, d W, edgeCount int) {
	for e := range r.strategy.next.Next(v) {
		if e.Weight < r.wp.Zero() {
			r.err = ErrNegativeWeight
			return
		}
		newDist := d + e.Weight
		if r.wp.Overflowed(newDist) {
			r.err = gear.ErrOverflow
			return
		}
		nID := r.strategy.vertexToID(e.To)
		if r.visited.Has(nID) {
			continue
		}
		cur, ok := r.distances.Get(nID)
		if ok && !(newDist < cur) {
			continue
		}
		r.distances.Set(nID, newDist)
		r.recordPredecessor(nID, v, e.Label)
		heap.Push(&r.heap, r.newItem(e.To, newDist, edgeCount+1))
	}
}

// Run is the iterator StartFrom returns.
type Run[V any, VId comparable, W gear.Number, L any] struct {
	strategy *Flex[V, VId, W, L]
	opts     Options[V, VId, W]
	limit    *straversal.CalculationLimit

	wp         gear.WeightPolicy[W]
	heap       itemHeap[V, W]
	nextTie    int64
	distances  gear.VertexMap[VId, W]
	visited    gear.VertexSet[VId]

	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]

	// Distance is the finalised distance of the vertex the last Next call
	// reported.
	Distance W
	// Depth is the number of edges on the reported vertex's shortest path.
	Depth int
	// Paths is nil unless WithBuildPaths was set.
	Paths *path.Container[V, VId, L]

	cur V
	err error
}

func (r *Run[V, VId, W, L]) newItem(v V, dist W, edgeCount int) *item[V, W] {
	r.nextTie--
	return &item[V, W]{v: v, dist: dist, tieBreaker: r.nextTie, edgeCount: edgeCount}
}

// Vertex returns the vertex the most recent successful Next reported.
func (r *Run[V, VId, W, L]) Vertex() V { return r.cur }

// Err returns the error that stopped iteration, if any.
func (r *Run[V, VId, W, L]) Err() error { return r.err }

func (r *Run[V, VId, W, L]) recordPredecessor(nID VId, owner V, label L) {
	if r.predecessors == nil {
		return
	}
	r.predecessors.Set(nID, owner)
	if r.labels != nil {
		r.labels.Set(nID, label)
	}
}

// Next advances Dijkstra by exactly one finalised vertex, in
// distance-nondecreasing order.
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
		top := heap.Pop(&r.heap).(*item[V, W])
		id := r.strategy.vertexToID(top.v)
		if r.visited.Has(id) {
			continue // stale lazy-decrease-key entry
		}
		if r.opts.HasMaxDistance && top.dist > r.opts.MaxDistance {
			return false
		}

		r.visited.Add(id)
		if !r.opts.IsTree && !r.opts.KeepDistances {
			r.distances.Set(id, r.wp.Zero())
		}
		r.cur, r.Distance, r.Depth = top.v, top.dist, top.edgeCount

		r.expand(top.v, top.dist, top.edgeCount)
		if r.err != nil {
			return false
		}

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

// Dijkstra is the convenience, non-Flex alias.
type Dijkstra[V comparable, W gear.Number, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex Dijkstra strategy over comparable vertices, using
// the hash-backed default gear bound to wp.
func New[V comparable, W gear.Number, L any](next edge.Unified[V, W, L], wp gear.WeightPolicy[W]) *Dijkstra[V, W, L] {
	return &Dijkstra[V, W, L]{NewFlex[V, V, W, L](next, identity[V], gear.NewDefaultGear[V, V, W](wp))}
}

func identity[V comparable](v V) V { return v }
