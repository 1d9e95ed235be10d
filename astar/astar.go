package astar

import (
	"container/heap"
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/path"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Flex is the explicit-configuration A* strategy.
type Flex[V any, VId comparable, W gear.Number, L any] struct {
	next       edge.Unified[V, W, L]
	h          Heuristic[V, W]
	vertexToID func(V) VId
	gear       gear.Gear[V, VId, W]
}

// NewFlex builds a Flex A* strategy over the given heuristic.
func NewFlex[V any, VId comparable, W gear.Number, L any](
	next edge.Unified[V, W, L],
	h Heuristic[V, W],
	vertexToID func(V) VId,
	g gear.Gear[V, VId, W],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, h: h, vertexToID: vertexToID, gear: g}
}

// item is one heap entry, keyed on the path-length guess f = g + h.
type item[V any, W gear.Number] struct {
	v          V
	g          W
	f          W
	tieBreaker int64
	edgeCount  int
}

// itemHeap mirrors dijkstra's lazy-decrease-key min-heap, keyed on f
// instead of g, with the same decreasing tie-breaker (LIFO on ties).
type itemHeap[V any, W gear.Number] []*item[V, W]

func (h itemHeap[V, W]) Len() int { return len(h) }
func (h itemHeap[V, W]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
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

// StartFrom begins an A* run.
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
	guesses := o.KnownPathLengthGuesses
	if guesses == nil {
		guesses = s.gear.NewDistances()
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
		strategy:           s,
		opts:               o,
		limit:              straversal.NewCalculationLimit(o.CalculationLimit),
		wp:                 wp,
		distances:          distances,
		pathLengthGuesses:  guesses,
		visited:            visited,
		predecessors:       predecessors,
		labels:             labels,
	}
	if o.BuildPaths {
		r.Paths = path.NewContainer[V, VId, L](s.vertexToID, predecessors, roots, labels, s.next.LabeledEdges)
	}

	heap.Init(&r.heap)
	// Start vertices are pre-expanded but never themselves reported (the
	// same "pre-visited, not reported" contract dijkstra and bfs follow):
	// spec.md §8 scenario 4 never lists vertex 0 among the reported path
	// lengths.
	for _, v := range starts {
		id := s.vertexToID(v)
		g, ok := distances.Get(id)
		if !ok {
			g = wp.Zero()
			distances.Set(id, g)
		}
		f := g + s.h(v)
		guesses.Set(id, f)
		visited.Add(id)
		r.expand(v, g, 0)
		if r.err != nil {
			return nil, r.err
		}
	}

	return r, nil
}

// expand relaxes every out-edge of v, whose own g-score is g, reached via
// edgeCount edges from a start vertex, pushing improved candidates onto the
// heap. Shared between StartFrom (for start vertices, never reported) and
// Next (for every vertex popped off the heap).
func (r *Run[V, VId, W, L]) expand(v V, g W, edgeCount int) {
	for e := range r.strategy.next.Next(v) {
		if e.Weight < r.wp.Zero() {
			r.err = ErrNegativeWeight
			return
		}
		newG := g + e.Weight
		if r.wp.Overflowed(newG) {
			r.err = gear.ErrOverflow
			return
		}
		nID := r.strategy.vertexToID(e.To)
		curNeighborG, known := r.distances.Get(nID)
		if known && !(newG < curNeighborG) {
			continue
		}
		r.distances.Set(nID, newG)
		// A guess that would reach Infinity() saturates there instead of
		// wrapping around, so an unreachable vertex sorts after every
		// finite guess.
		h := r.strategy.h(e.To)
		newF := newG + h
		if h >= r.wp.Infinity()-newG {
			newF = r.wp.Infinity()
		}
		r.pathLengthGuesses.Set(nID, newF)
		r.recordPredecessor(nID, v, e.Label)
		heap.Push(&r.heap, r.newItem(e.To, newG, newF, edgeCount+1))
	}
}

// Run is the iterator StartFrom returns.
type Run[V any, VId comparable, W gear.Number, L any] struct {
	strategy *Flex[V, VId, W, L]
	opts     Options[V, VId, W]
	limit    *straversal.CalculationLimit

	wp   gear.WeightPolicy[W]
	heap itemHeap[V, W]

	nextTie           int64
	distances         gear.VertexMap[VId, W]
	pathLengthGuesses gear.VertexMap[VId, W]
	visited           gear.VertexSet[VId]

	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]

	// Distance is the g-score (path length so far) of the reported vertex.
	Distance W
	// PathLength is an alias for Distance kept for parity with spec.md
	// §6's "path_length" field name.
	PathLength W
	// Depth is the number of edges on the reported vertex's path.
	Depth int
	// Paths is nil unless WithBuildPaths was set.
	Paths *path.Container[V, VId, L]

	cur V
	err error
}

func (r *Run[V, VId, W, L]) newItem(v V, g, f W, edgeCount int) *item[V, W] {
	r.nextTie--
	return &item[V, W]{v: v, g: g, f: f, tieBreaker: r.nextTie, edgeCount: edgeCount}
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

// Next advances A* by exactly one reported vertex, in non-decreasing
// path-length-guess order. With a consistent heuristic this also means
// non-decreasing g-score and no vertex is ever reported twice; with a
// merely admissible (but inconsistent) heuristic, a vertex may be
// relaxed again after being reported and reported a second time at its
// improved distance (spec.md §4.11).
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

		curG, ok := r.distances.Get(id)
		if !ok || curG != top.g {
			continue // stale lazy-decrease-key entry
		}

		r.visited.Add(id)
		r.cur, r.Distance, r.PathLength, r.Depth = top.v, top.g, top.g, top.edgeCount

		r.expand(top.v, top.g, top.edgeCount)
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

// All returns a sequence over every reported vertex.
func (r *Run[V, VId, W, L]) All(ctx context.Context) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			if !yield(r.cur) {
				return
			}
		}
	}
}

// AStar is the convenience, non-Flex alias.
type AStar[V comparable, W gear.Number, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex A* strategy over comparable vertices, using the
// hash-backed default gear bound to wp.
func New[V comparable, W gear.Number, L any](next edge.Unified[V, W, L], h Heuristic[V, W], wp gear.WeightPolicy[W]) *AStar[V, W, L] {
	return &AStar[V, W, L]{NewFlex[V, V, W, L](next, h, identity[V], gear.NewDefaultGear[V, V, W](wp))}
}

func identity[V comparable](v V) V { return v }
