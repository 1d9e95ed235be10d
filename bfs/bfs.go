// Package bfs implements breadth-first search as a lazy, pull-based
// traversal: a two-bucket FIFO (to_expand / next_to_expand) swaps buffers
// and increments depth once the current bucket is exhausted, exactly as
// spec.md §4.6 describes. Each call to Run.Next advances the state machine
// by exactly one reported vertex.
package bfs

import (
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/path"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Gear is the narrow slice of gear.Gear BFS actually needs: a visited set
// plus predecessor/label maps. Unlike the weighted strategies, BFS never
// reads a distance map or weight policy, so it does not require W to
// satisfy gear.Number — any gear.Gear[V, VId, W] already implements this
// interface structurally, for whatever W it was built with.
type Gear[V any, VId comparable] interface {
	NewVisited() gear.VertexSet[VId]
	NewPredecessors() gear.VertexMap[VId, V]
	NewLabels() gear.VertexMap[VId, any]
}

// Flex is the explicit-configuration BFS strategy: it requires a
// vertex-to-id function and a Gear, and accepts any of the three successor
// function shapes (via edge.Unified).
type Flex[V any, VId comparable, W any, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       Gear[V, VId]
}

// NewFlex builds a Flex BFS strategy. The strategy itself is stateless and
// reusable across multiple StartFrom calls.
func NewFlex[V any, VId comparable, W any, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g Gear[V, VId],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

// StartFrom begins a BFS run. starts must be non-empty; every start vertex
// is pre-visited but not reported (spec.md §4.6: "Start
// vertices are pre-visited and not reported").
func (s *Flex[V, VId, W, L]) StartFrom(starts []V, opts ...Option[V, VId]) (*Run[V, VId, W, L], error) {
	if len(starts) == 0 {
		return nil, straversal.ErrMissingStart
	}
	o := DefaultOptions[V, VId]()
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
	var predecessors gear.VertexMap[VId, V]
	var labels gear.VertexMap[VId, L]
	if o.BuildPaths {
		predecessors = s.gear.NewPredecessors()
		if s.next.LabeledEdges {
			labels = gear.WrapLabels[VId, L](s.gear.NewLabels())
		}
	}
	roots := s.gear.NewVisited()

	toExpand := make([]V, 0, len(starts))
	for _, v := range starts {
		id := s.vertexToID(v)
		if !o.IsTree {
			visited.Add(id)
		}
		roots.Add(id)
		toExpand = append(toExpand, v)
	}

	r := &Run[V, VId, W, L]{
		strategy:     s,
		opts:         o,
		limit:        straversal.NewCalculationLimit(o.CalculationLimit),
		toExpand:     toExpand,
		visited:      visited,
		predecessors: predecessors,
		labels:       labels,
	}
	if o.BuildPaths {
		r.Paths = path.NewContainer[V, VId, L](s.vertexToID, predecessors, roots, labels, s.next.LabeledEdges)
	}
	return r, nil
}

// Run is the iterator object StartFrom returns: pulling Next advances the
// search by one reported vertex, updating the public Depth field. Paths,
// when built, is a stable reference valid for the run's lifetime; the
// visited set is not exposed as a field.
type Run[V any, VId comparable, W any, L any] struct {
	strategy *Flex[V, VId, W, L]
	opts     Options[V, VId]
	limit    *straversal.CalculationLimit

	toExpand     []V
	nextToExpand []V
	expandIdx    int
	bucketDepth  int

	succNext func() (edge.Edge[V, W, L], bool)
	succStop func()
	curOwner V

	visited      gear.VertexSet[VId]
	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]

	// Depth is the depth of the vertex most recently reported.
	Depth int
	// Paths is nil unless WithBuildPaths was set.
	Paths *path.Container[V, VId, L]

	cur V
	err error
}

// Err returns the error that stopped iteration, if any (context
// cancellation or calculation-limit exceeded). nil while the run is still
// live or exhausted cleanly.
func (r *Run[V, VId, W, L]) Err() error { return r.err }

// Vertex returns the vertex reported by the most recent successful Next.
func (r *Run[V, VId, W, L]) Vertex() V { return r.cur }

// Next advances the BFS by exactly one reported vertex. It returns false
// once the search is exhausted or an error (check Err) stopped it.
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

		if r.succNext == nil {
			if r.expandIdx >= len(r.toExpand) {
				if len(r.nextToExpand) == 0 {
					return false
				}
				r.toExpand, r.nextToExpand = r.nextToExpand, r.toExpand[:0]
				r.expandIdx = 0
				r.bucketDepth++
			}
			r.curOwner = r.toExpand[r.expandIdx]
			r.expandIdx++
			seq := r.strategy.next.Next(r.curOwner)
			r.succNext, r.succStop = iter.Pull(seq)
		}

		e, ok := r.succNext()
		if !ok {
			r.succStop()
			r.succNext = nil
			continue
		}

		nID := r.strategy.vertexToID(e.To)
		if !r.opts.IsTree {
			if r.visited.Has(nID) {
				continue
			}
			r.visited.Add(nID)
		}

		nextDepth := r.bucketDepth + 1
		if r.opts.MaxDepth > 0 && nextDepth > r.opts.MaxDepth {
			continue
		}

		if r.predecessors != nil {
			r.predecessors.Set(nID, r.curOwner)
			if r.labels != nil {
				r.labels.Set(nID, e.Label)
			}
		}

		if err := r.limit.Consume(); err != nil {
			r.err = err
			return false
		}

		r.nextToExpand = append(r.nextToExpand, e.To)
		r.Depth = nextDepth
		r.cur = e.To
		return true
	}
}

// GoTo consumes the run until it reports v, returning (true, nil) on
// success. With WithFailSilently set, a stream exhaustion without a match
// reports (false, nil) instead of an error.
func (r *Run[V, VId, W, L]) GoTo(ctx context.Context, v V) (bool, error) {
	ok, err := straversal.GoTo[V, VId](ctx, r, r.strategy.vertexToID, r.strategy.vertexToID(v))
	if err != nil && r.opts.FailSilently {
		return false, nil
	}
	return ok, err
}

// GoForVerticesIn filters the run's reported vertices down to those whose
// id is a member of ids.
func (r *Run[V, VId, W, L]) GoForVerticesIn(ctx context.Context, ids map[VId]struct{}) iter.Seq[V] {
	return straversal.GoForVerticesIn[V, VId](ctx, r, r.strategy.vertexToID, ids)
}

// GoForDepthRange yields vertices whose depth is in [lo, hi) (hi < 0 means
// unbounded).
func (r *Run[V, VId, W, L]) GoForDepthRange(ctx context.Context, lo, hi int) iter.Seq[V] {
	return straversal.GoForRange[V](ctx, r, func() int64 { return int64(r.Depth) }, int64(lo), int64(hi))
}

// All returns a Go 1.23 range-over-func view of the remaining stream,
// matching spec.md §2's "the strategy object is itself an iterable".
func (r *Run[V, VId, W, L]) All(ctx context.Context) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			if !yield(r.Vertex()) {
				return
			}
		}
	}
}

// BFS is the convenience, non-Flex alias: identity vertex-to-id and the
// hash-based default gear.
type BFS[V comparable, W any, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex BFS over comparable vertices, backed by a plain
// hash-map gear.
func New[V comparable, W any, L any](next edge.Unified[V, W, L]) *BFS[V, W, L] {
	return &BFS[V, W, L]{NewFlex[V, V, W, L](next, identity[V], hashGear[V, V]{})}
}

func identity[V comparable](v V) V { return v }

// hashGear is the default Gear for comparable vertices identified by
// themselves: plain hash sets and maps, no sequence-view fast path.
type hashGear[V any, VId comparable] struct{}

func (hashGear[V, VId]) NewVisited() gear.VertexSet[VId]        { return gear.NewHashSet[VId]() }
func (hashGear[V, VId]) NewPredecessors() gear.VertexMap[VId, V] { return gear.NewHashMap[VId, V]() }
func (hashGear[V, VId]) NewLabels() gear.VertexMap[VId, any]    { return gear.NewHashMap[VId, any]() }
