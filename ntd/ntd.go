package ntd

import (
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/path"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Gear is the narrow slice of gear.Gear NTD needs: visited set, predecessor
// map and label map. Like bfs.Gear, it omits the weight-policy methods so W
// stays unconstrained.
type Gear[V any, VId comparable] interface {
	NewVisited() gear.VertexSet[VId]
	NewPredecessors() gear.VertexMap[VId, V]
	NewLabels() gear.VertexMap[VId, any]
}

// Flex is the explicit-configuration NTD strategy.
type Flex[V any, VId comparable, W any, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       Gear[V, VId]
}

// NewFlex builds a Flex NTD strategy.
func NewFlex[V any, VId comparable, W any, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g Gear[V, VId],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

type frame[V any, W any, L any] struct {
	v          V
	pull       func() (edge.Edge[V, W, L], bool)
	stop       func()
	reportDone bool
	pending    []V
}

// StartFrom begins an NTD run.
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
	for _, v := range starts {
		roots.Add(s.vertexToID(v))
	}

	r := &Run[V, VId, W, L]{
		strategy:     s,
		opts:         o,
		limit:        straversal.NewCalculationLimit(o.CalculationLimit),
		starts:       starts,
		visited:      visited,
		predecessors: predecessors,
		labels:       labels,
	}
	if o.BuildPaths {
		r.Paths = path.NewContainer[V, VId, L](s.vertexToID, predecessors, roots, labels, s.next.LabeledEdges)
	}
	return r, nil
}

// Run is the iterator StartFrom returns.
type Run[V any, VId comparable, W any, L any] struct {
	strategy *Flex[V, VId, W, L]
	opts     Options[V, VId]
	limit    *straversal.CalculationLimit

	starts   []V
	startIdx int
	stack    []*frame[V, W, L]

	visited      gear.VertexSet[VId]
	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]

	// Depth is the depth of the vertex the last reported event concerns.
	Depth int
	// Paths is nil unless WithBuildPaths was set.
	Paths *path.Container[V, VId, L]

	cur V
	err error
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

// Next advances the traversal by exactly one reported vertex: either the
// next unvisited start vertex, or the next unvisited successor of the
// vertex currently being expanded. All of a vertex's successors are
// reported before the traversal descends into any of them.
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

		if len(r.stack) == 0 {
			if r.startIdx >= len(r.starts) {
				return false
			}
			v := r.starts[r.startIdx]
			r.startIdx++
			id := r.strategy.vertexToID(v)
			if r.visited.Has(id) {
				continue
			}
			r.visited.Add(id)
			r.stack = append(r.stack, &frame[V, W, L]{v: v})
			r.Depth = len(r.stack) - 1
			r.cur = v
			if err := r.limit.Consume(); err != nil {
				r.err = err
				return false
			}
			return true
		}

		top := r.stack[len(r.stack)-1]

		if !top.reportDone {
			if top.pull == nil {
				seq := r.strategy.next.Next(top.v)
				top.pull, top.stop = iter.Pull(seq)
			}
			e, ok := top.pull()
			if !ok {
				top.stop()
				top.reportDone = true
				continue
			}
			nID := r.strategy.vertexToID(e.To)
			if r.visited.Has(nID) {
				continue
			}
			r.visited.Add(nID)
			r.recordPredecessor(nID, top.v, e.Label)
			top.pending = append(top.pending, e.To)
			r.Depth = len(r.stack)
			r.cur = e.To
			if err := r.limit.Consume(); err != nil {
				r.err = err
				return false
			}
			return true
		}

		if len(top.pending) == 0 {
			r.stack = r.stack[:len(r.stack)-1]
			continue
		}
		child := top.pending[0]
		top.pending = top.pending[1:]
		if r.opts.MaxDepth > 0 && len(r.stack) >= r.opts.MaxDepth {
			continue
		}
		r.stack = append(r.stack, &frame[V, W, L]{v: child})
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

// GoForVerticesIn filters the run's reported vertices down to ids.
func (r *Run[V, VId, W, L]) GoForVerticesIn(ctx context.Context, ids map[VId]struct{}) iter.Seq[V] {
	return straversal.GoForVerticesIn[V, VId](ctx, r, r.strategy.vertexToID, ids)
}

// GoForDepthRange yields vertices whose depth falls in [lo, hi).
func (r *Run[V, VId, W, L]) GoForDepthRange(ctx context.Context, lo, hi int) iter.Seq[V] {
	return straversal.GoForRange[V](ctx, r, func() int64 { return int64(r.Depth) }, int64(lo), int64(hi))
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

// NTD is the convenience, non-Flex alias.
type NTD[V comparable, W any, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex NTD strategy over comparable vertices.
func New[V comparable, W any, L any](next edge.Unified[V, W, L]) *NTD[V, W, L] {
	return &NTD[V, W, L]{NewFlex[V, V, W, L](next, identity[V], hashGear[V, V]{})}
}

func identity[V comparable](v V) V { return v }

type hashGear[V any, VId comparable] struct{}

func (hashGear[V, VId]) NewVisited() gear.VertexSet[VId]         { return gear.NewHashSet[VId]() }
func (hashGear[V, VId]) NewPredecessors() gear.VertexMap[VId, V] { return gear.NewHashMap[VId, V]() }
func (hashGear[V, VId]) NewLabels() gear.VertexMap[VId, any]     { return gear.NewHashMap[VId, any]() }
