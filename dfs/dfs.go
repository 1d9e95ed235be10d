package dfs

import (
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/path"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Gear is the narrow slice of gear.Gear DFS needs: visited set,
// predecessor map, label map, and discovery-index map. Like bfs.Gear, it
// omits the weight-policy methods so W stays unconstrained.
type Gear[V any, VId comparable] interface {
	NewVisited() gear.VertexSet[VId]
	NewPredecessors() gear.VertexMap[VId, V]
	NewLabels() gear.VertexMap[VId, any]
	NewIndex() gear.VertexMap[VId, int]
}

// Flex is the explicit-configuration DFS strategy.
type Flex[V any, VId comparable, W any, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       Gear[V, VId]
}

// NewFlex builds a Flex DFS strategy.
func NewFlex[V any, VId comparable, W any, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g Gear[V, VId],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

// traceSet tracks the on-trace set: unlike every gear-backed visited
// collection (append-only by contract), on-trace membership must shrink
// again on backtrack, so it is a plain removable set local to this
// package rather than a gear.VertexSet.
type traceSet[VId comparable] map[VId]struct{}

func (s traceSet[VId]) Has(id VId) bool   { _, ok := s[id]; return ok }
func (s traceSet[VId]) Add(id VId)        { s[id] = struct{}{} }
func (s traceSet[VId]) Remove(id VId)     { delete(s, id) }

type frame[V any, W any, L any] struct {
	v       V
	isStart bool
	skip    bool
	pull    func() (edge.Edge[V, W, L], bool)
	stop    func()
}

// StartFrom begins a DFS run.
func (s *Flex[V, VId, W, L]) StartFrom(starts []V, opts ...Option[VId]) (*Run[V, VId, W, L], error) {
	if len(starts) == 0 {
		return nil, straversal.ErrMissingStart
	}
	o := DefaultOptions[VId]()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	visited := o.AlreadyVisited
	if visited == nil && o.Mode != ModeAllWalks {
		visited = s.gear.NewVisited()
	}
	var onTrace traceSet[VId]
	if o.Mode != ModeAllWalks {
		onTrace = make(traceSet[VId])
	}
	var index gear.VertexMap[VId, int]
	wantIndex := o.TrackIndex || o.Events&ForwardOrCrossEdge != 0
	if wantIndex {
		index = s.gear.NewIndex()
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
		onTrace:      onTrace,
		index:        index,
		nextIndex:    1,
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
	opts     Options[VId]
	limit    *straversal.CalculationLimit

	starts   []V
	startIdx int
	stack    []*frame[V, W, L]
	trace    []V

	visited      gear.VertexSet[VId]
	onTrace      traceSet[VId]
	index        gear.VertexMap[VId, int]
	nextIndex    int
	predecessors gear.VertexMap[VId, V]
	labels       gear.VertexMap[VId, L]

	// Depth is the depth of the top of the trace after the last event (0
	// when the trace is empty): the entered vertex's depth for Entering
	// events, the expanding vertex's depth for edge events, and the
	// parent's depth for Leaving events, whose vertex is already off the
	// trace.
	Depth int
	// Paths is nil unless WithBuildPaths was set.
	Paths *path.Container[V, VId, L]

	event    Event
	cur      V
	edgeFrom V
	edgeVal  edge.Edge[V, W, L]
	err      error
}

// Event returns the kind of event the most recent successful Next reported.
func (r *Run[V, VId, W, L]) Event() Event { return r.event }

// Vertex returns the vertex an Entering/Leaving event concerns.
func (r *Run[V, VId, W, L]) Vertex() V { return r.cur }

// Edge returns the edge a Back/Forward/Cross classification event
// concerns: the first return is the vertex being expanded, the second its
// successor edge.
func (r *Run[V, VId, W, L]) Edge() (V, edge.Edge[V, W, L]) { return r.edgeFrom, r.edgeVal }

// Trace returns the vertices currently on the root-to-current path,
// ordered from root to tip.
func (r *Run[V, VId, W, L]) Trace() []V { return r.trace }

// Err returns the error that stopped iteration, if any.
func (r *Run[V, VId, W, L]) Err() error { return r.err }

func (r *Run[V, VId, W, L]) pushFrame(v V, isStart bool) {
	f := &frame[V, W, L]{v: v, isStart: isStart}
	r.stack = append(r.stack, f)
	r.trace = append(r.trace, v)
	if r.onTrace != nil {
		r.onTrace.Add(r.strategy.vertexToID(v))
	}
	if r.visited != nil {
		r.visited.Add(r.strategy.vertexToID(v))
	}
	if r.index != nil {
		r.index.Set(r.strategy.vertexToID(v), r.nextIndex)
		r.nextIndex++
	}
	r.Depth = len(r.trace) - 1
}

// popFrame removes the top frame, dropping it from the on-trace set: the
// next sibling or ancestor edge that targets this vertex must classify as
// forward/cross, not back, since the vertex is no longer on the current
// root-to-tip path.
func (r *Run[V, VId, W, L]) popFrame() {
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.trace = r.trace[:len(r.trace)-1]
	if r.onTrace != nil {
		r.onTrace.Remove(r.strategy.vertexToID(top.v))
	}
	if len(r.stack) > 0 {
		r.Depth = len(r.stack) - 1
	} else {
		r.Depth = 0
	}
}

// SkipExpandingEnteredVertex implements the skip-expansion protocol
// (spec.md §4.7): call it after Next reports an EnteringStart or
// EnteringSuccessor event to suppress that vertex's expansion. The next
// Next call pops the vertex without descending and reports its matching
// Leaving event if Leaving events are requested; otherwise it continues
// with the following event.
func (r *Run[V, VId, W, L]) SkipExpandingEnteredVertex() error {
	if r.event&EnteringAny == 0 || len(r.stack) == 0 {
		return ErrSkipOutsideEntering
	}
	r.stack[len(r.stack)-1].skip = true
	return nil
}

// Next advances the DFS by exactly one reported event.
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
			if r.visited != nil && r.visited.Has(r.strategy.vertexToID(v)) {
				r.event, r.cur = SkippingStart, v
				if r.opts.Events&SkippingStart == 0 {
					continue
				}
				if err := r.limit.Consume(); err != nil {
					r.err = err
					return false
				}
				return true
			}
			r.pushFrame(v, true)
			r.event, r.cur = EnteringStart, v
			if r.opts.Events&EnteringStart == 0 {
				continue
			}
			if err := r.limit.Consume(); err != nil {
				r.err = err
				return false
			}
			return true
		}

		top := r.stack[len(r.stack)-1]

		if top.skip {
			if top.stop != nil {
				top.stop()
			}
			r.popFrame()
			ev := LeavingSuccessor
			if top.isStart {
				ev = LeavingStart
			}
			r.event, r.cur = ev, top.v
			if r.opts.Events&ev == 0 {
				continue
			}
			if err := r.limit.Consume(); err != nil {
				r.err = err
				return false
			}
			return true
		}

		if top.pull == nil {
			seq := r.strategy.next.Next(top.v)
			top.pull, top.stop = iter.Pull(seq)
		}

		e, ok := top.pull()
		if !ok {
			top.stop()
			r.popFrame()
			ev := LeavingSuccessor
			if top.isStart {
				ev = LeavingStart
			}
			r.event, r.cur = ev, top.v
			if r.opts.Events&ev == 0 {
				continue
			}
			if err := r.limit.Consume(); err != nil {
				r.err = err
				return false
			}
			return true
		}

		nID := r.strategy.vertexToID(e.To)

		switch r.opts.Mode {
		case ModeAllWalks:
			r.recordPredecessor(nID, top.v, e.Label)
			r.pushFrame(e.To, false)
			r.event, r.cur = EnteringSuccessor, e.To
			if r.opts.Events&EnteringSuccessor == 0 {
				continue
			}

		case ModeAllPaths:
			if r.onTrace.Has(nID) {
				r.event, r.edgeFrom, r.edgeVal = BackEdge, top.v, e
				if r.opts.Events&BackEdge == 0 {
					continue
				}
				if err := r.limit.Consume(); err != nil {
					r.err = err
					return false
				}
				return true
			}
			if r.opts.MaxDepth > 0 && len(r.trace) > r.opts.MaxDepth {
				continue
			}
			r.recordPredecessor(nID, top.v, e.Label)
			r.pushFrame(e.To, false)
			r.event, r.cur = EnteringSuccessor, e.To
			if r.opts.Events&EnteringSuccessor == 0 {
				continue
			}

		default: // ModeTree
			if r.onTrace.Has(nID) {
				r.event, r.edgeFrom, r.edgeVal = BackEdge, top.v, e
				if r.opts.Events&BackEdge == 0 {
					continue
				}
				if err := r.limit.Consume(); err != nil {
					r.err = err
					return false
				}
				return true
			}
			if r.visited.Has(nID) {
				ev := CrossEdge
				if r.index != nil {
					ownerIdx, _ := r.index.Get(r.strategy.vertexToID(top.v))
					targetIdx, _ := r.index.Get(nID)
					if ownerIdx < targetIdx {
						ev = ForwardEdge
					}
				}
				r.event, r.edgeFrom, r.edgeVal = ev, top.v, e
				if r.opts.Events&ev == 0 {
					continue
				}
				if err := r.limit.Consume(); err != nil {
					r.err = err
					return false
				}
				return true
			}
			if r.opts.MaxDepth > 0 && len(r.trace) > r.opts.MaxDepth {
				continue
			}
			r.recordPredecessor(nID, top.v, e.Label)
			r.pushFrame(e.To, false)
			r.event, r.cur = EnteringSuccessor, e.To
			if r.opts.Events&EnteringSuccessor == 0 {
				continue
			}
		}

		if err := r.limit.Consume(); err != nil {
			r.err = err
			return false
		}
		return true
	}
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

// enteringOnly adapts Run to straversal.VertexIterator by skipping
// non-Entering events (Vertex() is only meaningful for those).
type enteringOnly[V any, VId comparable, W any, L any] struct {
	r *Run[V, VId, W, L]
}

func (e enteringOnly[V, VId, W, L]) Next(ctx context.Context) bool {
	for e.r.Next(ctx) {
		if e.r.event&EnteringAny != 0 {
			return true
		}
	}
	return false
}

func (e enteringOnly[V, VId, W, L]) Vertex() V { return e.r.Vertex() }

// GoTo consumes the run until it reports v via an Entering event.
func (r *Run[V, VId, W, L]) GoTo(ctx context.Context, v V) (bool, error) {
	ok, err := straversal.GoTo[V, VId](ctx, enteringOnly[V, VId, W, L]{r}, r.strategy.vertexToID, r.strategy.vertexToID(v))
	if err != nil && r.opts.FailSilently {
		return false, nil
	}
	return ok, err
}

// DFS is the convenience, non-Flex alias.
type DFS[V comparable, W any, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex DFS over comparable vertices.
func New[V comparable, W any, L any](next edge.Unified[V, W, L]) *DFS[V, W, L] {
	return &DFS[V, W, L]{NewFlex[V, V, W, L](next, identity[V], hashGear[V, V]{})}
}

func identity[V comparable](v V) V { return v }

type hashGear[V any, VId comparable] struct{}

func (hashGear[V, VId]) NewVisited() gear.VertexSet[VId]         { return gear.NewHashSet[VId]() }
func (hashGear[V, VId]) NewPredecessors() gear.VertexMap[VId, V] { return gear.NewHashMap[VId, V]() }
func (hashGear[V, VId]) NewLabels() gear.VertexMap[VId, any]     { return gear.NewHashMap[VId, any]() }
func (hashGear[V, VId]) NewIndex() gear.VertexMap[VId, int]      { return gear.NewHashMap[VId, int]() }
