package toposort

import (
	"context"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Gear is the narrow slice of gear.Gear toposort needs: a visited set.
type Gear[V any, VId comparable] interface {
	NewVisited() gear.VertexSet[VId]
}

// Flex is the explicit-configuration toposort strategy.
type Flex[V any, VId comparable, W any, L any] struct {
	next       edge.Unified[V, W, L]
	vertexToID func(V) VId
	gear       Gear[V, VId]
}

// NewFlex builds a Flex toposort strategy.
func NewFlex[V any, VId comparable, W any, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g Gear[V, VId],
) *Flex[V, VId, W, L] {
	return &Flex[V, VId, W, L]{next: next, vertexToID: vertexToID, gear: g}
}

// traceSet tracks the on-trace set; see dfs.traceSet for why this is a
// plain removable map rather than a gear.VertexSet.
type traceSet[VId comparable] map[VId]struct{}

func (s traceSet[VId]) Has(id VId) bool { _, ok := s[id]; return ok }
func (s traceSet[VId]) Add(id VId)      { s[id] = struct{}{} }
func (s traceSet[VId]) Remove(id VId)   { delete(s, id) }

type frame[V any, W any, L any] struct {
	v    V
	pull func() (edge.Edge[V, W, L], bool)
	stop func()
}

// StartFrom begins a toposort run.
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
	var onTrace traceSet[VId]
	if o.Mode == ModeGeneral {
		onTrace = make(traceSet[VId])
	}

	r := &Run[V, VId, W, L]{
		strategy: s,
		opts:     o,
		limit:    straversal.NewCalculationLimit(o.CalculationLimit),
		starts:   starts,
		visited:  visited,
		onTrace:  onTrace,
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
	trace    []V

	visited gear.VertexSet[VId]
	onTrace traceSet[VId]

	// Depth is the depth of the vertex the last reported event concerns.
	Depth int

	cur V
	err error
}

// Vertex returns the vertex the most recent successful Next reported.
func (r *Run[V, VId, W, L]) Vertex() V { return r.cur }

// Err returns the error that stopped iteration, if any: nil, or a
// *CycleError[V] wrapping ErrCycleDetected.
func (r *Run[V, VId, W, L]) Err() error { return r.err }

func (r *Run[V, VId, W, L]) push(v V) {
	id := r.strategy.vertexToID(v)
	r.visited.Add(id)
	if r.onTrace != nil {
		r.onTrace.Add(id)
	}
	r.stack = append(r.stack, &frame[V, W, L]{v: v})
	r.trace = append(r.trace, v)
}

func (r *Run[V, VId, W, L]) pop() V {
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.trace = r.trace[:len(r.trace)-1]
	if r.onTrace != nil {
		r.onTrace.Remove(r.strategy.vertexToID(top.v))
	}
	return top.v
}

// cycleFrom builds the start-to-cycle trace: the current root-to-tip trace
// with the repeated vertex appended, closing the cycle.
func (r *Run[V, VId, W, L]) cycleFrom(repeat V) *CycleError[V] {
	out := make([]V, len(r.trace)+1)
	copy(out, r.trace)
	out[len(r.trace)] = repeat
	return &CycleError[V]{CycleFromStart: out}
}

// Next advances the traversal by exactly one reported vertex, in
// topological order (children before parents).
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
			if r.visited.Has(r.strategy.vertexToID(v)) {
				continue
			}
			r.push(v)
			continue
		}

		top := r.stack[len(r.stack)-1]
		if top.pull == nil {
			seq := r.strategy.next.Next(top.v)
			top.pull, top.stop = iter.Pull(seq)
		}

		e, ok := top.pull()
		if !ok {
			top.stop()
			r.Depth = len(r.stack) - 1
			v := r.pop()
			r.cur = v
			if err := r.limit.Consume(); err != nil {
				r.err = err
				return false
			}
			return true
		}

		nID := r.strategy.vertexToID(e.To)
		if r.onTrace != nil && r.onTrace.Has(nID) {
			r.err = r.cycleFrom(e.To)
			return false
		}
		if r.visited.Has(nID) {
			continue
		}
		r.push(e.To)
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

// All returns a sequence over every reported vertex. Iteration stops
// silently if a cycle is detected; check Err after the sequence completes.
func (r *Run[V, VId, W, L]) All(ctx context.Context) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next(ctx) {
			if !yield(r.cur) {
				return
			}
		}
	}
}

// TopoSort is the convenience, non-Flex alias.
type TopoSort[V comparable, W any, L any] struct {
	*Flex[V, V, W, L]
}

// New builds a non-Flex toposort strategy over comparable vertices.
func New[V comparable, W any, L any](next edge.Unified[V, W, L]) *TopoSort[V, W, L] {
	return &TopoSort[V, W, L]{NewFlex[V, V, W, L](next, identity[V], hashGear[V, V]{})}
}

func identity[V comparable](v V) V { return v }

type hashGear[V any, VId comparable] struct{}

func (hashGear[V, VId]) NewVisited() gear.VertexSet[VId] { return gear.NewHashSet[VId]() }
