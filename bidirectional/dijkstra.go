package bidirectional

import (
	"container/heap"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// DijkstraResult is the outcome of one bidirectional Dijkstra Search.
type DijkstraResult[V any, W gear.Number] struct {
	// Found reports whether a path was found.
	Found bool
	// Distance is the shortest start-to-goal path length, or gear's
	// infinity sentinel if Found is false (spec.md §4.14).
	Distance W
	// Meeting is the vertex where the forward and backward searches met.
	Meeting V
	// Path is the full vertex sequence from a start vertex to a goal
	// vertex through Meeting.
	Path []V
}

type dijkstraItem[V any, W gear.Number] struct {
	v          V
	dist       W
	tieBreaker int64
}

type dijkstraItemHeap[V any, W gear.Number] []*dijkstraItem[V, W]

func (h dijkstraItemHeap[V, W]) Len() int { return len(h) }
func (h dijkstraItemHeap[V, W]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].tieBreaker < h[j].tieBreaker
}
func (h dijkstraItemHeap[V, W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *dijkstraItemHeap[V, W]) Push(x any)   { *h = append(*h, x.(*dijkstraItem[V, W])) }
func (h *dijkstraItemHeap[V, W]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// dijkstraSide is one half of a bidirectional Dijkstra search: its own
// successor function, lazy-decrease-key heap, distances/visited/
// predecessor maps. Mirrors the dijkstra package's engine, duplicated
// rather than shared because the two sides key their heaps on
// independent distance spaces.
type dijkstraSide[V any, VId comparable, W gear.Number, L any] struct {
	next         edge.Unified[V, W, L]
	vertexToID   func(V) VId
	wp           gear.WeightPolicy[W]
	heap         dijkstraItemHeap[V, W]
	nextTie      int64
	distances    gear.VertexMap[VId, W]
	visited      gear.VertexSet[VId]
	predecessors gear.VertexMap[VId, V]
}

func newDijkstraSide[V any, VId comparable, W gear.Number, L any](
	next edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g gear.Gear[V, VId, W],
) *dijkstraSide[V, VId, W, L] {
	return &dijkstraSide[V, VId, W, L]{
		next:         next,
		vertexToID:   vertexToID,
		wp:           g.Weight(),
		distances:    g.NewDistances(),
		visited:      g.NewVisited(),
		predecessors: g.NewPredecessors(),
	}
}

func (s *dijkstraSide[V, VId, W, L]) seed(v V) {
	id := s.vertexToID(v)
	if s.visited.Has(id) {
		return
	}
	s.distances.Set(id, s.wp.Zero())
	s.nextTie--
	heap.Push(&s.heap, &dijkstraItem[V, W]{v: v, dist: s.wp.Zero(), tieBreaker: s.nextTie})
}

// peekMin returns the smallest live (non-stale) key still on the heap,
// discarding any stale entries found along the way.
func (s *dijkstraSide[V, VId, W, L]) peekMin() (W, bool) {
	for s.heap.Len() > 0 {
		top := s.heap[0]
		id := s.vertexToID(top.v)
		if s.visited.Has(id) {
			heap.Pop(&s.heap)
			continue
		}
		cur, ok := s.distances.Get(id)
		if !ok || cur != top.dist {
			heap.Pop(&s.heap)
			continue
		}
		return top.dist, true
	}
	var zero W
	return zero, false
}

// pop finalises and returns the next vertex, relaxing its out-edges into
// the heap before returning. ok is false once the heap is exhausted.
func (s *dijkstraSide[V, VId, W, L]) pop() (v V, dist W, ok bool, err error) {
	for s.heap.Len() > 0 {
		top := heap.Pop(&s.heap).(*dijkstraItem[V, W])
		id := s.vertexToID(top.v)
		if s.visited.Has(id) {
			continue
		}
		cur, sok := s.distances.Get(id)
		if !sok || cur != top.dist {
			continue
		}
		s.visited.Add(id)

		for e := range s.next.Next(top.v) {
			if e.Weight < s.wp.Zero() {
				var zero V
				return zero, s.wp.Zero(), false, ErrNegativeWeight
			}
			newDist := top.dist + e.Weight
			if s.wp.Overflowed(newDist) {
				var zero V
				return zero, s.wp.Zero(), false, gear.ErrOverflow
			}
			nID := s.vertexToID(e.To)
			if s.visited.Has(nID) {
				continue
			}
			nCur, known := s.distances.Get(nID)
			if known && !(newDist < nCur) {
				continue
			}
			s.distances.Set(nID, newDist)
			s.predecessors.Set(nID, top.v)
			s.nextTie--
			heap.Push(&s.heap, &dijkstraItem[V, W]{v: e.To, dist: newDist, tieBreaker: s.nextTie})
		}

		return top.v, top.dist, true, nil
	}
	var zero V
	return zero, s.wp.Zero(), false, nil
}

// DijkstraFlex is the explicit-configuration bidirectional Dijkstra
// strategy. It alternates popping the side whose current minimum is
// smaller and keeps the best start-to-goal distance found across any
// vertex finalised on both sides, stopping once the sum of the two
// frontier minima can no longer improve on it (spec.md §4.14).
type DijkstraFlex[V any, VId comparable, W gear.Number, L any] struct {
	forward, backward edge.Unified[V, W, L]
	vertexToID        func(V) VId
	gear              gear.Gear[V, VId, W]
}

// NewDijkstraFlex builds a Flex bidirectional Dijkstra strategy over
// distinct forward and backward weighted adjacency successor functions.
func NewDijkstraFlex[V any, VId comparable, W gear.Number, L any](
	forward, backward edge.Unified[V, W, L],
	vertexToID func(V) VId,
	g gear.Gear[V, VId, W],
) *DijkstraFlex[V, VId, W, L] {
	return &DijkstraFlex[V, VId, W, L]{forward: forward, backward: backward, vertexToID: vertexToID, gear: g}
}

// Search runs the bidirectional Dijkstra search to completion.
func (s *DijkstraFlex[V, VId, W, L]) Search(starts, goals []V, opts ...DijkstraOption[V, VId, W]) (DijkstraResult[V, W], error) {
	if len(starts) == 0 || len(goals) == 0 {
		return DijkstraResult[V, W]{}, straversal.ErrMissingStart
	}
	o := DefaultDijkstraOptions[V, VId, W]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return DijkstraResult[V, W]{}, o.err
	}

	wp := s.gear.Weight()
	fwd := newDijkstraSide[V, VId, W, L](s.forward, s.vertexToID, s.gear)
	bwd := newDijkstraSide[V, VId, W, L](s.backward, s.vertexToID, s.gear)
	for _, v := range starts {
		fwd.seed(v)
	}
	for _, v := range goals {
		bwd.seed(v)
	}

	// start-equals-goal: zero-distance path of length 1.
	for _, v := range starts {
		if _, seeded := bwd.distances.Get(s.vertexToID(v)); seeded {
			return DijkstraResult[V, W]{Found: true, Distance: wp.Zero(), Meeting: v, Path: []V{v}}, nil
		}
	}

	limit := straversal.NewCalculationLimit(o.CalculationLimit)
	best := wp.Infinity()
	var bestMeeting V
	haveBest := false

	for {
		select {
		case <-o.Ctx.Done():
			return DijkstraResult[V, W]{}, o.Ctx.Err()
		default:
		}

		fMin, fOK := fwd.peekMin()
		bMin, bOK := bwd.peekMin()
		if !fOK && !bOK {
			break
		}
		if haveBest {
			if !fOK || !bOK {
				break
			}
			if !(fMin+bMin < best) {
				break
			}
		}

		var advanceForward bool
		switch {
		case !bOK:
			advanceForward = true
		case !fOK:
			advanceForward = false
		default:
			advanceForward = fMin <= bMin
		}

		if err := limit.Consume(); err != nil {
			return dijkstraSentinelOrErr[V, W](o, wp, err)
		}

		if advanceForward {
			v, dist, ok, err := fwd.pop()
			if err != nil {
				return dijkstraSentinelOrErr[V, W](o, wp, err)
			}
			if !ok {
				continue
			}
			id := s.vertexToID(v)
			if bDist, known := bwd.distances.Get(id); known && bwd.visited.Has(id) {
				total := dist + bDist
				if !haveBest || total < best {
					best, bestMeeting, haveBest = total, v, true
				}
			}
		} else {
			v, dist, ok, err := bwd.pop()
			if err != nil {
				return dijkstraSentinelOrErr[V, W](o, wp, err)
			}
			if !ok {
				continue
			}
			id := s.vertexToID(v)
			if fDist, known := fwd.distances.Get(id); known && fwd.visited.Has(id) {
				total := dist + fDist
				if !haveBest || total < best {
					best, bestMeeting, haveBest = total, v, true
				}
			}
		}
	}

	if !haveBest {
		return dijkstraSentinelOrErr[V, W](o, wp, straversal.ErrVertexNotFound)
	}
	return dijkstraStitch(s.vertexToID, fwd.predecessors, bwd.predecessors, bestMeeting, best), nil
}

func dijkstraStitch[V any, VId comparable, W gear.Number](
	vertexToID func(V) VId,
	fwdPred, bwdPred gear.VertexMap[VId, V],
	meeting V,
	dist W,
) DijkstraResult[V, W] {
	var rev []V
	cur := meeting
	for {
		rev = append(rev, cur)
		p, ok := fwdPred.Get(vertexToID(cur))
		if !ok {
			break
		}
		cur = p
	}
	path := make([]V, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	cur = meeting
	for {
		p, ok := bwdPred.Get(vertexToID(cur))
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	return DijkstraResult[V, W]{Found: true, Distance: dist, Meeting: meeting, Path: path}
}

func dijkstraSentinelOrErr[V any, W gear.Number, VId comparable](o DijkstraOptions[V, VId, W], wp gear.WeightPolicy[W], err error) (DijkstraResult[V, W], error) {
	if o.FailSilently {
		return DijkstraResult[V, W]{Found: false, Distance: wp.Infinity()}, nil
	}
	return DijkstraResult[V, W]{}, err
}

// Dijkstra is the convenience, non-Flex alias.
type Dijkstra[V comparable, W gear.Number, L any] struct {
	*DijkstraFlex[V, V, W, L]
}

// NewDijkstra builds a non-Flex bidirectional Dijkstra strategy over
// comparable vertices, using the hash-backed default gear bound to wp.
func NewDijkstra[V comparable, W gear.Number, L any](forward, backward edge.Unified[V, W, L], wp gear.WeightPolicy[W]) *Dijkstra[V, W, L] {
	return &Dijkstra[V, W, L]{NewDijkstraFlex[V, V, W, L](forward, backward, dijkstraIdentity[V], gear.NewDefaultGear[V, V, W](wp))}
}

func dijkstraIdentity[V comparable](v V) V { return v }
