package bidirectional

import (
	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/straversal"
)

// Gear is the narrow slice of gear.Gear the bidirectional BFS variant
// needs per side, mirroring bfs.Gear: no weight policy or distance map is
// ever read.
type Gear[V any, VId comparable] interface {
	NewVisited() gear.VertexSet[VId]
	NewPredecessors() gear.VertexMap[VId, V]
}

// BFSResult is the outcome of one bidirectional BFS Search.
type BFSResult[V any] struct {
	// Found reports whether the two frontiers ever met.
	Found bool
	// Length is the number of edges on the shortest start-to-goal path, or
	// -1 if Found is false (spec.md §4.14's BFS sentinel).
	Length int
	// Meeting is the vertex where the forward and backward frontiers met.
	Meeting V
	// Path is the full vertex sequence from a start vertex to a goal
	// vertex through Meeting.
	Path []V
}

// BFSFlex is the explicit-configuration bidirectional BFS strategy. It
// alternates expanding the smaller of the forward/backward frontiers one
// full level at a time and declares the first vertex visited by both
// sides the meeting point — minimal because both sides advance in
// lockstep by depth (spec.md §4.14).
type BFSFlex[V any, VId comparable] struct {
	forward, backward edge.Unified[V, any, any]
	vertexToID        func(V) VId
	gear              Gear[V, VId]
}

// NewBFSFlex builds a Flex bidirectional BFS strategy over distinct
// forward and backward adjacency successor functions.
func NewBFSFlex[V any, VId comparable](
	forward, backward edge.Unified[V, any, any],
	vertexToID func(V) VId,
	g Gear[V, VId],
) *BFSFlex[V, VId] {
	return &BFSFlex[V, VId]{forward: forward, backward: backward, vertexToID: vertexToID, gear: g}
}

// Search runs the bidirectional BFS to completion.
func (s *BFSFlex[V, VId]) Search(starts, goals []V, opts ...BFSOption[V, VId]) (BFSResult[V], error) {
	if len(starts) == 0 || len(goals) == 0 {
		return BFSResult[V]{}, straversal.ErrMissingStart
	}
	o := DefaultBFSOptions[V, VId]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return BFSResult[V]{}, o.err
	}

	fwdVisited := s.gear.NewVisited()
	fwdPred := s.gear.NewPredecessors()
	bwdVisited := s.gear.NewVisited()
	bwdPred := s.gear.NewPredecessors()

	fwdFrontier := make([]V, 0, len(starts))
	for _, v := range starts {
		id := s.vertexToID(v)
		if fwdVisited.Has(id) {
			continue
		}
		fwdVisited.Add(id)
		fwdFrontier = append(fwdFrontier, v)
	}
	bwdFrontier := make([]V, 0, len(goals))
	for _, v := range goals {
		id := s.vertexToID(v)
		if bwdVisited.Has(id) {
			continue
		}
		bwdVisited.Add(id)
		bwdFrontier = append(bwdFrontier, v)
	}

	// start-equals-goal: zero-distance path of length 1 (spec.md §8
	// boundary behaviours).
	for _, v := range starts {
		if bwdVisited.Has(s.vertexToID(v)) {
			return BFSResult[V]{Found: true, Length: 0, Meeting: v, Path: []V{v}}, nil
		}
	}

	limit := straversal.NewCalculationLimit(o.CalculationLimit)
	fwdDepth, bwdDepth := 0, 0

	for len(fwdFrontier) > 0 || len(bwdFrontier) > 0 {
		select {
		case <-o.Ctx.Done():
			return BFSResult[V]{}, o.Ctx.Err()
		default:
		}

		expandForward := len(bwdFrontier) == 0 || (len(fwdFrontier) > 0 && len(fwdFrontier) <= len(bwdFrontier))

		if expandForward {
			fwdDepth++
			next := make([]V, 0)
			for _, v := range fwdFrontier {
				if err := limit.Consume(); err != nil {
					return bfsSentinelOrErr[V](o, err)
				}
				for e := range s.forward.Next(v) {
					nID := s.vertexToID(e.To)
					if fwdVisited.Has(nID) {
						continue
					}
					fwdVisited.Add(nID)
					fwdPred.Set(nID, v)
					next = append(next, e.To)
				}
			}
			fwdFrontier = next
			if meeting, ok := firstVisited(fwdFrontier, bwdVisited, s.vertexToID); ok {
				return bfsStitch(s.vertexToID, fwdPred, bwdPred, meeting, fwdDepth+bwdDepth), nil
			}
		} else {
			bwdDepth++
			next := make([]V, 0)
			for _, v := range bwdFrontier {
				if err := limit.Consume(); err != nil {
					return bfsSentinelOrErr[V](o, err)
				}
				for e := range s.backward.Next(v) {
					nID := s.vertexToID(e.To)
					if bwdVisited.Has(nID) {
						continue
					}
					bwdVisited.Add(nID)
					bwdPred.Set(nID, v)
					next = append(next, e.To)
				}
			}
			bwdFrontier = next
			if meeting, ok := firstVisited(bwdFrontier, fwdVisited, s.vertexToID); ok {
				return bfsStitch(s.vertexToID, fwdPred, bwdPred, meeting, fwdDepth+bwdDepth), nil
			}
		}
	}

	return bfsSentinelOrErr[V](o, straversal.ErrVertexNotFound)
}

// firstVisited returns the first vertex in candidates already present in
// other, if any.
func firstVisited[V any, VId comparable](candidates []V, other gear.VertexSet[VId], vertexToID func(V) VId) (V, bool) {
	for _, v := range candidates {
		if other.Has(vertexToID(v)) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// bfsStitch reconstructs the full start-to-goal path through meeting from
// the two independently built predecessor maps.
func bfsStitch[V any, VId comparable](
	vertexToID func(V) VId,
	fwdPred, bwdPred gear.VertexMap[VId, V],
	meeting V,
	length int,
) BFSResult[V] {
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
	return BFSResult[V]{Found: true, Length: length, Meeting: meeting, Path: path}
}

func bfsSentinelOrErr[V any, VId comparable](o BFSOptions[V, VId], err error) (BFSResult[V], error) {
	if o.FailSilently {
		return BFSResult[V]{Found: false, Length: -1}, nil
	}
	return BFSResult[V]{}, err
}

// BFS is the convenience, non-Flex alias.
type BFS[V comparable] struct {
	*BFSFlex[V, V]
}

// NewBFS builds a non-Flex bidirectional BFS strategy over comparable
// vertices, using the hash-backed default gear.
func NewBFS[V comparable](forward, backward edge.Unified[V, any, any]) *BFS[V] {
	return &BFS[V]{NewBFSFlex[V, V](forward, backward, bfsIdentity[V], gear.NewDefaultGear[V, V, int](gear.IntPolicy()))}
}

func bfsIdentity[V comparable](v V) V { return v }
