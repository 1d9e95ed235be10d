package bidirectional_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazytraverse/bidirectional"
	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
)

type wedge struct {
	to     int
	weight int
}

func weighted(adj map[int][]wedge) func(int) iter.Seq2[int, int] {
	return func(v int) iter.Seq2[int, int] {
		return func(yield func(int, int) bool) {
			for _, e := range adj[v] {
				if !yield(e.to, e.weight) {
					return
				}
			}
		}
	}
}

// weighted diamond, matching the dijkstra package's scenario two: the
// cheap path through 2 (1+2=3) beats the path through 1 (2+2=4).
func weightedDiamondForward() map[int][]wedge {
	return map[int][]wedge{
		0: {{1, 2}, {2, 1}},
		1: {{3, 2}},
		2: {{3, 2}},
	}
}

func weightedDiamondBackward() map[int][]wedge {
	return map[int][]wedge{
		1: {{0, 2}},
		2: {{0, 1}},
		3: {{1, 2}, {2, 2}},
	}
}

func TestDijkstra_DiamondShortestViaCheaperLeg(t *testing.T) {
	fwd := edge.FromWeightedEdges[int, int, struct{}](weighted(weightedDiamondForward()))
	bwd := edge.FromWeightedEdges[int, int, struct{}](weighted(weightedDiamondBackward()))

	s := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy())
	res, err := s.Search([]int{0}, []int{3})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3, res.Distance)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
}

func TestDijkstra_StartEqualsGoal(t *testing.T) {
	fwd := edge.FromWeightedEdges[int, int, struct{}](weighted(weightedDiamondForward()))
	bwd := edge.FromWeightedEdges[int, int, struct{}](weighted(weightedDiamondBackward()))

	s := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy())
	res, err := s.Search([]int{0}, []int{0})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Distance)
	assert.Equal(t, []int{0}, res.Path)
}

func TestDijkstra_NoPathReturnsErrorByDefault(t *testing.T) {
	fwd := edge.FromWeightedEdges[int, int, struct{}](weighted(map[int][]wedge{0: {{1, 1}}}))
	bwd := edge.FromWeightedEdges[int, int, struct{}](weighted(map[int][]wedge{1: {{0, 1}}}))

	s := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy())
	_, err := s.Search([]int{0}, []int{99})
	assert.Error(t, err)
}

func TestDijkstra_NoPathFailSilentlyReturnsSentinel(t *testing.T) {
	fwd := edge.FromWeightedEdges[int, int, struct{}](weighted(map[int][]wedge{0: {{1, 1}}}))
	bwd := edge.FromWeightedEdges[int, int, struct{}](weighted(map[int][]wedge{1: {{0, 1}}}))

	s := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy())
	res, err := s.Search([]int{0}, []int{99}, bidirectional.WithDijkstraFailSilently[int, int, int]())
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, gear.IntPolicy().Infinity(), res.Distance)
}

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	fwd := edge.FromWeightedEdges[int, int, struct{}](weighted(map[int][]wedge{0: {{1, -1}}}))
	bwd := edge.FromWeightedEdges[int, int, struct{}](weighted(map[int][]wedge{1: {{0, -1}}}))

	s := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy())
	_, err := s.Search([]int{0}, []int{1})
	assert.ErrorIs(t, err, bidirectional.ErrNegativeWeight)
}

func TestDijkstra_EmptyStartOrGoal(t *testing.T) {
	fwd := edge.FromWeightedEdges[int, int, struct{}](weighted(weightedDiamondForward()))
	bwd := edge.FromWeightedEdges[int, int, struct{}](weighted(weightedDiamondBackward()))
	s := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy())

	_, err := s.Search(nil, []int{3})
	assert.Error(t, err)
	_, err = s.Search([]int{0}, nil)
	assert.Error(t, err)
}
