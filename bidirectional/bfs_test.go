package bidirectional_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazytraverse/bidirectional"
	"github.com/katalvlaran/lazytraverse/edge"
)

func neighborsOf(adj map[int][]int) func(int) iter.Seq[int] {
	return func(v int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, n := range adj[v] {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// diamond: 0->1, 0->2, 1->3, 2->3.
func diamondForward() map[int][]int {
	return map[int][]int{0: {1, 2}, 1: {3}, 2: {3}}
}

func diamondBackward() map[int][]int {
	return map[int][]int{1: {0}, 2: {0}, 3: {1, 2}}
}

func TestBFS_DiamondMeetsInTheMiddle(t *testing.T) {
	fwd := edge.FromVertices[int, any, any](neighborsOf(diamondForward()))
	bwd := edge.FromVertices[int, any, any](neighborsOf(diamondBackward()))

	s := bidirectional.NewBFS(fwd, bwd)
	res, err := s.Search([]int{0}, []int{3})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Length)
	assert.Contains(t, []int{1, 2}, res.Meeting)
	assert.Equal(t, 0, res.Path[0])
	assert.Equal(t, 3, res.Path[len(res.Path)-1])
	assert.Len(t, res.Path, 3)
}

func TestBFS_StartEqualsGoal(t *testing.T) {
	fwd := edge.FromVertices[int, any, any](neighborsOf(diamondForward()))
	bwd := edge.FromVertices[int, any, any](neighborsOf(diamondBackward()))

	s := bidirectional.NewBFS(fwd, bwd)
	res, err := s.Search([]int{0}, []int{0})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Length)
	assert.Equal(t, []int{0}, res.Path)
}

func TestBFS_NoPathReturnsErrorByDefault(t *testing.T) {
	adj := map[int][]int{0: {1}}
	fwd := edge.FromVertices[int, any, any](neighborsOf(adj))
	bwd := edge.FromVertices[int, any, any](neighborsOf(map[int][]int{1: {0}}))

	s := bidirectional.NewBFS(fwd, bwd)
	_, err := s.Search([]int{0}, []int{99})
	assert.Error(t, err)
}

func TestBFS_NoPathFailSilentlyReturnsSentinel(t *testing.T) {
	adj := map[int][]int{0: {1}}
	fwd := edge.FromVertices[int, any, any](neighborsOf(adj))
	bwd := edge.FromVertices[int, any, any](neighborsOf(map[int][]int{1: {0}}))

	s := bidirectional.NewBFS(fwd, bwd)
	res, err := s.Search([]int{0}, []int{99}, bidirectional.WithBFSFailSilently[int, int]())
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.Length)
}

func TestBFS_EmptyStartOrGoal(t *testing.T) {
	fwd := edge.FromVertices[int, any, any](neighborsOf(diamondForward()))
	bwd := edge.FromVertices[int, any, any](neighborsOf(diamondBackward()))
	s := bidirectional.NewBFS(fwd, bwd)

	_, err := s.Search(nil, []int{3})
	assert.Error(t, err)
	_, err = s.Search([]int{0}, nil)
	assert.Error(t, err)
}
