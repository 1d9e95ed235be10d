package dfs_test

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazytraverse/dfs"
	"github.com/katalvlaran/lazytraverse/edge"
)

func adjNext(adj map[int][]int) edge.Unified[int, struct{}, struct{}] {
	return edge.FromVertices[int, struct{}, struct{}](func(v int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, n := range adj[v] {
				if !yield(n) {
					return
				}
			}
		}
	})
}

func diamond() edge.Unified[int, struct{}, struct{}] {
	return adjNext(map[int][]int{0: {1, 2}, 1: {3}, 2: {3}, 3: {}})
}

func TestDFS_Diamond_EnteringOrder(t *testing.T) {
	run, err := dfs.New(diamond()).StartFrom([]int{0})
	require.NoError(t, err)

	var order []int
	ctx := context.Background()
	for run.Next(ctx) {
		order = append(order, run.Vertex())
	}
	require.NoError(t, run.Err())
	// 0 enters, descends to 1, then 3; backtracks; 2's edge to 3 is a
	// cross edge (not requested by default, so silent); 2 itself still
	// enters since it was unvisited when reached from 0.
	assert.Equal(t, []int{0, 1, 3, 2}, order)
}

func TestDFS_Diamond_CrossEdgeClassification(t *testing.T) {
	run, err := dfs.New(diamond()).StartFrom([]int{0},
		dfs.WithEvents[int](dfs.EnteringAny|dfs.SomeNonTreeEdge),
		dfs.WithIndex[int](),
	)
	require.NoError(t, err)

	var crossSeen bool
	ctx := context.Background()
	for run.Next(ctx) {
		if run.Event() == dfs.CrossEdge {
			from, e := run.Edge()
			assert.Equal(t, 2, from)
			assert.Equal(t, 3, e.To)
			crossSeen = true
		}
	}
	require.NoError(t, run.Err())
	assert.True(t, crossSeen)
}

func TestDFS_BackEdge_Cycle(t *testing.T) {
	// 0->1->2->0 is a back edge at 2->0.
	adj := adjNext(map[int][]int{0: {1}, 1: {2}, 2: {0}})
	run, err := dfs.New(adj).StartFrom([]int{0}, dfs.WithEvents[int](dfs.EnteringAny|dfs.BackEdge))
	require.NoError(t, err)

	var sawBack bool
	ctx := context.Background()
	for run.Next(ctx) {
		if run.Event() == dfs.BackEdge {
			from, e := run.Edge()
			assert.Equal(t, 2, from)
			assert.Equal(t, 0, e.To)
			sawBack = true
		}
	}
	require.NoError(t, run.Err())
	assert.True(t, sawBack)
}

func TestDFS_BalancedBrackets(t *testing.T) {
	run, err := dfs.New(diamond()).StartFrom([]int{0}, dfs.WithEvents[int](dfs.EnteringAny|dfs.LeavingAny))
	require.NoError(t, err)

	depth := 0
	ctx := context.Background()
	for run.Next(ctx) {
		switch run.Event() {
		case dfs.EnteringStart, dfs.EnteringSuccessor:
			depth++
		case dfs.LeavingStart, dfs.LeavingSuccessor:
			depth--
			require.GreaterOrEqual(t, depth, 0)
		}
	}
	require.NoError(t, run.Err())
	assert.Equal(t, 0, depth)
}

func TestDFS_SkipExpansion(t *testing.T) {
	run, err := dfs.New(diamond()).StartFrom([]int{0}, dfs.WithEvents[int](dfs.EnteringAny|dfs.LeavingAny))
	require.NoError(t, err)

	ctx := context.Background()
	var order []int
	for run.Next(ctx) {
		order = append(order, run.Vertex())
		if run.Event() == dfs.EnteringSuccessor && run.Vertex() == 1 {
			require.NoError(t, run.SkipExpandingEnteredVertex())
		}
	}
	require.NoError(t, run.Err())
	// 1's expansion is skipped, so 3 is never entered via 1; it is still
	// reached via 2.
	assert.Equal(t, []int{0, 1, 1, 2, 3, 3, 2, 0}, order)
}

func TestDFS_AllPaths(t *testing.T) {
	run, err := dfs.New(diamond()).StartFrom([]int{0}, dfs.WithMode[int](dfs.ModeAllPaths))
	require.NoError(t, err)

	var order []int
	ctx := context.Background()
	for run.Next(ctx) {
		order = append(order, run.Vertex())
	}
	require.NoError(t, run.Err())
	// 3 is entered twice: once via 1, once via 2 (all simple paths).
	assert.Equal(t, []int{0, 1, 3, 2, 3}, order)
}

func TestDFS_EmptyStart(t *testing.T) {
	_, err := dfs.New(diamond()).StartFrom(nil)
	assert.Error(t, err)
}

func TestDFS_InvalidOptionCombination(t *testing.T) {
	_, err := dfs.New(diamond()).StartFrom([]int{0},
		dfs.WithEvents[int](dfs.BackEdge),
		dfs.WithMode[int](dfs.ModeAllWalks),
	)
	assert.ErrorIs(t, err, dfs.ErrNonTreeEventsUnsupported)
}
