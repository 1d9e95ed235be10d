package dijkstra_test

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazytraverse/dijkstra"
	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
)

type wedge struct {
	to int
	w  int
}

func weighted(adj map[int][]wedge) func(int) iter.Seq2[int, int] {
	return func(v int) iter.Seq2[int, int] {
		return func(yield func(int, int) bool) {
			for _, e := range adj[v] {
				if !yield(e.to, e.w) {
					return
				}
			}
		}
	}
}

// diamondWeighted is spec.md §8 scenario 2: 0->1:2, 0->2:1, 1->3:2, 2->3:2.
func diamondWeighted() edge.Unified[int, int, struct{}] {
	adj := map[int][]wedge{
		0: {{1, 2}, {2, 1}},
		1: {{3, 2}},
		2: {{3, 2}},
	}
	return edge.FromWeightedEdges[int, int, struct{}](weighted(adj))
}

func TestDijkstra_DiamondWeighted_ScenarioTwo(t *testing.T) {
	d := dijkstra.New(diamondWeighted(), gear.IntPolicy())
	run, err := d.StartFrom([]int{0}, dijkstra.WithBuildPaths[int, int, int]())
	require.NoError(t, err)

	var vertices, distances []int
	ctx := context.Background()
	for run.Next(ctx) {
		vertices = append(vertices, run.Vertex())
		distances = append(distances, run.Distance)
	}
	require.NoError(t, run.Err())

	assert.Equal(t, []int{2, 1, 3}, vertices)
	assert.Equal(t, []int{1, 2, 3}, distances)

	view, err := run.Paths.To(3)
	require.NoError(t, err)
	var path []int
	for v := range view.VerticesFromStart() {
		path = append(path, v)
	}
	assert.Equal(t, []int{0, 2, 3}, path)
}

// spiralNext is the spiral edge generator of spec.md §8 scenario 3: an
// edge to i+1 for every i, an edge to i+6 for even i, and a weight-1 edge
// back to i-6 for odd i > 5, which the expected path (..., 17, 11, 5) uses.
func spiralNext(i int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		w1 := ((i+i/6)%6)*2 + 1
		if !yield(i+1, w1) {
			return
		}
		if i%2 == 0 {
			w2 := 7 - ((i + i/6) % 6)
			yield(i+6, w2)
		} else if i > 5 {
			yield(i-6, 1)
		}
	}
}

func TestDijkstra_Spiral_ScenarioThree(t *testing.T) {
	d := dijkstra.New(edge.FromWeightedEdges[int, int, struct{}](spiralNext), gear.IntPolicy())
	run, err := d.StartFrom([]int{0}, dijkstra.WithBuildPaths[int, int, int]())
	require.NoError(t, err)

	ctx := context.Background()
	for run.Next(ctx) {
		if run.Vertex() == 5 {
			break
		}
	}
	require.NoError(t, run.Err())
	assert.Equal(t, 5, run.Vertex())
	assert.Equal(t, 24, run.Distance)

	view, err := run.Paths.To(5)
	require.NoError(t, err)
	var path []int
	for v := range view.VerticesFromStart() {
		path = append(path, v)
	}
	require.True(t, len(path) >= 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path[:5])
	assert.Equal(t, 5, path[len(path)-1])
	assert.Equal(t, 11, path[len(path)-2])
}

func TestDijkstra_StaleHeapEntryDiscarded(t *testing.T) {
	adj := map[int][]wedge{
		0: {{1, 5}, {2, 1}},
		2: {{1, 1}},
	}
	d := dijkstra.New(edge.FromWeightedEdges[int, int, struct{}](weighted(adj)), gear.IntPolicy())
	run, err := d.StartFrom([]int{0})
	require.NoError(t, err)

	ctx := context.Background()
	var order []int
	for run.Next(ctx) {
		order = append(order, run.Vertex())
	}
	require.NoError(t, run.Err())
	assert.Equal(t, []int{2, 1}, order)
}

func TestDijkstra_KeepDistancesPreservesFinalValue(t *testing.T) {
	adj := map[int][]wedge{0: {{1, 3}}}
	known := gear.NewDefaultGear[int, int, int](gear.IntPolicy()).NewDistances()
	d := dijkstra.New(edge.FromWeightedEdges[int, int, struct{}](weighted(adj)), gear.IntPolicy())
	run, err := d.StartFrom([]int{0}, dijkstra.WithKeepDistances[int, int, int](), dijkstra.WithKnownDistances[int, int, int](known))
	require.NoError(t, err)

	ctx := context.Background()
	require.True(t, run.Next(ctx)) // vertex 1, distance 3 (0 is the start, never reported)
	assert.Equal(t, 1, run.Vertex())
	assert.Equal(t, 3, run.Distance)
	d1, ok := known.Get(1)
	require.True(t, ok)
	assert.Equal(t, 3, d1) // kept, not reset to zero, because of WithKeepDistances
}

func TestDijkstra_NonTreeResetsFinalisedDistanceToZero(t *testing.T) {
	adj := map[int][]wedge{0: {{1, 3}}}
	known := gear.NewDefaultGear[int, int, int](gear.IntPolicy()).NewDistances()
	d := dijkstra.New(edge.FromWeightedEdges[int, int, struct{}](weighted(adj)), gear.IntPolicy())
	run, err := d.StartFrom([]int{0}, dijkstra.WithKnownDistances[int, int, int](known))
	require.NoError(t, err)

	ctx := context.Background()
	require.True(t, run.Next(ctx)) // vertex 1, distance 3, then reset to zero in the map
	assert.Equal(t, 3, run.Distance)
	d1, ok := known.Get(1)
	require.True(t, ok)
	assert.Equal(t, 0, d1)
}

func TestDijkstra_StartVertexNeverReported(t *testing.T) {
	d := dijkstra.New(diamondWeighted(), gear.IntPolicy())
	run, err := d.StartFrom([]int{0})
	require.NoError(t, err)

	var vertices []int
	ctx := context.Background()
	for run.Next(ctx) {
		vertices = append(vertices, run.Vertex())
	}
	require.NoError(t, run.Err())
	assert.NotContains(t, vertices, 0)
}

func TestDijkstra_CalculationLimit(t *testing.T) {
	d := dijkstra.New(diamondWeighted(), gear.IntPolicy())
	run, err := d.StartFrom([]int{0}, dijkstra.WithCalculationLimit[int, int, int](1))
	require.NoError(t, err)

	ctx := context.Background()
	require.True(t, run.Next(ctx))
	require.False(t, run.Next(ctx))
	require.Error(t, run.Err())
}

func TestDijkstra_EmptyStart(t *testing.T) {
	d := dijkstra.New(diamondWeighted(), gear.IntPolicy())
	_, err := d.StartFrom(nil)
	assert.Error(t, err)
}

func TestDijkstra_GoTo(t *testing.T) {
	d := dijkstra.New(diamondWeighted(), gear.IntPolicy())
	run, err := d.StartFrom([]int{0})
	require.NoError(t, err)

	ok, err := run.GoTo(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, run.Vertex())
}
