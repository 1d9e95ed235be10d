package astar_test

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/lazytraverse/astar"
	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
)

// spec.md §8 scenario 4: with an admissible heuristic, A* reports the goal
// at its true shortest distance via the cheaper of the two middle routes.
func ExampleAStar_admissibleHeuristic() {
	adj := map[int][]struct {
		to int
		w  int
	}{
		0: {{1, 3}, {2, 3}, {4, 1}},
		1: {{3, 3}},
		2: {{3, 2}},
	}
	next := edge.FromWeightedEdges[int, int, struct{}](func(v int) iter.Seq2[int, int] {
		return func(yield func(int, int) bool) {
			for _, e := range adj[v] {
				if !yield(e.to, e.w) {
					return
				}
			}
		}
	})
	wp := gear.IntPolicy()
	h := map[int]int{0: 6, 1: 1, 2: 2, 3: 0, 4: wp.Infinity()}

	run, _ := astar.New(next, func(v int) int { return h[v] }, wp).
		StartFrom([]int{0}, astar.WithBuildPaths[int, int, int]())
	ctx := context.Background()
	for run.Next(ctx) {
		if run.Vertex() == 3 {
			break
		}
	}
	fmt.Println("path length to 3:", run.PathLength)

	// Output:
	// path length to 3: 5
}
