package mst_test

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/mst"
)

// spec.md §8 scenario 5: edges (0,1,2),(0,2,1),(1,3,3),(2,3,3) from 0
// report the minimum spanning forest edges in weight-nondecreasing order.
func ExampleMST_scenarioFive() {
	adj := map[int][]struct {
		to int
		w  int
	}{
		0: {{1, 2}, {2, 1}},
		1: {{3, 3}},
		2: {{3, 3}},
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

	run, _ := mst.New(next, gear.IntPolicy()).StartFrom([]int{0})
	ctx := context.Background()
	for run.Next(ctx) {
		fmt.Printf("(%d,%d,%d)\n", run.Edge.From, run.Edge.To, run.Edge.Weight)
	}

	// Output:
	// (0,2,1)
	// (0,1,2)
	// (2,3,3)
}
