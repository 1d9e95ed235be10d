package dfs_test

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/lazytraverse/dfs"
	"github.com/katalvlaran/lazytraverse/edge"
)

func ExampleDFS_backEdgeClassification() {
	adj := map[int][]int{0: {1}, 1: {2}, 2: {0}}
	next := edge.FromVertices[int, struct{}, struct{}](func(v int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, n := range adj[v] {
				if !yield(n) {
					return
				}
			}
		}
	})

	run, _ := dfs.New(next).StartFrom([]int{0}, dfs.WithEvents[int](dfs.EnteringAny|dfs.BackEdge))
	ctx := context.Background()
	for run.Next(ctx) {
		switch run.Event() {
		case dfs.EnteringStart, dfs.EnteringSuccessor:
			fmt.Println("enter", run.Vertex())
		case dfs.BackEdge:
			from, e := run.Edge()
			fmt.Printf("back edge %d->%d\n", from, e.To)
		}
	}

	// Output:
	// enter 0
	// enter 1
	// enter 2
	// back edge 2->0
}
