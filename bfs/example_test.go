package bfs_test

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/lazytraverse/bfs"
	"github.com/katalvlaran/lazytraverse/edge"
)

// Diamond graph: 0->1, 0->2, 1->3, 2->3. BFS from 0 reports 1 and 2 at
// depth 1, then 3 at depth 2, taking the path through whichever neighbor
// of 0 the successor function listed first.
func ExampleBFS_diamond() {
	adj := map[int][]int{0: {1, 2}, 1: {3}, 2: {3}, 3: {}}
	next := edge.FromVertices[int, struct{}, struct{}](func(v int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, n := range adj[v] {
				if !yield(n) {
					return
				}
			}
		}
	})

	run, _ := bfs.New(next).StartFrom([]int{0}, bfs.WithBuildPaths[int, int]())
	ctx := context.Background()
	for run.Next(ctx) {
		fmt.Printf("vertex=%d depth=%d\n", run.Vertex(), run.Depth)
	}

	view, _ := run.Paths.To(3)
	var path []int
	for v := range view.VerticesFromStart() {
		path = append(path, v)
	}
	fmt.Println("path to 3:", path)

	// Output:
	// vertex=1 depth=1
	// vertex=2 depth=1
	// vertex=3 depth=2
	// path to 3: [0 1 3]
}
