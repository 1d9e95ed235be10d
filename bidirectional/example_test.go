package bidirectional_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lazytraverse/bidirectional"
	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
)

// Unweighted diamond: 0->1, 0->2, 1->3, 2->3. The forward and backward
// frontiers meet after one level each, so the reported path has length 2.
func ExampleBFS_diamond() {
	fwdAdj := map[int][]int{0: {1, 2}, 1: {3}, 2: {3}}
	bwdAdj := map[int][]int{1: {0}, 2: {0}, 3: {1, 2}}
	toSeq := func(adj map[int][]int) func(int) iter.Seq[int] {
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

	fwd := edge.FromVertices[int, any, any](toSeq(fwdAdj))
	bwd := edge.FromVertices[int, any, any](toSeq(bwdAdj))

	res, _ := bidirectional.NewBFS(fwd, bwd).Search([]int{0}, []int{3})
	fmt.Println("found:", res.Found)
	fmt.Println("length:", res.Length)
	fmt.Println("path:", res.Path)

	// Output:
	// found: true
	// length: 2
	// path: [0 1 3]
}

// Weighted diamond, forward and backward adjacency supplied independently.
// The cheaper leg through 2 (1+2=3) beats the leg through 1 (2+2=4).
func ExampleDijkstra_diamond() {
	type wedge struct {
		to, w int
	}
	fwdAdj := map[int][]wedge{0: {{1, 2}, {2, 1}}, 1: {{3, 2}}, 2: {{3, 2}}}
	bwdAdj := map[int][]wedge{1: {{0, 2}}, 2: {{0, 1}}, 3: {{1, 2}, {2, 2}}}
	toSeq := func(adj map[int][]wedge) func(int) iter.Seq2[int, int] {
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

	fwd := edge.FromWeightedEdges[int, int, struct{}](toSeq(fwdAdj))
	bwd := edge.FromWeightedEdges[int, int, struct{}](toSeq(bwdAdj))

	res, _ := bidirectional.NewDijkstra(fwd, bwd, gear.IntPolicy()).Search([]int{0}, []int{3})
	fmt.Println("found:", res.Found)
	fmt.Println("distance:", res.Distance)
	fmt.Println("path:", res.Path)

	// Output:
	// found: true
	// distance: 3
	// path: [0 2 3]
}
