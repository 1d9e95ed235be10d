// Package mst computes a minimum spanning forest, rooted at the given
// start vertices, over a caller-supplied weighted successor function using
// the Jarnik/Prim/Dijkstra algorithm (spec.md §4.12): a min-heap of
// candidate out-edges, keyed on weight with an increasing tie-breaker
// (FIFO on ties, the opposite direction from dijkstra/astar). An edge is
// reported iff its head vertex is still unvisited at the moment it is
// popped from the heap.
package mst
