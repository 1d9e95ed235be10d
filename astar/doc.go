// Package astar lazily computes shortest paths over a caller-supplied
// weighted successor function plus a heuristic, using the same
// lazy-decrease-key min-heap as dijkstra, but keyed on distance-so-far
// plus the heuristic's path-length guess (spec.md §4.11). An admissible
// heuristic guarantees the first-reported goal is at its true shortest
// distance; a consistent heuristic additionally guarantees every vertex is
// popped at most once. Non-consistent heuristics are accepted without
// warning and may cause a vertex to be revisited with a cheaper guess.
package astar
