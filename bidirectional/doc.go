// Package bidirectional runs two simultaneous, alternating searches — one
// from the start set forward, one from the goal set backward along a
// caller-supplied reverse-adjacency successor function — until they meet
// (spec.md §4.14). The BFS variant stops at the first vertex reached by
// both sides; the Dijkstra variant keeps the best meeting distance seen
// and stops once the sum of the two frontier minima can no longer improve
// on it. Unlike the other
// strategy packages, a bidirectional search is not exposed as a
// pull-based iterator: the meeting point is only knowable once both
// frontiers have been advanced to convergence, so Search runs to
// completion and returns a single result.
package bidirectional
