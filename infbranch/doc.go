// Package infbranch computes shortest paths over a caller-supplied
// weighted successor function whose out-edges are required to be yielded
// in ascending weight order, the way dijkstra does, but exploiting that
// ordering guarantee to terminate each vertex's expansion early — as soon
// as the running candidate distance exceeds the best distance already
// discovered — so the search stays correct and terminating even when a
// vertex's out-degree is unbounded (spec.md §4.13).
package infbranch
