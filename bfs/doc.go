// Package bfs lazily explores a caller-supplied graph breadth-first: the
// caller provides a successor function (via edge.FromVertices and friends)
// rather than a stored graph, and StartFrom returns a Run whose Next
// method reports one new vertex per call, at its correct unweighted
// shortest-path depth, until the reachable set is exhausted.
package bfs
