// Package lazytraverse is a library of lazy graph-traversal strategies
// over caller-supplied, possibly infinite or on-the-fly-generated graphs.
//
// Every strategy — bfs, dfs, ntd, toposort, dijkstra, astar, mst,
// infbranch, bidirectional — is driven by a successor function (built
// with one of edge.FromVertices, edge.FromWeightedEdges,
// edge.FromLabeledEdges or edge.FromWeightedLabeledEdges) instead of a
// stored graph type: there is no Graph, Vertex or Edge container to
// populate and no locking, since nothing here is shared across
// goroutines.
//
// Each package exposes two entry points: a Flex variant taking an
// explicit vertex-to-id function and a gear.Gear (for vertex types that
// are not themselves comparable, or that need a non-default container
// backing), and a plain convenience alias for comparable vertex types.
// Both return a pull-based Run: calling Next(ctx) advances the search by
// exactly one reported vertex (or, for mst, one reported edge), and
// Vertex()/Err() expose the current result.
//
// bidirectional is the one exception: since its meeting point is only
// knowable once both frontiers converge, it exposes a single-shot
// Search(starts, goals, opts...) instead of a lazy Run.
//
//	go get github.com/katalvlaran/lazytraverse
package lazytraverse
