// Package dfs lazily explores a caller-supplied graph depth-first,
// reporting entering/leaving vertex events and back/forward/cross edge
// classifications as a pull-based event stream, across three modes:
// ModeTree (visit each vertex once), ModeAllPaths (enumerate every simple
// path), and ModeAllWalks (follow every edge unconditionally).
package dfs
