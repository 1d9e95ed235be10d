// Package dijkstra lazily computes single-source shortest paths over a
// caller-supplied weighted successor function: a lazy-decrease-key min-heap
// reports vertices in non-decreasing distance order, with optional path
// reconstruction, a distance cap, and overflow detection against the
// weight policy's infinity sentinel.
package dijkstra
