// Package toposort reports the vertices of a caller-supplied graph in
// topological order (children before parents), with a fast cycle-free mode
// and a default mode that raises a structured cycle error carrying the
// offending start-to-cycle trace.
package toposort
