// Package ntd lazily explores a caller-supplied graph by reporting every
// successor of the vertex currently being expanded, in the order the
// successor function yields them, before descending depth-first into the
// first of them.
package ntd
