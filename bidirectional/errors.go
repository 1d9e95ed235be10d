package bidirectional

import "errors"

// ErrNegativeWeight is returned by the Dijkstra variant when a relaxed
// edge carries a negative weight, mirroring dijkstra.ErrNegativeWeight.
var ErrNegativeWeight = errors.New("bidirectional: negative edge weight encountered")
