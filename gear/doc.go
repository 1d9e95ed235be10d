// Package gear provides the pluggable policy object ("Gear") that the
// traversal strategies in this module use to choose concrete container
// implementations for visited sets, predecessor/label maps, distance maps
// and index maps, plus the weight policy (zero, infinity, overflow check)
// used by the weighted strategies. Vertex sequences (stacks, queues,
// traces) are plain Go slices and are not chosen by the Gear.
//
// A Gear bundles five factories (vertex-id set, predecessor map, label map,
// distance map, index map) and a weight policy. Two families are provided:
//
//	Default  — hash-map backed, works for any comparable VId.
//	IntID    — backed by growable slices, for dense non-negative integer
//	           vertex ids; exposes a "sequence view" so hot loops can read
//	           and write the underlying slice directly instead of going
//	           through the Set/Map interface.
//
// Application code can supply its own Gear by implementing the Gear
// interface; the strategies never assume more than the interface promises.
package gear
