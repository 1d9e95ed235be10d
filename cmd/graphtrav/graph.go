package main

import (
	"fmt"
	"iter"
)

// wedge is one weighted out-edge in a preset toy graph.
type wedge struct {
	to     int
	weight int
}

// preset names a small built-in graph, playing the same "downstream
// consumer" demonstration role as the teacher's examples/ snippets, but
// selectable by flag instead of hardcoded in a single main().
type preset struct {
	name string
	adj  map[int][]wedge
}

var presets = map[string]preset{
	"diamond": {
		name: "diamond",
		adj: map[int][]wedge{
			0: {{1, 2}, {2, 1}},
			1: {{3, 2}},
			2: {{3, 2}},
		},
	},
	"fanout": {
		name: "fanout",
		adj: map[int][]wedge{
			0: {{1, 4}, {2, 1}, {3, 7}},
			1: {{4, 1}},
			2: {{1, 2}, {4, 6}},
			3: {{4, 1}},
		},
	},
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	return names
}

func lookupPreset(name string) (preset, error) {
	p, ok := presets[name]
	if !ok {
		return preset{}, fmt.Errorf("unknown graph preset %q (known: %v)", name, presetNames())
	}
	return p, nil
}

// weightedNext yields p's out-edges for v, weights included.
func (p preset) weightedNext(v int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, e := range p.adj[v] {
			if !yield(e.to, e.weight) {
				return
			}
		}
	}
}

// unweightedNext yields p's out-edges for v, weights discarded.
func (p preset) unweightedNext(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range p.adj[v] {
			if !yield(e.to) {
				return
			}
		}
	}
}
