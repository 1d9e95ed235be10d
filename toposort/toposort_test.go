package toposort_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/toposort"
)

func adjNext(adj map[string][]string) edge.Unified[string, struct{}, struct{}] {
	return edge.FromVertices[string, struct{}, struct{}](func(v string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, n := range adj[v] {
				if !yield(n) {
					return
				}
			}
		}
	})
}

func morningRoutine() map[string][]string {
	return map[string][]string{
		"drink_coffee": {"make_coffee"},
		"make_coffee":  {"stand_up", "get_water"},
		"get_water":    {"stand_up"},
		"stand_up":     {},
	}
}

func TestTopoSort_MorningRoutine(t *testing.T) {
	run, err := toposort.New(adjNext(morningRoutine())).StartFrom([]string{"drink_coffee"})
	require.NoError(t, err)

	var order []string
	ctx := context.Background()
	for run.Next(ctx) {
		order = append(order, run.Vertex())
	}
	require.NoError(t, run.Err())
	assert.Equal(t, []string{"stand_up", "get_water", "make_coffee", "drink_coffee"}, order)
}

func TestTopoSort_CycleDetected(t *testing.T) {
	adj := morningRoutine()
	adj["get_water"] = append(adj["get_water"], "make_coffee")
	run, err := toposort.New(adjNext(adj)).StartFrom([]string{"drink_coffee"})
	require.NoError(t, err)

	ctx := context.Background()
	for run.Next(ctx) {
	}
	require.Error(t, run.Err())

	var cycleErr *toposort.CycleError[string]
	require.True(t, errors.As(run.Err(), &cycleErr))
	assert.True(t, errors.Is(run.Err(), toposort.ErrCycleDetected))
	assert.NotEmpty(t, cycleErr.CycleFromStart)
	assert.Equal(t, "make_coffee", cycleErr.CycleFromStart[len(cycleErr.CycleFromStart)-1])
}

func TestTopoSort_TreeMode_SkipsCycleCheck(t *testing.T) {
	// A self-loop would make ModeGeneral fail; ModeTree trusts the caller
	// and simply never revisits an already-visited vertex.
	adj := adjNext(map[string][]string{"a": {"a", "b"}, "b": {}})
	run, err := toposort.New(adj).StartFrom([]string{"a"}, toposort.WithTree[string, string]())
	require.NoError(t, err)

	var order []string
	ctx := context.Background()
	for run.Next(ctx) {
		order = append(order, run.Vertex())
	}
	require.NoError(t, run.Err())
	assert.Equal(t, []string{"b", "a"}, order)
}

func TestTopoSort_EmptyStart(t *testing.T) {
	_, err := toposort.New(adjNext(morningRoutine())).StartFrom(nil)
	assert.Error(t, err)
}

func TestTopoSort_Edge_u_after_v(t *testing.T) {
	run, err := toposort.New(adjNext(morningRoutine())).StartFrom([]string{"drink_coffee"})
	require.NoError(t, err)

	position := map[string]int{}
	ctx := context.Background()
	i := 0
	for run.Next(ctx) {
		position[run.Vertex()] = i
		i++
	}
	require.NoError(t, run.Err())
	for u, succs := range morningRoutine() {
		for _, v := range succs {
			assert.Less(t, position[v], position[u])
		}
	}
}
