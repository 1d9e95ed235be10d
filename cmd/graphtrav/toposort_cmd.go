package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/toposort"
)

// allVertices returns every vertex with an out-edge in p, plus every
// vertex named as a target, sorted for a deterministic start order.
func allVertices(p preset) []int {
	seen := make(map[int]struct{})
	for v, edges := range p.adj {
		seen[v] = struct{}{}
		for _, e := range edges {
			seen[e.to] = struct{}{}
		}
	}
	vs := make([]int, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

func newTopoSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toposort",
		Short: "Topological ordering of the whole graph, starting from every vertex",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePreset(cmd)
			if err != nil {
				return err
			}

			next := edge.FromVertices[int, any, any](p.unweightedNext)
			run, err := toposort.New[int, any, any](next).StartFrom(allVertices(p))
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"order", "vertex"})
			ctx := context.Background()
			order := 0
			for run.Next(ctx) {
				order++
				t.AppendRow(table.Row{order, run.Vertex()})
			}
			if run.Err() != nil {
				return fmt.Errorf("toposort: %w", run.Err())
			}
			t.Render()
			return nil
		},
	}
}
