package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazytraverse/dijkstra"
	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
)

func newDijkstraCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dijkstra",
		Short: "Dijkstra's algorithm, reporting vertices in non-decreasing distance order",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePreset(cmd)
			if err != nil {
				return err
			}
			start, err := cmd.Flags().GetInt("start")
			if err != nil {
				return err
			}

			next := edge.FromWeightedEdges[int, int, struct{}](p.weightedNext)
			run, err := dijkstra.New(next, gear.IntPolicy()).StartFrom([]int{start})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"vertex", "distance"})
			ctx := context.Background()
			for run.Next(ctx) {
				t.AppendRow(table.Row{run.Vertex(), run.Distance})
			}
			if run.Err() != nil {
				return fmt.Errorf("dijkstra: %w", run.Err())
			}
			t.Render()
			return nil
		},
	}
}
