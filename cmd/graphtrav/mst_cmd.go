package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazytraverse/edge"
	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/katalvlaran/lazytraverse/mst"
)

func newMSTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mst",
		Short: "Jarnik/Prim/Dijkstra minimum spanning forest, reporting edges in weight-nondecreasing order",
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
			run, err := mst.New(next, gear.IntPolicy()).StartFrom([]int{start})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"from", "to", "weight"})
			ctx := context.Background()
			for run.Next(ctx) {
				t.AppendRow(table.Row{run.Edge.From, run.Edge.To, run.Edge.Weight})
			}
			if run.Err() != nil {
				return fmt.Errorf("mst: %w", run.Err())
			}
			t.Render()
			return nil
		},
	}
}
