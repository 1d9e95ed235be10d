package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazytraverse/bfs"
	"github.com/katalvlaran/lazytraverse/edge"
)

func newBFSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first search, reporting vertices in non-decreasing depth order",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePreset(cmd)
			if err != nil {
				return err
			}
			start, err := cmd.Flags().GetInt("start")
			if err != nil {
				return err
			}

			next := edge.FromVertices[int, any, any](p.unweightedNext)
			run, err := bfs.New[int, any, any](next).StartFrom([]int{start})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"vertex", "depth"})
			ctx := context.Background()
			for run.Next(ctx) {
				t.AppendRow(table.Row{run.Vertex(), run.Depth})
			}
			if run.Err() != nil {
				return fmt.Errorf("bfs: %w", run.Err())
			}
			t.Render()
			return nil
		},
	}
}
