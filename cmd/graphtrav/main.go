// Command graphtrav runs a lazytraverse strategy over a small built-in
// toy graph and renders the result as a table, exercising the library's
// public API the way a real downstream consumer would.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "graphtrav",
		Short:         "Run a lazytraverse strategy over a built-in toy graph",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().String("graph", "diamond", fmt.Sprintf("graph preset to traverse (%v)", presetNames()))
	cmd.PersistentFlags().Int("start", 0, "start vertex")

	cmd.AddCommand(newBFSCmd())
	cmd.AddCommand(newDijkstraCmd())
	cmd.AddCommand(newTopoSortCmd())
	cmd.AddCommand(newMSTCmd())

	return cmd
}

func resolvePreset(cmd *cobra.Command) (preset, error) {
	name, err := cmd.Flags().GetString("graph")
	if err != nil {
		return preset{}, err
	}
	return lookupPreset(name)
}
