// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/pathgraph"
)

var graphCmd = &cobra.Command{
	Use:   "graph <compound-id>",
	Short: "Build the reaction graph around a seed compound",
	Long: `Graph walks the KEGG reaction network breadth-first from a seed
compound, adding substrate-to-product edges for every reaction
encountered, and prints the network size. With --precursors N it also
lists the compounds that can reach the seed within N steps, resolved to
their names.`,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().Int("depth", 2, "BFS expansion depth (0 expands until exhaustion)")
	graphCmd.Flags().Int("precursors", 0, "list precursors within N steps of the seed")

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || !compoundIDPattern.MatchString(args[0]) {
		return fmt.Errorf("provide one compound identifier (e.g. C00022)")
	}
	seed := args[0]
	depth, _ := cmd.Flags().GetInt("depth")
	steps, _ := cmd.Flags().GetInt("precursors")

	client := newKEGGClient()
	g, err := pathgraph.Build(cmd.Context(), client, seed, depth, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("graph: %d species, %d edges\n", len(g.Nodes()), g.EdgeCount())

	if steps > 0 {
		ids := g.Precursors(seed, steps)
		precursors, err := pathgraph.ResolveNames(cmd.Context(), client, ids)
		if err != nil {
			return err
		}
		fmt.Printf("\n%d precursors within %d steps of %s:\n", len(precursors), steps, seed)
		for _, p := range precursors {
			fmt.Printf("  %s  %s\n", p.ID, p.Name)
		}
	}
	return nil
}
