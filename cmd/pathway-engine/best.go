// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/subpath"
)

var bestCmd = &cobra.Command{
	Use:   "best <map-id> <compound-id>",
	Short: "Find the cheapest subpathway consuming a compound",
	Long: `Best enumerates the candidate subpathways that consume the target
compound inside a pathway map, scores each, and prints the cheapest one
with per-step costs, candidate statistics, and a KEGG diagram URL with
the winning reactions highlighted.`,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().String("weights", "", "YAML file overriding the configured feature weights")
	bestCmd.Flags().String("out", "", "save the result as YAML")

	rootCmd.AddCommand(bestCmd)
}

func runBest(cmd *cobra.Command, args []string) error {
	if len(args) != 2 || !compoundIDPattern.MatchString(args[1]) {
		return fmt.Errorf("usage: best <map-id> <compound-id> (e.g. best map00620 C00022)")
	}
	mapID, compoundID := args[0], args[1]

	weights, err := loadWeights(cmd)
	if err != nil {
		return err
	}

	res, err := subpath.Best(cmd.Context(), newKEGGClient(), mapID, compoundID, weights, os.Stdout)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Printf("no subpathway found for %s in %s\n", compoundID, mapID)
		return nil
	}

	fmt.Printf("\nbest subpathway for %s in %s:\n", compoundID, mapID)
	for _, s := range res.Steps {
		fmt.Printf("  %s %-8s %8.4f  %s\n", s.ReactionID, s.Direction, s.Cost, s.Definition)
	}
	fmt.Printf("total cost: %.4f\n", res.TotalCost)

	c := res.Candidates
	fmt.Printf("candidates: %d (min %.4f, median %.4f, mean %.4f, max %.4f)\n",
		c.Count, c.Min, c.Median, c.Mean, c.Max)
	fmt.Printf("highlight: %s\n", res.HighlightURL)

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := subpath.WriteResultFile(out, *res, weights); err != nil {
			return err
		}
		fmt.Printf("saved result to %s\n", out)
	}
	return nil
}
