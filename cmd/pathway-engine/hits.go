// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/hmmer"
)

var hitsCmd = &cobra.Command{
	Use:   "hits <tblout-file>",
	Short: "Filter HMMER tblout hits by E-value",
	Long: `Hits parses an hmmsearch --tblout file, keeps the hits below the
E-value threshold, and prints score statistics plus the unique target
sequence identifiers.`,
	RunE: runHits,
}

func init() {
	hitsCmd.Flags().Float64("threshold", 0, "E-value cutoff (0 uses the default 1e-5)")
	hitsCmd.Flags().String("ids-out", "", "write the unique target IDs to this path")

	rootCmd.AddCommand(hitsCmd)
}

func runHits(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide one hmmsearch --tblout file")
	}
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	hits, err := hmmer.ParseFile(args[0])
	if err != nil {
		return err
	}
	kept := hmmer.Filter(hits, threshold)
	if threshold <= 0 {
		threshold = hmmer.DefaultThreshold
	}
	fmt.Printf("%d of %d hits pass E-value < %g\n", len(kept), len(hits), threshold)

	summary := hmmer.Summarize(kept)
	if summary.Count > 0 {
		fmt.Printf("E-value: min %.3g, median %.3g, max %.3g\n",
			summary.EValue.Min, summary.EValue.Median, summary.EValue.Max)
		fmt.Printf("score:   min %.1f, median %.1f, max %.1f\n",
			summary.Score.Min, summary.Score.Median, summary.Score.Max)
	}

	ids := hmmer.TargetIDs(kept)
	fmt.Printf("\n%d unique targets:\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}

	if idsOut, _ := cmd.Flags().GetString("ids-out"); idsOut != "" {
		if err := hmmer.WriteIDs(idsOut, ids); err != nil {
			return err
		}
		fmt.Printf("saved %d IDs to %s\n", len(ids), idsOut)
	}
	return nil
}
