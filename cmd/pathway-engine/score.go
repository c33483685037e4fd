// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/score"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <reaction-id>",
	Short: "Score a single KEGG reaction",
	Long: `Score fetches a reaction record and prints its feature vector and
weighted cost. The direction selects which way the equation is read;
reverse scoring swaps the substrate and product sides.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("direction", "forward", "reading direction (forward or reverse)")
	scoreCmd.Flags().String("weights", "", "YAML file overriding the configured feature weights")
	scoreCmd.Flags().Bool("json", false, "output the score as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || !reactionIDPattern.MatchString(args[0]) {
		return fmt.Errorf("provide one reaction identifier (e.g. R00200)")
	}

	dirStr, _ := cmd.Flags().GetString("direction")
	dir, err := types.ParseDirection(dirStr)
	if err != nil {
		return err
	}
	weights, err := loadWeights(cmd)
	if err != nil {
		return err
	}

	scorer := score.NewScorer(newKEGGClient())
	cost, features, err := scorer.ScoreReaction(cmd.Context(), args[0], dir, weights)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Reaction  string              `json:"reaction"`
			Direction string              `json:"direction"`
			Features  types.FeatureVector `json:"features"`
			Cost      float64             `json:"cost"`
		}{args[0], dir.String(), features, cost})
	}

	fmt.Printf("%s (%s)\n", args[0], dir)
	fmt.Printf("  atp         %8.3f\n", features.ATP)
	fmt.Printf("  redox       %8.3f\n", features.Redox)
	fmt.Printf("  o2          %8.3f\n", features.O2)
	fmt.Printf("  co2         %8.3f\n", features.CO2)
	fmt.Printf("  complexity  %8.3f\n", features.Complexity)
	fmt.Printf("  precedent   %8.3f\n", features.Precedent)
	fmt.Printf("cost: %.4f\n", cost)
	return nil
}
