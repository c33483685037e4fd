// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/score"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

var subpathwayCmd = &cobra.Command{
	Use:   "subpathway <step>...",
	Short: "Score an explicit sequence of reactions",
	Long: `Subpathway scores a reaction sequence and prints per-step costs and the
total. Steps are reaction identifiers, read forward by default; a leading
minus reads a step in reverse ("R00200" forward, "-R00200" reverse). When
the first step is reversed, separate it from the flags with "--":

  pathway-engine subpathway -- -R00200 R00235`,
	RunE: runSubpathway,
}

func init() {
	subpathwayCmd.Flags().String("weights", "", "YAML file overriding the configured feature weights")
	// Reversed steps start with "-"; without this, flag parsing would eat
	// every step after the first reversed one.
	subpathwayCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(subpathwayCmd)
}

func parseSteps(args []string) (types.Subpathway, error) {
	steps := make(types.Subpathway, 0, len(args))
	for _, arg := range args {
		dir := types.Forward
		id := arg
		if strings.HasPrefix(arg, "-") {
			dir = types.Reverse
			id = strings.TrimPrefix(arg, "-")
		}
		if !reactionIDPattern.MatchString(id) {
			return nil, fmt.Errorf("bad step %q (want R00200 or -R00200)", arg)
		}
		steps = append(steps, types.Step{ReactionID: id, Direction: dir})
	}
	return steps, nil
}

func runSubpathway(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more steps (\"R00200\" forward, \"-R00200\" reverse)")
	}
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	weights, err := loadWeights(cmd)
	if err != nil {
		return err
	}

	scorer := score.NewScorer(newKEGGClient())
	total, scored, err := scorer.ScoreSubpathway(cmd.Context(), steps, weights, os.Stdout)
	if err != nil {
		return err
	}

	for _, s := range scored {
		fmt.Printf("%s %-8s %8.4f  %s\n", s.ReactionID, s.Direction, s.Cost, s.Definition)
	}
	fmt.Printf("total cost: %.4f\n", total)
	return nil
}
