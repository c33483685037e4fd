// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/kegg"
)

var pathwaysCmd = &cobra.Command{
	Use:   "pathways <compound-id-or-name>",
	Short: "List the pathway maps containing a compound",
	Long: `Pathways resolves a compound, by identifier or by free-text name
search, and lists the KEGG pathway maps that contain it. A name search
may match several compounds; their pathways are combined.`,
	RunE: runPathways,
}

func init() {
	rootCmd.AddCommand(pathwaysCmd)
}

func runPathways(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide a compound identifier or name (e.g. C00022 or pyruvate)")
	}
	query := args[0]
	client := newKEGGClient()

	var compounds []kegg.CompoundHit
	if compoundIDPattern.MatchString(query) {
		hit := kegg.CompoundHit{ID: query}
		if name, err := client.CompoundName(cmd.Context(), query); err == nil && name != "" {
			hit.Names = []string{name}
		}
		compounds = []kegg.CompoundHit{hit}
	} else {
		var err error
		compounds, err = client.FindCompounds(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(compounds) == 0 {
			fmt.Printf("no compounds match %q\n", query)
			return nil
		}
	}

	pathways := map[string]bool{}
	for _, c := range compounds {
		ids, err := client.PathwaysForCompound(cmd.Context(), c.ID)
		if err != nil {
			fmt.Printf("  warning: %s pathway link failed: %v\n", c.ID, err)
			continue
		}
		label := c.ID
		if len(c.Names) > 0 {
			label = fmt.Sprintf("%s (%s)", c.ID, c.Names[0])
		}
		fmt.Printf("%s: %d pathways\n", label, len(ids))
		for _, id := range ids {
			pathways[id] = true
		}
	}

	sorted := make([]string, 0, len(pathways))
	for id := range pathways {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	fmt.Printf("\n%d pathway maps:\n", len(sorted))
	for _, id := range sorted {
		fmt.Printf("  %s\n", id)
	}
	return nil
}
