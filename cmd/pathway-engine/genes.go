// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/genes"
)

var genesCmd = &cobra.Command{
	Use:   "genes <ec>...",
	Short: "Select organism-filtered genes for EC numbers",
	Long: `Genes resolves each EC number to its KEGG orthology groups and lists
the member genes belonging to the configured organisms. Organisms are
matched by KEGG code (eco) or full name (Escherichia coli K-12 MG1655);
with no filter every organism is kept.`,
	RunE: runGenes,
}

func init() {
	genesCmd.Flags().StringSlice("organisms", nil, "organism codes or names to keep")

	rootCmd.AddCommand(genesCmd)
}

func runGenes(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more EC numbers (e.g. 2.7.2.1)")
	}

	client := newKEGGClient()
	sel, err := genes.SelectForECs(cmd.Context(), client, args, organismFilter(cmd), os.Stdout)
	if err != nil {
		return err
	}
	for _, g := range sel.Genes {
		fmt.Printf("  %-16s %-12s %s\n", g.ID, g.EC, g.Organism)
	}
	return nil
}
