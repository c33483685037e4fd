// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/modules"
)

var modulesCmd = &cobra.Command{
	Use:   "modules <pathway-id>",
	Short: "Discover pathway modules and extract their EC numbers",
	Long: `Modules fetches a pathway record, discovers the KEGG modules it
references, and extracts enzyme EC numbers. The default collects EC
numbers across the whole pathway; --per-module breaks them down by
module, and --module restricts extraction to one module.`,
	RunE: runModules,
}

func init() {
	modulesCmd.Flags().String("module", "", "extract a single module (e.g. M00567)")
	modulesCmd.Flags().Bool("per-module", false, "break the pathway down into its modules")
	modulesCmd.Flags().String("out", "", "save the extraction report as YAML")
	modulesCmd.Flags().String("ec-list", "", "save the combined EC numbers as a list file")

	rootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide one pathway identifier (e.g. ko00680, map00680, or 00680)")
	}
	pathwayID := args[0]
	moduleID, _ := cmd.Flags().GetString("module")
	perModule, _ := cmd.Flags().GetBool("per-module")

	client := newKEGGClient()
	var extraction *modules.Extraction
	var err error
	switch {
	case moduleID != "":
		if !moduleIDPattern.MatchString(moduleID) {
			return fmt.Errorf("bad module identifier %q (want M00000)", moduleID)
		}
		extraction, err = modules.ExtractModule(cmd.Context(), client, pathwayID, moduleID, os.Stdout)
	case perModule:
		extraction, err = modules.ExtractModules(cmd.Context(), client, pathwayID, os.Stdout)
	default:
		extraction, err = modules.ExtractPathway(cmd.Context(), client, pathwayID, os.Stdout)
	}
	if err != nil {
		return err
	}

	if len(extraction.Modules) > 0 {
		for _, m := range extraction.Modules {
			fmt.Printf("\n%s: %s (%d ECs)\n", m.Info.ID, m.Info.Name, len(m.ECNumbers))
			for _, ec := range m.ECNumbers {
				fmt.Printf("  %s\n", ec)
			}
		}
	} else {
		fmt.Printf("\n%d EC numbers:\n", len(extraction.ECNumbers))
		for _, ec := range extraction.ECNumbers {
			fmt.Printf("  %s\n", ec)
		}
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := modules.WriteReport(out, extraction); err != nil {
			return err
		}
		fmt.Printf("saved report to %s\n", out)
	}
	if ecList, _ := cmd.Flags().GetString("ec-list"); ecList != "" {
		all := extraction.AllECNumbers()
		comments := []string{
			fmt.Sprintf("EC numbers from KEGG pathway: %s", extraction.PathwayID),
			fmt.Sprintf("Total EC numbers: %d", len(all)),
		}
		if err := modules.WriteECList(ecList, comments, all); err != nil {
			return err
		}
		fmt.Printf("saved %d EC numbers to %s\n", len(all), ecList)
	}
	return nil
}
