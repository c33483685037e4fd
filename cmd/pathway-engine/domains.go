// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/modules"
	"github.com/pdiddy/pathway-engine/internal/uniprot"
)

var domainsCmd = &cobra.Command{
	Use:   "domains [ec...]",
	Short: "Resolve EC numbers to UniProt entries and Pfam domains",
	Long: `Domains resolves each EC number to its first reviewed UniProtKB entry
and collects that entry's Pfam domain annotations into a report. EC
numbers come from the arguments, from an EC list file written by the
modules verb, or both.`,
	RunE: runDomains,
}

func init() {
	domainsCmd.Flags().String("ec-file", "", "read EC numbers from a list file")
	domainsCmd.Flags().String("out", "", "write the domain report to this path")
	domainsCmd.Flags().String("format", "csv", "report format: csv or xlsx")
	domainsCmd.Flags().Bool("include-unreviewed", false, "search unreviewed (TrEMBL) entries too")

	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, args []string) error {
	ecs := args
	if file, _ := cmd.Flags().GetString("ec-file"); file != "" {
		fromFile, err := modules.ReadECList(file)
		if err != nil {
			return err
		}
		ecs = append(ecs, fromFile...)
	}
	if len(ecs) == 0 {
		return fmt.Errorf("provide EC numbers as arguments or via --ec-file")
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("bad format %q (want csv or xlsx)", format)
	}

	includeUnreviewed, _ := cmd.Flags().GetBool("include-unreviewed")
	client := newUniProtClient(includeUnreviewed)
	report, err := client.DomainsForECs(cmd.Context(), ecs, os.Stdout)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		switch format {
		case "xlsx":
			err = uniprot.WriteXLSX(out, report.Rows)
		default:
			err = uniprot.WriteCSV(out, report.Rows)
		}
		if err != nil {
			return err
		}
		fmt.Printf("saved %d rows to %s\n", len(report.Rows), out)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d of %d EC numbers failed resolution", report.Failed, report.Total())
	}
	return nil
}
