// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pathway-engine CLI.
// Implements: prd002-scoring, prd003-lookup, prd004-network,
//             prd005-subpathway, prd006-enrichment, prd007-modules,
//             prd008-hmm-hits (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pathway-engine/internal/logutil"
)

// version is set at build time via ldflags.
var version = "dev"

// verboseLogger is non-nil when --verbose is set. API clients attach it
// for per-request tracing.
var verboseLogger *slog.Logger

// rootCmd is the base command for the pathway-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "pathway-engine",
	Short: "Score and explore KEGG reaction networks",
	Long: `pathway-engine scores metabolic reactions by thermodynamic proxy features,
builds reaction graphs around seed compounds, and finds the cheapest
subpathway consuming a target compound inside a pathway map. Enrichment
verbs resolve the enzymes behind a pathway to UniProt entries, Pfam
domains, and organism-filtered gene candidates.

Each stage is a subcommand: score, subpathway, best, graph, pathways,
modules, genes, domains, hits, and render.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			verboseLogger = logutil.NewLogger(os.Stderr, slog.LevelDebug)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pathway-engine.yaml or ~/.config/pathway-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "trace API requests to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pathway-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pathway-engine"))
		}
	}

	viper.SetEnvPrefix("PATHWAY_ENGINE")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
