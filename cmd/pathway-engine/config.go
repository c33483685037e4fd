// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pathway-engine/internal/genes"
	"github.com/pdiddy/pathway-engine/internal/kegg"
	"github.com/pdiddy/pathway-engine/internal/uniprot"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

var (
	reactionIDPattern = regexp.MustCompile(`^R\d{5}$`)
	compoundIDPattern = regexp.MustCompile(`^C\d{5}$`)
	moduleIDPattern   = regexp.MustCompile(`^M\d{5}$`)
)

// setDefaults seeds viper with the stock configuration, so the config
// file and PATHWAY_ENGINE_* environment variables only need to name
// overrides.
func setDefaults() {
	viper.SetDefault("kegg.timeout", "30s")
	viper.SetDefault("kegg.user_agent", "pathway-engine/0.1")
	viper.SetDefault("kegg.max_retries", 3)
	viper.SetDefault("kegg.request_delay", "200ms")

	viper.SetDefault("uniprot.timeout", "30s")
	viper.SetDefault("uniprot.user_agent", "pathway-engine/0.1")
	viper.SetDefault("uniprot.max_retries", 3)
	viper.SetDefault("uniprot.request_delay", "1s")
	viper.SetDefault("uniprot.page_size", 500)
	viper.SetDefault("uniprot.include_unreviewed", false)

	viper.SetDefault("genes.organisms", []string{})

	d := types.DefaultWeights()
	viper.SetDefault("weights.atp", d.ATP)
	viper.SetDefault("weights.redox", d.Redox)
	viper.SetDefault("weights.o2", d.O2)
	viper.SetDefault("weights.co2", d.CO2)
	viper.SetDefault("weights.complexity", d.Complexity)
	viper.SetDefault("weights.precedent", d.Precedent)
}

func newKEGGClient() *kegg.Client {
	client := kegg.NewClient(types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("kegg.timeout"),
			UserAgent:  viper.GetString("kegg.user_agent"),
			MaxRetries: viper.GetInt("kegg.max_retries"),
		},
		RequestDelay: viper.GetDuration("kegg.request_delay"),
	})
	client.SetLogger(verboseLogger)
	return client
}

func newUniProtClient(includeUnreviewed bool) *uniprot.Client {
	client := uniprot.NewClient(types.UniProtConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("uniprot.timeout"),
			UserAgent:  viper.GetString("uniprot.user_agent"),
			MaxRetries: viper.GetInt("uniprot.max_retries"),
		},
		RequestDelay:      viper.GetDuration("uniprot.request_delay"),
		PageSize:          viper.GetInt("uniprot.page_size"),
		IncludeUnreviewed: includeUnreviewed || viper.GetBool("uniprot.include_unreviewed"),
	})
	client.SetLogger(verboseLogger)
	return client
}

// loadWeights builds the weight vector: the configured values, overlaid
// by the --weights YAML file when one is given. A sparse file keeps the
// configured values for the terms it omits.
func loadWeights(cmd *cobra.Command) (types.Weights, error) {
	w := types.Weights{
		ATP:        viper.GetFloat64("weights.atp"),
		Redox:      viper.GetFloat64("weights.redox"),
		O2:         viper.GetFloat64("weights.o2"),
		CO2:        viper.GetFloat64("weights.co2"),
		Complexity: viper.GetFloat64("weights.complexity"),
		Precedent:  viper.GetFloat64("weights.precedent"),
	}

	path, _ := cmd.Flags().GetString("weights")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return w, fmt.Errorf("reading weights file: %w", err)
		}
		if err := yaml.Unmarshal(data, &w); err != nil {
			return w, fmt.Errorf("parsing weights file: %w", err)
		}
	}

	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}

// organismFilter builds the gene selection filter from --organisms,
// falling back to the configured list.
func organismFilter(cmd *cobra.Command) *genes.Filter {
	orgs, _ := cmd.Flags().GetStringSlice("organisms")
	if len(orgs) == 0 {
		orgs = viper.GetStringSlice("genes.organisms")
	}
	return genes.NewFilter(orgs)
}
