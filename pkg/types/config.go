// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pathway-engine/0.1"). Per prd003-lookup R5.2.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retry attempts for rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LookupConfig holds settings for the KEGG lookup client.
// Per prd003-lookup R5.1-R5.4.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the politeness delay between consecutive KEGG
	// requests (default 200ms, negative disables pacing). KEGG asks
	// clients to stay under three requests per second.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// ScoringConfig holds settings for reaction and subpathway scoring.
// Per prd002-scoring R3.2.
type ScoringConfig struct {
	// Weights overrides the default feature weights when non-zero.
	Weights Weights `json:"weights" yaml:"weights"`
}

// UniProtConfig holds settings for the UniProt enrichment stage.
// Per prd006-enrichment R2.1-R2.4.
type UniProtConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the delay between consecutive UniProt queries (default 1s).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// PageSize is the number of entries requested per search page (default 500).
	PageSize int `json:"page_size" yaml:"page_size"`

	// IncludeUnreviewed widens searches beyond Swiss-Prot reviewed entries.
	IncludeUnreviewed bool `json:"include_unreviewed" yaml:"include_unreviewed"`
}

// GeneConfig holds settings for organism-filtered gene selection.
// Per prd006-enrichment R4.2.
type GeneConfig struct {
	// Organisms lists the KEGG organism codes to keep (e.g. "eco", "sce").
	// Empty means keep every organism.
	Organisms []string `json:"organisms" yaml:"organisms"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Lookup  LookupConfig  `json:"lookup" yaml:"lookup"`
	Scoring ScoringConfig `json:"scoring" yaml:"scoring"`
	UniProt UniProtConfig `json:"uniprot" yaml:"uniprot"`
	Genes   GeneConfig    `json:"genes" yaml:"genes"`
}
