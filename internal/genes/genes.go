// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genes selects organism-filtered gene candidates for enzyme EC
// numbers via the KEGG orthology links.
// Implements: prd006-enrichment (R4);
//
//	docs/ARCHITECTURE § Enrichment.
package genes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pathway-engine/internal/kegg"
)

// Lookup is the KEGG surface the selection pipeline needs.
type Lookup interface {
	Organisms(ctx context.Context) ([]kegg.Organism, error)
	KOsForEC(ctx context.Context, ec string) ([]string, error)
	GenesForKO(ctx context.Context, ko string) ([]string, error)
}

// Filter decides which organisms' genes to keep.
type Filter struct {
	wanted map[string]bool
}

// NewFilter builds a predicate from organism codes ("eco") or full names
// ("Thermus thermophilus HB8"), matched case-insensitively. An empty list
// keeps every organism.
func NewFilter(organisms []string) *Filter {
	f := &Filter{wanted: map[string]bool{}}
	for _, o := range organisms {
		if o = strings.TrimSpace(o); o != "" {
			f.wanted[strings.ToLower(o)] = true
		}
	}
	return f
}

// Keep reports whether an organism passes the filter, by code or by
// full name.
func (f *Filter) Keep(org kegg.Organism) bool {
	if len(f.wanted) == 0 {
		return true
	}
	return f.wanted[strings.ToLower(org.Code)] || f.wanted[strings.ToLower(org.Name)]
}

// Gene is one selected gene entry with its provenance.
type Gene struct {
	// ID is the KEGG gene identifier with organism prefix ("eco:b2296").
	ID string `json:"id" yaml:"id"`

	// Organism is the full organism name from the KEGG organism table.
	Organism string `json:"organism" yaml:"organism"`

	// KO is the orthology group the gene came from ("ko:K00925").
	KO string `json:"ko" yaml:"ko"`

	// EC is the enzyme number that led to the orthology group.
	EC string `json:"ec" yaml:"ec"`
}

// Selection is the outcome of a gene selection run.
type Selection struct {
	// Genes holds the selected entries in traversal order.
	Genes []Gene `json:"genes" yaml:"genes"`

	// Failed counts EC or orthology link fetches that errored.
	Failed int `json:"failed" yaml:"failed"`

	// UnknownOrganism counts genes whose prefix is missing from the
	// organism table.
	UnknownOrganism int `json:"unknown_organism" yaml:"unknown_organism"`
}

// SelectForECs resolves each EC number to its orthology groups and
// collects the genes of organisms passing the filter. The organism table
// is fetched once up front; individual link failures print a warning and
// are skipped. A gene appearing under several orthology groups of the
// same EC is kept once.
func SelectForECs(ctx context.Context, lookup Lookup, ecs []string, filter *Filter, w io.Writer) (*Selection, error) {
	orgs, err := lookup.Organisms(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading organism table: %w", err)
	}
	byCode := make(map[string]kegg.Organism, len(orgs))
	for _, o := range orgs {
		byCode[o.Code] = o
	}

	sel := &Selection{}
	seen := map[string]bool{}
	for _, ec := range ecs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		kos, err := lookup.KOsForEC(ctx, ec)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s KO link failed: %v\n", ec, err)
			sel.Failed++
			continue
		}
		fmt.Fprintf(w, "%s: %d orthology groups\n", ec, len(kos))

		for _, ko := range kos {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			geneIDs, err := lookup.GenesForKO(ctx, ko)
			if err != nil {
				fmt.Fprintf(w, "  warning: %s gene link failed: %v\n", ko, err)
				sel.Failed++
				continue
			}
			for _, id := range geneIDs {
				code, _, ok := strings.Cut(id, ":")
				if !ok {
					continue
				}
				org, ok := byCode[code]
				if !ok {
					sel.UnknownOrganism++
					continue
				}
				if !filter.Keep(org) {
					continue
				}
				key := ec + "\t" + id
				if seen[key] {
					continue
				}
				seen[key] = true
				sel.Genes = append(sel.Genes, Gene{ID: id, Organism: org.Name, KO: ko, EC: ec})
			}
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d genes selected across %d EC numbers (%d link failures, %d unknown organisms)\n",
		len(sel.Genes), len(ecs), sel.Failed, sel.UnknownOrganism)
	return sel, nil
}
