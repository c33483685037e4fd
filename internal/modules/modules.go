// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package modules discovers KEGG modules referenced by pathway maps and
// extracts the enzyme EC numbers they contain.
// Implements: prd007-modules (R1-R4);
//
//	docs/ARCHITECTURE § Enrichment.
package modules

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/pathway-engine/internal/kegg"
)

// Lookup fetches KEGG flat-file entries by identifier.
type Lookup interface {
	GetEntry(ctx context.Context, id string) (string, error)
}

// Module references appear in pathway records both bare and behind an
// MD: prefix.
var (
	moduleIDPattern   = regexp.MustCompile(`(?:MD:)?(M\d{5})`)
	ecNumberPattern   = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)
	ecTagPattern      = regexp.MustCompile(`EC:(\d+\.\d+\.\d+\.\d+)`)
	koIDPattern       = regexp.MustCompile(`K\d{5}`)
	reactionIDPattern = regexp.MustCompile(`R\d{5}`)
)

// StandardizePathwayID maps a bare pathway number onto the orthology
// namespace. ko- and map-prefixed identifiers pass through unchanged.
func StandardizePathwayID(id string) string {
	if strings.HasPrefix(id, "ko") || strings.HasPrefix(id, "map") {
		return id
	}
	return "ko" + id
}

// Info describes one KEGG module record. The counts cover distinct
// reaction and orthology identifiers anywhere in the record.
type Info struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Definition     string `json:"definition" yaml:"definition"`
	Class          string `json:"class" yaml:"class"`
	ReactionCount  int    `json:"reaction_count" yaml:"reaction_count"`
	OrthologyCount int    `json:"orthology_count" yaml:"orthology_count"`
}

func parseInfo(moduleID, raw string) Info {
	rec := kegg.ParseRecord(raw)
	return Info{
		ID:             moduleID,
		Name:           rec.Joined("NAME"),
		Definition:     rec.Joined("DEFINITION"),
		Class:          rec.Joined("CLASS"),
		ReactionCount:  len(uniqueMatches(reactionIDPattern, raw, 0)),
		OrthologyCount: len(uniqueMatches(koIDPattern, raw, 0)),
	}
}

// ModuleIDs returns the distinct module identifiers referenced by a
// pathway record, sorted.
func ModuleIDs(raw string) []string {
	return uniqueMatches(moduleIDPattern, raw, 1)
}

// Discover fetches a pathway record and resolves every module it
// references. Individual module fetch failures print a warning and are
// skipped, so one bad entry does not sink the discovery run.
func Discover(ctx context.Context, lookup Lookup, pathwayID string, w io.Writer) ([]Info, error) {
	pathwayID = StandardizePathwayID(pathwayID)
	raw, err := lookup.GetEntry(ctx, pathwayID)
	if err != nil {
		return nil, fmt.Errorf("fetching pathway %s: %w", pathwayID, err)
	}

	ids := ModuleIDs(raw)
	fmt.Fprintf(w, "found %d modules in %s\n", len(ids), pathwayID)

	var infos []Info
	var failed int
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		moduleRaw, err := lookup.GetEntry(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s fetch failed: %v\n", id, err)
			failed++
			continue
		}
		infos = append(infos, parseInfo(id, moduleRaw))
	}
	if failed > 0 {
		fmt.Fprintf(w, "resolved %d of %d modules (%d failed)\n", len(infos), len(ids), failed)
	}
	return infos, nil
}

// ECNumbers returns the sorted distinct EC numbers appearing in a module
// record.
func ECNumbers(ctx context.Context, lookup Lookup, moduleID string) ([]string, error) {
	raw, err := lookup.GetEntry(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("fetching module %s: %w", moduleID, err)
	}
	return uniqueMatches(ecNumberPattern, raw, 0), nil
}

// PathwayECNumbers collects the EC numbers of a whole pathway: those
// tagged directly on the record, unioned with the EC numbers of every
// orthology entry the record references. Orthology fetch failures print
// a warning and are skipped.
func PathwayECNumbers(ctx context.Context, lookup Lookup, pathwayID string, w io.Writer) ([]string, error) {
	pathwayID = StandardizePathwayID(pathwayID)
	raw, err := lookup.GetEntry(ctx, pathwayID)
	if err != nil {
		return nil, fmt.Errorf("fetching pathway %s: %w", pathwayID, err)
	}

	ecs := map[string]bool{}
	for _, ec := range uniqueMatches(ecTagPattern, raw, 1) {
		ecs[ec] = true
	}
	direct := len(ecs)

	kos := uniqueMatches(koIDPattern, raw, 0)
	fmt.Fprintf(w, "resolving %d orthology entries for %s\n", len(kos), pathwayID)

	var failed int
	for i, ko := range kos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 && i%20 == 0 {
			fmt.Fprintf(w, "  %d/%d orthology entries processed\n", i, len(kos))
		}
		koRaw, err := lookup.GetEntry(ctx, ko)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s fetch failed: %v\n", ko, err)
			failed++
			continue
		}
		for _, ec := range uniqueMatches(ecTagPattern, koRaw, 1) {
			ecs[ec] = true
		}
	}

	sorted := make([]string, 0, len(ecs))
	for ec := range ecs {
		sorted = append(sorted, ec)
	}
	sort.Strings(sorted)

	fmt.Fprintf(w, "collected %d EC numbers (direct: %d, failed KO fetches: %d)\n",
		len(sorted), direct, failed)
	return sorted, nil
}

// uniqueMatches returns the distinct strings captured by group within s,
// sorted. Group 0 means the whole match.
func uniqueMatches(re *regexp.Regexp, s string, group int) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		v := m[group]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
