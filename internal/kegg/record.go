// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kegg

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pathway-engine/internal/equation"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// KEGG flat files tag each section with an upper-case key padded to a
// twelve column field. Lines starting with whitespace continue the most
// recent key.
const keyColumns = 12

var keyPattern = regexp.MustCompile(`^[A-Z]{2,}\s{2,}`)

// Record is a parsed KEGG flat-file entry: section key to the list of
// value lines, continuation lines included in order.
type Record map[string][]string

// ParseRecord splits a KEGG flat-file entry into its tagged sections.
// Blank lines and the "///" terminator are skipped; a continuation line
// before any key is dropped.
func ParseRecord(raw string) Record {
	rec := Record{}
	var key string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "///") {
			continue
		}
		if keyPattern.MatchString(line) {
			cut := keyColumns
			if len(line) < cut {
				cut = len(line)
			}
			key = strings.TrimSpace(line[:cut])
			line = line[cut:]
		}
		if key == "" {
			continue
		}
		if value := strings.TrimSpace(line); value != "" {
			rec[key] = append(rec[key], value)
		}
	}
	return rec
}

// First returns the first value line of a section, or "".
func (r Record) First(key string) string {
	if lines := r[key]; len(lines) > 0 {
		return lines[0]
	}
	return ""
}

// Joined concatenates a section's value lines with single spaces, the
// reading KEGG intends for wrapped fields like EQUATION and DEFINITION.
func (r Record) Joined(key string) string {
	return strings.Join(r[key], " ")
}

// FirstTokens returns the first whitespace-delimited token of each value
// line, deduplicated in order. PATHWAY sections list one map per line with
// the identifier first.
func (r Record) FirstTokens(key string) []string {
	var out []string
	seen := map[string]bool{}
	for _, line := range r[key] {
		fields := strings.Fields(line)
		if len(fields) == 0 || seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		out = append(out, fields[0])
	}
	return out
}

// Fields returns every whitespace-delimited token across a section's
// value lines. ENZYME sections list several EC numbers per line.
func (r Record) Fields(key string) []string {
	var out []string
	for _, line := range r[key] {
		out = append(out, strings.Fields(line)...)
	}
	return out
}

// ParseReaction extracts the scoring-relevant fields of a KEGG reaction
// entry. Malformed input degrades instead of failing: a record without an
// EQUATION section yields an empty equation, and the feature extractor
// then produces a zero score for it. Per prd003-lookup R3.1-R3.3.
func ParseReaction(raw string) *types.Reaction {
	rec := ParseRecord(raw)
	r := &types.Reaction{
		Name:       strings.TrimSuffix(rec.First("NAME"), ";"),
		Definition: rec.Joined("DEFINITION"),
		Equation:   equation.Parse(rec.Joined("EQUATION")),
		Pathways:   rec.FirstTokens("PATHWAY"),
		Enzymes:    rec.Fields("ENZYME"),
	}
	if fields := strings.Fields(rec.First("ENTRY")); len(fields) > 0 {
		r.ID = fields[0]
	}
	return r
}

// ParseCompoundName returns the primary name of a KEGG compound entry:
// the first NAME line with its trailing separator removed.
func ParseCompoundName(raw string) string {
	return strings.TrimSuffix(ParseRecord(raw).First("NAME"), ";")
}
