// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hmmer parses hmmsearch tabular output and filters hits by
// E-value.
// Implements: prd008-hmm-hits (R1-R3);
//
//	docs/ARCHITECTURE § Enrichment.
package hmmer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// DefaultThreshold is the E-value cutoff applied when none is configured.
const DefaultThreshold = 1e-5

// Hit is one target line of an hmmsearch --tblout file. EValue and Score
// are the full-sequence columns.
type Hit struct {
	Target string  `json:"target" yaml:"target"`
	Query  string  `json:"query" yaml:"query"`
	EValue float64 `json:"e_value" yaml:"e_value"`
	Score  float64 `json:"score" yaml:"score"`
}

// ParseReader reads tblout lines. Comment and blank lines are skipped; a
// data line needs at least six whitespace-separated columns with numeric
// E-value and score, anything else is a format error naming the line.
func ParseReader(r io.Reader) ([]Hit, error) {
	var hits []Hit
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 6 {
			return nil, fmt.Errorf("line %d: %d columns, want at least 6", lineNo, len(fields))
		}
		ev, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing E-value %q: %w", lineNo, fields[4], err)
		}
		score, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing score %q: %w", lineNo, fields[5], err)
		}
		hits = append(hits, Hit{Target: fields[0], Query: fields[2], EValue: ev, Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading tblout: %w", err)
	}
	return hits, nil
}

// ParseFile opens and parses a tblout file.
func ParseFile(path string) ([]Hit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tblout: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// Filter returns the hits with E-value strictly below the threshold. A
// threshold of zero or less applies DefaultThreshold.
func Filter(hits []Hit, threshold float64) []Hit {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	var kept []Hit
	for _, h := range hits {
		if h.EValue < threshold {
			kept = append(kept, h)
		}
	}
	return kept
}

// TargetIDs returns the distinct target names of a hit set, sorted.
func TargetIDs(hits []Hit) []string {
	seen := map[string]bool{}
	var ids []string
	for _, h := range hits {
		if seen[h.Target] {
			continue
		}
		seen[h.Target] = true
		ids = append(ids, h.Target)
	}
	sort.Strings(ids)
	return ids
}

// Distribution is the spread of one measure across a hit set.
type Distribution struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summary holds E-value and score distributions for a hit set.
type Summary struct {
	Count  int          `json:"count" yaml:"count"`
	EValue Distribution `json:"e_value" yaml:"e_value"`
	Score  Distribution `json:"score" yaml:"score"`
}

// Summarize computes the distribution statistics of a hit set. An empty
// set yields a zero summary.
func Summarize(hits []Hit) Summary {
	if len(hits) == 0 {
		return Summary{}
	}
	evalues := make([]float64, len(hits))
	scores := make([]float64, len(hits))
	for i, h := range hits {
		evalues[i] = h.EValue
		scores[i] = h.Score
	}
	return Summary{
		Count:  len(hits),
		EValue: distribution(evalues),
		Score:  distribution(scores),
	}
}

func distribution(values []float64) Distribution {
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)
	return Distribution{Mean: mean, Median: median, Min: lo, Max: hi}
}

// WriteIDs saves target IDs one per line.
func WriteIDs(path string, ids []string) error {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id + "\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
