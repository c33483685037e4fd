// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package subpath

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pathway-engine/internal/render"
	"github.com/pdiddy/pathway-engine/internal/score"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// Best enumerates the map's candidate subpathways and returns the cheapest
// one with per-step details, cost statistics over all candidates, and a
// diagram URL highlighting the winner (R4.1-R4.5). Reaction records are
// cached for the duration of the call, so a reaction shared by many
// candidates is fetched once. A result with Found false means no candidate
// could be enumerated and scored.
func Best(ctx context.Context, lookup Lookup, mapID, compoundID string, weights types.Weights, w io.Writer) (*types.SubpathwayResult, error) {
	res := &types.SubpathwayResult{MapID: mapID, CompoundID: compoundID}

	candidates, err := Enumerate(ctx, lookup, mapID, compoundID, w)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return res, nil
	}
	fmt.Fprintf(w, "scoring %d candidate subpathways\n", len(candidates))

	scorer := score.NewScorer(lookup)
	// The minimum is unconditional: a candidate with cost at or above zero
	// still wins when nothing scores lower.
	minCost := math.Inf(1)
	var best []types.ScoredStep
	costs := make([]float64, 0, len(candidates))

	for _, cand := range candidates {
		total, steps, err := scorer.ScoreSubpathway(ctx, cand, weights, w)
		if err != nil {
			return nil, err
		}
		if len(steps) == 0 {
			continue
		}
		costs = append(costs, total)
		if total < minCost {
			minCost = total
			best = steps
		}
	}
	if len(costs) == 0 {
		return res, nil
	}

	res.Found = true
	res.Steps = best
	res.TotalCost = minCost
	res.Candidates = candidateStats(costs)

	ids := make([]string, len(best))
	for i, s := range best {
		ids[i] = s.ReactionID
	}
	res.HighlightURL = render.HighlightURL(mapID, ids, compoundID)
	return res, nil
}

func candidateStats(costs []float64) types.CandidateStats {
	if len(costs) == 0 {
		return types.CandidateStats{}
	}
	mean, _ := stats.Mean(costs)
	median, _ := stats.Median(costs)
	lo, _ := stats.Min(costs)
	hi, _ := stats.Max(costs)
	return types.CandidateStats{
		Count:  len(costs),
		Mean:   mean,
		Median: median,
		Min:    lo,
		Max:    hi,
	}
}

// ResultFile is the on-disk form of a best-subpathway search, so a search
// can be saved and inspected later without re-querying KEGG.
type ResultFile struct {
	Result    types.SubpathwayResult `yaml:"result"`
	Weights   types.Weights          `yaml:"weights"`
	Timestamp time.Time              `yaml:"timestamp"`
}

// WriteResultFile saves a search result to a YAML file.
func WriteResultFile(path string, res types.SubpathwayResult, weights types.Weights) error {
	rf := ResultFile{Result: res, Weights: weights, Timestamp: time.Now()}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved search result.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
