// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

// Lookup is the slice of the KEGG client the scorer depends on.
type Lookup interface {
	GetReaction(ctx context.Context, reactionID string) (*types.Reaction, error)
}

// Scorer evaluates reactions and subpathways against a weight vector.
// Each Scorer owns a record cache keyed by reaction ID, so a record is
// fetched at most once per Scorer. Build a fresh Scorer per evaluation;
// nothing persists across runs. Per prd002-scoring R4.1-R4.2.
type Scorer struct {
	lookup Lookup
	cache  map[string]*types.Reaction
}

// NewScorer builds a scorer with an empty record cache.
func NewScorer(lookup Lookup) *Scorer {
	return &Scorer{lookup: lookup, cache: make(map[string]*types.Reaction)}
}

// record returns the cached reaction or fetches it through the lookup.
func (s *Scorer) record(ctx context.Context, reactionID string) (*types.Reaction, error) {
	if r, ok := s.cache[reactionID]; ok {
		return r, nil
	}
	r, err := s.lookup.GetReaction(ctx, reactionID)
	if err != nil {
		return nil, err
	}
	s.cache[reactionID] = r
	return r, nil
}

// ScoreReaction fetches one reaction and scores it in the given
// direction, returning the weighted cost and the feature vector.
func (s *Scorer) ScoreReaction(ctx context.Context, reactionID string, dir types.Direction, w types.Weights) (float64, types.FeatureVector, error) {
	r, err := s.record(ctx, reactionID)
	if err != nil {
		return 0, types.FeatureVector{}, fmt.Errorf("scoring %s: %w", reactionID, err)
	}
	f := ReactionFeatures(r, dir)
	return Cost(f, w), f, nil
}

// ScoreSubpathway scores every step of a subpathway and returns the total
// cost with per-step details. Steps whose record cannot be fetched are
// reported to the progress writer and skipped; the walk continues. The
// returned error is non-nil only when the context is cancelled.
// Per prd002-scoring R4.3-R4.4.
func (s *Scorer) ScoreSubpathway(ctx context.Context, steps types.Subpathway, w types.Weights, progress io.Writer) (float64, []types.ScoredStep, error) {
	var total float64
	details := make([]types.ScoredStep, 0, len(steps))
	failed := 0

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return total, details, err
		}
		r, err := s.record(ctx, step.ReactionID)
		if err != nil {
			fmt.Fprintf(progress, "  warning: %s lookup failed: %v\n", step.ReactionID, err)
			failed++
			continue
		}
		f := ReactionFeatures(r, step.Direction)
		c := Cost(f, w)
		total += c
		details = append(details, types.ScoredStep{
			Step:       step,
			Definition: r.Definition,
			Features:   f,
			Cost:       c,
		})
	}

	if failed > 0 {
		fmt.Fprintf(progress, "scored %d/%d steps (%d lookups failed)\n",
			len(details), len(steps), failed)
	}
	return total, details, nil
}
