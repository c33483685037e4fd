// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/pathway-engine/internal/equation"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// mockLookup serves canned reaction records and counts fetches.
type mockLookup struct {
	entries map[string]*types.Reaction
	calls   map[string]int
}

func newMockLookup() *mockLookup {
	return &mockLookup{
		entries: make(map[string]*types.Reaction),
		calls:   make(map[string]int),
	}
}

func (m *mockLookup) add(id, eq string, pathways ...string) {
	m.entries[id] = &types.Reaction{
		ID:       id,
		Equation: equation.Parse(eq),
		Pathways: pathways,
	}
}

func (m *mockLookup) GetReaction(_ context.Context, id string) (*types.Reaction, error) {
	m.calls[id]++
	r, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("no such reaction %s", id)
	}
	return r, nil
}

func TestScoreReaction(t *testing.T) {
	lookup := newMockLookup()
	lookup.add("R09001", "C00002 + C00001 => C00008 + C00009")

	s := NewScorer(lookup)
	cost, f, err := s.ScoreReaction(context.Background(), "R09001", types.Forward, types.DefaultWeights())
	if err != nil {
		t.Fatalf("ScoreReaction: %v", err)
	}
	if !almostEqual(cost, 1.5) {
		t.Errorf("cost = %g, want 1.5", cost)
	}
	if !almostEqual(f.ATP, 0.1) || f.Complexity != 2 || f.Precedent != 1.0 {
		t.Errorf("features = %+v", f)
	}
}

func TestScoreReactionLookupError(t *testing.T) {
	s := NewScorer(newMockLookup())
	if _, _, err := s.ScoreReaction(context.Background(), "R00000", types.Forward, types.DefaultWeights()); err == nil {
		t.Fatal("ScoreReaction on missing record returned nil error")
	}
}

func TestScoreSubpathwayAdditive(t *testing.T) {
	lookup := newMockLookup()
	lookup.add("R09001", "C00002 + C00001 => C00008 + C00009")
	lookup.add("R09002", "C00022 + C00004 <=> C00186 + C00003", "rn00620")

	w := types.DefaultWeights()
	steps := types.Subpathway{
		{ReactionID: "R09001", Direction: types.Forward},
		{ReactionID: "R09002", Direction: types.Reverse},
	}

	s := NewScorer(lookup)
	total, details, err := s.ScoreSubpathway(context.Background(), steps, w, io.Discard)
	if err != nil {
		t.Fatalf("ScoreSubpathway: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("details = %d entries, want 2", len(details))
	}

	var sum float64
	for _, d := range details {
		sum += d.Cost
	}
	if !almostEqual(total, sum) {
		t.Errorf("total = %g, want sum of step costs %g", total, sum)
	}

	// Each step's cost matches scoring it alone.
	single := NewScorer(lookup)
	c, _, err := single.ScoreReaction(context.Background(), "R09001", types.Forward, w)
	if err != nil {
		t.Fatalf("ScoreReaction: %v", err)
	}
	if !almostEqual(details[0].Cost, c) {
		t.Errorf("step cost = %g, standalone cost = %g", details[0].Cost, c)
	}
}

func TestScoreSubpathwayCachesRecords(t *testing.T) {
	lookup := newMockLookup()
	lookup.add("R09001", "C00002 + C00001 => C00008 + C00009")

	steps := types.Subpathway{
		{ReactionID: "R09001", Direction: types.Forward},
		{ReactionID: "R09001", Direction: types.Reverse},
		{ReactionID: "R09001", Direction: types.Forward},
	}

	s := NewScorer(lookup)
	if _, _, err := s.ScoreSubpathway(context.Background(), steps, types.DefaultWeights(), io.Discard); err != nil {
		t.Fatalf("ScoreSubpathway: %v", err)
	}
	if lookup.calls["R09001"] != 1 {
		t.Errorf("record fetched %d times, want 1", lookup.calls["R09001"])
	}

	// A fresh scorer starts with an empty cache.
	s2 := NewScorer(lookup)
	if _, _, err := s2.ScoreSubpathway(context.Background(), steps[:1], types.DefaultWeights(), io.Discard); err != nil {
		t.Fatalf("ScoreSubpathway: %v", err)
	}
	if lookup.calls["R09001"] != 2 {
		t.Errorf("record fetched %d times across scorers, want 2", lookup.calls["R09001"])
	}
}

func TestScoreSubpathwaySkipsFailedLookups(t *testing.T) {
	lookup := newMockLookup()
	lookup.add("R09001", "C00002 + C00001 => C00008 + C00009")

	steps := types.Subpathway{
		{ReactionID: "R09001", Direction: types.Forward},
		{ReactionID: "R09404", Direction: types.Forward},
	}

	var buf strings.Builder
	s := NewScorer(lookup)
	total, details, err := s.ScoreSubpathway(context.Background(), steps, types.DefaultWeights(), &buf)
	if err != nil {
		t.Fatalf("ScoreSubpathway: %v", err)
	}
	if len(details) != 1 {
		t.Errorf("details = %d entries, want 1 (failed step skipped)", len(details))
	}
	if !almostEqual(total, details[0].Cost) {
		t.Errorf("total = %g, want %g", total, details[0].Cost)
	}
	if !strings.Contains(buf.String(), "R09404 lookup failed") {
		t.Errorf("progress output missing warning: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "scored 1/2 steps") {
		t.Errorf("progress output missing summary: %q", buf.String())
	}
}

func TestScoreSubpathwayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScorer(newMockLookup())
	steps := types.Subpathway{{ReactionID: "R09001", Direction: types.Forward}}
	if _, _, err := s.ScoreSubpathway(ctx, steps, types.DefaultWeights(), io.Discard); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
