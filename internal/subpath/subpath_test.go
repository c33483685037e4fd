// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package subpath

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/pathway-engine/internal/equation"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

type mockLookup struct {
	compoundLinks map[string][]string
	pathwayLinks  map[string][]string
	records       map[string]*types.Reaction
	listEntries   map[string]string
	failGet       map[string]bool
	failList      map[string]bool
	failLinks     bool
	listCalls     map[string]int
}

func newMockLookup() *mockLookup {
	return &mockLookup{
		compoundLinks: make(map[string][]string),
		pathwayLinks:  make(map[string][]string),
		records:       make(map[string]*types.Reaction),
		listEntries:   make(map[string]string),
		failGet:       make(map[string]bool),
		failList:      make(map[string]bool),
		listCalls:     make(map[string]int),
	}
}

func (m *mockLookup) addReaction(rid, eq, list string, pathways ...string) {
	m.records[rid] = &types.Reaction{
		ID:       rid,
		Equation: equation.Parse(eq),
		Pathways: pathways,
	}
	m.listEntries[rid] = list
}

func (m *mockLookup) ReactionsForCompound(_ context.Context, cid string) ([]string, error) {
	if m.failLinks {
		return nil, errors.New("link unavailable")
	}
	return m.compoundLinks[cid], nil
}

func (m *mockLookup) ReactionsForPathway(_ context.Context, mapID string) ([]string, error) {
	if m.failLinks {
		return nil, errors.New("link unavailable")
	}
	return m.pathwayLinks[mapID], nil
}

func (m *mockLookup) GetReaction(_ context.Context, rid string) (*types.Reaction, error) {
	if m.failGet[rid] {
		return nil, errors.New("record unavailable")
	}
	r, ok := m.records[rid]
	if !ok {
		return nil, fmt.Errorf("no such reaction %s", rid)
	}
	return r, nil
}

func (m *mockLookup) ListReaction(_ context.Context, rid string) (string, error) {
	m.listCalls[rid]++
	if m.failList[rid] {
		return "", errors.New("list unavailable")
	}
	line, ok := m.listEntries[rid]
	if !ok {
		return "", fmt.Errorf("no such reaction %s", rid)
	}
	return line, nil
}

// pyruvateMap wires a four-reaction map around pyruvate (C00022): one
// consuming start, one product-only reaction, one downstream step, and one
// disconnected pair.
func pyruvateMap() *mockLookup {
	m := newMockLookup()
	m.addReaction("R80001", "C00022 => C00024",
		"rn:R80001\tpyruvate dehydrogenase complex; Pyruvate <=> Acetyl-CoA", "rn00620")
	m.addReaction("R80002", "C00024 => C00158",
		"rn:R80002\tcitrate synthase; Acetyl-CoA <=> Citrate")
	m.addReaction("R80003", "C00036 => C00022",
		"rn:R80003\toxaloacetate decarboxylase; Oxaloacetate => Pyruvate", "rn00620", "rn00010", "rn00020")
	m.addReaction("R80004", "C00048 <=> C00160",
		"rn:R80004\tglyoxylate reductase; Glyoxylate <=> Glycolate")
	m.compoundLinks["C00022"] = []string{"R80001", "R80003", "R99999"}
	m.pathwayLinks["map00666"] = []string{"R80001", "R80002", "R80003", "R80004"}
	return m
}

func TestStartReactions(t *testing.T) {
	set, err := StartReactions(context.Background(), pyruvateMap(), "map00666", "C00022", io.Discard)
	if err != nil {
		t.Fatalf("StartReactions: %v", err)
	}
	if set.MapID != "map00666" || set.CompoundID != "C00022" {
		t.Errorf("set identity = %s/%s", set.MapID, set.CompoundID)
	}
	// R80003 only produces the compound, R99999 is not in the map.
	if !reflect.DeepEqual(set.Starts, []string{"R80001"}) {
		t.Errorf("Starts = %v, want [R80001]", set.Starts)
	}
	if len(set.MapReactions) != 4 {
		t.Errorf("MapReactions = %v, want all four", set.MapReactions)
	}
}

func TestStartReactionsKeepsUnfetchable(t *testing.T) {
	m := pyruvateMap()
	m.failGet["R80001"] = true

	var buf strings.Builder
	set, err := StartReactions(context.Background(), m, "map00666", "C00022", &buf)
	if err != nil {
		t.Fatalf("StartReactions: %v", err)
	}
	if !reflect.DeepEqual(set.Starts, []string{"R80001"}) {
		t.Errorf("Starts = %v, want unfetchable candidate kept", set.Starts)
	}
	if !strings.Contains(buf.String(), "R80001 lookup failed") {
		t.Errorf("missing warning in %q", buf.String())
	}
}

func TestStartReactionsLinkError(t *testing.T) {
	m := pyruvateMap()
	m.failLinks = true
	if _, err := StartReactions(context.Background(), m, "map00666", "C00022", io.Discard); err == nil {
		t.Fatal("StartReactions with failing links returned nil error")
	}
}

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Definition
	}{
		{
			name: "reversible with cofactors",
			line: "rn:R00200\tpyruvate kinase; ATP:pyruvate 2-O-phosphotransferase; ATP + Pyruvate <=> ADP + Phosphoenolpyruvate",
			want: Definition{
				Substrates: map[string]bool{"Pyruvate": true},
				Products:   map[string]bool{"Phosphoenolpyruvate": true},
				Tag:        types.Forward,
			},
		},
		{
			name: "one-way with coefficient and ammonia",
			line: "rn:R81234\tlyase; 2 Oxaloacetate => Pyruvate + NH3",
			want: Definition{
				Substrates: map[string]bool{"Oxaloacetate": true},
				Products:   map[string]bool{"Pyruvate": true},
				Tag:        types.Reverse,
			},
		},
		{
			name: "charged carrier names survive the term split",
			line: "rn:R00703\tldh; (S)-Lactate + NAD+ <=> Pyruvate + NADH + H+",
			want: Definition{
				Substrates: map[string]bool{"(S)-Lactate": true},
				Products:   map[string]bool{"Pyruvate": true},
				Tag:        types.Forward,
			},
		},
		{
			name: "polymeric coefficients",
			line: "rn:R00001\tpolyphosphatase; n Polyphosphate <=> (n+1) Oligophosphate",
			want: Definition{
				Substrates: map[string]bool{"Polyphosphate": true},
				Products:   map[string]bool{"Oligophosphate": true},
				Tag:        types.Forward,
			},
		},
		{
			name: "no semicolon",
			line: "rn:R11111\tjust a name",
			want: Definition{},
		},
		{
			name: "no arrow after last semicolon",
			line: "rn:R11112\tfirst name; second name",
			want: Definition{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDefinition(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseDefinition(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLoadDefinitions(t *testing.T) {
	m := pyruvateMap()
	m.failList["R80004"] = true
	ids := []string{"R80001", "R80002", "R80003", "R80004"}

	var buf strings.Builder
	defs, err := LoadDefinitions(context.Background(), m, ids, &buf)
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if len(defs) != 4 {
		t.Fatalf("len(defs) = %d, want 4", len(defs))
	}
	if got := defs["R80001"]; got.Tag != types.Forward || !got.Substrates["Pyruvate"] || !got.Products["Acetyl-CoA"] {
		t.Errorf("defs[R80001] = %+v", got)
	}
	if got := defs["R80004"]; !reflect.DeepEqual(got, Definition{}) {
		t.Errorf("failed entry loaded as %+v, want empty definition", got)
	}
	for _, rid := range ids {
		if m.listCalls[rid] != 1 {
			t.Errorf("list entry %s fetched %d times, want 1", rid, m.listCalls[rid])
		}
	}
	if !strings.Contains(buf.String(), "R80004 list entry failed") {
		t.Errorf("missing warning in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "loaded 4 reaction definitions (1 failed)") {
		t.Errorf("missing summary in %q", buf.String())
	}
}

func TestEnumerate(t *testing.T) {
	got, err := Enumerate(context.Background(), pyruvateMap(), "map00666", "C00022", io.Discard)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	want := []types.Subpathway{{
		{ReactionID: "R80001", Direction: types.Forward},
		{ReactionID: "R80003", Direction: types.Reverse},
		{ReactionID: "R80002", Direction: types.Forward},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Enumerate = %v, want %v", got, want)
	}
}

func TestEnumerateDiscardsSingleReactions(t *testing.T) {
	m := newMockLookup()
	m.addReaction("R80004", "C00048 <=> C00160",
		"rn:R80004\tglyoxylate reductase; Glyoxylate <=> Glycolate")
	m.compoundLinks["C00048"] = []string{"R80004"}
	m.pathwayLinks["map00042"] = []string{"R80004"}

	got, err := Enumerate(context.Background(), m, "map00042", "C00048", io.Discard)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Enumerate = %v, want no candidates", got)
	}
}

func TestEnumerateNoStarts(t *testing.T) {
	got, err := Enumerate(context.Background(), pyruvateMap(), "map00666", "C00999", io.Discard)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if got != nil {
		t.Errorf("Enumerate = %v, want nil", got)
	}
}
