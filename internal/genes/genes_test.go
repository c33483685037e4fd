// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genes

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/pathway-engine/internal/kegg"
)

type mockLookup struct {
	orgs      []kegg.Organism
	kosByEC   map[string][]string
	genesByKO map[string][]string
	failKOs   map[string]bool
	failGenes map[string]bool
	orgErr    error
	orgCalls  int
}

func (m *mockLookup) Organisms(ctx context.Context) ([]kegg.Organism, error) {
	m.orgCalls++
	if m.orgErr != nil {
		return nil, m.orgErr
	}
	return m.orgs, nil
}

func (m *mockLookup) KOsForEC(ctx context.Context, ec string) ([]string, error) {
	if m.failKOs[ec] {
		return nil, errors.New("link unavailable")
	}
	return m.kosByEC[ec], nil
}

func (m *mockLookup) GenesForKO(ctx context.Context, ko string) ([]string, error) {
	if m.failGenes[ko] {
		return nil, errors.New("link unavailable")
	}
	return m.genesByKO[ko], nil
}

func acetateLookup() *mockLookup {
	return &mockLookup{
		orgs: []kegg.Organism{
			{TNumber: "T00007", Code: "eco", Name: "Escherichia coli K-12 MG1655"},
			{TNumber: "T00220", Code: "tth", Name: "Thermus thermophilus HB8"},
			{TNumber: "T01001", Code: "hsa", Name: "Homo sapiens (human)"},
		},
		kosByEC: map[string][]string{
			"2.7.2.1": {"ko:K00925"},
			"2.3.1.8": {"ko:K00625", "ko:K13788"},
		},
		genesByKO: map[string][]string{
			"ko:K00925": {"eco:b2296", "tth:TT_C0326", "hsa:3712", "xyz:orf1"},
			"ko:K00625": {"eco:b2297"},
			"ko:K13788": {"eco:b2297", "tth:TT_C0327"},
		},
		failKOs:   map[string]bool{},
		failGenes: map[string]bool{},
	}
}

func TestFilterKeep(t *testing.T) {
	eco := kegg.Organism{Code: "eco", Name: "Escherichia coli K-12 MG1655"}
	tth := kegg.Organism{Code: "tth", Name: "Thermus thermophilus HB8"}

	if !NewFilter(nil).Keep(eco) {
		t.Error("empty filter rejected an organism")
	}
	if !NewFilter([]string{"eco"}).Keep(eco) {
		t.Error("code match failed")
	}
	if !NewFilter([]string{"thermus thermophilus hb8"}).Keep(tth) {
		t.Error("case-insensitive name match failed")
	}
	if NewFilter([]string{"eco"}).Keep(tth) {
		t.Error("filter kept an unlisted organism")
	}
}

func TestSelectForECs(t *testing.T) {
	lookup := acetateLookup()
	filter := NewFilter([]string{"eco", "tth"})
	var buf strings.Builder

	sel, err := SelectForECs(context.Background(), lookup, []string{"2.7.2.1"}, filter, &buf)
	if err != nil {
		t.Fatalf("SelectForECs: %v", err)
	}

	want := []Gene{
		{ID: "eco:b2296", Organism: "Escherichia coli K-12 MG1655", KO: "ko:K00925", EC: "2.7.2.1"},
		{ID: "tth:TT_C0326", Organism: "Thermus thermophilus HB8", KO: "ko:K00925", EC: "2.7.2.1"},
	}
	if !reflect.DeepEqual(sel.Genes, want) {
		t.Errorf("Genes = %+v, want %+v", sel.Genes, want)
	}
	if sel.UnknownOrganism != 1 {
		t.Errorf("UnknownOrganism = %d, want 1", sel.UnknownOrganism)
	}
	if lookup.orgCalls != 1 {
		t.Errorf("organism table fetched %d times", lookup.orgCalls)
	}

	out := buf.String()
	if !strings.Contains(out, "2.7.2.1: 1 orthology groups") {
		t.Errorf("missing KO count:\n%s", out)
	}
	if !strings.Contains(out, "Batch summary: 2 genes selected across 1 EC numbers (0 link failures, 1 unknown organisms)") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestSelectForECsDeduplicates(t *testing.T) {
	// eco:b2297 sits in both orthology groups of 2.3.1.8; it must be
	// kept once, attributed to the first group.
	sel, err := SelectForECs(context.Background(), acetateLookup(), []string{"2.3.1.8"},
		NewFilter([]string{"eco"}), &strings.Builder{})
	if err != nil {
		t.Fatalf("SelectForECs: %v", err)
	}
	want := []Gene{
		{ID: "eco:b2297", Organism: "Escherichia coli K-12 MG1655", KO: "ko:K00625", EC: "2.3.1.8"},
	}
	if !reflect.DeepEqual(sel.Genes, want) {
		t.Errorf("Genes = %+v, want %+v", sel.Genes, want)
	}
}

func TestSelectForECsKOLinkFailure(t *testing.T) {
	lookup := acetateLookup()
	lookup.failKOs["2.7.2.1"] = true
	var buf strings.Builder

	sel, err := SelectForECs(context.Background(), lookup, []string{"2.7.2.1", "2.3.1.8"},
		NewFilter([]string{"eco"}), &buf)
	if err != nil {
		t.Fatalf("SelectForECs: %v", err)
	}
	if sel.Failed != 1 {
		t.Errorf("Failed = %d, want 1", sel.Failed)
	}
	if len(sel.Genes) != 1 || sel.Genes[0].EC != "2.3.1.8" {
		t.Errorf("Genes = %+v", sel.Genes)
	}
	if !strings.Contains(buf.String(), "warning: 2.7.2.1 KO link failed") {
		t.Errorf("missing warning:\n%s", buf.String())
	}
}

func TestSelectForECsGeneLinkFailure(t *testing.T) {
	lookup := acetateLookup()
	lookup.failGenes["ko:K00625"] = true
	var buf strings.Builder

	sel, err := SelectForECs(context.Background(), lookup, []string{"2.3.1.8"},
		NewFilter([]string{"eco", "tth"}), &buf)
	if err != nil {
		t.Fatalf("SelectForECs: %v", err)
	}
	if sel.Failed != 1 {
		t.Errorf("Failed = %d, want 1", sel.Failed)
	}
	// K13788 still contributes both organisms' genes.
	if len(sel.Genes) != 2 || sel.Genes[0].KO != "ko:K13788" {
		t.Errorf("Genes = %+v", sel.Genes)
	}
	if !strings.Contains(buf.String(), "warning: ko:K00625 gene link failed") {
		t.Errorf("missing warning:\n%s", buf.String())
	}
}

func TestSelectForECsOrganismTableError(t *testing.T) {
	lookup := acetateLookup()
	lookup.orgErr = errors.New("table unavailable")

	if _, err := SelectForECs(context.Background(), lookup, []string{"2.7.2.1"},
		NewFilter(nil), &strings.Builder{}); err == nil {
		t.Fatal("expected error when the organism table is unavailable")
	}
}

func TestSelectForECsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SelectForECs(ctx, acetateLookup(), []string{"2.7.2.1"}, NewFilter(nil), &strings.Builder{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
