// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package subpath enumerates candidate subpathways within a KEGG pathway
// map and selects the cheapest one.
// Implements: prd005-subpathway (R1-R5);
//
//	docs/ARCHITECTURE § Subpathway Search.
package subpath

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

// Lookup provides the pathway and reaction data enumeration runs over.
type Lookup interface {
	ReactionsForCompound(ctx context.Context, compoundID string) ([]string, error)
	ReactionsForPathway(ctx context.Context, mapID string) ([]string, error)
	GetReaction(ctx context.Context, reactionID string) (*types.Reaction, error)
	ListReaction(ctx context.Context, reactionID string) (string, error)
}

// StartSet holds the reactions that can begin a subpathway, together with
// the full reaction membership of the map they were selected from.
type StartSet struct {
	MapID        string
	CompoundID   string
	Starts       []string
	MapReactions []string
}

// StartReactions returns the map's reactions that consume the compound:
// reactions linked to both the map and the compound, minus those whose
// printed equation shows the compound only as a product (R1.1, R1.2).
// A reaction whose record cannot be fetched stays in the start set, with a
// warning written to w.
func StartReactions(ctx context.Context, lookup Lookup, mapID, compoundID string, w io.Writer) (StartSet, error) {
	set := StartSet{MapID: mapID, CompoundID: compoundID}

	linked, err := lookup.ReactionsForCompound(ctx, compoundID)
	if err != nil {
		return set, fmt.Errorf("linking reactions for %s: %w", compoundID, err)
	}
	mapReactions, err := lookup.ReactionsForPathway(ctx, mapID)
	if err != nil {
		return set, fmt.Errorf("linking reactions for %s: %w", mapID, err)
	}
	set.MapReactions = mapReactions

	inMap := make(map[string]bool, len(mapReactions))
	for _, rid := range mapReactions {
		inMap[rid] = true
	}

	for _, rid := range linked {
		if !inMap[rid] {
			continue
		}
		rec, err := lookup.GetReaction(ctx, rid)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s lookup failed: %v\n", rid, err)
			set.Starts = append(set.Starts, rid)
			continue
		}
		if productOnly(rec.Equation, compoundID) {
			continue
		}
		set.Starts = append(set.Starts, rid)
	}
	return set, nil
}

// productOnly reports whether the species sits on the printed right side of
// the equation and nowhere on the left.
func productOnly(eq types.Equation, species string) bool {
	_, left := eq.Left[species]
	_, right := eq.Right[species]
	return right && !left
}

// Definition is a reaction's name-level stoichiometry, parsed from the
// final semicolon-delimited segment of its list entry. Cofactor terms are
// removed before connectivity matching. Tag is Forward when the entry shows
// a bidirectional arrow, Reverse for a one-way arrow, and zero when the
// entry has no equation at all.
type Definition struct {
	Substrates map[string]bool
	Products   map[string]bool
	Tag        types.Direction
}

// cofactorNames are currency and carrier species dropped from name-level
// definitions before connectivity matching. Ammonia species match by their
// NH prefix.
var cofactorNames = map[string]bool{
	"ATP": true, "ADP": true, "AMP": true,
	"Pi": true, "PPi": true,
	"NAD+": true, "NADH": true, "NADP+": true, "NADPH": true,
	"H2O": true, "H+": true, "CO2": true,
	"CoA": true,
}

func isCofactor(name string) bool {
	return cofactorNames[name] || strings.HasPrefix(name, "NH")
}

// parseDefinition extracts the equation segment after the last semicolon of
// a list entry. Anything before it is the reaction's name list.
func parseDefinition(line string) Definition {
	i := strings.LastIndex(line, ";")
	if i < 0 {
		return Definition{}
	}
	eq := strings.TrimSpace(line[i+1:])

	var def Definition
	var left, right string
	if j := strings.Index(eq, "<=>"); j >= 0 {
		left, right = eq[:j], eq[j+3:]
		def.Tag = types.Forward
	} else if j := strings.Index(eq, "=>"); j >= 0 {
		left, right = eq[:j], eq[j+2:]
		def.Tag = types.Reverse
	} else {
		return Definition{}
	}
	def.Substrates = nameSet(left)
	def.Products = nameSet(right)
	return def
}

// nameSet splits one equation side into species names. Terms are separated
// by a spaced plus, so charged names like NAD+ survive whole. Leading
// stoichiometric multipliers and cofactor names are dropped.
func nameSet(side string) map[string]bool {
	set := make(map[string]bool)
	for _, term := range strings.Split(side, " + ") {
		fields := strings.Fields(term)
		if len(fields) == 0 {
			continue
		}
		if isCoefficient(fields[0]) {
			fields = fields[1:]
		}
		name := strings.Join(fields, " ")
		if name == "" || isCofactor(name) {
			continue
		}
		set[name] = true
	}
	return set
}

// isCoefficient matches stoichiometric multipliers such as "2", "0.5",
// "n", "2n", and "(n+1)".
func isCoefficient(tok string) bool {
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == 'n' || r == '(' || r == ')' || r == '+' || r == '-':
		default:
			return false
		}
	}
	return true
}

// LoadDefinitions fetches every reaction's list entry once and parses it
// into a Definition. An entry that cannot be fetched, or that carries no
// equation, loads as an empty definition so the traversal can proceed
// without it (R2.1-R2.3). Warnings go to w.
func LoadDefinitions(ctx context.Context, lookup Lookup, reactionIDs []string, w io.Writer) (map[string]Definition, error) {
	defs := make(map[string]Definition, len(reactionIDs))
	var failed int
	for _, rid := range reactionIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := lookup.ListReaction(ctx, rid)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s list entry failed: %v\n", rid, err)
			defs[rid] = Definition{}
			failed++
			continue
		}
		defs[rid] = parseDefinition(line)
	}
	if failed > 0 {
		fmt.Fprintf(w, "loaded %d reaction definitions (%d failed)\n", len(defs), failed)
	}
	return defs, nil
}

// Enumerate returns every candidate subpathway of the map that starts at a
// reaction consuming the compound. Reactions connect when one's products
// share a non-cofactor species with the other's substrates, in either
// orientation; each start's reachable set is collected depth first in
// discovery order. Single-reaction results are discarded (R3.1-R3.4).
func Enumerate(ctx context.Context, lookup Lookup, mapID, compoundID string, w io.Writer) ([]types.Subpathway, error) {
	set, err := StartReactions(ctx, lookup, mapID, compoundID, w)
	if err != nil {
		return nil, err
	}
	if len(set.Starts) == 0 {
		return nil, nil
	}

	defs, err := LoadDefinitions(ctx, lookup, set.MapReactions, w)
	if err != nil {
		return nil, err
	}

	var subpaths []types.Subpathway
	for _, start := range set.Starts {
		sp := collect(start, set.MapReactions, defs)
		if len(sp) > 1 {
			subpaths = append(subpaths, sp)
		}
	}
	return subpaths, nil
}

// collect walks shared-species connectivity from the start reaction and
// returns the reachable reactions in discovery order, each tagged with its
// definition's direction.
func collect(start string, mapReactions []string, defs map[string]Definition) types.Subpathway {
	visited := make(map[string]bool)
	stack := []string{start}
	var pathway types.Subpathway

	for len(stack) > 0 {
		rid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[rid] {
			continue
		}
		visited[rid] = true
		def := defs[rid]
		pathway = append(pathway, types.Step{ReactionID: rid, Direction: def.Tag})

		for _, r := range mapReactions {
			if visited[r] {
				continue
			}
			next := defs[r]
			if intersects(def.Products, next.Substrates) || intersects(next.Products, def.Substrates) {
				stack = append(stack, r)
			}
		}
	}
	return pathway
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}
