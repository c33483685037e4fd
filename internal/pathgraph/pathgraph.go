// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pathgraph expands species-level reaction graphs by breadth-first
// search over a reaction Lookup.
// Implements: prd004-network (R1-R4);
//
//	docs/ARCHITECTURE § Reaction Graph.
package pathgraph

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

// Graph is a directed species adjacency. An edge runs from a substrate to a
// product of some known reaction; reversible reactions contribute the
// mirrored edge as well. Every species mentioned by a processed reaction is
// a node, with or without outgoing edges.
type Graph map[string]map[string]bool

// AddNode inserts a species with no edges. Adding an existing node keeps
// its edges.
func (g Graph) AddNode(species string) {
	if g[species] == nil {
		g[species] = make(map[string]bool)
	}
}

// AddEdge inserts a directed edge, creating both endpoint nodes as needed.
func (g Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g[from][to] = true
}

// Has reports whether the species is a node of the graph.
func (g Graph) Has(species string) bool {
	_, ok := g[species]
	return ok
}

// Nodes returns all species in the graph, sorted.
func (g Graph) Nodes() []string {
	nodes := make([]string, 0, len(g))
	for n := range g {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Successors returns the species reachable from the given one in a single
// step, sorted. A species with no outgoing edges yields an empty slice.
func (g Graph) Successors(species string) []string {
	next := make([]string, 0, len(g[species]))
	for n := range g[species] {
		next = append(next, n)
	}
	sort.Strings(next)
	return next
}

// EdgeCount returns the number of directed edges.
func (g Graph) EdgeCount() int {
	var n int
	for _, next := range g {
		n += len(next)
	}
	return n
}

// Reverse returns a new graph with every edge flipped. Nodes without edges
// are preserved.
func (g Graph) Reverse() Graph {
	rev := make(Graph, len(g))
	for from, next := range g {
		rev.AddNode(from)
		for to := range next {
			rev.AddEdge(to, from)
		}
	}
	return rev
}

// Lookup provides the reaction data the builder expands over.
type Lookup interface {
	ReactionsForCompound(ctx context.Context, compoundID string) ([]string, error)
	GetReaction(ctx context.Context, reactionID string) (*types.Reaction, error)
}

// Build expands a graph breadth-first from the seed species. Every reaction
// identifier is processed at most once, so record fetches are bounded by the
// number of distinct reactions encountered (R1.1, R1.3). Species found on
// either side of a new reaction join the frontier one level deeper; a depth
// of zero or less removes the expansion bound. Lookup failures shrink
// coverage rather than abort: a warning goes to w and the traversal
// continues (R1.4).
func Build(ctx context.Context, lookup Lookup, seed string, depth int, w io.Writer) (Graph, error) {
	type frontierEntry struct {
		species string
		depth   int
	}

	graph := make(Graph)
	visited := make(map[string]bool)
	discovered := map[string]bool{seed: true}
	queue := []frontierEntry{{species: seed}}
	var failed int

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		if depth > 0 && cur.depth >= depth {
			continue
		}

		reactions, err := lookup.ReactionsForCompound(ctx, cur.species)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s reaction lookup failed: %v\n", cur.species, err)
			failed++
			continue
		}

		for _, rid := range reactions {
			if visited[rid] {
				continue
			}
			visited[rid] = true

			rec, err := lookup.GetReaction(ctx, rid)
			if err != nil {
				fmt.Fprintf(w, "  warning: %s lookup failed: %v\n", rid, err)
				failed++
				continue
			}

			subs := rec.Equation.Left.Species()
			prods := rec.Equation.Right.Species()
			for _, s := range subs {
				for _, p := range prods {
					graph.AddEdge(s, p)
					if rec.Equation.Reversible {
						graph.AddEdge(p, s)
					}
				}
			}
			for _, list := range [][]string{subs, prods} {
				for _, c := range list {
					graph.AddNode(c)
					if discovered[c] {
						continue
					}
					discovered[c] = true
					queue = append(queue, frontierEntry{species: c, depth: cur.depth + 1})
				}
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(w, "expanded %d reactions into %d species (%d lookups failed)\n", len(visited), len(graph), failed)
	}
	return graph, nil
}

// Precursors returns the species that can reach the target within the given
// number of reverse steps, sorted. The target itself is excluded; a step
// count of zero or less yields nothing (R4.1, R4.2).
func (g Graph) Precursors(target string, steps int) []string {
	rev := g.Reverse()

	type frontierEntry struct {
		species string
		depth   int
	}

	var precursors []string
	seen := map[string]bool{target: true}
	queue := []frontierEntry{{species: target}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= steps {
			continue
		}
		for _, p := range rev.Successors(cur.species) {
			if seen[p] {
				continue
			}
			seen[p] = true
			precursors = append(precursors, p)
			queue = append(queue, frontierEntry{species: p, depth: cur.depth + 1})
		}
	}

	sort.Strings(precursors)
	return precursors
}

// Namer resolves compound identifiers to display names.
type Namer interface {
	CompoundName(ctx context.Context, compoundID string) (string, error)
}

// Precursor pairs a compound identifier with its resolved display name.
type Precursor struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// ResolveNames looks up a display name for each compound. A failed name
// lookup falls back to the identifier itself (R4.5).
func ResolveNames(ctx context.Context, namer Namer, ids []string) ([]Precursor, error) {
	resolved := make([]Precursor, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, err := namer.CompoundName(ctx, id)
		if err != nil || name == "" {
			name = id
		}
		resolved = append(resolved, Precursor{ID: id, Name: name})
	}
	return resolved, nil
}
