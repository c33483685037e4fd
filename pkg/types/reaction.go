// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pathway-engine pipeline.
// Implements: prd001-equation (Side, Equation, Direction);
//
//	prd002-scoring (FeatureVector, Weights);
//	prd003-lookup (Reaction, configuration);
//	prd005-subpathway (Step, SubpathwayResult).
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Side is one side of a reaction equation: species identifier to summed
// stoichiometric coefficient. A species appearing twice in the printed
// equation accumulates. Per prd001-equation R2.3.
type Side map[string]float64

// Add accumulates coeff onto the species entry.
func (s Side) Add(species string, coeff float64) {
	s[species] += coeff
}

// Total sums the coefficients of the species from group that are present
// on this side. Species absent from the side contribute zero.
func (s Side) Total(group map[string]bool) float64 {
	var sum float64
	for species, coeff := range s {
		if group[species] {
			sum += coeff
		}
	}
	return sum
}

// Species returns the side's species identifiers in sorted order.
func (s Side) Species() []string {
	out := make([]string, 0, len(s))
	for species := range s {
		out = append(out, species)
	}
	sort.Strings(out)
	return out
}

// Equation is a parsed reaction equation. Left holds substrates and Right
// holds products as printed; Reversible records whether the arrow was "<=>".
type Equation struct {
	Left       Side `json:"left" yaml:"left"`
	Right      Side `json:"right" yaml:"right"`
	Reversible bool `json:"reversible" yaml:"reversible"`
}

// Reverse returns the equation with substrate and product sides swapped.
// Reversibility is a property of the reaction, not of the reading
// direction, so it is preserved. The sides are shared, not copied.
func (e Equation) Reverse() Equation {
	return Equation{Left: e.Right, Right: e.Left, Reversible: e.Reversible}
}

// IsEmpty reports whether both sides are empty, the parse result for a
// string with no recognizable equation. Per prd001-equation R4.2.
func (e Equation) IsEmpty() bool {
	return len(e.Left) == 0 && len(e.Right) == 0
}

// String prints the equation in KEGG orientation with sorted species.
func (e Equation) String() string {
	arrow := "=>"
	if e.Reversible {
		arrow = "<=>"
	}
	return fmt.Sprintf("%s %s %s", formatSide(e.Left), arrow, formatSide(e.Right))
}

func formatSide(s Side) string {
	terms := make([]string, 0, len(s))
	for _, species := range s.Species() {
		coeff := s[species]
		if coeff == 1 {
			terms = append(terms, species)
		} else {
			terms = append(terms, fmt.Sprintf("%g %s", coeff, species))
		}
	}
	return strings.Join(terms, " + ")
}

// Reaction holds the parsed fields of a KEGG reaction record.
// Per prd003-lookup R3.1: equation, pathway memberships, names, enzymes.
type Reaction struct {
	// ID is the KEGG reaction identifier (e.g. "R00200").
	ID string `json:"id" yaml:"id"`

	// Name is the first NAME entry of the record, if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Definition is the human-readable equation with compound names.
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`

	// Equation is the parsed compound-identifier equation.
	Equation Equation `json:"equation" yaml:"equation"`

	// Pathways lists the pathway map identifiers referencing this reaction.
	Pathways []string `json:"pathways,omitempty" yaml:"pathways,omitempty"`

	// Enzymes lists the EC numbers annotated on the record.
	Enzymes []string `json:"enzymes,omitempty" yaml:"enzymes,omitempty"`
}

// Direction selects the reading direction of a reaction for scoring.
// Per prd002-scoring R2.1, reverse scoring swaps the equation sides.
// The values double as the sign tags attached during subpathway
// enumeration (prd005-subpathway R2.4).
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// IsValid reports whether d is one of the two defined directions.
func (d Direction) IsValid() bool {
	return d == Forward || d == Reverse
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a CLI or config string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "fwd", "+1", "+":
		return Forward, nil
	case "reverse", "rev", "-1", "-":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want forward or reverse)", s)
	}
}

// Orient returns the equation read in direction d.
func (e Equation) Orient(d Direction) Equation {
	if d == Reverse {
		return e.Reverse()
	}
	return e
}
