// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package equation parses KEGG reaction equations into stoichiometric sides.
// Implements: prd001-equation (R1-R4);
//
//	docs/ARCHITECTURE § Equation Model.
package equation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

// speciesToken matches a KEGG compound identifier inside a term. Terms with
// modifiers keep working: "C00404(n)" and "2n C00404" both yield C00404.
var speciesToken = regexp.MustCompile(`(C\d{5})`)

// coeffToken splits a leading decimal coefficient from the rest of a term:
// "2 C00002" and "0.5 C00007" match, "2n C00404" does not.
var coeffToken = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s+(\S.*)$`)

// Parse turns a printed KEGG equation into its two sides. The arrow "<=>"
// marks a reversible reaction, "=>" an irreversible one. Parsing is lossy
// by policy: terms without a recognizable compound identifier are skipped,
// a side with none parses to an empty multiset, and a string with no arrow
// yields two empty sides. Parse never fails.
func Parse(s string) types.Equation {
	left, right, reversible, ok := splitArrow(s)
	if !ok {
		return types.Equation{Left: types.Side{}, Right: types.Side{}}
	}
	return types.Equation{
		Left:       ParseSide(left),
		Right:      ParseSide(right),
		Reversible: reversible,
	}
}

// ParseSide turns one side of an equation into a species multiset:
// "2 C00002 + C00003" becomes {C00002: 2, C00003: 1}. A species printed
// twice accumulates its coefficients. Terms without a coefficient default
// to 1. Per prd001-equation R2.1-R2.3.
func ParseSide(s string) types.Side {
	side := types.Side{}
	for _, term := range strings.Split(s, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		coeff, rest := SplitCoefficient(term)
		if m := speciesToken.FindString(rest); m != "" {
			side.Add(m, coeff)
		}
	}
	return side
}

// SplitCoefficient strips a leading decimal coefficient from a term,
// returning the coefficient and the remainder. Terms without one return
// coefficient 1 and the term unchanged.
func SplitCoefficient(term string) (float64, string) {
	m := coeffToken.FindStringSubmatch(term)
	if m == nil {
		return 1.0, term
	}
	coeff, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 1.0, term
	}
	return coeff, m[2]
}

func splitArrow(s string) (left, right string, reversible, ok bool) {
	if i := strings.Index(s, "<=>"); i >= 0 {
		return s[:i], s[i+3:], true, true
	}
	if i := strings.Index(s, "=>"); i >= 0 {
		return s[:i], s[i+2:], false, true
	}
	return "", "", false, false
}
