// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score extracts reaction features and evaluates the linear cost
// model over them, for single reactions and multi-step subpathways.
// Implements: prd002-scoring (R1-R4);
//
//	docs/ARCHITECTURE § Scoring.
package score

import (
	"math"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

// recoveryFactor discounts ATP-equivalent credit for producing ADP, AMP,
// or GDP: regenerating a triphosphate from them is not free.
const recoveryFactor = 0.9

// P/O ratios converting reducing equivalents to ATP equivalents.
const (
	poRatioNAD = 2.5
	poRatioFAD = 1.5
)

// Features extracts the six scoring features from an equation read in the
// given direction, plus the reaction's pathway-map count for the
// precedent term. Per prd002-scoring R2.1-R2.6.
func Features(eq types.Equation, mapCount int, dir types.Direction) types.FeatureVector {
	oriented := eq.Orient(dir)
	left, right := oriented.Left, oriented.Right

	atp := net(left, right, types.Triphosphates) -
		recoveryFactor*net(right, left, types.RecoverySpecies)

	consumed := poRatioNAD*net(left, right, types.NADHGroup) +
		poRatioNAD*net(left, right, types.NADPHGroup) +
		poRatioFAD*net(left, right, types.FADH2Group)
	produced := poRatioNAD*net(right, left, types.NADOxidized) +
		poRatioFAD*net(right, left, types.FADOxidized)

	return types.FeatureVector{
		ATP:        atp,
		Redox:      consumed - produced,
		O2:         math.Max(0, net(left, right, types.OxygenGroup)),
		CO2:        math.Max(0, net(right, left, types.CarbonDioxideGroup)),
		Complexity: float64(complexity(left, right)),
		Precedent:  1.0 / (1.0 + float64(mapCount)),
	}
}

// ReactionFeatures extracts features from a parsed reaction record.
func ReactionFeatures(r *types.Reaction, dir types.Direction) types.FeatureVector {
	return Features(r.Equation, len(r.Pathways), dir)
}

// Cost is the weighted linear combination of the features.
// Per prd002-scoring R3.1.
func Cost(f types.FeatureVector, w types.Weights) float64 {
	return w.ATP*f.ATP +
		w.Redox*f.Redox +
		w.O2*f.O2 +
		w.CO2*f.CO2 +
		w.Complexity*f.Complexity +
		w.Precedent*f.Precedent
}

// net is the summed coefficient of the group's species on the left minus
// the right side.
func net(left, right types.Side, group map[string]bool) float64 {
	return left.Total(group) - right.Total(group)
}

// complexity counts the distinct non-trivial species across both sides.
// Water, protons, and orthophosphate are filtered by types.IsTrivial.
func complexity(left, right types.Side) int {
	seen := map[string]bool{}
	for species := range left {
		if !types.IsTrivial(species) {
			seen[species] = true
		}
	}
	for species := range right {
		if !types.IsTrivial(species) {
			seen[species] = true
		}
	}
	return len(seen)
}
