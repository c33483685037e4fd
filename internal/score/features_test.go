// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"math"
	"testing"

	"github.com/pdiddy/pathway-engine/internal/equation"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFeaturesATPHydrolysis(t *testing.T) {
	eq := equation.Parse("C00002 + C00001 => C00008 + C00009")
	f := Features(eq, 0, types.Forward)

	if !almostEqual(f.ATP, 0.1) {
		t.Errorf("ATP = %g, want 0.1", f.ATP)
	}
	if f.Redox != 0 {
		t.Errorf("Redox = %g, want 0", f.Redox)
	}
	if f.O2 != 0 || f.CO2 != 0 {
		t.Errorf("O2 = %g, CO2 = %g, want both 0", f.O2, f.CO2)
	}
	// Water and orthophosphate are trivial; ATP and ADP remain.
	if f.Complexity != 2 {
		t.Errorf("Complexity = %g, want 2", f.Complexity)
	}
	if f.Precedent != 1.0 {
		t.Errorf("Precedent = %g, want 1.0", f.Precedent)
	}

	if cost := Cost(f, types.DefaultWeights()); !almostEqual(cost, 1.5) {
		t.Errorf("default-weighted cost = %g, want 1.5", cost)
	}
}

func TestFeaturesATPHydrolysisReverse(t *testing.T) {
	eq := equation.Parse("C00002 + C00001 => C00008 + C00009")
	f := Features(eq, 0, types.Reverse)

	if !almostEqual(f.ATP, -0.1) {
		t.Errorf("reverse ATP = %g, want -0.1", f.ATP)
	}
	// Complexity and precedent ignore direction.
	if f.Complexity != 2 || f.Precedent != 1.0 {
		t.Errorf("reverse complexity/precedent = %g/%g, want 2/1", f.Complexity, f.Precedent)
	}
}

func TestFeaturesRedox(t *testing.T) {
	// Lactate dehydrogenase shape: NADH consumed, NAD+ released.
	eq := equation.Parse("C00022 + C00004 <=> C00186 + C00003")
	f := Features(eq, 0, types.Forward)

	// The carrier pair balances: consuming NADH costs 2.5 and releasing
	// NAD+ credits 2.5.
	if !almostEqual(f.Redox, 0) {
		t.Errorf("balanced carrier redox = %g, want 0", f.Redox)
	}

	// An unbalanced NADH appearance prices at the NAD P/O ratio.
	eq = equation.Parse("C00004 + C99999 => C99998")
	f = Features(eq, 0, types.Forward)
	if !almostEqual(f.Redox, 2.5) {
		t.Errorf("NADH-only redox = %g, want 2.5", f.Redox)
	}

	// FADH2 prices at the lower ratio.
	eq = equation.Parse("C01352 + C99999 => C99998")
	f = Features(eq, 0, types.Forward)
	if !almostEqual(f.Redox, 1.5) {
		t.Errorf("FADH2-only redox = %g, want 1.5", f.Redox)
	}
}

func TestFeaturesClampsNonNegative(t *testing.T) {
	// O2 released and CO2 consumed: both features clamp at zero.
	eq := equation.Parse("C00011 + C99999 => C00007 + C99998")
	for _, dir := range []types.Direction{types.Forward, types.Reverse} {
		f := Features(eq, 0, dir)
		if f.O2 < 0 {
			t.Errorf("%v O2 = %g, want >= 0", dir, f.O2)
		}
		if f.CO2 < 0 {
			t.Errorf("%v CO2 = %g, want >= 0", dir, f.CO2)
		}
	}

	// In the consuming direction both register positive.
	f := Features(eq, 0, types.Reverse)
	if !almostEqual(f.O2, 1) {
		t.Errorf("reverse O2 = %g, want 1", f.O2)
	}
	if !almostEqual(f.CO2, 1) {
		t.Errorf("reverse CO2 = %g, want 1", f.CO2)
	}
}

func TestFeaturesComplexityReversalInvariant(t *testing.T) {
	eq := equation.Parse("2 C00001 + C00007 + C00002 <=> C00011 + C00080 + C00009")
	fwd := Features(eq, 3, types.Forward)
	rev := Features(eq, 3, types.Reverse)

	if fwd.Complexity != rev.Complexity {
		t.Errorf("complexity forward %g != reverse %g", fwd.Complexity, rev.Complexity)
	}
	// C00001, C00080, C00009 are trivial; C00007, C00002, C00011 count.
	if fwd.Complexity != 3 {
		t.Errorf("Complexity = %g, want 3", fwd.Complexity)
	}
}

func TestFeaturesPrecedentRange(t *testing.T) {
	eq := equation.Parse("C00022 => C00033")
	for _, mapCount := range []int{0, 1, 5, 100} {
		f := Features(eq, mapCount, types.Forward)
		if f.Precedent <= 0 || f.Precedent > 1 {
			t.Errorf("Precedent(%d maps) = %g, want in (0, 1]", mapCount, f.Precedent)
		}
	}
	if f := Features(eq, 4, types.Forward); !almostEqual(f.Precedent, 0.2) {
		t.Errorf("Precedent(4 maps) = %g, want 0.2", f.Precedent)
	}
}

func TestFeaturesEmptyEquation(t *testing.T) {
	f := Features(equation.Parse("garbage with no arrow"), 0, types.Forward)
	if f.ATP != 0 || f.Redox != 0 || f.O2 != 0 || f.CO2 != 0 || f.Complexity != 0 {
		t.Errorf("empty-equation features = %+v, want zeros", f)
	}
	if f.Precedent != 1.0 {
		t.Errorf("empty-equation precedent = %g, want 1.0", f.Precedent)
	}
}

func TestCostUsesWeights(t *testing.T) {
	f := types.FeatureVector{ATP: 1, Redox: 1, O2: 1, CO2: 1, Complexity: 1, Precedent: 1}
	w := types.Weights{ATP: 2, Redox: 3, O2: 5, CO2: 7, Complexity: 11, Precedent: 13}
	if got := Cost(f, w); !almostEqual(got, 41) {
		t.Errorf("Cost = %g, want 41", got)
	}
	if got := Cost(types.FeatureVector{}, w); got != 0 {
		t.Errorf("Cost of zero vector = %g, want 0", got)
	}
}
