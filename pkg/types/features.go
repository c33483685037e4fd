// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// FeatureVector holds the six direction-sensitive scoring features of a
// reaction. Per prd002-scoring R2.1-R2.6.
type FeatureVector struct {
	// ATP is the net ATP-equivalent consumption: triphosphates consumed
	// minus 0.9 times recovery species produced. May be negative for
	// ATP-generating reactions.
	ATP float64 `json:"atp" yaml:"atp"`

	// Redox is the P/O-weighted net consumption of reducing equivalents.
	Redox float64 `json:"redox" yaml:"redox"`

	// O2 is the net molecular oxygen consumed, clamped at zero.
	O2 float64 `json:"o2" yaml:"o2"`

	// CO2 is the net carbon dioxide released, clamped at zero.
	CO2 float64 `json:"co2" yaml:"co2"`

	// Complexity counts the distinct non-trivial species across both sides.
	Complexity float64 `json:"complexity" yaml:"complexity"`

	// Precedent is 1/(1+n) for a reaction appearing in n pathway maps;
	// well-trodden reactions score lower.
	Precedent float64 `json:"precedent" yaml:"precedent"`
}

// Weights are the linear coefficients applied to a FeatureVector.
// The defaults are public so callers can start from them and adjust
// individual terms. Per prd002-scoring R3.1-R3.2.
type Weights struct {
	ATP        float64 `json:"atp" yaml:"atp"`
	Redox      float64 `json:"redox" yaml:"redox"`
	O2         float64 `json:"o2" yaml:"o2"`
	CO2        float64 `json:"co2" yaml:"co2"`
	Complexity float64 `json:"complexity" yaml:"complexity"`
	Precedent  float64 `json:"precedent" yaml:"precedent"`
}

// DefaultWeights returns the standard weight vector used when the caller
// supplies none.
func DefaultWeights() Weights {
	return Weights{
		ATP:        1.0,
		Redox:      1.0,
		O2:         0.3,
		CO2:        0.25,
		Complexity: 0.20,
		Precedent:  1.0,
	}
}

// Validate rejects weight vectors with negative terms, which would invert
// the meaning of a feature.
func (w Weights) Validate() error {
	for _, t := range []struct {
		name  string
		value float64
	}{
		{"atp", w.ATP},
		{"redox", w.Redox},
		{"o2", w.O2},
		{"co2", w.CO2},
		{"complexity", w.Complexity},
		{"precedent", w.Precedent},
	} {
		if t.value < 0 {
			return fmt.Errorf("weight %s is negative (%g)", t.name, t.value)
		}
	}
	return nil
}
