// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Step is one reaction of a subpathway together with the direction it is
// read in. Per prd005-subpathway R2.4 the direction is a heuristic tag:
// reversible reactions are read forward, irreversible ones reverse.
type Step struct {
	// ReactionID is the KEGG reaction identifier.
	ReactionID string `json:"reaction_id" yaml:"reaction_id"`

	// Direction is the reading direction applied when scoring the step.
	Direction Direction `json:"direction" yaml:"direction"`
}

// Subpathway is an ordered sequence of steps through a pathway map.
type Subpathway []Step

// ReactionIDs returns the reaction identifiers of the steps in order.
func (p Subpathway) ReactionIDs() []string {
	ids := make([]string, len(p))
	for i, s := range p {
		ids[i] = s.ReactionID
	}
	return ids
}

// ScoredStep is a step with its extracted features and weighted cost.
// Per prd002-scoring R4.3.
type ScoredStep struct {
	Step `yaml:",inline"`

	// Definition is the human-readable equation, when the record had one.
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`

	// Features is the feature vector extracted in the step's direction.
	Features FeatureVector `json:"features" yaml:"features"`

	// Cost is the weighted cost of this step.
	Cost float64 `json:"cost" yaml:"cost"`
}

// CandidateStats summarizes the cost distribution over all enumerated
// candidate subpathways of a best-subpathway search.
type CandidateStats struct {
	// Count is the number of candidates scored.
	Count int `json:"count" yaml:"count"`

	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// SubpathwayResult is the outcome of a best-subpathway search over one
// pathway map and target compound. Per prd005-subpathway R3.1-R3.4.
type SubpathwayResult struct {
	// MapID is the pathway map that was searched.
	MapID string `json:"map_id" yaml:"map_id"`

	// CompoundID is the target compound the subpathways consume.
	CompoundID string `json:"compound_id" yaml:"compound_id"`

	// Found reports whether any candidate subpathway was enumerated and
	// scored. When false the step, cost, and URL fields are zero.
	Found bool `json:"found" yaml:"found"`

	// Steps is the winning subpathway with per-step details.
	Steps []ScoredStep `json:"steps" yaml:"steps"`

	// TotalCost is the sum of the step costs.
	TotalCost float64 `json:"total_cost" yaml:"total_cost"`

	// Candidates summarizes the cost distribution of every candidate.
	Candidates CandidateStats `json:"candidates" yaml:"candidates"`

	// HighlightURL is the KEGG pathway-diagram URL with the winning
	// reactions and the target compound highlighted.
	HighlightURL string `json:"highlight_url,omitempty" yaml:"highlight_url,omitempty"`
}
