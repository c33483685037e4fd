// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// KEGG compound identifiers for the cofactors the cost features track.
// Per prd002-scoring R1.1.
const (
	ATP      = "C00002"
	ADP      = "C00008"
	AMP      = "C00020"
	GTP      = "C00044"
	GDP      = "C00035"
	UTP      = "C00075"
	CTP      = "C00063"
	Pi       = "C00009"
	PPi      = "C00013"
	NADPlus  = "C00003"
	NADH     = "C00004"
	NADPPlus = "C00006"
	NADPH    = "C00005"
	FAD      = "C00016"
	FADH2    = "C01352"
	O2       = "C00007"
	CO2      = "C00011"
	H2O      = "C00001"
	HPlus    = "C00080"
)

// Triphosphates are the high-energy phosphate donors counted on the debit
// side of the ATP-equivalent feature.
var Triphosphates = map[string]bool{
	ATP: true,
	GTP: true,
	UTP: true,
	CTP: true,
}

// RecoverySpecies are the hydrolysis products whose net production earns
// partial ATP-equivalent credit (factor 0.9, prd002-scoring R2.2).
var RecoverySpecies = map[string]bool{
	ADP: true,
	AMP: true,
	GDP: true,
}

// Reduced and oxidized electron carriers, grouped by the P/O ratio applied
// to them by the redox feature: NADH and NADPH at 2.5 ATP per pair,
// FADH2 at 1.5. Per prd002-scoring R2.3.
var (
	NADHGroup  = map[string]bool{NADH: true}
	NADPHGroup = map[string]bool{NADPH: true}
	FADH2Group = map[string]bool{FADH2: true}

	NADOxidized = map[string]bool{NADPlus: true, NADPPlus: true}
	FADOxidized = map[string]bool{FAD: true}
)

// OxygenGroup and CarbonDioxideGroup feed the clamped consumption and
// release features.
var (
	OxygenGroup        = map[string]bool{O2: true}
	CarbonDioxideGroup = map[string]bool{CO2: true}
)

var trivialSpecies = map[string]bool{
	H2O:   true,
	HPlus: true,
	Pi:    true,
}

// IsTrivial reports whether a species is too ubiquitous to count toward
// reaction complexity: water, protons, and orthophosphate.
// Per prd002-scoring R2.5.
func IsTrivial(species string) bool {
	return trivialSpecies[species]
}
