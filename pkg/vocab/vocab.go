// Package vocab names the fact tokens of the Wnt/LRP6/beta-catenin and
// PI3K/AKT/GSK3 universe.
//
// Tokens follow COMPONENT__ATTRIBUTE__VALUE. Presence facts describe the
// experimental setup; state facts are what the rules derive.
package vocab

import "github.com/aretw0/bioreasoner/pkg/domain"

// Wnt / LRP6 / beta-catenin.
const (
	WntLigandPresent       domain.Fact = "WNT__LIGAND__PRESENT"
	WntStateOff            domain.Fact = "WNT__STATE__OFF"
	LRP6ProteinPresent     domain.Fact = "LRP6__PROTEIN__PRESENT"
	FrizzledProteinPresent domain.Fact = "FRIZZLED__PROTEIN__PRESENT"
	LRP6SerSitesIntact     domain.Fact = "LRP6__SER_SITES__INTACT"
	LRP6SerSitesP          domain.Fact = "LRP6__SER_SITES__P"
	LRP6SerSitesMutated    domain.Fact = "LRP6__SER_SITES__MUTATED"
	SignalosomeFormed      domain.Fact = "SIGNALOSOME__STATE__FORMED"
	LRP6SignalingActive    domain.Fact = "LRP6__SIGNALING__ACTIVE"

	BetaCatUp       domain.Fact = "BETA_CAT__LEVEL__UP"
	BetaCatBaseline domain.Fact = "BETA_CAT__LEVEL__BASELINE"
	BetaCatDown     domain.Fact = "BETA_CAT__LEVEL__DOWN"

	DestructionComplexHigh domain.Fact = "DESTRUCTION_COMPLEX__ACTIVITY__HIGH"
	DestructionComplexLow  domain.Fact = "DESTRUCTION_COMPLEX__ACTIVITY__LOW"
)

// Growth factor / PI3K / AKT / GSK3 / apoptosis.
const (
	GrowthFactorPresent  domain.Fact = "GROWTH_FACTOR__LIGAND__PRESENT"
	GrowthFactorStateOff domain.Fact = "GROWTH_FACTOR__STATE__OFF"
	RTKReceptorPresent   domain.Fact = "RTK__RECEPTOR__PRESENT"
	PI3KActive           domain.Fact = "PI3K__STATE__ACTIVE"
	AKTThr308P           domain.Fact = "AKT__PHOSPHO_THR308__P"
	AKTSer473P           domain.Fact = "AKT__PHOSPHO_SER473__P"
	AKTActive            domain.Fact = "AKT__STATE__ACTIVE"
	AKTInactive          domain.Fact = "AKT__STATE__INACTIVE"
	GSK3Active           domain.Fact = "GSK3__STATE__ACTIVE"
	GSK3Inactive         domain.Fact = "GSK3__STATE__INACTIVE"
	ApoptosisHigh        domain.Fact = "APOPTOSIS__TENDENCY__HIGH"
	ApoptosisLow         domain.Fact = "APOPTOSIS__TENDENCY__LOW"
)

// StateFacts are the derived pathway states a predictor is scored on.
func StateFacts() []domain.Fact {
	return domain.SortFacts([]domain.Fact{
		BetaCatUp, BetaCatBaseline, BetaCatDown,
		DestructionComplexHigh, DestructionComplexLow,
		PI3KActive,
		AKTActive, AKTInactive,
		GSK3Active, GSK3Inactive,
		ApoptosisHigh, ApoptosisLow,
	})
}

// PresenceFacts are setup facts a predictor may legitimately echo back.
func PresenceFacts() []domain.Fact {
	return domain.SortFacts([]domain.Fact{
		RTKReceptorPresent,
		GrowthFactorPresent,
		LRP6ProteinPresent,
		FrizzledProteinPresent,
	})
}

// All returns every known token, sorted.
func All() []domain.Fact {
	return domain.NewFactSet(
		WntLigandPresent, WntStateOff, LRP6ProteinPresent, FrizzledProteinPresent,
		LRP6SerSitesIntact, LRP6SerSitesP, LRP6SerSitesMutated, SignalosomeFormed,
		LRP6SignalingActive, BetaCatUp, BetaCatBaseline, BetaCatDown,
		DestructionComplexHigh, DestructionComplexLow,
		GrowthFactorPresent, GrowthFactorStateOff, RTKReceptorPresent, PI3KActive,
		AKTThr308P, AKTSer473P, AKTActive, AKTInactive,
		GSK3Active, GSK3Inactive, ApoptosisHigh, ApoptosisLow,
	).List()
}

// Known reports whether f is part of the vocabulary.
func Known(f domain.Fact) bool {
	for _, k := range All() {
		if k == f {
			return true
		}
	}
	return false
}
