package catalog

import (
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/dsl"
	v "github.com/aretw0/bioreasoner/pkg/vocab"
)

// Default returns a fresh copy of the built-in catalog: seven
// Wnt/LRP6/beta-catenin rules, six PI3K/AKT rules, one cross-talk rule and
// the default contradiction pairs.
func Default() (*domain.Library, *domain.Registry) {
	b := dsl.New()
	declareWnt(b)
	declarePI3K(b)
	declareCrosstalk(b)
	declareContradictions(b)
	return b.MustBuild()
}

// DefaultLibrary returns only the rules of Default.
func DefaultLibrary() *domain.Library {
	lib, _ := Default()
	return lib
}

// DefaultContradictions returns only the contradiction pairs of Default.
func DefaultContradictions() *domain.Registry {
	_, reg := Default()
	return reg
}

func declareWnt(b *dsl.Builder) {
	b.Rule("wnt_frizzled_lrp6_form_signalosome").
		When(v.WntLigandPresent, v.LRP6ProteinPresent, v.FrizzledProteinPresent).
		Then(v.SignalosomeFormed).
		Priority(15).
		Tags("WNT", "LRP6", "FRIZZLED").
		Describe("When Wnt ligand, LRP6, and Frizzled are present, a Wnt signalosome forms.")

	b.Rule("signalosome_drives_lrp6_ser_phosphorylation").
		When(v.SignalosomeFormed, v.LRP6SerSitesIntact).
		Then(v.LRP6SerSitesP).
		Priority(10).
		Tags("WNT", "LRP6").
		Describe("A formed Wnt signalosome phosphorylates intact LRP6 serine sites.")

	b.Rule("signalosome_lowers_destruction_complex_activity").
		When(v.SignalosomeFormed).
		Then(v.DestructionComplexLow).
		Priority(9).
		Tags("WNT", "DESTRUCTION_COMPLEX").
		Describe("Wnt signalosome formation decreases destruction complex activity.")

	b.Rule("lrp6_active_when_p_s").
		When(v.LRP6SerSitesP).
		Then(v.LRP6SignalingActive).
		Priority(5).
		Tags("LRP6").
		Describe("Serine-phosphorylated LRP6 is treated as an active Wnt co-receptor.")

	b.Rule("lrp6_active_drives_beta_cat_up").
		When(v.LRP6SignalingActive).
		Then(v.BetaCatUp).
		Priority(1).
		Tags("BETA_CAT").
		Describe("Active LRP6 signaling increases beta-catenin levels.")

	b.Rule("destruction_complex_high_drives_beta_cat_down").
		When(v.DestructionComplexHigh).
		Then(v.BetaCatDown).
		Priority(2).
		Tags("BETA_CAT", "DESTRUCTION_COMPLEX").
		Describe("High destruction complex activity lowers beta-catenin levels.")

	b.Rule("baseline_destruction_complex_high_when_no_wnt").
		When(v.LRP6ProteinPresent, v.FrizzledProteinPresent, v.WntStateOff).
		Then(v.DestructionComplexHigh).
		Priority(-1).
		Tags("DESTRUCTION_COMPLEX").
		Describe("In the absence of Wnt, with receptors present, the destruction complex is highly active.")
}

func declarePI3K(b *dsl.Builder) {
	b.Rule("gf_rtk_activate_pi3k").
		When(v.GrowthFactorPresent, v.RTKReceptorPresent).
		Then(v.PI3KActive).
		Priority(15).
		Tags("PI3K", "RTK", "GROWTH_FACTOR").
		Describe("When a growth factor ligand and its RTK receptor are present, PI3K becomes active.")

	b.Rule("pi3k_active_phosphorylates_akt").
		When(v.PI3KActive).
		Then(v.AKTThr308P, v.AKTSer473P).
		Priority(10).
		Tags("PI3K", "AKT").
		Describe("Active PI3K signaling leads to AKT phosphorylation at Thr308 and Ser473.")

	b.Rule("dual_phospho_akt_is_active").
		When(v.AKTThr308P, v.AKTSer473P).
		Then(v.AKTActive).
		Priority(5).
		Tags("AKT").
		Describe("AKT is considered active when both Thr308 and Ser473 sites are phosphorylated.")

	b.Rule("akt_active_inhibits_gsk3").
		When(v.AKTActive).
		Then(v.GSK3Inactive).
		Priority(2).
		Tags("AKT", "GSK3").
		Describe("Active AKT inhibits GSK3, rendering it inactive.")

	b.Rule("akt_active_reduces_apoptosis_tendency").
		When(v.AKTActive).
		Then(v.ApoptosisLow).
		Priority(1).
		Tags("AKT", "APOPTOSIS").
		Describe("Active AKT signaling reduces apoptotic tendency (pro-survival effect).")

	b.Rule("baseline_no_gf_leads_to_high_apoptosis").
		When(v.RTKReceptorPresent, v.GrowthFactorStateOff).
		Then(v.AKTInactive, v.GSK3Active, v.ApoptosisHigh).
		Priority(-1).
		Tags("RTK", "AKT", "GSK3", "APOPTOSIS").
		Describe("Without growth factor, RTK is present but PI3K/AKT remain inactive, GSK3 is active, and apoptotic tendency is high.")
}

func declareCrosstalk(b *dsl.Builder) {
	b.Rule("gsk3_inactive_lowers_destruction_complex_activity").
		When(v.GSK3Inactive).
		Then(v.DestructionComplexLow).
		Priority(3).
		Tags("GSK3", "DESTRUCTION_COMPLEX", "CROSSTALK").
		Describe("When GSK3 is inactive (e.g., via AKT), destruction complex activity is inferred to be low.")
}

func declareContradictions(b *dsl.Builder) {
	b.Exclusive(v.BetaCatUp, v.BetaCatBaseline, v.BetaCatDown)
	b.Contradict(v.DestructionComplexHigh, v.DestructionComplexLow)
	b.Contradict(v.AKTActive, v.AKTInactive)
	b.Contradict(v.GSK3Active, v.GSK3Inactive)
	b.Contradict(v.ApoptosisHigh, v.ApoptosisLow)
}
