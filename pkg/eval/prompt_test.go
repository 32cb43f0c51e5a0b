package eval_test

import (
	"strings"
	"testing"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/eval"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	v "github.com/aretw0/bioreasoner/pkg/vocab"
	"github.com/stretchr/testify/assert"
)

func demoScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name:         "wnt_demo",
		Description:  "  Canonical Wnt stimulation.\n",
		InitialFacts: []domain.Fact{v.WntLigandPresent, v.FrizzledProteinPresent, v.LRP6ProteinPresent},
	}
}

func TestValidFactIDs(t *testing.T) {
	ids := eval.ValidFactIDs()
	assert.Len(t, ids, 16)
	assert.IsIncreasing(t, domain.Strings(ids))
	assert.Contains(t, ids, v.RTKReceptorPresent)
	assert.NotContains(t, ids, v.WntLigandPresent)
}

func TestBuildPrompt_FactsOnly(t *testing.T) {
	got := eval.BuildPrompt(demoScenario(), false)

	want := "Scenario: wnt_demo\n" +
		"Description: Canonical Wnt stimulation.\n\n" +
		"Initial biological facts:\n" +
		"- FRIZZLED__PROTEIN__PRESENT\n" +
		"- LRP6__PROTEIN__PRESENT\n" +
		"- WNT__LIGAND__PRESENT\n\n"
	assert.Equal(t, want, got)
}

func TestBuildPrompt_Instructions(t *testing.T) {
	got := eval.BuildPrompt(demoScenario(), true)

	assert.True(t, strings.HasPrefix(got, eval.BuildPrompt(demoScenario(), false)))
	assert.Contains(t, got, "TASK:\n")
	assert.Contains(t, got, "  - APOPTOSIS__TENDENCY__HIGH\n")
	assert.Contains(t, got, `{"facts": ["BETA_CAT__LEVEL__UP", "DESTRUCTION_COMPLEX__ACTIVITY__LOW"]}`)
	assert.True(t, strings.HasSuffix(got, "7. Do not output any text outside of the JSON.\n"))

	// Deterministic for the same input.
	assert.Equal(t, got, eval.BuildPrompt(demoScenario(), true))
}

func TestBuildPrompt_NoDescription(t *testing.T) {
	s := demoScenario()
	s.Description = "   "
	assert.NotContains(t, eval.BuildPrompt(s, false), "Description:")
}
