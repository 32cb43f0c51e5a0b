package eval

import (
	"strings"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	"github.com/aretw0/bioreasoner/pkg/vocab"
)

// ValidFactIDs returns the tokens a predictor is allowed to output, sorted.
func ValidFactIDs() []domain.Fact {
	return domain.NewFactSet(append(vocab.StateFacts(), vocab.PresenceFacts()...)...).List()
}

// BuildPrompt renders the deterministic prompt for s. Without instructions
// only the scenario header and its initial facts are included.
func BuildPrompt(s *scenario.Scenario, includeInstructions bool) string {
	var b strings.Builder

	b.WriteString("Scenario: " + s.Name + "\n")
	if desc := strings.TrimSpace(s.Description); desc != "" {
		b.WriteString("Description: " + desc + "\n\n")
	}

	b.WriteString("Initial biological facts:\n")
	lines := make([]string, 0, len(s.InitialFacts))
	for _, f := range s.Facts().List() {
		lines = append(lines, "- "+string(f))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	if !includeInstructions {
		return b.String()
	}

	var valid strings.Builder
	valid.WriteString("Valid BioReasoner fact IDs you may output (choose any subset):\n")
	for _, f := range ValidFactIDs() {
		valid.WriteString("  - " + string(f) + "\n")
	}

	b.WriteString("You are an expert molecular and cellular biologist.\n")
	b.WriteString("You are given symbolic biological facts about signaling pathways:\n")
	b.WriteString("  - Wnt / LRP6 / β-catenin\n")
	b.WriteString("  - PI3K / AKT / GSK3 / apoptosis\n\n")
	b.WriteString("TASK:\n")
	b.WriteString("1. Reason forward based ONLY on these initial facts and standard biology.\n")
	b.WriteString("2. Decide qualitative states (UP, DOWN, BASELINE, ACTIVE, INACTIVE, etc.) ")
	b.WriteString("   for relevant downstream components.\n")
	b.WriteString("3. You MUST restrict your predictions to the following BioReasoner fact IDs:\n")
	b.WriteString(valid.String() + "\n")
	b.WriteString("4. Output ONLY a JSON object with a single key 'facts', whose value is a list ")
	b.WriteString("   of BioReasoner fact IDs taken from the list above.\n")
	b.WriteString("   Example:\n")
	b.WriteString(`   {"facts": ["BETA_CAT__LEVEL__UP", "DESTRUCTION_COMPLEX__ACTIVITY__LOW"]}` + "\n\n")
	b.WriteString("5. Do not invent new fact IDs. Use only IDs exactly as written in the list.\n")
	b.WriteString("6. Do not explain your reasoning.\n")
	b.WriteString("7. Do not output any text outside of the JSON.\n")

	return b.String()
}
