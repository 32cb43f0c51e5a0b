package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/bioreasoner/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	InitialFacts []domain.Fact
	Result       *domain.Result
}

// GenerateMermaid produces a Mermaid flowchart of the rule catalog.
// Facts are rectangles and rules are subroutines; each condition points
// into its rule and each rule points to its conclusions. Contradiction
// pairs are joined by dotted "excludes" links.
// With an overlay, initial and derived facts, fired rules and conflicting
// facts are styled.
func GenerateMermaid(rules []domain.Rule, pairs []domain.Pair, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	facts := domain.NewFactSet()
	for _, r := range rules {
		facts.Update(r.Conditions...)
		facts.Update(r.Conclusions...)
	}
	for _, p := range pairs {
		facts.Update(p.A, p.B)
	}

	for _, f := range facts.List() {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", factID(f), f))
	}

	for _, r := range rules {
		safeID := ruleID(r.Name)
		label := r.Name
		if r.Priority != 0 {
			label = fmt.Sprintf("%s <br/> p=%d", r.Name, r.Priority)
		}
		sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", safeID, label))
		for _, c := range r.Conditions {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", factID(c), safeID))
		}
		for _, c := range r.Conclusions {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, factID(c)))
		}
	}

	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("    %s -. \"excludes\" .- %s\n", factID(p.A), factID(p.B)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme.
		sb.WriteString("    classDef initial fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef derived fill:#e8f5e9,stroke:#1b5e20,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef fired fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef conflict fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		initial := domain.NewFactSet(overlay.InitialFacts...)
		for _, f := range initial.List() {
			if facts.Has(f) {
				sb.WriteString(fmt.Sprintf("    class %s initial;\n", factID(f)))
			}
		}

		if res := overlay.Result; res != nil {
			for _, f := range res.FinalFacts.List() {
				if facts.Has(f) && !initial.Has(f) {
					sb.WriteString(fmt.Sprintf("    class %s derived;\n", factID(f)))
				}
			}
			for _, name := range res.FiredRules() {
				sb.WriteString(fmt.Sprintf("    class %s fired;\n", ruleID(name)))
			}
			conflicting := domain.NewFactSet()
			for _, p := range res.Contradictions {
				conflicting.Update(p.A, p.B)
			}
			for _, f := range conflicting.List() {
				sb.WriteString(fmt.Sprintf("    class %s conflict;\n", factID(f)))
			}
		}
	}

	return sb.String()
}

func factID(f domain.Fact) string {
	return "f_" + sanitizeMermaidID(string(f))
}

func ruleID(name string) string {
	return "r_" + sanitizeMermaidID(name)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
