package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/scenario"
)

// Report renders a run as Markdown: outcome, trace, final facts,
// contradictions and query answers.
func Report(s *scenario.Scenario, res *domain.Result, answers []scenario.Answer) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", s.Name)
	if desc := strings.TrimSpace(s.Description); desc != "" {
		sb.WriteString(desc + "\n\n")
	}
	fmt.Fprintf(&sb, "**Status:** %s after %d iteration(s), %d rule firing(s)\n\n", res.Status, res.Iterations, len(res.Steps))

	sb.WriteString("## Initial facts\n\n")
	writeFacts(&sb, s.Facts().List())

	sb.WriteString("## Trace\n\n")
	if len(res.Steps) == 0 {
		sb.WriteString("_No rule fired._\n\n")
	} else {
		sb.WriteString("| # | Iteration | Rule | New facts |\n|---|---|---|---|\n")
		for i, step := range res.Steps {
			fmt.Fprintf(&sb, "| %d | %d | `%s` | %s |\n", i+1, step.IterationIndex, step.Rule, codeList(step.NewFacts))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Final facts\n\n")
	writeFacts(&sb, res.FinalFacts.List())

	sb.WriteString("## Contradictions\n\n")
	if len(res.Contradictions) == 0 {
		sb.WriteString("_None._\n\n")
	} else {
		for _, p := range res.Contradictions {
			fmt.Fprintf(&sb, "- `%s` ⟷ `%s`\n", p.A, p.B)
		}
		sb.WriteString("\n")
	}

	if len(answers) > 0 {
		sb.WriteString("## Queries\n\n| Query | Answer |\n|---|---|\n")
		for _, a := range answers {
			fmt.Fprintf(&sb, "| `%s` | **%s** |\n", a.Query, a.Value)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeFacts(sb *strings.Builder, facts []domain.Fact) {
	if len(facts) == 0 {
		sb.WriteString("_None._\n\n")
		return
	}
	for _, f := range facts {
		fmt.Fprintf(sb, "- `%s`\n", f)
	}
	sb.WriteString("\n")
}

func codeList(facts []domain.Fact) string {
	parts := make([]string, len(facts))
	for i, f := range facts {
		parts[i] = "`" + string(f) + "`"
	}
	return strings.Join(parts, ", ")
}
