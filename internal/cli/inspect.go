package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/bioreasoner/internal/presentation/graph"
	"github.com/aretw0/bioreasoner/internal/presentation/tui"
	"github.com/aretw0/bioreasoner/internal/validator"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/scenario"
)

// ValidateOptions configure validate.
type ValidateOptions struct {
	EngineOptions
	// Paths are scenario files or suite directories.
	Paths []string
}

// Validate checks the catalog and every given scenario, printing findings.
// Only error findings fail validation.
func Validate(opts ValidateOptions, stdout io.Writer) error {
	engine, err := createEngine(opts.EngineOptions, createLogger(opts.Debug))
	if err != nil {
		return err
	}

	findings := validator.CheckCatalog(engine.Library(), engine.Contradictions())
	known := validator.Vocabulary(engine.Library(), engine.Contradictions())

	files, err := expandScenarioPaths(opts.Paths)
	if err != nil {
		return err
	}
	for _, path := range files {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		findings = append(findings, validator.CheckScenario(s, known)...)
	}

	for _, f := range findings {
		fmt.Fprintln(stdout, f.String())
	}
	if err := validator.Err(findings); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Catalog is valid (%d rules, %d scenario(s) checked, %d warning(s)) ✅\n",
		len(engine.Rules()), len(files), len(findings))
	return nil
}

func expandScenarioPaths(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", scenario.ErrNotFound, p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := scenario.Discover(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// GraphOptions configure graph.
type GraphOptions struct {
	EngineOptions
	// ScenarioPath, when set, overlays a run of that scenario.
	ScenarioPath string
}

// Graph writes the Mermaid diagram of the catalog.
func Graph(opts GraphOptions, stdout io.Writer) error {
	engine, err := createEngine(opts.EngineOptions, createLogger(opts.Debug))
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if opts.ScenarioPath != "" {
		s, err := scenario.Load(opts.ScenarioPath)
		if err != nil {
			return err
		}
		overlay = &graph.GraphOverlay{
			InitialFacts: s.InitialFacts,
			Result:       engine.Run(s.Facts()),
		}
	}

	_, err = io.WriteString(stdout, graph.GenerateMermaid(engine.Rules(), engine.Contradictions().Pairs(), overlay))
	return err
}

// RulesOptions configure rules.
type RulesOptions struct {
	EngineOptions
	JSON bool
}

// Rules lists the catalog in application order.
func Rules(opts RulesOptions, stdout io.Writer) error {
	engine, err := createEngine(opts.EngineOptions, createLogger(opts.Debug))
	if err != nil {
		return err
	}
	if opts.JSON {
		return writeJSON(stdout, "-", map[string]any{
			"rules":          engine.Rules(),
			"contradictions": engine.Contradictions().Pairs(),
		})
	}

	rendered, err := tui.NewRenderer(stdout)(rulesMarkdown(engine.Rules(), engine.Contradictions().Pairs()))
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, rendered)
	return err
}

func rulesMarkdown(rules []domain.Rule, pairs []domain.Pair) string {
	var sb strings.Builder
	sb.WriteString("# Rules\n\n")
	sb.WriteString("| # | Rule | Priority | When | Then |\n")
	sb.WriteString("|---|------|----------|------|------|\n")
	for i, r := range rules {
		fmt.Fprintf(&sb, "| %d | %s | %d | %s | %s |\n", i+1, r.Name, r.Priority, joinFacts(r.Conditions), joinFacts(r.Conclusions))
	}
	sb.WriteString("\n# Contradictions\n\n")
	for _, p := range pairs {
		fmt.Fprintf(&sb, "- `%s` ⟷ `%s`\n", p.A, p.B)
	}
	return sb.String()
}

func joinFacts(facts []domain.Fact) string {
	parts := make([]string, len(facts))
	for i, f := range facts {
		parts[i] = "`" + string(f) + "`"
	}
	return strings.Join(parts, ", ")
}
