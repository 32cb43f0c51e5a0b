package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/internal/adapters/file"
	"github.com/aretw0/bioreasoner/internal/presentation/tui"
	"github.com/aretw0/bioreasoner/pkg/scenario"
)

// Output formats of the run command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	EngineOptions
	ScenarioPath string
	Format       string
	Out          string
	Watch        bool
}

// Execute handles the 'run' command logic, dispatching to a single run or Watch mode.
func Execute(opts RunOptions) error {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Format != FormatText && opts.Format != FormatJSON {
		return fmt.Errorf("unknown format %q: use %s or %s", opts.Format, FormatText, FormatJSON)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if opts.Watch {
		return handleExecutionError(RunWatch(sigCtx, opts, os.Stdout))
	}
	return RunScenario(opts, os.Stdout)
}

// RunScenario loads the scenario, runs the engine once and writes the report.
func RunScenario(opts RunOptions, stdout io.Writer) error {
	logger := createLogger(opts.Debug)

	engine, err := createEngine(opts.EngineOptions, logger)
	if err != nil {
		return err
	}

	s, err := scenario.Load(opts.ScenarioPath)
	if err != nil {
		return err
	}
	logger.Info("Scenario loaded", "name", s.Name, "path", opts.ScenarioPath, "initial_facts", len(s.InitialFacts))

	res := engine.Run(s.Facts())

	if opts.Format == FormatJSON {
		return writeJSON(stdout, opts.Out, scenario.NewReport(s, res, engine.Contradictions()))
	}

	report := tui.Report(s, res, s.Answer(res, engine.Contradictions()))
	if opts.Out != "" && opts.Out != "-" {
		return file.WriteAtomic(opts.Out, []byte(report))
	}

	if tui.IsTerminal(stdout) {
		tui.PrintBanner(stdout, strings.TrimSpace(bioreasoner.Version))
	}
	rendered, err := tui.NewRenderer(stdout)(report)
	if err != nil {
		// Fall back to the raw Markdown.
		rendered = report
	}
	_, err = io.WriteString(stdout, rendered)
	return err
}
