package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/observability"
)

// EngineOptions are the flags shared by every command that builds an engine.
type EngineOptions struct {
	CatalogPath string
	// MaxIterations overrides the engine's pass cap when set. Zero is a
	// valid cap: the run returns its input unchanged.
	MaxIterations *int
	Debug         bool
}

// createEngine initializes a BioReasoner engine with standard CLI conventions.
// Extra hooks (metrics) are combined with the debug hooks.
func createEngine(opts EngineOptions, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*bioreasoner.Engine, error) {
	engineOpts := []bioreasoner.Option{bioreasoner.WithLogger(logger)}

	if opts.Debug {
		hooks = append(hooks, observability.LoggingHooks(logger))
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, bioreasoner.WithLifecycleHooks(observability.Combine(hooks...)))
	}
	if opts.CatalogPath != "" {
		engineOpts = append(engineOpts, bioreasoner.WithCatalogFile(opts.CatalogPath))
	}
	if opts.MaxIterations != nil {
		engineOpts = append(engineOpts, bioreasoner.WithMaxIterations(*opts.MaxIterations))
	}

	engine, err := bioreasoner.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
