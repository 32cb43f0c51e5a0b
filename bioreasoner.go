package bioreasoner

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/bioreasoner/internal/logging"
	"github.com/aretw0/bioreasoner/internal/runtime"
	"github.com/aretw0/bioreasoner/pkg/catalog"
	"github.com/aretw0/bioreasoner/pkg/domain"
)

// DefaultMaxIterations is the pass cap used when none is configured.
const DefaultMaxIterations = runtime.DefaultMaxIterations

// Engine is the high-level entry point for the BioReasoner library.
// It wraps the internal runtime together with the rule library and the
// contradiction registry it was built from.
type Engine struct {
	runtime        *runtime.Engine
	library        *domain.Library
	contradictions *domain.Registry
	maxIterations  int
	hooks          domain.LifecycleHooks
	logger         *slog.Logger
	catalogPath    string
	Name           string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLibrary replaces the built-in rule library.
func WithLibrary(lib *domain.Library) Option {
	return func(e *Engine) {
		e.library = lib
	}
}

// WithContradictions replaces the built-in contradiction registry.
// The registry is copied by New; later changes to reg are not seen.
func WithContradictions(reg *domain.Registry) Option {
	return func(e *Engine) {
		e.contradictions = reg
	}
}

// WithCatalogFile loads rules and contradictions from a catalog file.
// Explicit WithLibrary or WithContradictions options take precedence.
func WithCatalogFile(path string) Option {
	return func(e *Engine) {
		e.catalogPath = path
	}
}

// WithMaxIterations sets the default pass cap of Run.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		e.maxIterations = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine. Without options it uses the built-in
// Wnt/LRP6/beta-catenin and PI3K/AKT catalog.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(eng)
	}

	switch {
	case eng.catalogPath != "":
		lib, reg, err := catalog.Load(eng.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		if eng.library == nil {
			eng.library = lib
		}
		if eng.contradictions == nil {
			eng.contradictions = reg
		}
		eng.Name = eng.catalogPath
	case eng.library == nil || eng.contradictions == nil:
		lib, reg := catalog.Default()
		if eng.library == nil {
			eng.library = lib
		}
		if eng.contradictions == nil {
			eng.contradictions = reg
		}
		eng.Name = "default"
	default:
		eng.Name = "custom"
	}

	eng.contradictions = eng.contradictions.Clone()

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.logger = eng.logger.With("catalog", eng.Name)

	eng.runtime = runtime.NewEngine(
		eng.library,
		eng.contradictions,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithMaxIterations(eng.maxIterations),
	)
	return eng, nil
}

// Run derives the closure of initial under the rules and reports contradictions.
// initial is never modified.
func (e *Engine) Run(initial *domain.FactSet) *domain.Result {
	return e.runtime.Run(initial)
}

// RunWithLimit is Run with an explicit pass cap for this call only.
func (e *Engine) RunWithLimit(initial *domain.FactSet, maxIterations int) *domain.Result {
	return e.runtime.RunWithLimit(initial, maxIterations)
}

// RunFacts is Run over raw tokens.
func (e *Engine) RunFacts(tokens ...string) *domain.Result {
	return e.Run(domain.NewFactSet(domain.Facts(tokens...)...))
}

// CheckContradictions scans facts without deriving anything.
func (e *Engine) CheckContradictions(facts *domain.FactSet) []domain.Pair {
	return e.contradictions.Check(facts)
}

// Rules returns the rules in application order.
func (e *Engine) Rules() []domain.Rule {
	return e.library.Rules()
}

// Library returns the rule library.
func (e *Engine) Library() *domain.Library {
	return e.library
}

// Contradictions returns a copy of the contradiction registry.
func (e *Engine) Contradictions() *domain.Registry {
	return e.contradictions.Clone()
}

// MaxIterations returns the default pass cap.
func (e *Engine) MaxIterations() int {
	return e.runtime.MaxIterations()
}
