package runtime

import (
	"log/slog"

	"github.com/aretw0/bioreasoner/internal/logging"
	"github.com/aretw0/bioreasoner/pkg/domain"
)

// DefaultMaxIterations bounds the number of passes of a run.
const DefaultMaxIterations = 1000

// Engine runs fixed-point forward chaining over an ordered rule library.
//
// An Engine is immutable after NewEngine returns and may serve any number of
// concurrent runs: each run works on its own clone of the input facts.
type Engine struct {
	rules          []domain.Rule
	contradictions *domain.Registry
	maxIterations  int
	logger         *slog.Logger
	hooks          domain.LifecycleHooks
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the logger used for firing and outcome records.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxIterations overrides DefaultMaxIterations. Negative values are treated as zero.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.maxIterations = n
	}
}

// NewEngine wires a library and a contradiction registry into an engine.
// Both are snapshotted; later changes to reg do not affect the engine.
func NewEngine(lib *domain.Library, reg *domain.Registry, opts ...Option) *Engine {
	e := &Engine{
		contradictions: reg.Clone(),
		maxIterations:  DefaultMaxIterations,
		logger:         logging.NewNop(),
	}
	if lib != nil {
		e.rules = lib.Rules()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxIterations returns the configured pass cap.
func (e *Engine) MaxIterations() int {
	return e.maxIterations
}

// Run applies the rules to a copy of initial until a fixed point or the
// configured cap, then scans for contradictions.
func (e *Engine) Run(initial *domain.FactSet) *domain.Result {
	return e.RunWithLimit(initial, e.maxIterations)
}

// RunWithLimit is Run with an explicit pass cap. Reaching the cap is not an
// error: the partial result comes back with StatusTruncated.
func (e *Engine) RunWithLimit(initial *domain.FactSet, maxIterations int) *domain.Result {
	facts := initial.Clone()
	steps := []domain.ReasoningStep{}

	iteration := 0
	changed := true
	for changed && iteration < maxIterations {
		changed = false
		iteration++

		// Later rules in a pass see facts added by earlier ones.
		for _, rule := range e.rules {
			if !domain.IsApplicable(rule, facts) {
				continue
			}
			added := domain.NewFactsIfApplied(rule, facts)
			if len(added) == 0 {
				continue
			}
			facts.Update(added...)
			step := domain.ReasoningStep{
				IterationIndex:  iteration,
				Rule:            rule.Name,
				NewFacts:        added,
				RuleDescription: rule.Description,
				RuleCitation:    rule.Citation,
			}
			steps = append(steps, step)
			changed = true

			e.logger.Debug("rule fired", "rule", rule.Name, "iteration", iteration, "new_facts", domain.Strings(added))
			if e.hooks.OnRuleFired != nil {
				e.hooks.OnRuleFired(&domain.RuleFiredEvent{Step: step})
			}
		}
	}

	status := domain.StatusConverged
	if changed {
		status = domain.StatusTruncated
	}

	result := &domain.Result{
		FinalFacts:     facts,
		Steps:          steps,
		Contradictions: e.contradictions.Check(facts),
		Status:         status,
		Iterations:     iteration,
	}
	e.complete(result)
	return result
}

func (e *Engine) complete(r *domain.Result) {
	attrs := []any{
		"status", r.Status,
		"iterations", r.Iterations,
		"steps", len(r.Steps),
		"contradictions", len(r.Contradictions),
	}
	if r.Status == domain.StatusTruncated {
		e.logger.Warn("run truncated before fixed point", attrs...)
	} else {
		e.logger.Debug("run converged", attrs...)
	}

	if e.hooks.OnRunComplete != nil {
		e.hooks.OnRunComplete(&domain.RunCompleteEvent{
			Status:         r.Status,
			Iterations:     r.Iterations,
			Steps:          len(r.Steps),
			FinalFacts:     r.FinalFacts.Len(),
			Contradictions: r.Contradictions,
		})
	}
}
