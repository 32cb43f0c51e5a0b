package observability

import (
	"log/slog"

	"github.com/aretw0/bioreasoner/pkg/domain"
)

// LoggingHooks logs every firing at Debug and every run outcome at Info.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRuleFired: func(e *domain.RuleFiredEvent) {
			logger.Debug("rule_fired",
				"rule", e.Step.Rule,
				"iteration", e.Step.IterationIndex,
				"new_facts", domain.Strings(e.Step.NewFacts),
			)
		},
		OnRunComplete: func(e *domain.RunCompleteEvent) {
			logger.Info("run_complete",
				"status", e.Status,
				"iterations", e.Iterations,
				"steps", e.Steps,
				"final_facts", e.FinalFacts,
				"contradictions", len(e.Contradictions),
			)
		},
	}
}

// Combine fans each event out to every hook set in order. Nil callbacks are skipped.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRuleFired: func(e *domain.RuleFiredEvent) {
			for _, h := range hooks {
				if h.OnRuleFired != nil {
					h.OnRuleFired(e)
				}
			}
		},
		OnRunComplete: func(e *domain.RunCompleteEvent) {
			for _, h := range hooks {
				if h.OnRunComplete != nil {
					h.OnRunComplete(e)
				}
			}
		},
	}
}
