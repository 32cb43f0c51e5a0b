package domain

// RuleFiredEvent is emitted each time a rule adds facts.
type RuleFiredEvent struct {
	Step ReasoningStep
}

// RunCompleteEvent is emitted once per run, after the contradiction scan.
type RunCompleteEvent struct {
	Status         RunStatus
	Iterations     int
	Steps          int
	FinalFacts     int
	Contradictions []Pair
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the calling goroutine; concurrent runs call
// them concurrently.
type LifecycleHooks struct {
	OnRuleFired   func(*RuleFiredEvent)
	OnRunComplete func(*RunCompleteEvent)
}
