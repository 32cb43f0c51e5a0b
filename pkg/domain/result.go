package domain

import "encoding/json"

// RunStatus is the terminal state of an engine run.
type RunStatus string

const (
	// StatusConverged means a full pass added no facts.
	StatusConverged RunStatus = "converged"
	// StatusTruncated means the iteration cap was reached first.
	StatusTruncated RunStatus = "truncated"
)

// ReasoningStep records one rule firing that added at least one fact.
type ReasoningStep struct {
	IterationIndex  int    `json:"iteration_index"`
	Rule            string `json:"rule"`
	NewFacts        []Fact `json:"new_facts"`
	RuleDescription string `json:"-"`
	RuleCitation    string `json:"-"`
}

type stepJSON struct {
	IterationIndex  int     `json:"iteration_index"`
	Rule            string  `json:"rule"`
	NewFacts        []Fact  `json:"new_facts"`
	RuleDescription *string `json:"rule_description"`
	RuleCitation    *string `json:"rule_citation"`
}

// MarshalJSON writes an empty description or citation as null.
func (s ReasoningStep) MarshalJSON() ([]byte, error) {
	out := stepJSON{
		IterationIndex: s.IterationIndex,
		Rule:           s.Rule,
		NewFacts:       s.NewFacts,
	}
	if out.NewFacts == nil {
		out.NewFacts = []Fact{}
	}
	if s.RuleDescription != "" {
		out.RuleDescription = &s.RuleDescription
	}
	if s.RuleCitation != "" {
		out.RuleCitation = &s.RuleCitation
	}
	return json.Marshal(out)
}

func (s *ReasoningStep) UnmarshalJSON(data []byte) error {
	var in stepJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = ReasoningStep{
		IterationIndex: in.IterationIndex,
		Rule:           in.Rule,
		NewFacts:       in.NewFacts,
	}
	if in.RuleDescription != nil {
		s.RuleDescription = *in.RuleDescription
	}
	if in.RuleCitation != nil {
		s.RuleCitation = *in.RuleCitation
	}
	return nil
}

// Result is the output of one engine run.
type Result struct {
	FinalFacts     *FactSet        `json:"final_facts"`
	Steps          []ReasoningStep `json:"steps"`
	Contradictions []Pair          `json:"contradictions"`
	Status         RunStatus       `json:"status"`
	Iterations     int             `json:"iterations"`
}

// Converged reports whether the run reached a fixed point.
func (r *Result) Converged() bool {
	return r.Status == StatusConverged
}

// Holds reports whether f is among the final facts.
func (r *Result) Holds(f Fact) bool {
	return r.FinalFacts.Has(f)
}

// FiredRules returns the rule names of the trace in firing order.
func (r *Result) FiredRules() []string {
	names := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		names[i] = s.Rule
	}
	return names
}

// MarshalJSON guarantees arrays, never null, for the list fields.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	out := alias(r)
	if out.FinalFacts == nil {
		out.FinalFacts = NewFactSet()
	}
	if out.Steps == nil {
		out.Steps = []ReasoningStep{}
	}
	if out.Contradictions == nil {
		out.Contradictions = []Pair{}
	}
	return json.Marshal(out)
}
