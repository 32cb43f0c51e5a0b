package domain

import "sort"

// Rule is a monotonic if-then assertion: when every condition is present,
// every conclusion becomes present. Rules never remove facts.
//
// Rules are values. NewRule normalizes the condition and conclusion sets
// (deduplicated, sorted) and the Library hands out copies, so a Rule taken
// from a Library cannot alter it.
type Rule struct {
	Name        string   `json:"name" yaml:"name"`
	Conditions  []Fact   `json:"conditions" yaml:"conditions"`
	Conclusions []Fact   `json:"conclusions" yaml:"conclusions"`
	Priority    int      `json:"priority" yaml:"priority"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Citation    string   `json:"citation,omitempty" yaml:"citation,omitempty"`
}

// NewRule builds a normalized rule. It does not validate; Library construction does.
func NewRule(name string, conditions, conclusions []Fact, priority int) Rule {
	return Rule{
		Name:        name,
		Conditions:  uniqueFacts(conditions),
		Conclusions: uniqueFacts(conclusions),
		Priority:    priority,
	}
}

// IsApplicable reports whether every condition of r is present in facts.
// Conditions are a pure conjunction of membership tests.
func IsApplicable(r Rule, facts *FactSet) bool {
	for _, c := range r.Conditions {
		if !facts.Has(c) {
			return false
		}
	}
	return true
}

// NewFactsIfApplied returns the conclusions of r not yet present in facts, sorted.
// It has no side effects; the caller performs the merge.
func NewFactsIfApplied(r Rule, facts *FactSet) []Fact {
	var out []Fact
	for _, c := range r.Conclusions {
		if !facts.Has(c) {
			out = append(out, c)
		}
	}
	return SortFacts(out)
}

// SortRules returns a copy of rules in application order:
// priority descending, then name ascending.
func SortRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r.clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// HasTag reports whether the rule carries the tag.
func (r Rule) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (r Rule) clone() Rule {
	c := r
	c.Conditions = append([]Fact(nil), r.Conditions...)
	c.Conclusions = append([]Fact(nil), r.Conclusions...)
	c.Tags = append([]string(nil), r.Tags...)
	return c
}

func uniqueFacts(facts []Fact) []Fact {
	return NewFactSet(facts...).List()
}
