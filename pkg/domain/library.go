package domain

import "fmt"

// Library is an ordered, immutable sequence of rules.
// The order is fixed once at construction (see SortRules) and is the
// application order within one pass of the engine.
type Library struct {
	rules  []Rule
	byName map[string]int
}

// NewLibrary validates and orders the rules.
// Every rule needs a non-empty unique name, at least one condition and at
// least one conclusion. All violations are reported together.
func NewLibrary(rules ...Rule) (*Library, error) {
	var errs []error
	seen := make(map[string]bool, len(rules))
	normalized := make([]Rule, 0, len(rules))

	for i, r := range rules {
		subject := r.Name
		if subject == "" {
			subject = fmt.Sprintf("rules[%d]", i)
			errs = append(errs, &ConfigError{Subject: subject, Err: ErrEmptyRuleName})
		}
		if r.Name != "" && seen[r.Name] {
			errs = append(errs, &ConfigError{Subject: subject, Err: ErrDuplicateRule})
		}
		seen[r.Name] = true

		r.Conditions = uniqueFacts(r.Conditions)
		r.Conclusions = uniqueFacts(r.Conclusions)
		if len(r.Conditions) == 0 {
			errs = append(errs, &ConfigError{Subject: subject, Err: ErrEmptyConditions})
		}
		if len(r.Conclusions) == 0 {
			errs = append(errs, &ConfigError{Subject: subject, Err: ErrEmptyConclusions})
		}
		normalized = append(normalized, r)
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	sorted := SortRules(normalized)
	byName := make(map[string]int, len(sorted))
	for i, r := range sorted {
		byName[r.Name] = i
	}
	return &Library{rules: sorted, byName: byName}, nil
}

// MustLibrary is like NewLibrary but panics on configuration errors.
// Intended for static catalogs built at init time.
func MustLibrary(rules ...Rule) *Library {
	lib, err := NewLibrary(rules...)
	if err != nil {
		panic(err)
	}
	return lib
}

// Rules returns copies of the rules in application order.
func (l *Library) Rules() []Rule {
	out := make([]Rule, len(l.rules))
	for i, r := range l.rules {
		out[i] = r.clone()
	}
	return out
}

// Len returns the number of rules.
func (l *Library) Len() int {
	return len(l.rules)
}

// Get returns a copy of the named rule.
func (l *Library) Get(name string) (Rule, bool) {
	i, ok := l.byName[name]
	if !ok {
		return Rule{}, false
	}
	return l.rules[i].clone(), true
}

// Vocabulary returns every fact mentioned by any rule, sorted.
func (l *Library) Vocabulary() []Fact {
	set := NewFactSet()
	for _, r := range l.rules {
		set.Update(r.Conditions...)
		set.Update(r.Conclusions...)
	}
	return set.List()
}
