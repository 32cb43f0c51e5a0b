package domain

import (
	"encoding/json"
	"sort"
)

// Fact is an opaque token denoting a biological state assertion.
// Identity is exact string equality.
type Fact string

// Facts converts raw tokens into Facts, preserving order.
func Facts(tokens ...string) []Fact {
	out := make([]Fact, len(tokens))
	for i, t := range tokens {
		out[i] = Fact(t)
	}
	return out
}

// Strings converts facts back into raw tokens, preserving order.
func Strings(facts []Fact) []string {
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = string(f)
	}
	return out
}

// SortFacts sorts facts lexicographically in place and returns the slice.
func SortFacts(facts []Fact) []Fact {
	sort.Slice(facts, func(i, j int) bool { return facts[i] < facts[j] })
	return facts
}

// FactSet is a deduplicated collection of facts.
// The zero value is an empty set ready to use. A FactSet is not safe for
// concurrent mutation; the engine works on private clones.
type FactSet struct {
	facts map[Fact]struct{}
}

// NewFactSet creates a set holding the given facts.
func NewFactSet(facts ...Fact) *FactSet {
	s := &FactSet{facts: make(map[Fact]struct{}, len(facts))}
	s.Update(facts...)
	return s
}

// Add inserts a fact. Adding a present fact is a no-op.
func (s *FactSet) Add(f Fact) {
	if s.facts == nil {
		s.facts = make(map[Fact]struct{})
	}
	s.facts[f] = struct{}{}
}

// Update inserts every given fact.
func (s *FactSet) Update(facts ...Fact) {
	for _, f := range facts {
		s.Add(f)
	}
}

// Has reports whether the fact is present.
func (s *FactSet) Has(f Fact) bool {
	if s == nil {
		return false
	}
	_, ok := s.facts[f]
	return ok
}

// Len returns the number of facts.
func (s *FactSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.facts)
}

// List returns the facts in lexicographic order.
func (s *FactSet) List() []Fact {
	if s == nil {
		return []Fact{}
	}
	out := make([]Fact, 0, len(s.facts))
	for f := range s.facts {
		out = append(out, f)
	}
	return SortFacts(out)
}

// Clone returns an independent copy sharing no mutable state with s.
func (s *FactSet) Clone() *FactSet {
	c := &FactSet{facts: make(map[Fact]struct{}, s.Len())}
	if s != nil {
		for f := range s.facts {
			c.facts[f] = struct{}{}
		}
	}
	return c
}

// Contains reports whether every fact of other is present in s.
func (s *FactSet) Contains(other *FactSet) bool {
	for _, f := range other.List() {
		if !s.Has(f) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted list of tokens.
func (s *FactSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes a list of tokens.
func (s *FactSet) UnmarshalJSON(data []byte) error {
	var facts []Fact
	if err := json.Unmarshal(data, &facts); err != nil {
		return err
	}
	s.facts = make(map[Fact]struct{}, len(facts))
	s.Update(facts...)
	return nil
}
