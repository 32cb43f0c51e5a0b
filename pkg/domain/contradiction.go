package domain

import (
	"fmt"
	"sort"
)

// Pair is an unordered pair of mutually exclusive facts, stored normalized
// so that A < B. NewPair(a, b) and NewPair(b, a) are equal.
type Pair struct {
	A Fact `json:"fact_a"`
	B Fact `json:"fact_b"`
}

// NewPair returns the normalized pair of a and b.
func NewPair(a, b Fact) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Valid reports whether the pair holds two distinct, non-empty facts.
func (p Pair) Valid() bool {
	return p.A != "" && p.B != "" && p.A != p.B
}

// Involves reports whether f is one of the members.
func (p Pair) Involves(f Fact) bool {
	return p.A == f || p.B == f
}

func (p Pair) String() string {
	return fmt.Sprintf("%s <-> %s", p.A, p.B)
}

// SortPairs sorts pairs by (A, B) in place and returns the slice.
func SortPairs(pairs []Pair) []Pair {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// Registry is a set of contradiction pairs. It is filled during setup and
// then only read; Clone gives the engine a private copy.
type Registry struct {
	pairs map[Pair]struct{}
}

// NewRegistry builds a registry from pairs given as (a, b) tuples.
func NewRegistry(pairs ...Pair) (*Registry, error) {
	r := &Registry{pairs: make(map[Pair]struct{}, len(pairs))}
	var errs []error
	for _, p := range pairs {
		if err := r.Add(p.A, p.B); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on invalid pairs.
func MustRegistry(pairs ...Pair) *Registry {
	r, err := NewRegistry(pairs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Add stores {a, b}. Adding the same pair again, in either order, is a no-op.
func (r *Registry) Add(a, b Fact) error {
	p := NewPair(a, b)
	if !p.Valid() {
		return &ConfigError{Subject: fmt.Sprintf("(%q, %q)", a, b), Err: ErrInvalidPair}
	}
	if r.pairs == nil {
		r.pairs = make(map[Pair]struct{})
	}
	r.pairs[p] = struct{}{}
	return nil
}

// Check returns every stored pair fully contained in facts, sorted.
// Each pair appears at most once.
func (r *Registry) Check(facts *FactSet) []Pair {
	hits := []Pair{}
	if r == nil {
		return hits
	}
	for p := range r.pairs {
		if facts.Has(p.A) && facts.Has(p.B) {
			hits = append(hits, p)
		}
	}
	return SortPairs(hits)
}

// Pairs returns all stored pairs, sorted.
func (r *Registry) Pairs() []Pair {
	out := make([]Pair, 0, r.Len())
	if r != nil {
		for p := range r.pairs {
			out = append(out, p)
		}
	}
	return SortPairs(out)
}

// Len returns the number of distinct pairs.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pairs)
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	c := &Registry{pairs: make(map[Pair]struct{}, r.Len())}
	if r != nil {
		for p := range r.pairs {
			c.pairs[p] = struct{}{}
		}
	}
	return c
}
