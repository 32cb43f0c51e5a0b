package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/bioreasoner/pkg/domain"
)

// Builder collects rules and contradiction pairs in declaration order.
type Builder struct {
	rules []*RuleBuilder
	pairs []domain.Pair
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Rule starts a new rule. Declaring the same name twice is reported by Build.
func (b *Builder) Rule(name string) *RuleBuilder {
	rb := &RuleBuilder{rule: domain.Rule{Name: name}, builder: b}
	b.rules = append(b.rules, rb)
	return rb
}

// Contradict declares x and y mutually exclusive.
func (b *Builder) Contradict(x, y domain.Fact) *Builder {
	b.pairs = append(b.pairs, domain.Pair{A: x, B: y})
	return b
}

// Exclusive declares every two facts of group mutually exclusive.
func (b *Builder) Exclusive(group ...domain.Fact) *Builder {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			b.Contradict(group[i], group[j])
		}
	}
	return b
}

// Build validates everything and returns the ordered library and registry.
// Library and registry errors are reported together.
func (b *Builder) Build() (*domain.Library, *domain.Registry, error) {
	rules := make([]domain.Rule, len(b.rules))
	for i, rb := range b.rules {
		rules[i] = rb.Build()
	}

	lib, libErr := domain.NewLibrary(rules...)
	reg, regErr := domain.NewRegistry(b.pairs...)
	if libErr != nil || regErr != nil {
		errs := append(domain.ConfigErrors(libErr), domain.ConfigErrors(regErr)...)
		return nil, nil, fmt.Errorf("failed to build catalog: %w", &domain.AggregateError{Errors: errs})
	}
	return lib, reg, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() (*domain.Library, *domain.Registry) {
	lib, reg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return lib, reg
}

// ErrNoRules is returned by BuildLibrary when nothing was declared.
var ErrNoRules = errors.New("no rules declared")

// BuildLibrary builds only the rules, ignoring declared contradictions.
func (b *Builder) BuildLibrary() (*domain.Library, error) {
	if len(b.rules) == 0 {
		return nil, ErrNoRules
	}
	rules := make([]domain.Rule, len(b.rules))
	for i, rb := range b.rules {
		rules[i] = rb.Build()
	}
	return domain.NewLibrary(rules...)
}
