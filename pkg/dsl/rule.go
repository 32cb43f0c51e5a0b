package dsl

import "github.com/aretw0/bioreasoner/pkg/domain"

// RuleBuilder provides a fluent API for configuring a rule.
type RuleBuilder struct {
	rule    domain.Rule
	builder *Builder
}

// When adds conditions. All of them must hold for the rule to fire.
func (r *RuleBuilder) When(facts ...domain.Fact) *RuleBuilder {
	r.rule.Conditions = append(r.rule.Conditions, facts...)
	return r
}

// Then adds conclusions.
func (r *RuleBuilder) Then(facts ...domain.Fact) *RuleBuilder {
	r.rule.Conclusions = append(r.rule.Conclusions, facts...)
	return r
}

// Priority sets the priority. Higher fires earlier within a pass.
func (r *RuleBuilder) Priority(p int) *RuleBuilder {
	r.rule.Priority = p
	return r
}

// Tags appends informational tags.
func (r *RuleBuilder) Tags(tags ...string) *RuleBuilder {
	r.rule.Tags = append(r.rule.Tags, tags...)
	return r
}

// Describe sets the human readable description carried into traces.
func (r *RuleBuilder) Describe(text string) *RuleBuilder {
	r.rule.Description = text
	return r
}

// Cite sets the literature reference carried into traces.
func (r *RuleBuilder) Cite(ref string) *RuleBuilder {
	r.rule.Citation = ref
	return r
}

// Rule starts the next rule on the same builder, for chaining.
func (r *RuleBuilder) Rule(name string) *RuleBuilder {
	return r.builder.Rule(name)
}

// Build returns the normalized rule.
func (r *RuleBuilder) Build() domain.Rule {
	out := domain.NewRule(r.rule.Name, r.rule.Conditions, r.rule.Conclusions, r.rule.Priority)
	out.Tags = append([]string(nil), r.rule.Tags...)
	out.Description = r.rule.Description
	out.Citation = r.rule.Citation
	return out
}
