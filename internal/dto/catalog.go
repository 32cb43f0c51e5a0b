// Package dto holds the loosely typed shapes of documents read from disk.
// Keys follow the YAML files; mapstructure tags list the accepted aliases.
package dto

// CatalogFile is the top level of a rule catalog document.
type CatalogFile struct {
	Rules          []RuleEntry `json:"rules" mapstructure:"rules"`
	Contradictions [][]string  `json:"contradictions" mapstructure:"contradictions"`
}

// RuleEntry is one rule of a catalog document.
// "when"/"then" are short forms of "conditions"/"conclusions"; both may be
// given and are merged.
type RuleEntry struct {
	Name        string   `json:"name" mapstructure:"name"`
	When        []string `json:"when" mapstructure:"when"`
	Conditions  []string `json:"conditions" mapstructure:"conditions"`
	Then        []string `json:"then" mapstructure:"then"`
	Conclusions []string `json:"conclusions" mapstructure:"conclusions"`
	Priority    int      `json:"priority" mapstructure:"priority"`
	Tags        []string `json:"tags" mapstructure:"tags"`
	Description string   `json:"description" mapstructure:"description"`
	Citation    string   `json:"citation" mapstructure:"citation"`
}

// AllConditions returns When followed by Conditions.
func (r RuleEntry) AllConditions() []string {
	return append(append([]string(nil), r.When...), r.Conditions...)
}

// AllConclusions returns Then followed by Conclusions.
func (r RuleEntry) AllConclusions() []string {
	return append(append([]string(nil), r.Then...), r.Conclusions...)
}

// ScenarioFile is the decoded body of a scenario document.
type ScenarioFile struct {
	Name         string         `json:"name" mapstructure:"name"`
	Description  string         `json:"description" mapstructure:"description"`
	Metadata     map[string]any `json:"metadata" mapstructure:"metadata"`
	InitialFacts []any          `json:"initial_facts" mapstructure:"initial_facts"`
	Queries      []any          `json:"queries" mapstructure:"queries"`
}
