package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/bioreasoner/internal/dto"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultName is used when a scenario document has no name.
const DefaultName = "unnamed_scenario"

var (
	// ErrNotFound is returned when the scenario file does not exist.
	ErrNotFound = errors.New("scenario file not found")
	// ErrMalformed is returned when the document is not a mapping or has invalid fields.
	ErrMalformed = errors.New("malformed scenario")
)

// Scenario is one reasoning case: the facts asserted by the experimental
// setup and the facts the caller wants answered.
type Scenario struct {
	Name         string         `json:"name" yaml:"name"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata     map[string]any `json:"metadata" yaml:"metadata"`
	InitialFacts []domain.Fact  `json:"initial_facts" yaml:"initial_facts"`
	Queries      []domain.Fact  `json:"queries" yaml:"queries"`

	// Path is the file the scenario was loaded from, if any.
	Path string `json:"-" yaml:"-"`
}

// Facts returns the initial facts as a new set.
func (s *Scenario) Facts() *domain.FactSet {
	return domain.NewFactSet(s.InitialFacts...)
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes a YAML (or JSON, which is valid YAML) scenario document.
func Parse(data []byte) (*Scenario, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping at the top level", ErrMalformed)
	}
	return FromMap(m)
}

// FromMap builds a scenario from an already decoded mapping.
// Missing lists are empty; a missing name becomes DefaultName.
func FromMap(m map[string]any) (*Scenario, error) {
	var doc dto.ScenarioFile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	initial, err := tokens("initial_facts", doc.InitialFacts)
	if err != nil {
		return nil, err
	}
	queries, err := tokens("queries", doc.Queries)
	if err != nil {
		return nil, err
	}

	s := &Scenario{
		Name:         strings.TrimSpace(doc.Name),
		Description:  doc.Description,
		Metadata:     doc.Metadata,
		InitialFacts: initial,
		Queries:      queries,
	}
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Metadata == nil {
		s.Metadata = map[string]any{}
	}
	return s, nil
}

// tokens validates a list of fact tokens, keeping order and dropping repeats.
func tokens(field string, raw []any) ([]domain.Fact, error) {
	out := make([]domain.Fact, 0, len(raw))
	seen := make(map[domain.Fact]bool, len(raw))
	for i, item := range raw {
		str, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be a string, got %T", ErrMalformed, field, i, item)
		}
		f := domain.Fact(strings.TrimSpace(str))
		if f == "" {
			return nil, fmt.Errorf("%w: %s[%d] is empty", ErrMalformed, field, i)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}
