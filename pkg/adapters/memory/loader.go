package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/bioreasoner/pkg/ports"
	"github.com/aretw0/bioreasoner/pkg/scenario"
)

// Loader implements ports.ScenarioLoader over scenarios held in memory.
// It is read-only after construction.
type Loader struct {
	scenarios map[string]*scenario.Scenario
}

// NewLoader indexes scenarios by name. Duplicate names are an error.
func NewLoader(scenarios ...*scenario.Scenario) (*Loader, error) {
	l := &Loader{scenarios: make(map[string]*scenario.Scenario, len(scenarios))}
	for _, s := range scenarios {
		if _, dup := l.scenarios[s.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		l.scenarios[s.Name] = s
	}
	return l, nil
}

// NewLoaderFromDir loads every scenario file under dir.
func NewLoaderFromDir(dir string) (*Loader, error) {
	all, err := scenario.LoadAll(dir)
	if err != nil {
		return nil, err
	}
	return NewLoader(all...)
}

// GetScenario returns a copy of the named scenario.
func (l *Loader) GetScenario(name string) (*scenario.Scenario, error) {
	s, ok := l.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrScenarioNotFound, name)
	}
	c := *s
	return &c, nil
}

// ListScenarios returns all names, sorted.
func (l *Loader) ListScenarios() ([]string, error) {
	names := make([]string, 0, len(l.scenarios))
	for name := range l.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
