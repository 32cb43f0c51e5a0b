package ports

import (
	"errors"

	"github.com/aretw0/bioreasoner/pkg/scenario"
)

// ErrScenarioNotFound is returned when a named scenario is not registered.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioLoader serves scenarios by name.
type ScenarioLoader interface {
	// GetScenario returns the named scenario or ErrScenarioNotFound.
	GetScenario(name string) (*scenario.Scenario, error)

	// ListScenarios returns all scenario names, sorted.
	ListScenarios() ([]string, error)
}
