package ports

import "github.com/aretw0/bioreasoner/pkg/domain"

// Reasoner derives the closure of a fact set.
// It is implemented by the root bioreasoner.Engine.
type Reasoner interface {
	Run(initial *domain.FactSet) *domain.Result
	RunWithLimit(initial *domain.FactSet, maxIterations int) *domain.Result
	Rules() []domain.Rule
	Contradictions() *domain.Registry
}
