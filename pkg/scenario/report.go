package scenario

import "github.com/aretw0/bioreasoner/pkg/domain"

// Report is the JSON document produced by running one scenario.
type Report struct {
	Scenario     ReportScenario `json:"scenario"`
	EngineResult *domain.Result `json:"engine_result"`
	Answers      []Answer       `json:"answers"`
}

// ReportScenario echoes the scenario, including its source path.
type ReportScenario struct {
	Path         string         `json:"path"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Metadata     map[string]any `json:"metadata"`
	InitialFacts []domain.Fact  `json:"initial_facts"`
	Queries      []domain.Fact  `json:"queries"`
}

// NewReport bundles s with its run result and query answers.
// Initial facts are sorted; queries keep their declared order.
func NewReport(s *Scenario, res *domain.Result, reg *domain.Registry) *Report {
	queries := append([]domain.Fact{}, s.Queries...)
	metadata := s.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Report{
		Scenario: ReportScenario{
			Path:         s.Path,
			Name:         s.Name,
			Description:  s.Description,
			Metadata:     metadata,
			InitialFacts: s.Facts().List(),
			Queries:      queries,
		},
		EngineResult: res,
		Answers:      s.Answer(res, reg),
	}
}
