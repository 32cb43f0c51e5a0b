package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	"github.com/aretw0/bioreasoner/pkg/vocab"
)

// Severity grades a finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one problem found by a check.
type Finding struct {
	Severity Severity `json:"severity"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Subject, f.Message)
}

// CheckCatalog inspects a rule catalog for problems construction does not reject.
//   - a rule that concludes one of its own conditions
//   - a rule whose conclusions contradict each other (error)
//   - a rule whose conditions contradict each other and so needs an inconsistent state to fire
//   - a contradiction member that no rule mentions
func CheckCatalog(lib *domain.Library, reg *domain.Registry) []Finding {
	var findings []Finding
	pairs := reg.Pairs()

	for _, r := range lib.Rules() {
		conditions := domain.NewFactSet(r.Conditions...)
		conclusions := domain.NewFactSet(r.Conclusions...)
		subject := "rule " + r.Name

		for _, c := range r.Conclusions {
			if conditions.Has(c) {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Subject:  subject,
					Message:  fmt.Sprintf("concludes its own condition %s", c),
				})
			}
		}
		for _, p := range reg.Check(conclusions) {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Subject:  subject,
				Message:  fmt.Sprintf("concludes contradictory facts %s", p),
			})
		}
		for _, p := range reg.Check(conditions) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Subject:  subject,
				Message:  fmt.Sprintf("requires contradictory facts %s", p),
			})
		}
	}

	known := domain.NewFactSet(lib.Vocabulary()...)
	orphans := domain.NewFactSet()
	for _, p := range pairs {
		for _, f := range []domain.Fact{p.A, p.B} {
			if !known.Has(f) {
				orphans.Add(f)
			}
		}
	}
	for _, f := range orphans.List() {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Subject:  "contradiction " + string(f),
			Message:  "fact is not used by any rule",
		})
	}
	return findings
}

// Vocabulary collects every fact a scenario may legitimately use: facts
// mentioned by rules or contradiction pairs, plus the pathway tokens.
func Vocabulary(lib *domain.Library, reg *domain.Registry) *domain.FactSet {
	known := domain.NewFactSet(lib.Vocabulary()...)
	for _, p := range reg.Pairs() {
		known.Update(p.A, p.B)
	}
	known.Update(vocab.All()...)
	return known
}

// CheckScenario reports initial facts and queries outside the known vocabulary.
// Such facts cannot take part in any derivation.
func CheckScenario(s *scenario.Scenario, known *domain.FactSet) []Finding {
	var findings []Finding
	subject := "scenario " + s.Name

	for _, f := range s.InitialFacts {
		if !known.Has(f) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Subject:  subject,
				Message:  fmt.Sprintf("initial fact %s is not in the vocabulary", f),
			})
		}
	}
	for _, q := range s.Queries {
		if !known.Has(q) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Subject:  subject,
				Message:  fmt.Sprintf("query %s is not in the vocabulary", q),
			})
		}
	}
	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err folds error findings into one error, or nil.
func Err(findings []Finding) error {
	var errs []string
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs = append(errs, f.Subject+": "+f.Message)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errs), strings.Join(errs, "\n- "))
	}
	return nil
}
