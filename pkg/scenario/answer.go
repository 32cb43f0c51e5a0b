package scenario

import "github.com/aretw0/bioreasoner/pkg/domain"

// Truth is the answer to a query.
type Truth string

const (
	True    Truth = "TRUE"
	False   Truth = "FALSE"
	Unknown Truth = "UNKNOWN"
)

// Answer pairs a query with its truth value.
type Answer struct {
	Query domain.Fact `json:"query"`
	Value Truth       `json:"value"`
}

// Answer resolves the queries against a run result.
// A query is TRUE when derived, FALSE when a fact declared exclusive with it
// was derived instead, and UNKNOWN otherwise. Facts never encode negation, so
// absence alone is not falsity.
func (s *Scenario) Answer(res *domain.Result, reg *domain.Registry) []Answer {
	exclusive := make(map[domain.Fact][]domain.Fact)
	for _, p := range reg.Pairs() {
		exclusive[p.A] = append(exclusive[p.A], p.B)
		exclusive[p.B] = append(exclusive[p.B], p.A)
	}

	out := make([]Answer, 0, len(s.Queries))
	for _, q := range s.Queries {
		a := Answer{Query: q, Value: Unknown}
		if res.Holds(q) {
			a.Value = True
		} else {
			for _, other := range exclusive[q] {
				if res.Holds(other) {
					a.Value = False
					break
				}
			}
		}
		out = append(out, a)
	}
	return out
}
