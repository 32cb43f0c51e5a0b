package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_JSONShape(t *testing.T) {
	res := &domain.Result{
		FinalFacts: domain.NewFactSet("B", "A"),
		Steps: []domain.ReasoningStep{
			{IterationIndex: 1, Rule: "r1", NewFacts: domain.Facts("B"), RuleDescription: "adds B"},
		},
		Contradictions: []domain.Pair{domain.NewPair("B", "A")},
		Status:         domain.StatusConverged,
		Iterations:     2,
	}

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"final_facts": ["A", "B"],
		"steps": [{
			"iteration_index": 1,
			"rule": "r1",
			"new_facts": ["B"],
			"rule_description": "adds B",
			"rule_citation": null
		}],
		"contradictions": [{"fact_a": "A", "fact_b": "B"}],
		"status": "converged",
		"iterations": 2
	}`, string(data))

	var back domain.Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, res.FinalFacts.List(), back.FinalFacts.List())
	assert.Equal(t, res.Steps, back.Steps)
	assert.Equal(t, res.Contradictions, back.Contradictions)
}

func TestResult_EmptyListsAreArrays(t *testing.T) {
	data, err := json.Marshal(domain.Result{Status: domain.StatusTruncated})
	require.NoError(t, err)
	assert.JSONEq(t, `{"final_facts":[],"steps":[],"contradictions":[],"status":"truncated","iterations":0}`, string(data))
}

func TestResult_Helpers(t *testing.T) {
	res := &domain.Result{
		FinalFacts: domain.NewFactSet("A"),
		Steps:      []domain.ReasoningStep{{Rule: "x"}, {Rule: "y"}},
		Status:     domain.StatusConverged,
	}
	assert.True(t, res.Converged())
	assert.True(t, res.Holds("A"))
	assert.Equal(t, []string{"x", "y"}, res.FiredRules())
}
