package eval_test

import (
	"testing"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/eval"
	v "github.com/aretw0/bioreasoner/pkg/vocab"
	"github.com/stretchr/testify/assert"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		facts     []domain.Fact
		errSubstr string
	}{
		{
			name:  "canonical",
			raw:   `{"facts": ["BETA_CAT__LEVEL__UP", "DESTRUCTION_COMPLEX__ACTIVITY__LOW"]}`,
			facts: []domain.Fact{v.BetaCatUp, v.DestructionComplexLow},
		},
		{
			name:  "wrapped in prose",
			raw:   "Here you go:\n```json\n{\"facts\": [\" AKT__STATE__ACTIVE \"]}\n```\nDone.",
			facts: []domain.Fact{v.AKTActive},
		},
		{
			name:  "synonyms and duplicates",
			raw:   `{"facts": ["PI3K__ACTIVITY__UP", "PI3K__STATE__ACTIVE", "GSK3__ACTIVITY__DOWN", "AKT__ACTIVITY__UP"]}`,
			facts: []domain.Fact{v.AKTActive, v.GSK3Inactive, v.PI3KActive},
		},
		{
			name:  "nested braces",
			raw:   `note {"facts": ["APOPTOSIS__TENDENCY__LOW"], "extra": {"a": 1}} trailing }`,
			facts: []domain.Fact{v.ApoptosisLow},
		},
		{
			name:      "non-string entry",
			raw:       `{"facts": ["BETA_CAT__LEVEL__UP", 42]}`,
			facts:     []domain.Fact{v.BetaCatUp},
			errSubstr: "Ignoring non-string fact entry: 42",
		},
		{
			name:      "no json",
			raw:       "I think beta-catenin goes up.",
			facts:     []domain.Fact{},
			errSubstr: "No JSON object found",
		},
		{
			name:      "unbalanced",
			raw:       `{"facts": ["BETA_CAT__LEVEL__UP"]`,
			facts:     []domain.Fact{},
			errSubstr: "No JSON object found",
		},
		{
			name:      "broken fragment",
			raw:       `answer: {"facts": [BETA_CAT]}`,
			facts:     []domain.Fact{},
			errSubstr: "Failed to parse extracted JSON fragment",
		},
		{
			name:      "top-level list",
			raw:       `["BETA_CAT__LEVEL__UP"]`,
			facts:     []domain.Fact{},
			errSubstr: "Top-level JSON is not an object",
		},
		{
			name:      "missing key",
			raw:       `{"predictions": []}`,
			facts:     []domain.Fact{},
			errSubstr: "missing required key 'facts'",
		},
		{
			name:      "facts not a list",
			raw:       `{"facts": "BETA_CAT__LEVEL__UP"}`,
			facts:     []domain.Fact{},
			errSubstr: "'facts' value is not a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eval.ParseOutput(tt.raw)
			assert.Equal(t, tt.raw, got.Raw)
			assert.Equal(t, tt.facts, got.Facts)
			if tt.errSubstr == "" {
				assert.Empty(t, got.Errors)
				return
			}
			if assert.Len(t, got.Errors, 1) {
				assert.Contains(t, got.Errors[0], tt.errSubstr)
			}
		})
	}
}
