package dsl

import (
	"testing"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleChain(t *testing.T) {
	b := New()

	b.Rule("second").
		When("B").
		Then("C").
		Priority(1).
		Rule("first").
		When("A").
		Then("B", "B").
		Priority(5).
		Tags("CHAIN").
		Describe("A gives B").
		Cite("doi:10/abc")

	b.Contradict("C", "A")

	lib, reg, err := b.Build()
	require.NoError(t, err)

	rules := lib.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "first", rules[0].Name)
	assert.Equal(t, []domain.Fact{"B"}, rules[0].Conclusions)
	assert.Equal(t, "A gives B", rules[0].Description)
	assert.Equal(t, "doi:10/abc", rules[0].Citation)
	assert.True(t, rules[0].HasTag("CHAIN"))

	assert.Equal(t, []domain.Pair{{A: "A", B: "C"}}, reg.Pairs())
}

func TestBuilder_Exclusive(t *testing.T) {
	b := New()
	b.Rule("r").When("X").Then("UP")
	b.Exclusive("UP", "BASELINE", "DOWN")

	_, reg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
}

func TestBuilder_ReportsAllErrors(t *testing.T) {
	b := New()
	b.Rule("dup").When("A").Then("B")
	b.Rule("dup").When("A").Then("C")
	b.Rule("empty")
	b.Contradict("A", "A")

	lib, reg, err := b.Build()
	assert.Nil(t, lib)
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, domain.ErrDuplicateRule)
	assert.ErrorIs(t, err, domain.ErrEmptyConditions)
	assert.ErrorIs(t, err, domain.ErrEmptyConclusions)
	assert.ErrorIs(t, err, domain.ErrInvalidPair)
	assert.Len(t, domain.ConfigErrors(err), 4)
}

func TestBuilder_BuildLibrary(t *testing.T) {
	_, err := New().BuildLibrary()
	assert.ErrorIs(t, err, ErrNoRules)

	b := New()
	b.Rule("r").When("A").Then("B")
	lib, err := b.BuildLibrary()
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	b := New()
	b.Rule("")
	assert.Panics(t, func() { b.MustBuild() })
}
