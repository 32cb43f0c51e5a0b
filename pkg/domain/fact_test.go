package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactSet_AddIsIdempotent(t *testing.T) {
	s := domain.NewFactSet()
	s.Add("A")
	s.Add("A")
	s.Update("B", "A", "B")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("A"))
	assert.False(t, s.Has("a"), "membership is case-sensitive")
}

func TestFactSet_ListIsSorted(t *testing.T) {
	s := domain.NewFactSet("C", "A", "B")
	assert.Equal(t, []domain.Fact{"A", "B", "C"}, s.List())
}

func TestFactSet_ZeroValueAndNil(t *testing.T) {
	var zero domain.FactSet
	assert.Equal(t, 0, zero.Len())
	zero.Add("X")
	assert.True(t, zero.Has("X"))

	var nilSet *domain.FactSet
	assert.False(t, nilSet.Has("X"))
	assert.Equal(t, []domain.Fact{}, nilSet.List())
	assert.Equal(t, 0, nilSet.Clone().Len())
}

func TestFactSet_CloneIsIndependent(t *testing.T) {
	orig := domain.NewFactSet("A")
	c := orig.Clone()
	c.Add("B")

	assert.False(t, orig.Has("B"))
	assert.True(t, c.Contains(orig))
	assert.False(t, orig.Contains(c))
}

func TestFactSet_JSON(t *testing.T) {
	s := domain.NewFactSet("Z", "M", "A")
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["A","M","Z"]`, string(data))

	var back domain.FactSet
	require.NoError(t, json.Unmarshal([]byte(`["Q","Q","P"]`), &back))
	assert.Equal(t, []domain.Fact{"P", "Q"}, back.List())
}
