package bioreasoner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/dsl"
	"github.com/aretw0/bioreasoner/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	eng, err := bioreasoner.New()
	require.NoError(t, err)

	assert.Equal(t, "default", eng.Name)
	assert.Len(t, eng.Rules(), 14)
	assert.Equal(t, 7, eng.Contradictions().Len())
	assert.Equal(t, bioreasoner.DefaultMaxIterations, eng.MaxIterations())
}

func TestNew_PartialOverride(t *testing.T) {
	reg := domain.MustRegistry(domain.NewPair(vocab.PI3KActive, vocab.GrowthFactorPresent))

	eng, err := bioreasoner.New(bioreasoner.WithContradictions(reg))
	require.NoError(t, err)
	assert.Len(t, eng.Rules(), 14, "library falls back to the default")

	res := eng.RunFacts(string(vocab.GrowthFactorPresent), string(vocab.RTKReceptorPresent))
	assert.Equal(t, []domain.Pair{domain.NewPair(vocab.GrowthFactorPresent, vocab.PI3KActive)}, res.Contradictions)
}

func TestNew_RegistryIsCopied(t *testing.T) {
	reg := domain.MustRegistry(domain.NewPair(vocab.PI3KActive, vocab.GrowthFactorPresent))

	eng, err := bioreasoner.New(bioreasoner.WithContradictions(reg))
	require.NoError(t, err)
	require.NoError(t, reg.Add(vocab.GrowthFactorPresent, vocab.RTKReceptorPresent))

	assert.Equal(t, 1, eng.Contradictions().Len())
	facts := domain.NewFactSet(vocab.GrowthFactorPresent, vocab.RTKReceptorPresent)
	assert.Empty(t, eng.CheckContradictions(facts))

	res := eng.RunFacts(string(vocab.GrowthFactorPresent), string(vocab.RTKReceptorPresent))
	assert.Equal(t, []domain.Pair{domain.NewPair(vocab.GrowthFactorPresent, vocab.PI3KActive)}, res.Contradictions)
}

func TestNew_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := "rules:\n  - {name: r, when: A, then: B}\ncontradictions:\n  - [B, C]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	eng, err := bioreasoner.New(bioreasoner.WithCatalogFile(path))
	require.NoError(t, err)
	assert.Equal(t, path, eng.Name)

	res := eng.RunFacts("A", "C")
	assert.True(t, res.Holds("B"))
	assert.Len(t, res.Contradictions, 1)
}

func TestNew_InvalidCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {name: r, then: B}\n"), 0o644))

	_, err := bioreasoner.New(bioreasoner.WithCatalogFile(path))
	assert.ErrorIs(t, err, domain.ErrEmptyConditions)
}

func TestEngine_MaxIterationsOption(t *testing.T) {
	eng, err := bioreasoner.New(bioreasoner.WithMaxIterations(1))
	require.NoError(t, err)

	res := eng.RunFacts(string(vocab.LRP6ProteinPresent), string(vocab.FrizzledProteinPresent), string(vocab.WntStateOff))
	assert.Equal(t, domain.StatusTruncated, res.Status)
	assert.Len(t, res.Steps, 1)

	full := eng.RunWithLimit(domain.NewFactSet(vocab.LRP6ProteinPresent, vocab.FrizzledProteinPresent, vocab.WntStateOff), 10)
	assert.Equal(t, domain.StatusConverged, full.Status)
}

func TestEngine_HooksAndCheck(t *testing.T) {
	fired := 0
	eng, err := bioreasoner.New(bioreasoner.WithLifecycleHooks(domain.LifecycleHooks{
		OnRuleFired: func(*domain.RuleFiredEvent) { fired++ },
	}))
	require.NoError(t, err)

	res := eng.RunFacts(string(vocab.GrowthFactorPresent), string(vocab.RTKReceptorPresent))
	assert.Equal(t, len(res.Steps), fired)

	pairs := eng.CheckContradictions(domain.NewFactSet(vocab.AKTActive, vocab.AKTInactive))
	assert.Equal(t, []domain.Pair{domain.NewPair(vocab.AKTActive, vocab.AKTInactive)}, pairs)
}

func TestNew_CustomLibrary(t *testing.T) {
	b := dsl.New()
	b.Rule("only").When("X").Then("Y")
	lib, reg, err := b.Build()
	require.NoError(t, err)

	eng, err := bioreasoner.New(bioreasoner.WithLibrary(lib), bioreasoner.WithContradictions(reg))
	require.NoError(t, err)
	assert.Equal(t, "custom", eng.Name)
	assert.Same(t, lib, eng.Library())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, bioreasoner.Version)
}
