package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(`
name: demo
description: a demo
metadata:
  cell_line: HeLa
  replicate: 2
initial_facts:
  - " A "
  - B
  - A
queries: C
`))
	require.NoError(t, err)

	assert.Equal(t, "demo", s.Name)
	assert.Equal(t, "a demo", s.Description)
	assert.Equal(t, "HeLa", s.Metadata["cell_line"])
	assert.Equal(t, domain.Facts("A", "B"), s.InitialFacts)
	assert.Equal(t, domain.Facts("C"), s.Queries)
	assert.Equal(t, []domain.Fact{"A", "B"}, s.Facts().List())
}

func TestParse_Defaults(t *testing.T) {
	s, err := scenario.Parse([]byte("initial_facts: [A]\n"))
	require.NoError(t, err)

	assert.Equal(t, scenario.DefaultName, s.Name)
	assert.NotNil(t, s.Metadata)
	assert.Empty(t, s.Queries)
	assert.NotNil(t, s.Queries)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"sequence at top", "- A\n- B\n"},
		{"scalar at top", "just text\n"},
		{"empty document", ""},
		{"non-string fact", "initial_facts: [A, {nested: true}]\n"},
		{"empty fact", "initial_facts: [A, '  ']\n"},
		{"bad yaml", "initial_facts: [A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, scenario.ErrMalformed)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: s\ninitial_facts: [X]\n"), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, scenario.ErrNotFound)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"b.yaml",
		"a.yml",
		"notes.txt",
		".hidden.yaml",
		"sub/c.YAML",
		".git/d.yaml",
	}
	for _, f := range files {
		p := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("initial_facts: []\n"), 0o644))
	}

	paths, err := scenario.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "sub", "c.YAML"),
	}, paths)

	_, err = scenario.Discover(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestAnswer(t *testing.T) {
	s := &scenario.Scenario{Queries: domain.Facts("UP", "DOWN", "OTHER")}
	reg := domain.MustRegistry(domain.NewPair("UP", "DOWN"))
	res := &domain.Result{FinalFacts: domain.NewFactSet("UP")}

	assert.Equal(t, []scenario.Answer{
		{Query: "UP", Value: scenario.True},
		{Query: "DOWN", Value: scenario.False},
		{Query: "OTHER", Value: scenario.Unknown},
	}, s.Answer(res, reg))
}

func TestNewReport(t *testing.T) {
	s := &scenario.Scenario{
		Name:         "r",
		Path:         "suite/r.yaml",
		InitialFacts: domain.Facts("B", "A"),
		Queries:      domain.Facts("UP", "A"),
	}
	reg := domain.MustRegistry(domain.NewPair("UP", "DOWN"))
	res := &domain.Result{FinalFacts: domain.NewFactSet("A", "B", "DOWN"), Status: domain.StatusConverged}

	rep := scenario.NewReport(s, res, reg)

	assert.Equal(t, "suite/r.yaml", rep.Scenario.Path)
	assert.Equal(t, domain.Facts("A", "B"), rep.Scenario.InitialFacts)
	assert.Equal(t, domain.Facts("UP", "A"), rep.Scenario.Queries)
	assert.Equal(t, map[string]any{}, rep.Scenario.Metadata)
	assert.Same(t, res, rep.EngineResult)
	assert.Equal(t, []scenario.Answer{
		{Query: "UP", Value: scenario.False},
		{Query: "A", Value: scenario.True},
	}, rep.Answers)
}
