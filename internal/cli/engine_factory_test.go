package cli

import (
	"path/filepath"
	"testing"

	"github.com/aretw0/bioreasoner/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEngine(t *testing.T) {
	logger := createLogger(false)

	t.Run("Default catalog", func(t *testing.T) {
		engine, err := createEngine(EngineOptions{}, logger)
		require.NoError(t, err)
		assert.Len(t, engine.Rules(), 14)
	})

	t.Run("Max iterations", func(t *testing.T) {
		maxIterations := 3
		engine, err := createEngine(EngineOptions{MaxIterations: &maxIterations}, logger)
		require.NoError(t, err)
		assert.Equal(t, 3, engine.MaxIterations())
	})

	t.Run("Zero max iterations", func(t *testing.T) {
		zero := 0
		engine, err := createEngine(EngineOptions{MaxIterations: &zero}, logger)
		require.NoError(t, err)
		assert.Equal(t, 0, engine.MaxIterations())

		unset, err := createEngine(EngineOptions{}, logger)
		require.NoError(t, err)
		assert.Equal(t, 1000, unset.MaxIterations())
	})

	t.Run("Catalog file", func(t *testing.T) {
		path := testutils.WriteFile(t, "catalog.yaml", `
rules:
  - name: a_implies_b
    when: [A__X__ON]
    then: [B__X__ON]
contradictions:
  - [B__X__ON, B__X__OFF]
`)

		engine, err := createEngine(EngineOptions{CatalogPath: path, Debug: true}, logger)
		require.NoError(t, err)
		require.Len(t, engine.Rules(), 1)
		assert.Equal(t, "a_implies_b", engine.Rules()[0].Name)
	})

	t.Run("Missing catalog file", func(t *testing.T) {
		_, err := createEngine(EngineOptions{CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")}, logger)
		assert.Error(t, err)
	})
}
