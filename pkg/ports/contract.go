package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contractDoc struct {
	Name   string         `json:"name"`
	Facts  []string       `json:"facts"`
	Counts map[string]int `json:"counts"`
}

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		key := prefix + "-roundtrip"
		doc := contractDoc{Name: "wnt_demo", Facts: []string{"A", "B"}, Counts: map[string]int{"tp": 2}}

		require.NoError(t, store.Save(ctx, key, doc), "Save should not return error")

		var loaded contractDoc
		require.NoError(t, store.Load(ctx, key, &loaded), "Load should not return error")
		assert.Equal(t, doc, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + "-overwrite"
		require.NoError(t, store.Save(ctx, key, contractDoc{Name: "first"}))
		require.NoError(t, store.Save(ctx, key, contractDoc{Name: "second"}))

		var loaded contractDoc
		require.NoError(t, store.Load(ctx, key, &loaded))
		assert.Equal(t, "second", loaded.Name)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		var loaded contractDoc
		err := store.Load(ctx, prefix+"-missing", &loaded)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		key := prefix + "-delete"
		require.NoError(t, store.Save(ctx, key, contractDoc{Name: "gone"}))

		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")

		var loaded contractDoc
		assert.ErrorIs(t, store.Load(ctx, key, &loaded), ErrNotFound, "Load after Delete should return ErrNotFound")
		assert.NoError(t, store.Delete(ctx, key), "deleting twice is fine")
	})

	t.Run("List", func(t *testing.T) {
		k1 := prefix + "-list-b"
		k2 := prefix + "-list-a"
		require.NoError(t, store.Save(ctx, k1, contractDoc{}))
		require.NoError(t, store.Save(ctx, k2, contractDoc{}))
		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
		assert.IsNonDecreasing(t, keys)
	})
}
