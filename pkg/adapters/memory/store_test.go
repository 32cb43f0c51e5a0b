package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/bioreasoner/pkg/adapters/memory"
	"github.com/aretw0/bioreasoner/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	payload := map[string][]string{"facts": {"A"}}
	require.NoError(t, store.Save(ctx, "k", payload))
	payload["facts"][0] = "MUTATED"

	var loaded map[string][]string
	require.NoError(t, store.Load(ctx, "k", &loaded))
	assert.Equal(t, []string{"A"}, loaded["facts"])

	raw, ok := store.Raw("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"facts":["A"]}`, string(raw))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Save(ctx, string(rune('a'+i)), i)
		}(i)
	}
	wg.Wait()

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 20)
	assert.Error(t, store.Save(ctx, "", 1))
}
