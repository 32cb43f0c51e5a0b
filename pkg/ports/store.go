package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key does not exist.
var ErrNotFound = errors.New("result not found")

// ResultStore persists JSON documents by key.
// Keys are flat identifiers; implementations decide where they live.
type ResultStore interface {
	// Save encodes payload as JSON and stores it under key, replacing any previous value.
	Save(ctx context.Context, key string, payload any) error

	// Load decodes the document stored under key into out.
	// Returns ErrNotFound if the key does not exist.
	Load(ctx context.Context, key string, out any) error

	// List returns every stored key, sorted.
	List(ctx context.Context) ([]string, error)

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Locator is implemented by stores that can describe where a key lives,
// such as a file path.
type Locator interface {
	Location(key string) string
}

// Location returns store's location for key, or key itself.
func Location(store ResultStore, key string) string {
	if l, ok := store.(Locator); ok {
		return l.Location(key)
	}
	return key
}
