package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/aretw0/bioreasoner/pkg/ports"
)

// Mask replaces redacted values.
const Mask = "***"

type redactMiddleware struct {
	next     ports.ResultStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware creates a middleware that masks the values of JSON keys
// matching any pattern, at any depth, before they reach the store.
// Use it to keep raw model output or free-form metadata out of shared storage.
func NewRedactMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redact pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.ResultStore) ports.ResultStore {
		return &redactMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *redactMiddleware) Save(ctx context.Context, key string, payload any) error {
	// Round-trip through JSON so the caller's value is never mutated.
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	mask(generic, m.patterns)
	return m.next.Save(ctx, key, generic)
}

func (m *redactMiddleware) Load(ctx context.Context, key string, out any) error {
	return m.next.Load(ctx, key, out)
}

func (m *redactMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Location forwards to the wrapped store.
func (m *redactMiddleware) Location(key string) string {
	return ports.Location(m.next, key)
}

func mask(v any, patterns []*regexp.Regexp) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			masked := false
			for _, p := range patterns {
				if p.MatchString(k) {
					node[k] = Mask
					masked = true
					break
				}
			}
			if !masked {
				mask(child, patterns)
			}
		}
	case []any:
		for _, child := range node {
			mask(child, patterns)
		}
	}
}
