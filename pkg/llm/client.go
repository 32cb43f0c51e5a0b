package llm

import (
	"context"
	"errors"
)

// Client is any language model backend that answers a prompt with text.
type Client interface {
	Query(ctx context.Context, prompt, model string) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, prompt, model string) (string, error)

func (f ClientFunc) Query(ctx context.Context, prompt, model string) (string, error) {
	return f(ctx, prompt, model)
}

// Provider names a backend.
type Provider string

const (
	ProviderStub   Provider = "stub"
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

var (
	ErrUnknownProvider = errors.New("unknown model provider")
	ErrMissingModel    = errors.New("model name is required")
	ErrMissingAPIKey   = errors.New("API key is not configured")
	ErrEmptyResponse   = errors.New("model returned no content")
)

// Stub always answers with Response. It is deterministic and offline.
type Stub struct {
	Response string
	Err      error
}

// Query returns the fixed response.
func (s *Stub) Query(ctx context.Context, prompt, model string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}
