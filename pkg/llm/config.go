package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvProvider      = "BIOREASONER_MODEL_PROVIDER"
	EnvModel         = "BIOREASONER_MODEL_NAME"
	EnvOllamaBaseURL = "BIOREASONER_OLLAMA_BASE_URL"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvRateLimit     = "BIOREASONER_LLM_RPS"
)

const (
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultTimeout       = 2 * time.Minute
)

// Config selects and configures a provider.
type Config struct {
	Provider      Provider
	Model         string
	OllamaBaseURL string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string
	// RPS caps provider calls per second. Zero means unlimited.
	RPS     float64
	Timeout time.Duration
	// StubResponse is returned by the stub provider.
	StubResponse string
}

// ConfigFromEnv reads the process environment.
func ConfigFromEnv() Config {
	return ConfigFromLookup(os.Getenv)
}

// ConfigFromLookup reads configuration through getenv, applying defaults.
func ConfigFromLookup(getenv func(string) string) Config {
	cfg := Config{
		Provider:      Provider(strings.ToLower(strings.TrimSpace(getenv(EnvProvider)))),
		Model:         strings.TrimSpace(getenv(EnvModel)),
		OllamaBaseURL: strings.TrimSpace(getenv(EnvOllamaBaseURL)),
		OpenAIAPIKey:  strings.TrimSpace(getenv(EnvOpenAIKey)),
		OpenAIBaseURL: strings.TrimSpace(getenv(EnvOpenAIBaseURL)),
		GeminiAPIKey:  strings.TrimSpace(getenv(EnvGeminiKey)),
		Timeout:       DefaultTimeout,
	}
	if rps, err := strconv.ParseFloat(strings.TrimSpace(getenv(EnvRateLimit)), 64); err == nil && rps > 0 {
		cfg.RPS = rps
	}
	return cfg.withDefaults()
}

// Override returns a copy where non-empty arguments replace provider and model.
func (c Config) Override(provider, model string) Config {
	if p := strings.TrimSpace(provider); p != "" {
		c.Provider = Provider(strings.ToLower(p))
	}
	if m := strings.TrimSpace(model); m != "" {
		c.Model = m
	}
	return c
}

func (c Config) withDefaults() Config {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.OllamaBaseURL == "" {
		c.OllamaBaseURL = DefaultOllamaBaseURL
	}
	if c.OpenAIBaseURL == "" {
		c.OpenAIBaseURL = DefaultOpenAIBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// NewClient builds the client selected by cfg.Provider, rate limited when cfg.RPS > 0.
func NewClient(cfg Config) (Client, error) {
	cfg = cfg.withDefaults()

	var client Client
	switch cfg.Provider {
	case ProviderStub:
		client = &Stub{Response: cfg.StubResponse}
	case ProviderOllama:
		client = NewOllama(cfg.OllamaBaseURL, cfg.Timeout)
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: set %s", ErrMissingAPIKey, EnvOpenAIKey)
		}
		client = NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Timeout)
	case ProviderGemini:
		g, err := NewGemini(cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		client = g
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	if cfg.RPS > 0 {
		client = WithRateLimit(client, cfg.RPS)
	}
	return client, nil
}
