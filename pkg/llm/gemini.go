package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini queries Google's Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini client.
func NewGemini(apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set %s", ErrMissingAPIKey, EnvGeminiKey)
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// Query generates a single deterministic completion.
func (g *Gemini) Query(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		return "", ErrMissingModel
	}
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: openAIMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
