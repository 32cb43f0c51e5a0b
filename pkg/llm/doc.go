// Package llm provides minimal clients for the language model backends used
// to benchmark predictions against the reasoning engine.
//
// Providers are selected by name (stub, ollama, openai, gemini) through
// Config, usually read from the environment with ConfigFromEnv.
package llm
