package llm

import (
	"context"
)

// Config represents the configuration for LLM integration
type Config struct {
	// Provider specifies which LLM provider to use (e.g., "openai")
	Provider string `json:"provider"`

	// APIKey is the API key for the LLM provider
	APIKey string `json:"api_key"`

	// Model specifies which model to use (e.g., "gpt-4")
	Model string `json:"model"`

	// Temperature controls the randomness of the output (0.0 to 1.0)
	Temperature float64 `json:"temperature"`

	// MaxTokens limits the length of the generated response
	MaxTokens int `json:"max_tokens"`
}

// NewDefaultConfig returns a default configuration
func NewDefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Model:       "gpt-4",
		Temperature: 0.7,
		MaxTokens:   500,
	}
}

// Client defines the interface for description enrichment
type Client interface {
	// PolishDescription rewrites a heuristic endpoint description into
	// richer prose. The draft is returned unchanged by callers when the
	// call fails, so implementations only need to report the error.
	PolishDescription(ctx context.Context, method, path, draft string) (string, error)
}
