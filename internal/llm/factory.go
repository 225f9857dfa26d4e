package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// NewClient creates a new LLM client based on the provider
func NewClient(config *Config, logger *zap.Logger) (Client, error) {
	switch config.Provider {
	case "openai":
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIClient(config, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
