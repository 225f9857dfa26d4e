package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient implements the Client interface using OpenAI's API
type OpenAIClient struct {
	config *Config
	client *openai.Client
	logger *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config *Config, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		config: config,
		client: openai.NewClient(config.APIKey),
		logger: logger,
	}
}

// PolishDescription implements the Client interface
func (c *OpenAIClient) PolishDescription(ctx context.Context, method, path, draft string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite the following auto-generated description of the API endpoint "%s %s" into one or two clear sentences of documentation prose. Keep every field name and status code that appears in it. Respond with the rewritten description only.

%s`, strings.ToUpper(method), path, draft)

	response, err := c.callLLM(ctx, prompt)
	if err != nil {
		c.logger.Warn("OpenAI call failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return "", err
	}

	polished := strings.TrimSpace(response)
	if polished == "" {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	c.logger.Debug("description polished",
		zap.String("method", method), zap.String("path", path))
	return polished, nil
}

// callLLM handles the actual LLM API call
func (c *OpenAIClient) callLLM(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.config.Model,
			Temperature: float32(c.config.Temperature),
			MaxTokens:   c.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a technical writer documenting HTTP APIs. Always respond in the requested format.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
