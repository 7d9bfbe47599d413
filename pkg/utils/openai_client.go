package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIStructuredClient implements StructuredClientInterface using OpenAI
// chat completions in JSON mode. OpenAI has no native response-schema
// parameter, so the schema is rendered into the prompt instead.
type OpenAIStructuredClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIStructuredClient(apiKey, model string, logger *zap.Logger) *OpenAIStructuredClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIStructuredClient{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

func (c *OpenAIStructuredClient) GenerateStructuredJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidInput)
	}
	if err := ValidateSchema(schema); err != nil {
		return nil, err
	}

	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot marshal response schema: %v", ErrGeneration, err)
	}

	fullPrompt := fmt.Sprintf("%s\n\nRespond with a single JSON object that strictly matches this schema. No commentary.\nSchema:\n%s", prompt, schemaJSON)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fullPrompt},
		},
	})
	if err != nil {
		c.logger.Warn("openai call failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: openai API call failed: %v", ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no content generated by OpenAI", ErrGeneration)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: openai returned invalid JSON", ErrGeneration)
	}

	c.logger.Debug("openai structured response",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(content)))

	return []byte(content), nil
}

func (c *OpenAIStructuredClient) Close() error { return nil }
