package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// StructuredClientInterface is the single choke point for every generation
// agent: send a prompt plus a response schema, get back raw JSON that the
// provider claims conforms to it. No retry is performed here; callers own
// their own retry policy.
type StructuredClientInterface interface {
	GenerateStructuredJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
	Close() error
}

// GeminiStructuredClient implements StructuredClientInterface using Google's
// Gemini models with native JSON response schemas.
type GeminiStructuredClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiStructuredClient creates a new Gemini client.
func NewGeminiStructuredClient(apiKey, model string, logger *zap.Logger) (StructuredClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiStructuredClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *GeminiStructuredClient) GenerateStructuredJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidInput)
	}
	if err := ValidateSchema(schema); err != nil {
		return nil, err
	}

	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	model.SetTemperature(0.2)
	model.SetTopP(0.5)
	model.SetTopK(20)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	start := time.Now()
	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		c.logger.Warn("gemini call failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: gemini API call failed: %v", ErrGeneration, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no content generated by Gemini", ErrGeneration)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = strings.TrimSpace(content)
	// ResponseMIMEType is application/json, so this should already be clean.
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: gemini returned invalid JSON", ErrGeneration)
	}

	c.logger.Debug("gemini structured response",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(content)))

	return []byte(content), nil
}

// Close closes the Gemini client.
func (c *GeminiStructuredClient) Close() error {
	return c.client.Close()
}

// NewStructuredClient creates either an OpenAI or Gemini client based on config.
func NewStructuredClient(provider, apiKey, model string, logger *zap.Logger) (StructuredClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIStructuredClient(apiKey, model, logger), nil
	case "gemini":
		return NewGeminiStructuredClient(apiKey, model, logger)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
