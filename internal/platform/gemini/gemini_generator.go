package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/chatrelay/internal/config"
	"github.com/phrazzld/chatrelay/internal/generation"
	"google.golang.org/genai"
)

const providerName = "gemini"

// ErrContentBlocked is returned when Gemini stops generation for safety reasons.
var ErrContentBlocked = errors.New("content blocked by language model safety filters")

// contentGenerator is the subset of *genai.Models used by the generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	models contentGenerator
	model  string
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.ProviderConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, client.Models, cfg.Model), nil
}

func newGenerator(logger *slog.Logger, models contentGenerator, model string) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Complete implements generation.Generator. A failed call is not retried.
func (g *GeminiGenerator) Complete(ctx context.Context, prompt string, params generation.Params) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.Temperature)),
		TopP:            genai.Ptr(float32(params.TopP)),
		MaxOutputTokens: int32(params.MaxNewTokens),
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt),
		"max_output_tokens", params.MaxNewTokens)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", &generation.ProviderError{
			Provider:   providerName,
			StatusCode: statusCode(err),
			Err:        err,
		}
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &generation.ProviderError{
			Provider: providerName,
			Err:      fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse),
		}
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", &generation.ProviderError{Provider: providerName, Err: ErrContentBlocked}
	}

	text := resp.Text()
	g.logger.DebugContext(ctx, "Gemini API call successful", "text_length", len(text))
	return text, nil
}

// statusCode returns the HTTP status carried by a genai API error, or 0.
func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

var _ generation.Generator = (*GeminiGenerator)(nil)
