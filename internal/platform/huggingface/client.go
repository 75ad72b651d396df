package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/chatrelay/internal/config"
	"github.com/phrazzld/chatrelay/internal/generation"
)

const (
	providerName      = "huggingface"
	mimeJSON          = "application/json"
	maxErrorBodyBytes = 4 << 10
)

type textGenerationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters textGenerationParams `json:"parameters"`
}

type textGenerationParams struct {
	Temperature  float64 `json:"temperature"`
	MaxNewTokens int     `json:"max_new_tokens"`
	TopP         float64 `json:"top_p"`
}

type generatedText struct {
	GeneratedText *string `json:"generated_text"`
	Error         string  `json:"error,omitempty"`
}

// Client calls a text-generation endpoint with bearer-token auth.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client, e.g. to point at a test server
// transport. The configured timeout is not applied to a supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client from the provider configuration.
func NewClient(logger *slog.Logger, cfg config.ProviderConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: endpoint url cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete implements generation.Generator.
func (c *Client) Complete(ctx context.Context, prompt string, params generation.Params) (string, error) {
	body, err := json.Marshal(textGenerationRequest{
		Inputs: prompt,
		Parameters: textGenerationParams{
			Temperature:  params.Temperature,
			MaxNewTokens: params.MaxNewTokens,
			TopP:         params.TopP,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mimeJSON)
	req.Header.Set("Accept", mimeJSON)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.DebugContext(ctx, "calling inference endpoint",
		"prompt_length", len(prompt),
		"max_new_tokens", params.MaxNewTokens)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &generation.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorMessage(resp.Body)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: fmt.Errorf("read response: %w", err)}
	}

	text, err := parseGeneratedText(raw)
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.DebugContext(ctx, "inference endpoint answered", "text_length", len(text))
	return text, nil
}

// parseGeneratedText accepts either [{"generated_text": ...}] or
// {"generated_text": ...}.
func parseGeneratedText(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)

	var item generatedText
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []generatedText
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
		}
		if len(items) == 0 {
			return "", fmt.Errorf("%w: empty result list", generation.ErrInvalidResponse)
		}
		item = items[0]
	} else if err := json.Unmarshal(trimmed, &item); err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	if item.GeneratedText == nil {
		if item.Error != "" {
			return "", fmt.Errorf("%w: %s", generation.ErrInvalidResponse, item.Error)
		}
		return "", fmt.Errorf("%w: missing generated_text", generation.ErrInvalidResponse)
	}
	return *item.GeneratedText, nil
}

// errorMessage extracts the provider's error text from a failed response.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return "empty error response"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}

var _ generation.Generator = (*Client)(nil)
