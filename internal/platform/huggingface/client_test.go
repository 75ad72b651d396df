package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/chatrelay/internal/config"
	"github.com/phrazzld/chatrelay/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(testLogger(), config.ProviderConfig{
		Backend: config.BackendHuggingFace,
		APIKey:  "hf_test_key",
		URL:     srv.URL,
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(nil, config.ProviderConfig{APIKey: "k", URL: "http://x"})
	assert.Error(t, err)

	_, err = NewClient(testLogger(), config.ProviderConfig{URL: "http://x"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewClient(testLogger(), config.ProviderConfig{APIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestComplete_SendsExpectedRequest(t *testing.T) {
	t.Parallel()

	var captured textGenerationRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer hf_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"generated_text":"Gravity pulls."}]`))
	})

	text, err := c.Complete(context.Background(), "What is gravity? Provide an accurate response.", generation.NewParams(150))

	require.NoError(t, err)
	assert.Equal(t, "Gravity pulls.", text)
	assert.Equal(t, "What is gravity? Provide an accurate response.", captured.Inputs)
	assert.Equal(t, 150, captured.Parameters.MaxNewTokens)
	assert.Equal(t, 0.7, captured.Parameters.Temperature)
	assert.Equal(t, 0.9, captured.Parameters.TopP)
}

func TestComplete_ObjectResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"An object answer"}`))
	})

	text, err := c.Complete(context.Background(), "q", generation.NewParams(10))
	require.NoError(t, err)
	assert.Equal(t, "An object answer", text)
}

func TestComplete_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantInErr  string
	}{
		{name: "non-2xx with error payload", status: http.StatusServiceUnavailable, body: `{"error":"Model is loading"}`, wantStatus: 503, wantInErr: "Model is loading"},
		{name: "non-2xx plain body", status: http.StatusUnauthorized, body: "unauthorized", wantStatus: 401, wantInErr: "unauthorized"},
		{name: "malformed json", status: http.StatusOK, body: `not json`, wantStatus: 200, wantInErr: "invalid response"},
		{name: "empty list", status: http.StatusOK, body: `[]`, wantStatus: 200, wantInErr: "empty result list"},
		{name: "missing field", status: http.StatusOK, body: `{"foo":"bar"}`, wantStatus: 200, wantInErr: "missing generated_text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Complete(context.Background(), "q", generation.NewParams(10))

			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrProviderFailure)
			var pe *generation.ProviderError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.wantStatus, pe.StatusCode)
			assert.Contains(t, err.Error(), tt.wantInErr)
		})
	}
}

func TestComplete_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(testLogger(), config.ProviderConfig{APIKey: "k", URL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "q", generation.NewParams(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrProviderFailure)
	var pe *generation.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Zero(t, pe.StatusCode)
}

func TestComplete_ContextCancelled(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Complete(ctx, "q", generation.NewParams(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, generation.ErrProviderFailure)
}
