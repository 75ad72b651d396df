package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/chatrelay/internal/api"
	"github.com/phrazzld/chatrelay/internal/cache"
	"github.com/phrazzld/chatrelay/internal/config"
	"github.com/phrazzld/chatrelay/internal/generation"
	"github.com/phrazzld/chatrelay/internal/mocks"
	"github.com/phrazzld/chatrelay/internal/platform/huggingface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           0,
			LogLevel:       "debug",
			AllowedOrigins: []string{"*"},
		},
		Provider: config.ProviderConfig{
			Backend: config.BackendHuggingFace,
			APIKey:  "test-key",
			URL:     "http://127.0.0.1:1/unused",
			Timeout: time.Second,
		},
		Cache: config.CacheConfig{ClearInterval: time.Hour},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, gen generation.Generator) *application {
	t.Helper()
	app, err := newApplication(context.Background(), testConfig(), testLogger(), gen)
	require.NoError(t, err)
	return app
}

func postPrompt(t *testing.T, url, p string) *http.Response {
	t.Helper()
	body, err := json.Marshal(api.ChatRequest{Prompt: p})
	require.NoError(t, err)
	resp, err := http.Post(url+"/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRouter_ChatFlow(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("Explain photosynthesis in 50 words. Plants convert light into chemical energy...")
	app := newTestApp(t, gen)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	for i := 0; i < 2; i++ {
		resp := postPrompt(t, srv.URL, "Explain photosynthesis in 50 words")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out api.ChatResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, " Plants convert light into chemical energy", out.Bot)
	}
	require.Equal(t, 1, gen.CallCount(), "second request is served from the cache")
	call, _ := gen.LastCall()
	assert.Equal(t, "Explain photosynthesis in 50 words Please provide the correct response in 50 words.", call.Prompt)
	assert.Equal(t, 75, call.Params.MaxNewTokens)

	resp, err := http.Get(srv.URL + "/cache/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	var stats cache.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestRouter_Greeting(t *testing.T) {
	gen := &mocks.MockGenerator{}
	app := newTestApp(t, gen)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp := postPrompt(t, srv.URL, "hello")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, strings.HasPrefix(out.Bot, " "))
	assert.Equal(t, 1, app.cache.Len())
	assert.Zero(t, gen.CallCount(), "greetings must not reach the provider")
}

func TestRouter_Errors(t *testing.T) {
	app := newTestApp(t, mocks.NewMockGeneratorWithError(
		&generation.ProviderError{Provider: "huggingface", StatusCode: 503, Err: errors.New("model loading")},
	))
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	t.Run("missing prompt", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("provider failure", func(t *testing.T) {
		resp := postPrompt(t, srv.URL, "What is gravity?")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "model loading")
		assert.Zero(t, app.cache.Len(), "failures are never cached")
	})
}

func TestRouter_HealthAndBanner(t *testing.T) {
	app := newTestApp(t, &mocks.MockGenerator{})
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	var banner api.BannerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&banner))
	assert.Equal(t, api.BannerMessage, banner.Message)
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t, &mocks.MockGenerator{})
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNewGenerator(t *testing.T) {
	cfg := testConfig().Provider

	gen, err := newGenerator(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &huggingface.Client{}, gen)

	cfg.Backend = "openai"
	_, err = newGenerator(context.Background(), cfg, testLogger())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg.Backend = config.BackendHuggingFace
	cfg.URL = ""
	_, err = newGenerator(context.Background(), cfg, testLogger())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestApplication_RunStopsOnContextCancel(t *testing.T) {
	app := newTestApp(t, &mocks.MockGenerator{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
