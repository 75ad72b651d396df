package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/chatrelay/internal/cache"
	"github.com/phrazzld/chatrelay/internal/config"
	"github.com/phrazzld/chatrelay/internal/generation"
	"github.com/phrazzld/chatrelay/internal/platform/gemini"
	"github.com/phrazzld/chatrelay/internal/platform/huggingface"
	"github.com/phrazzld/chatrelay/internal/platform/logger"
	"github.com/phrazzld/chatrelay/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	cache       *cache.ResponseCache
	clearer     *cache.Clearer
	generator   generation.Generator
	chatService service.ChatService
}

// runServer loads configuration, wires the application and serves until
// the context is canceled or a shutdown signal arrives.
func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"backend", cfg.Provider.Backend,
		"cache_clear_interval", cfg.Cache.ClearInterval.String())

	app, err := newApplication(ctx, cfg, l, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// newApplication creates a new application instance with all dependencies initialized.
// A nil generator means the backend named in the configuration is built.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		cache:  cache.New(),
	}

	var err error
	if generator == nil {
		generator, err = newGenerator(ctx, cfg.Provider, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		logger.Info("LLM generator initialized successfully", "backend", cfg.Provider.Backend)
	}
	app.generator = generator

	app.chatService, err = service.NewChatService(
		app.cache,
		app.generator,
		logger,
		service.WithInferenceTimeout(cfg.Provider.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	app.clearer = cache.NewClearer(
		app.cache,
		cfg.Cache.ClearInterval,
		logger.With("component", "cache_clearer"),
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// newGenerator builds the inference backend selected by cfg.Backend.
func newGenerator(ctx context.Context, cfg config.ProviderConfig, logger *slog.Logger) (generation.Generator, error) {
	genLogger := logger.With("component", "llm_generator")

	switch cfg.Backend {
	case config.BackendGemini:
		g, err := gemini.NewGeminiGenerator(ctx, genLogger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.BackendHuggingFace, "":
		c, err := huggingface.NewClient(genLogger, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	app.clearer.Start(ctx)

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.clearer != nil {
		app.clearer.Stop()
	}
	app.logger.Info("Application shutdown completed")
}
