package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/chatrelay/internal/api"
	apiMiddleware "github.com/phrazzld/chatrelay/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewCORSMiddleware(app.config.Server.AllowedOrigins))

	chatHandler := api.NewChatHandler(app.chatService, app.cache, app.logger)

	r.Get("/", chatHandler.Banner)
	r.Post("/", chatHandler.Chat)
	r.Get("/health", chatHandler.Health)
	r.Get("/cache/stats", chatHandler.CacheStats)

	return r
}
