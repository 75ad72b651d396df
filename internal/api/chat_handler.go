package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/chatrelay/internal/api/shared"
	"github.com/phrazzld/chatrelay/internal/cache"
	"github.com/phrazzld/chatrelay/internal/domain"
	"github.com/phrazzld/chatrelay/internal/service"
)

// BannerMessage is returned by GET / so the widget can check the backend
// is reachable.
const BannerMessage = "Hello from the chat relay!"

// ChatRequest represents the request body for POST /
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// ChatResponse represents the response body for POST /
type ChatResponse struct {
	Bot string `json:"bot"`
}

// BannerResponse represents the response body for GET /
type BannerResponse struct {
	Message string `json:"message"`
}

// StatsSource reports cache counters.
type StatsSource interface {
	Stats() cache.Stats
}

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatService service.ChatService
	stats       StatsSource
	logger      *slog.Logger
}

// NewChatHandler creates a new ChatHandler. stats may be nil, in which
// case CacheStats reports an empty cache.
func NewChatHandler(chatService service.ChatService, stats StatsSource, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		chatService: chatService,
		stats:       stats,
		logger:      logger.With("component", "chat_handler"),
	}
}

// Chat handles POST / requests
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError("body", "is not valid JSON", err), msgInvalidRequest)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError("prompt", "is required", domain.ErrEmptyPrompt), "")
		return
	}

	reply, err := h.chatService.Respond(r.Context(), req.Prompt)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate a response")
		return
	}

	h.logger.DebugContext(r.Context(), "chat reply sent",
		"trace_id", shared.GetTraceID(r.Context()),
		"kind", reply.Kind.String(),
		"cached", reply.Cached)

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{Bot: reply.Text})
}

// Banner handles GET / requests
func (h *ChatHandler) Banner(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, BannerResponse{Message: BannerMessage})
}

// Health handles GET /health requests. It only reports liveness.
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}

// CacheStats handles GET /cache/stats requests
func (h *ChatHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	var stats cache.Stats
	if h.stats != nil {
		stats = h.stats.Stats()
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
