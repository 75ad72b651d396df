package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/phrazzld/chatrelay/internal/domain"
	"github.com/phrazzld/chatrelay/internal/generation"
	"github.com/phrazzld/chatrelay/internal/prompt"
)

// ResponseCache is the cache the chat service reads and writes.
type ResponseCache interface {
	Get(prompt string) (string, bool)
	Put(prompt, response string)
}

// Reply is the bot's answer to one prompt.
type Reply struct {
	// Text always starts with a single space.
	Text string
	// Kind is how the prompt was classified. It is left as
	// domain.KindContent for cache hits, which skip classification.
	Kind   domain.Kind
	Cached bool
}

// ChatService answers chat prompts.
type ChatService interface {
	// Respond returns the reply for userPrompt. A missing prompt yields a
	// domain.ErrValidation error; provider failures wrap
	// generation.ErrProviderFailure.
	Respond(ctx context.Context, userPrompt string) (*Reply, error)
}

// Option customizes the chat service.
type Option func(*chatServiceImpl)

// WithClock sets the time source used to answer date questions.
func WithClock(now func() time.Time) Option {
	return func(s *chatServiceImpl) {
		s.now = now
	}
}

// WithPicker sets how a greeting reply is chosen. pick(n) must return an
// index in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *chatServiceImpl) {
		s.pick = pick
	}
}

// WithInferenceTimeout bounds each provider call. Zero means no bound
// beyond the request context.
func WithInferenceTimeout(d time.Duration) Option {
	return func(s *chatServiceImpl) {
		s.inferenceTimeout = d
	}
}

type chatServiceImpl struct {
	cache            ResponseCache
	generator        generation.Generator
	logger           *slog.Logger
	now              func() time.Time
	pick             func(n int) int
	inferenceTimeout time.Duration
}

// NewChatService creates a ChatService.
// It returns an error if any of the required dependencies are nil.
func NewChatService(
	cache ResponseCache,
	generator generation.Generator,
	logger *slog.Logger,
	opts ...Option,
) (ChatService, error) {
	if cache == nil {
		return nil, &ChatServiceError{Operation: "create_service", Message: "cache cannot be nil"}
	}
	if generator == nil {
		return nil, &ChatServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &chatServiceImpl{
		cache:     cache,
		generator: generator,
		logger:    logger.With("component", "chat_service"),
		now:       time.Now,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Respond implements ChatService. The cache is only written after a reply
// has been fully produced.
func (s *chatServiceImpl) Respond(ctx context.Context, userPrompt string) (*Reply, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return nil, domain.NewValidationError("prompt", "is required", domain.ErrEmptyPrompt)
	}

	if cached, ok := s.cache.Get(userPrompt); ok {
		s.logger.DebugContext(ctx, "serving cached reply", "prompt_length", len(userPrompt))
		return &Reply{Text: cached, Cached: true}, nil
	}

	c := prompt.Classify(userPrompt)
	logger := s.logger.With("kind", c.Kind.String())

	switch c.Kind {
	case domain.KindGreeting:
		reply := prompt.GreetingReply(s.pick)
		s.cache.Put(userPrompt, reply)
		logger.DebugContext(ctx, "answered greeting locally")
		return &Reply{Text: reply, Kind: c.Kind}, nil

	case domain.KindDateQuery:
		// Derived from the clock, so never cached.
		logger.DebugContext(ctx, "answered date question locally")
		return &Reply{Text: prompt.DateReply(s.now()), Kind: c.Kind}, nil
	}

	augmented := prompt.Augment(userPrompt, c)
	params := generation.NewParams(prompt.TokenBudget(c))

	callCtx := ctx
	if s.inferenceTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.inferenceTimeout)
		defer cancel()
	}

	logger.InfoContext(ctx, "requesting completion",
		"word_count", c.WordCount(),
		"diagram", c.Diagram,
		"max_new_tokens", params.MaxNewTokens)

	raw, err := s.generator.Complete(callCtx, augmented, params)
	if err != nil {
		return nil, NewChatServiceError("complete", "inference call failed", err)
	}

	reply := prompt.Sanitize(raw, userPrompt)
	s.cache.Put(userPrompt, reply)

	logger.InfoContext(ctx, "completion served", "reply_length", len(reply))
	return &Reply{Text: reply, Kind: c.Kind}, nil
}
