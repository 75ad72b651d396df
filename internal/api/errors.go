package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/chatrelay/internal/api/shared"
	"github.com/phrazzld/chatrelay/internal/domain"
	"github.com/phrazzld/chatrelay/internal/generation"
)

// Messages sent to clients. Internal details never reach the response body.
const (
	msgPromptRequired  = "Prompt is required"
	msgInvalidRequest  = "Invalid request format"
	msgProviderFailure = "Something went wrong while generating a response"
	msgUnexpected      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// Provider failures are reported as a plain server error; the widget
	// only distinguishes success from failure.
	case errors.Is(err, generation.ErrProviderFailure):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrEmptyPrompt),
		errors.Is(err, shared.ErrEmptyBody):
		return msgPromptRequired
	case errors.Is(err, domain.ErrValidation):
		return msgInvalidRequest
	case errors.Is(err, generation.ErrProviderFailure):
		return msgProviderFailure
	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the status and safe message for err, logging the
// redacted detail. defaultMsg replaces the generic message for errors that
// map to a 500 without a more specific description.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if msg == msgUnexpected && defaultMsg != "" {
		msg = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
