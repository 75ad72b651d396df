package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/chatrelay/internal/domain"
)

// ChatServiceError wraps errors from the chat service with context.
type ChatServiceError struct {
	// Operation is the step that failed (e.g., "complete", "create_service")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ChatServiceError.
func (e *ChatServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chat service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("chat service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ChatServiceError) Unwrap() error {
	return e.Err
}

// NewChatServiceError creates a new ChatServiceError.
// Validation errors are returned directly without wrapping.
func NewChatServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	return &ChatServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
