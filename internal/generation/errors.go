package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrProviderFailure matches every failed call to an inference provider,
	// whether the transport failed or the provider answered with an error.
	ErrProviderFailure = errors.New("inference provider request failed")

	// ErrInvalidResponse is returned when the provider response cannot be parsed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ProviderError describes a failed provider call. StatusCode is zero when
// no HTTP response was received.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d: %v", ErrProviderFailure, e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrProviderFailure, e.Provider, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports ErrProviderFailure for every ProviderError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailure
}
