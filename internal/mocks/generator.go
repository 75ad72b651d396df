package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/chatrelay/internal/generation"
)

// CompleteCall records one call to MockGenerator.Complete.
type CompleteCall struct {
	Prompt string
	Params generation.Params
	Ctx    context.Context
}

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, prompt string, params generation.Params) (string, error)

	// Default response values, used when CompleteFn is nil
	Text string
	Err  error

	mu    sync.Mutex
	calls []CompleteCall
}

// Complete implements the generation.Generator interface
func (m *MockGenerator) Complete(ctx context.Context, prompt string, params generation.Params) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, CompleteCall{Prompt: prompt, Params: params, Ctx: ctx})
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt, params)
	}
	return m.Text, m.Err
}

// Calls returns a copy of the recorded calls.
func (m *MockGenerator) Calls() []CompleteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CompleteCall(nil), m.calls...)
}

// CallCount returns how many times Complete was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastCall returns the most recent call, or false if there was none.
func (m *MockGenerator) LastCall() (CompleteCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return CompleteCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// NewMockGeneratorWithText creates a MockGenerator that always returns text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}
