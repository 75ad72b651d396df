package generation

import "context"

// Sampling defaults sent with every completion request.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

// Params controls a single completion.
type Params struct {
	MaxNewTokens int
	Temperature  float64
	TopP         float64
}

// NewParams returns Params with the default sampling settings and the
// given token budget.
func NewParams(maxNewTokens int) Params {
	return Params{
		MaxNewTokens: maxNewTokens,
		Temperature:  DefaultTemperature,
		TopP:         DefaultTopP,
	}
}

// Generator defines the interface for producing text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// Complete sends prompt to the provider and returns the raw generated
	// text. Failures are reported as *ProviderError.
	Complete(ctx context.Context, prompt string, params Params) (string, error)
}
