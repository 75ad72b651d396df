// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields for each interface method and record their
// calls, so a test can both script behavior and verify what was sent:
//
//	gen := &mocks.MockGenerator{
//	    CompleteFn: func(ctx context.Context, prompt string, p generation.Params) (string, error) {
//	        return "Gravity pulls masses together.", nil
//	    },
//	}
//	// ... exercise the code under test ...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
