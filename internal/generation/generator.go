package generation

import "context"

// GenerateOptions carries per-call generation settings.
type GenerateOptions struct {
	// ResponseMIMEType asks the model for a specific output format,
	// e.g. "application/json". Empty means plain text.
	ResponseMIMEType string
}

// Model is a handle on the external generative model bound to one credential.
// This interface serves as the boundary between the dispatch core and the
// provider SDK.
type Model interface {
	// GenerateContent sends prompt to the model and returns the reply text.
	// Provider errors should be tagged with ErrThrottled or ErrProviderFailure
	// where the adapter can tell them apart.
	GenerateContent(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// ModelFactory builds a fresh Model for a single call using the given API key.
type ModelFactory interface {
	NewModel(ctx context.Context, apiKey string) (Model, error)
}

// ModelFactoryFunc adapts a function to the ModelFactory interface.
type ModelFactoryFunc func(ctx context.Context, apiKey string) (Model, error)

// NewModel calls f(ctx, apiKey).
func (f ModelFactoryFunc) NewModel(ctx context.Context, apiKey string) (Model, error) {
	return f(ctx, apiKey)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

// GenerateContent calls f(ctx, prompt, opts).
func (f ModelFunc) GenerateContent(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	return f(ctx, prompt, opts)
}
