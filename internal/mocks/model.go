package mocks

import (
	"context"
	"sync"

	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

// MockModel implements generation.Model for testing
type MockModel struct {
	// GenerateContentFn allows test cases to mock the GenerateContent behavior
	GenerateContentFn func(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error)

	// Default response values
	Reply string
	Err   error

	mu      sync.Mutex
	prompts []string
	options []generation.GenerateOptions
}

// GenerateContent implements the generation.Model interface
func (m *MockModel) GenerateContent(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.options = append(m.options, opts)
	m.mu.Unlock()

	if m.GenerateContentFn != nil {
		return m.GenerateContentFn(ctx, prompt, opts)
	}
	return m.Reply, m.Err
}

// Prompts returns the prompts received so far, in call order.
func (m *MockModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Options returns the options received so far, in call order.
func (m *MockModel) Options() []generation.GenerateOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.GenerateOptions(nil), m.options...)
}

// NewMockModelWithReply creates a MockModel that answers every prompt with reply
func NewMockModelWithReply(reply string) *MockModel {
	return &MockModel{Reply: reply}
}

// NewMockModelWithError creates a MockModel that fails every call with err
func NewMockModelWithError(err error) *MockModel {
	return &MockModel{Err: err}
}

// MockModelThatThrottles creates a MockModel that always reports a quota error
func MockModelThatThrottles() *MockModel {
	return &MockModel{Err: generation.ErrThrottled}
}

// MockModelFactory implements generation.ModelFactory for testing.
// Without NewModelFn it hands out Model, or a MockModel replying "" when
// Model is nil.
type MockModelFactory struct {
	NewModelFn func(ctx context.Context, apiKey string) (generation.Model, error)
	Model      generation.Model

	mu   sync.Mutex
	keys []string
}

// NewModel implements the generation.ModelFactory interface
func (f *MockModelFactory) NewModel(ctx context.Context, apiKey string) (generation.Model, error) {
	f.mu.Lock()
	f.keys = append(f.keys, apiKey)
	f.mu.Unlock()

	if f.NewModelFn != nil {
		return f.NewModelFn(ctx, apiKey)
	}
	if f.Model != nil {
		return f.Model, nil
	}
	return &MockModel{}, nil
}

// Keys returns the API keys models were built for, in call order.
func (f *MockModelFactory) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

// Reset clears the call tracking state
func (f *MockModelFactory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = nil
}
