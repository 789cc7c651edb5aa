package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/intellidoc/intellidoc-ai-service/internal/config"
	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

// contentGenerator is the part of the genai client used by Model.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// clientFunc creates the SDK client for one API key.
type clientFunc func(ctx context.Context, apiKey string) (*genai.Client, error)

func newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// ModelFactory implements generation.ModelFactory for the Gemini API.
type ModelFactory struct {
	modelName string
	logger    *slog.Logger
	newClient clientFunc
}

// NewModelFactory creates a factory for the model named in cfg.
//
// Parameters:
//   - cfg: LLM configuration; only ModelName is used, keys come per call
//   - logger: A structured logger for operation logging
//
// Returns:
//   - A ModelFactory or an error if the configuration is invalid
func NewModelFactory(cfg config.LLMConfig, logger *slog.Logger) (*ModelFactory, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidConfig, ErrEmptyModelName)
	}

	return &ModelFactory{
		modelName: cfg.ModelName,
		logger:    logger,
		newClient: newClient,
	}, nil
}

// ModelName returns the configured model name.
func (f *ModelFactory) ModelName() string {
	return f.modelName
}

// NewModel builds a client bound to apiKey. A new client is created for
// every call so that each attempt uses the key it was given.
func (f *ModelFactory) NewModel(ctx context.Context, apiKey string) (generation.Model, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	client, err := f.newClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newModel(client.Models, f.modelName, f.logger), nil
}

// Model sends prompts to one Gemini model with one credential.
type Model struct {
	models    contentGenerator
	modelName string
	logger    *slog.Logger
}

func newModel(models contentGenerator, modelName string, logger *slog.Logger) *Model {
	return &Model{models: models, modelName: modelName, logger: logger}
}

// GenerateContent sends prompt as a single user turn and returns the reply text.
func (m *Model) GenerateContent(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
	var genConfig *genai.GenerateContentConfig
	if opts.ResponseMIMEType != "" {
		genConfig = &genai.GenerateContentConfig{ResponseMIMEType: opts.ResponseMIMEType}
	}

	m.logger.DebugContext(ctx, "calling Gemini API",
		"model", m.modelName,
		"response_mime_type", opts.ResponseMIMEType)

	resp, err := m.models.GenerateContent(ctx, m.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", classifyError(err)
	}

	return extractText(resp)
}
