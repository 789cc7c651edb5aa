package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/intellidoc/intellidoc-ai-service/internal/domain"
	"github.com/intellidoc/intellidoc-ai-service/internal/redact"
)

// TextGenerator issues one logical model call. *Dispatcher implements it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	Available() bool
}

// ServiceConfig holds the operation-level settings.
type ServiceConfig struct {
	// MaxSelectedFiles caps the architect selection; clamped to [8, 15].
	MaxSelectedFiles int
}

// Service implements the three documentation operations on top of a
// TextGenerator.
type Service struct {
	generator        TextGenerator
	maxSelectedFiles int
	logger           *slog.Logger
}

// NewService creates a Service.
func NewService(generator TextGenerator, cfg ServiceConfig, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, fmt.Errorf("%w: text generator cannot be nil", ErrInvalidConfig)
	}

	return &Service{
		generator:        generator,
		maxSelectedFiles: ClampSelectedFiles(cfg.MaxSelectedFiles),
		logger:           logger,
	}, nil
}

// Available reports whether the model can be reached at all.
func (s *Service) Available() bool {
	return s.generator.Available()
}

// GenerateDocumentation sends prompt as is and returns the cleaned reply.
func (s *Service) GenerateDocumentation(ctx context.Context, prompt string) (string, error) {
	s.logger.InfoContext(ctx, "generating documentation from prompt",
		"prompt_length", len(prompt))

	text, err := s.generator.Generate(ctx, prompt, GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("generate documentation: %w", err)
	}

	doc := CleanDocumentation(text)
	s.logger.InfoContext(ctx, "documentation generated",
		"documentation_length", len(doc))
	return doc, nil
}

// GenerateBatch documents several files with a single model call.
// An empty batch returns an empty result without calling the model.
func (s *Service) GenerateBatch(
	ctx context.Context,
	files []domain.SourceFile,
	projectContext string,
) ([]domain.FileDocumentation, error) {
	if len(files) == 0 {
		return []domain.FileDocumentation{}, nil
	}

	s.logger.InfoContext(ctx, "generating batch documentation",
		"file_count", len(files),
		"context_length", len(projectContext))

	prompt := BuildBatchPrompt(files, projectContext)
	text, err := s.generator.Generate(ctx, prompt, GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate batch documentation: %w", err)
	}

	results, lossy := ParseBatchResponse(text, files)
	if lossy {
		// TODO(batch-fallback): retry the remaining files individually instead of
		// attributing the whole reply to the first one.
		s.logger.WarnContext(ctx, "batch reply had no file markers, attributing it to the first file",
			"requested_files", len(files),
			"first_path", files[0].Path)
	} else if len(results) != len(files) {
		s.logger.WarnContext(ctx, "batch reply does not match the requested files",
			"requested_files", len(files),
			"parsed_files", len(results))
	}

	s.logger.InfoContext(ctx, "batch documentation generated",
		"parsed_files", len(results))
	return results, nil
}

// SelectFiles asks the model for the most important files of the project
// described by fileStructure. It never fails: any error yields an empty list.
func (s *Service) SelectFiles(ctx context.Context, fileStructure string) []string {
	if !s.generator.Available() {
		s.logger.WarnContext(ctx, "file selection skipped, model unavailable")
		return []string{}
	}

	prompt, err := BuildSelectionPrompt(fileStructure, s.maxSelectedFiles)
	if err != nil {
		s.logger.ErrorContext(ctx, "architect prompt failed", "error", err)
		return []string{}
	}

	text, err := s.generator.Generate(ctx, prompt, GenerateOptions{ResponseMIMEType: SelectionMIMEType})
	if err != nil {
		s.logger.ErrorContext(ctx, "architect selection failed",
			"error", redact.Error(err))
		return []string{}
	}

	paths, err := ParseSelection(text, s.maxSelectedFiles)
	if err != nil {
		s.logger.ErrorContext(ctx, "architect reply could not be parsed",
			"error", err,
			"response_length", len(text))
		return []string{}
	}

	s.logger.InfoContext(ctx, "architect selected files", "count", len(paths))
	return paths
}
