package mocks

import (
	"context"

	"github.com/intellidoc/intellidoc-ai-service/internal/domain"
)

// MockDocService is a mock implementation of api.DocService for testing.
// Available defaults to true; the other methods default to empty results.
type MockDocService struct {
	AvailableFn             func() bool
	GenerateDocumentationFn func(ctx context.Context, prompt string) (string, error)
	GenerateBatchFn         func(ctx context.Context, files []domain.SourceFile, projectContext string) ([]domain.FileDocumentation, error)
	SelectFilesFn           func(ctx context.Context, fileStructure string) []string
}

// Available implements DocService
func (m *MockDocService) Available() bool {
	if m.AvailableFn != nil {
		return m.AvailableFn()
	}
	return true
}

// GenerateDocumentation implements DocService
func (m *MockDocService) GenerateDocumentation(ctx context.Context, prompt string) (string, error) {
	if m.GenerateDocumentationFn != nil {
		return m.GenerateDocumentationFn(ctx, prompt)
	}
	return "", nil
}

// GenerateBatch implements DocService
func (m *MockDocService) GenerateBatch(
	ctx context.Context,
	files []domain.SourceFile,
	projectContext string,
) ([]domain.FileDocumentation, error) {
	if m.GenerateBatchFn != nil {
		return m.GenerateBatchFn(ctx, files, projectContext)
	}
	return []domain.FileDocumentation{}, nil
}

// SelectFiles implements DocService
func (m *MockDocService) SelectFiles(ctx context.Context, fileStructure string) []string {
	if m.SelectFilesFn != nil {
		return m.SelectFilesFn(ctx, fileStructure)
	}
	return []string{}
}
