package api

import "github.com/intellidoc/intellidoc-ai-service/internal/domain"

// Common request/response structures

// GenerateDocsRequest defines the payload for single-prompt documentation.
// Prompt is a pointer so that a missing field can be told apart from an
// empty one; only a missing field is rejected.
type GenerateDocsRequest struct {
	Prompt *string `json:"prompt" validate:"required"`
}

// GenerateDocsResponse is returned when documentation was generated.
type GenerateDocsResponse struct {
	Documentation string `json:"documentation"`
}

// SourceFileRequest is one file of a batch request.
type SourceFileRequest struct {
	Path    string  `json:"path"    validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// BatchDocsRequest defines the payload for batch documentation.
type BatchDocsRequest struct {
	Files          []SourceFileRequest `json:"files"           validate:"required,dive"`
	ProjectContext string              `json:"project_context"`
}

// SourceFiles converts the request files to domain values, in order.
func (r BatchDocsRequest) SourceFiles() []domain.SourceFile {
	files := make([]domain.SourceFile, 0, len(r.Files))
	for _, f := range r.Files {
		var content string
		if f.Content != nil {
			content = *f.Content
		}
		files = append(files, domain.SourceFile{Path: f.Path, Content: content})
	}
	return files
}

// FileDocumentationResponse is one entry of a batch result.
type FileDocumentationResponse struct {
	Path          string `json:"path"`
	Documentation string `json:"documentation"`
}

// BatchDocsResponse is returned when the batch call succeeded.
type BatchDocsResponse struct {
	Results []FileDocumentationResponse `json:"results"`
}

// SelectFilesRequest defines the payload for the architect file selection.
type SelectFilesRequest struct {
	FileStructure *string `json:"file_structure" validate:"required"`
}

// SelectFilesResponse always carries a list, empty on failure.
type SelectFilesResponse struct {
	SelectedFiles []string `json:"selected_files"`
}

// HealthResponse reports liveness and the configured model.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Keys   int    `json:"keys"`
}

// ErrorBody is the documented failure shape of the documentation
// endpoints. It is sent with status 200.
type ErrorBody struct {
	Error string `json:"error"`
}

// toBatchResponse converts domain results to the response DTO.
func toBatchResponse(results []domain.FileDocumentation) BatchDocsResponse {
	out := make([]FileDocumentationResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FileDocumentationResponse{Path: r.Path, Documentation: r.Documentation})
	}
	return BatchDocsResponse{Results: out}
}
