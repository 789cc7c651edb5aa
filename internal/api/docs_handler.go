package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/intellidoc/intellidoc-ai-service/internal/api/shared"
	"github.com/intellidoc/intellidoc-ai-service/internal/domain"
	"github.com/intellidoc/intellidoc-ai-service/internal/platform/logger"
)

// DocService is the documentation capability the handlers depend on.
// *generation.Service implements it.
type DocService interface {
	Available() bool
	GenerateDocumentation(ctx context.Context, prompt string) (string, error)
	GenerateBatch(ctx context.Context, files []domain.SourceFile, projectContext string) ([]domain.FileDocumentation, error)
	SelectFiles(ctx context.Context, fileStructure string) []string
}

// HealthInfo is the static part of the health report.
type HealthInfo struct {
	ModelName string
	KeyCount  int
}

// DocsHandler handles the documentation HTTP requests.
//
// Every documented outcome, including failures, is answered with status 200
// and a JSON body; callers look for an "error" field or an empty list.
// Only undecodable or invalid bodies get a 422.
type DocsHandler struct {
	service DocService
	health  HealthInfo
	logger  *slog.Logger
}

// NewDocsHandler creates a new DocsHandler
func NewDocsHandler(service DocService, health HealthInfo, logger *slog.Logger) *DocsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocsHandler{
		service: service,
		health:  health,
		logger:  logger.With("component", "docs_handler"),
	}
}

// requestContext detaches the model call from client disconnects: a retry
// loop, once started, runs to completion. Values such as the trace ID and
// the request logger are kept.
func requestContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// GenerateDocs handles POST /generate-docs requests
func (h *DocsHandler) GenerateDocs(w http.ResponseWriter, r *http.Request) {
	var req GenerateDocsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if !h.service.Available() {
		shared.RespondWithJSON(w, r, http.StatusOK, ErrorBody{Error: MsgModelUnavailable})
		return
	}

	doc, err := h.service.GenerateDocumentation(requestContext(r), *req.Prompt)
	if err != nil {
		msg := GetSafeErrorMessage(err, MsgGenerationFailed)
		shared.LogError(r, slog.LevelError, msg, err)
		shared.RespondWithJSON(w, r, http.StatusOK, ErrorBody{Error: msg})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateDocsResponse{Documentation: doc})
}

// GenerateDocsBatch handles POST /generate-docs-batch requests
func (h *DocsHandler) GenerateDocsBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchDocsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	files := req.SourceFiles()
	if len(files) == 0 {
		shared.RespondWithJSON(w, r, http.StatusOK, BatchDocsResponse{Results: []FileDocumentationResponse{}})
		return
	}

	if !h.service.Available() {
		shared.RespondWithJSON(w, r, http.StatusOK, ErrorBody{Error: MsgModelUnavailable})
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.InfoContext(r.Context(), "batch documentation requested",
		"file_count", len(files),
		"paths", domain.Paths(files))

	results, err := h.service.GenerateBatch(requestContext(r), files, req.ProjectContext)
	if err != nil {
		msg := GetSafeErrorMessage(err, MsgBatchFailed)
		shared.LogError(r, slog.LevelError, msg, err)
		shared.RespondWithJSON(w, r, http.StatusOK, ErrorBody{Error: msg})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toBatchResponse(results))
}

// SelectFiles handles POST /select-files requests
func (h *DocsHandler) SelectFiles(w http.ResponseWriter, r *http.Request) {
	var req SelectFilesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	selected := h.service.SelectFiles(requestContext(r), *req.FileStructure)
	if selected == nil {
		selected = []string{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SelectFilesResponse{SelectedFiles: selected})
}

// Health handles GET /health requests
func (h *DocsHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Model:  h.health.ModelName,
		Keys:   h.health.KeyCount,
	})
}
