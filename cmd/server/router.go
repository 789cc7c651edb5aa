package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/intellidoc/intellidoc-ai-service/internal/api"
	apiMiddleware "github.com/intellidoc/intellidoc-ai-service/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	docsHandler := api.NewDocsHandler(app.service, api.HealthInfo{
		ModelName: app.config.LLM.ModelName,
		KeyCount:  app.keys.Len(),
	}, app.logger)

	r.Post("/generate-docs", docsHandler.GenerateDocs)
	r.Post("/generate-docs-batch", docsHandler.GenerateDocsBatch)
	r.Post("/select-files", docsHandler.SelectFiles)
	r.Get("/health", docsHandler.Health)

	return r
}
