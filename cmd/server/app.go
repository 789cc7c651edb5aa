package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/intellidoc/intellidoc-ai-service/internal/config"
	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
	"github.com/intellidoc/intellidoc-ai-service/internal/platform/gemini"
	"github.com/intellidoc/intellidoc-ai-service/internal/platform/logger"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	keys       *generation.KeyPool
	limiter    *generation.RateLimiter
	dispatcher *generation.Dispatcher
	service    *generation.Service
}

// newApplication wires the dispatch core and the documentation service.
// factory builds the per-call model clients.
func newApplication(cfg *config.Config, log *slog.Logger, factory generation.ModelFactory) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	keys := generation.NewKeyPool(cfg.LLM.APIKeys)
	if keys.Len() == 0 {
		log.Warn("no API keys configured, documentation endpoints will report the model as unavailable",
			"env", config.PrimaryKeyEnv)
	}

	limiter := generation.NewRateLimiter(generation.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		MinInterval:       cfg.RateLimit.MinInterval(),
	}, generation.WithLimiterLogger(log.With("component", "rate_limiter")))

	dispatcher, err := generation.NewDispatcher(keys, limiter, factory, generation.RetryPolicy{
		MaxAttempts:    cfg.Retry.MaxAttempts,
		InitialBackoff: cfg.Retry.InitialBackoff(),
	}, log.With("component", "dispatcher"))
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	service, err := generation.NewService(dispatcher, generation.ServiceConfig{
		MaxSelectedFiles: cfg.LLM.MaxSelectedFiles,
	}, log.With("component", "docs_service"))
	if err != nil {
		return nil, fmt.Errorf("failed to create documentation service: %w", err)
	}

	log.Info("application initialized",
		"model", cfg.LLM.ModelName,
		"api_keys", keys.Len(),
		"requests_per_minute", cfg.RateLimit.RequestsPerMinute,
		"min_interval_seconds", cfg.RateLimit.MinIntervalSeconds,
		"max_attempts", cfg.Retry.MaxAttempts)

	return &application{
		config:     cfg,
		logger:     log,
		keys:       keys,
		limiter:    limiter,
		dispatcher: dispatcher,
		service:    service,
	}, nil
}

// bootstrap loads configuration, sets up logging and builds the Gemini
// model factory shared by all commands.
func bootstrap() (*config.Config, *slog.Logger, *gemini.ModelFactory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	factory, err := gemini.NewModelFactory(cfg.LLM, log.With("component", "gemini"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create model factory: %w", err)
	}

	return cfg, log, factory, nil
}

// loadApplication runs bootstrap and wires the application.
func loadApplication() (*application, error) {
	cfg, log, factory, err := bootstrap()
	if err != nil {
		return nil, err
	}
	return newApplication(cfg, log, factory)
}

// generate runs one raw model call through the full dispatch core.
func (app *application) generate(ctx context.Context, prompt string) (string, error) {
	return app.dispatcher.Generate(ctx, prompt, generation.GenerateOptions{})
}
