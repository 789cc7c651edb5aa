package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/intellidoc/intellidoc-ai-service/internal/config"
	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
	"github.com/intellidoc/intellidoc-ai-service/internal/mocks"
)

func init() {
	color.NoColor = true
}

// testConfig returns a configuration whose limiter never sleeps.
func testConfig(keys ...string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8000, LogLevel: "debug"},
		LLM: config.LLMConfig{
			ModelName:        "gemini-flash-latest",
			MaxSelectedFiles: 15,
			APIKeys:          keys,
		},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000, MinIntervalSeconds: 0},
		Retry:     config.RetryConfig{MaxAttempts: 1, InitialBackoffSeconds: 1},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// replyFactory returns a factory whose models answer every prompt with reply.
func replyFactory(reply func(prompt string, opts generation.GenerateOptions) (string, error)) *mocks.MockModelFactory {
	return &mocks.MockModelFactory{
		Model: &mocks.MockModel{
			GenerateContentFn: func(_ context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
				return reply(prompt, opts)
			},
		},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config, factory generation.ModelFactory) *application {
	t.Helper()
	app, err := newApplication(cfg, testLogger(), factory)
	require.NoError(t, err)
	return app
}
