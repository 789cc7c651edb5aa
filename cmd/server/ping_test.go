package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

func TestRunPing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var prompts []string
		app := newTestApplication(t, testConfig("k1"), replyFactory(func(prompt string, _ generation.GenerateOptions) (string, error) {
			prompts = append(prompts, prompt)
			return "Go was designed in 2007.", nil
		}))
		var out bytes.Buffer

		err := runPing(context.Background(), app, &out)

		require.NoError(t, err)
		assert.Equal(t, []string{pingPrompt}, prompts)
		assert.Contains(t, out.String(), "Model: gemini-flash-latest, API keys: 1")
		assert.Contains(t, out.String(), "SUCCESS")
		assert.Contains(t, out.String(), "Go was designed in 2007.")
	})

	t.Run("model_error", func(t *testing.T) {
		app := newTestApplication(t, testConfig("k1"), replyFactory(func(string, generation.GenerateOptions) (string, error) {
			return "", errors.New("permission denied")
		}))
		var out bytes.Buffer

		err := runPing(context.Background(), app, &out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ping failed")
		assert.Contains(t, out.String(), "FAILED")
		assert.Contains(t, out.String(), "permission denied")
	})

	t.Run("no_keys", func(t *testing.T) {
		app := newTestApplication(t, testConfig(), replyFactory(nil))
		var out bytes.Buffer

		err := runPing(context.Background(), app, &out)

		assert.ErrorIs(t, err, generation.ErrNoCredentials)
		assert.Contains(t, out.String(), "API keys: 0")
	})
}
