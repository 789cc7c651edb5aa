package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
	"github.com/intellidoc/intellidoc-ai-service/internal/mocks"
)

func TestMockModel(t *testing.T) {
	t.Parallel()

	t.Run("default_reply", func(t *testing.T) {
		t.Parallel()

		model := mocks.NewMockModelWithReply("# Docs")
		reply, err := model.GenerateContent(context.Background(), "document this", generation.GenerateOptions{})

		require.NoError(t, err)
		assert.Equal(t, "# Docs", reply)
		assert.Equal(t, []string{"document this"}, model.Prompts())
	})

	t.Run("throttled", func(t *testing.T) {
		t.Parallel()

		model := mocks.MockModelThatThrottles()
		_, err := model.GenerateContent(context.Background(), "x", generation.GenerateOptions{})

		assert.ErrorIs(t, err, generation.ErrThrottled)
		assert.Equal(t, generation.KindThrottled, generation.Classify(err))
	})

	t.Run("custom_function", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom error")
		model := &mocks.MockModel{
			GenerateContentFn: func(_ context.Context, prompt string, _ generation.GenerateOptions) (string, error) {
				if prompt == "trigger error" {
					return "", customErr
				}
				return "ok", nil
			},
		}

		_, err := model.GenerateContent(context.Background(), "trigger error", generation.GenerateOptions{})
		assert.ErrorIs(t, err, customErr)

		opts := generation.GenerateOptions{ResponseMIMEType: generation.SelectionMIMEType}
		reply, err := model.GenerateContent(context.Background(), "fine", opts)
		require.NoError(t, err)
		assert.Equal(t, "ok", reply)
		assert.Equal(t, []generation.GenerateOptions{{}, opts}, model.Options())
	})
}

func TestMockModelFactory(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModelWithReply("reply")
	factory := &mocks.MockModelFactory{Model: model}

	for _, key := range []string{"k1", "k2"} {
		got, err := factory.NewModel(context.Background(), key)
		require.NoError(t, err)
		assert.Same(t, model, got)
	}
	assert.Equal(t, []string{"k1", "k2"}, factory.Keys())

	factory.Reset()
	assert.Empty(t, factory.Keys())
}
