package gemini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind generation.ErrorKind
		wantTag  error
	}{
		{
			name:     "api_error_429",
			err:      genai.APIError{Code: 429, Message: "Resource has been exhausted", Status: "RESOURCE_EXHAUSTED"},
			wantKind: generation.KindThrottled,
			wantTag:  generation.ErrThrottled,
		},
		{
			name:     "api_error_status_only",
			err:      fmt.Errorf("call failed: %w", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}),
			wantKind: generation.KindThrottled,
			wantTag:  generation.ErrThrottled,
		},
		{
			name:     "api_error_pointer",
			err:      &genai.APIError{Code: 429},
			wantKind: generation.KindThrottled,
			wantTag:  generation.ErrThrottled,
		},
		{
			name:     "api_error_invalid_argument",
			err:      genai.APIError{Code: 400, Message: "API key not valid", Status: "INVALID_ARGUMENT"},
			wantKind: generation.KindFatal,
			wantTag:  generation.ErrProviderFailure,
		},
		{
			name:     "api_error_message_mentions_quota_but_code_is_not_throttle",
			err:      genai.APIError{Code: 403, Message: "quota project not set", Status: "PERMISSION_DENIED"},
			wantKind: generation.KindFatal,
			wantTag:  generation.ErrProviderFailure,
		},
		{
			name:     "transport_error_with_rate_text",
			err:      errors.New("rate limit exceeded"),
			wantKind: generation.KindThrottled,
			wantTag:  generation.ErrThrottled,
		},
		{
			name:     "transport_error",
			err:      errors.New("connection reset by peer"),
			wantKind: generation.KindFatal,
			wantTag:  generation.ErrProviderFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)

			assert.ErrorIs(t, got, tt.wantTag)
			assert.Contains(t, got.Error(), tt.err.Error())
			assert.Equal(t, tt.wantKind, generation.Classify(got))
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, classifyError(nil))
	})
}
