package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellidoc/intellidoc-ai-service/internal/api/shared"
	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no_credentials", err: fmt.Errorf("wrapped: %w", generation.ErrNoCredentials), want: MsgModelUnavailable},
		{name: "retries_exhausted", err: generation.ErrRetriesExhausted, want: MsgGenerationFailed},
		{name: "provider_detail_hidden", err: errors.New("Error 400, Message: API key not valid"), want: MsgGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err, MsgGenerationFailed))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("field_errors", func(t *testing.T) {
		err := shared.ValidateRequest(BatchDocsRequest{})
		assert.Equal(t, "Invalid Files: required field", SanitizeValidationError(err))
	})

	t.Run("other_error", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
