package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

// Error definitions for the gemini package.
var (
	// ErrEmptyAPIKey is returned when a model is requested without a key.
	ErrEmptyAPIKey = errors.New("api key cannot be empty")

	// ErrEmptyModelName is returned when no model name is configured.
	ErrEmptyModelName = errors.New("model name cannot be empty")
)

// statusResourceExhausted is the RPC status Gemini reports for quota errors.
const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// classifyError tags a raw SDK error with the generation sentinel that
// decides whether the dispatcher retries it.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if code, status, ok := apiErrorStatus(err); ok {
		if code == http.StatusTooManyRequests || status == statusResourceExhausted {
			return fmt.Errorf("%w: %w", generation.ErrThrottled, err)
		}
		return fmt.Errorf("%w: %w", generation.ErrProviderFailure, err)
	}

	if generation.IsThrottleMessage(err.Error()) {
		return fmt.Errorf("%w: %w", generation.ErrThrottled, err)
	}
	return fmt.Errorf("%w: %w", generation.ErrProviderFailure, err)
}

// apiErrorStatus extracts the HTTP code and RPC status from a genai.APIError,
// whether it was returned by value or by pointer.
func apiErrorStatus(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Status, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Status, true
	}
	return 0, "", false
}
