package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/intellidoc/intellidoc-ai-service/internal/generation"
)

// User-facing failure messages.
const (
	MsgModelUnavailable   = "AI model is not available."
	MsgGenerationFailed   = "Failed to generate documentation from Gemini API."
	MsgBatchFailed        = "Failed to generate batch documentation from Gemini API."
	MsgInvalidRequestBody = "Invalid request format"
)

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// for a failed documentation call. fallback is used for every failure
// other than missing credentials, so provider details never leak.
func GetSafeErrorMessage(err error, fallback string) string {
	if errors.Is(err, generation.ErrNoCredentials) {
		return MsgModelUnavailable
	}
	return fallback
}

// SanitizeValidationError removes internal details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Invalid %s: %s", fieldPath(fe), getValidationTagMessage(fe.Tag())))
	}
	return strings.Join(msgs, "; ")
}

// fieldPath returns the namespace of fe without the root struct name,
// e.g. "Files[1].Path".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
