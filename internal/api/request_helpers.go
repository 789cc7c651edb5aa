package api

import (
	"net/http"

	"github.com/intellidoc/intellidoc-ai-service/internal/api/shared"
)

// decodeAndValidate reads the JSON body into v and validates it. On failure
// it writes a 422 response and returns false.
//
// Parameters:
//   - w: The HTTP response writer
//   - r: The HTTP request
//   - v: Pointer to the request DTO
//
// Returns:
//   - true if v is ready to use, false if an error response was written
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, MsgInvalidRequestBody, err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Validation error: "+SanitizeValidationError(err), err)
		return false
	}

	return true
}
