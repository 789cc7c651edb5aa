// Package gemini connects the generation dispatch core to Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture.
// It implements generation.ModelFactory and generation.Model on top of the
// google.golang.org/genai client without exposing SDK types to the rest of
// the application.
//
// Key components:
//
// 1. ModelFactory:
//   - Builds a fresh client for every call, bound to the API key the
//     dispatcher rotated to
//
// 2. Model:
//   - Sends a single prompt, optionally asking for a JSON reply
//   - Extracts the reply text and rejects empty or safety-blocked replies
//
// 3. Error Handling:
//   - Tags quota and rate-limit failures with generation.ErrThrottled
//   - Tags every other provider failure with generation.ErrProviderFailure
//
// 4. Model listing:
//   - Lists the models that support content generation, used by the CLI
//
// Retries, backoff and rate limiting are not handled here; they belong to
// generation.Dispatcher.
package gemini
