// Package generation is the request-dispatch core of the documentation
// service. It owns everything between an inbound operation and the external
// Gemini model: API key rotation (KeyPool), proactive rate limiting
// (RateLimiter), retry with exponential backoff on provider throttling
// (Dispatcher), construction of batch prompts and parsing of the delimited
// replies, clean-up of single-file replies, and the "architect" file
// selection.
//
// The model itself sits behind the Model and ModelFactory interfaces so that
// the core can be exercised with in-memory stubs. The Gemini implementation
// lives in internal/platform/gemini.
package generation
