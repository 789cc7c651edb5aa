package generation

import (
	"context"
	"errors"
	"strings"
)

// Common errors returned by the generation package
var (
	// ErrNoCredentials is returned when no API key is configured, which
	// leaves the model unavailable for every operation.
	ErrNoCredentials = errors.New("no model credentials configured")

	// ErrThrottled marks a provider failure caused by rate or quota limits.
	// Such failures are retried with backoff.
	ErrThrottled = errors.New("model provider throttled the request")

	// ErrRetriesExhausted is returned when every attempt failed with a throttling error
	ErrRetriesExhausted = errors.New("exceeded maximum retry attempts")

	// ErrProviderFailure is returned for any provider failure that is not throttling
	ErrProviderFailure = errors.New("model provider call failed")

	// ErrInvalidResponse is returned when the model response cannot be used
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ErrorKind is the retry classification of a provider error.
type ErrorKind int

const (
	// KindFatal errors are surfaced immediately.
	KindFatal ErrorKind = iota
	// KindThrottled errors are retried after a backoff.
	KindThrottled
)

// String returns the name used in log records.
func (k ErrorKind) String() string {
	if k == KindThrottled {
		return "throttled"
	}
	return "fatal"
}

// throttleIndicators are matched case-insensitively against error text.
var throttleIndicators = []string{"429", "resource", "quota", "rate"}

// Classify reports whether err should be retried. Errors already tagged by a
// provider adapter are classified by their sentinel; anything else falls back
// to matching throttleIndicators in the error text.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindFatal
	case errors.Is(err, ErrThrottled):
		return KindThrottled
	case errors.Is(err, ErrProviderFailure),
		errors.Is(err, ErrInvalidResponse),
		errors.Is(err, ErrContentBlocked),
		errors.Is(err, ErrNoCredentials),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindFatal
	}
	if IsThrottleMessage(err.Error()) {
		return KindThrottled
	}
	return KindFatal
}

// IsThrottleMessage reports whether msg carries one of the throttling indicators.
func IsThrottleMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, indicator := range throttleIndicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
