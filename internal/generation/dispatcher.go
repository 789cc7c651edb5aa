package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/intellidoc/intellidoc-ai-service/internal/redact"
)

const (
	// DefaultMaxAttempts is the number of model calls made for one operation.
	DefaultMaxAttempts = 5

	// DefaultInitialBackoff is the delay after the first throttled attempt.
	// It doubles after every further throttled attempt.
	DefaultInitialBackoff = 8 * time.Second
)

// RetryPolicy bounds the retry loop of a Dispatcher.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

// DefaultRetryPolicy returns 5 attempts with 8, 16, 32 and 64 second backoffs.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    DefaultMaxAttempts,
		InitialBackoff: DefaultInitialBackoff,
	}
}

// Dispatcher issues one logical model call: it waits on the limiter, rotates
// to the next API key, builds a fresh model for that key and retries
// throttled attempts with exponential backoff.
type Dispatcher struct {
	keys    *KeyPool
	limiter Limiter
	factory ModelFactory
	policy  RetryPolicy
	sleep   SleepFunc
	logger  *slog.Logger
}

// DispatcherOption customizes a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithBackoffSleeper replaces the timer used between retries.
func WithBackoffSleeper(s SleepFunc) DispatcherOption {
	return func(d *Dispatcher) { d.sleep = s }
}

// NewDispatcher creates a Dispatcher. Invalid policy values fall back to the defaults.
func NewDispatcher(
	keys *KeyPool,
	limiter Limiter,
	factory ModelFactory,
	policy RetryPolicy,
	logger *slog.Logger,
	opts ...DispatcherOption,
) (*Dispatcher, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: key pool cannot be nil", ErrInvalidConfig)
	}
	if limiter == nil {
		return nil, fmt.Errorf("%w: limiter cannot be nil", ErrInvalidConfig)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: model factory cannot be nil", ErrInvalidConfig)
	}

	if policy.MaxAttempts <= 0 {
		logger.Warn("invalid max attempts value, using default",
			"max_attempts", policy.MaxAttempts,
			"default", DefaultMaxAttempts)
		policy.MaxAttempts = DefaultMaxAttempts
	}
	if policy.InitialBackoff <= 0 {
		logger.Warn("invalid initial backoff value, using default",
			"initial_backoff", policy.InitialBackoff,
			"default", DefaultInitialBackoff)
		policy.InitialBackoff = DefaultInitialBackoff
	}

	d := &Dispatcher{
		keys:    keys,
		limiter: limiter,
		factory: factory,
		policy:  policy,
		sleep:   Sleep,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Available reports whether at least one API key is configured.
func (d *Dispatcher) Available() bool {
	return d.keys.Len() > 0
}

// Generate sends prompt to the model and returns the raw reply text.
//
// Throttling failures are retried up to the policy's attempt ceiling; the
// last one is returned wrapped in ErrRetriesExhausted. Any other failure is
// returned at once. With no API keys configured it returns ErrNoCredentials
// without touching the limiter.
func (d *Dispatcher) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if !d.Available() {
		return "", ErrNoCredentials
	}

	maxAttempts := d.policy.MaxAttempts
	backoff := d.policy.InitialBackoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		d.logger.DebugContext(ctx, "making model call",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"prompt_length", len(prompt))

		text, err := d.attempt(ctx, prompt, opts)
		if err == nil {
			d.logger.InfoContext(ctx, "model call successful",
				"attempt", attempt,
				"response_length", len(text))
			return text, nil
		}
		lastErr = err

		kind := Classify(err)
		d.logger.ErrorContext(ctx, "model call failed",
			"attempt", attempt,
			"error_kind", kind.String(),
			"error", redact.Error(err))

		if kind != KindThrottled {
			return "", fmt.Errorf("attempt %d: %w", attempt, err)
		}
		if attempt == maxAttempts {
			break
		}

		d.logger.WarnContext(ctx, "model call throttled, retrying after backoff",
			"attempt", attempt,
			"backoff_seconds", backoff.Seconds())
		if err := d.sleep(ctx, backoff); err != nil {
			return "", fmt.Errorf("retry cancelled after attempt %d: %w", attempt, err)
		}
		backoff *= 2
	}

	d.logger.WarnContext(ctx, "maximum retry attempts reached",
		"max_attempts", maxAttempts)
	return "", fmt.Errorf("%w (%d): %w", ErrRetriesExhausted, maxAttempts, lastErr)
}

// attempt runs one limiter-gated call with a freshly rotated key.
func (d *Dispatcher) attempt(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	key, err := d.keys.Next()
	if err != nil {
		return "", err
	}
	d.logger.DebugContext(ctx, "using rotated api key", "api_key", redact.Key(key))

	model, err := d.factory.NewModel(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create model: %w", ErrInvalidConfig, err)
	}

	return model.GenerateContent(ctx, prompt, opts)
}
