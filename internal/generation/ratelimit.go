package generation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRequestsPerMinute is deliberately below the provider quota so
	// that throttling on the wire stays the exception.
	DefaultRequestsPerMinute = 8

	// DefaultMinInterval is the minimum spacing between two model calls.
	DefaultMinInterval = 7 * time.Second

	rateWindow       = time.Minute
	rateWindowMargin = time.Second
)

// RateLimitConfig configures a RateLimiter.
type RateLimitConfig struct {
	// RequestsPerMinute caps calls started in any trailing 60 second window.
	RequestsPerMinute int
	// MinInterval is the minimum time between two consecutive calls.
	MinInterval time.Duration
}

// DefaultRateLimitConfig returns the conservative defaults.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: DefaultRequestsPerMinute,
		MinInterval:       DefaultMinInterval,
	}
}

// Clock returns the current time.
type Clock func() time.Time

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the SleepFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Limiter gates model calls. Wait blocks until a call may start.
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter is a blocking sliding-window limiter shared by every model call
// in the process. It never rejects; callers wait until a call is safe.
//
// The lock is held for the whole of Wait, sleeps included, so the decision
// and the recorded timestamp cannot be split by a concurrent caller.
type RateLimiter struct {
	mu          sync.Mutex
	rpm         int
	minInterval time.Duration
	window      []time.Time

	now    Clock
	sleep  SleepFunc
	logger *slog.Logger

	// throttledLog limits how often a full window is reported at warn level.
	throttledLog rate.Sometimes
}

// LimiterOption customizes a RateLimiter.
type LimiterOption func(*RateLimiter)

// WithClock replaces time.Now.
func WithClock(c Clock) LimiterOption {
	return func(l *RateLimiter) { l.now = c }
}

// WithSleeper replaces the timer-based sleep.
func WithSleeper(s SleepFunc) LimiterOption {
	return func(l *RateLimiter) { l.sleep = s }
}

// WithLimiterLogger sets the logger used for wait reports.
func WithLimiterLogger(logger *slog.Logger) LimiterOption {
	return func(l *RateLimiter) { l.logger = logger }
}

// NewRateLimiter creates a RateLimiter. Non-positive RequestsPerMinute falls
// back to DefaultRequestsPerMinute; a negative MinInterval disables spacing.
func NewRateLimiter(cfg RateLimitConfig, opts ...LimiterOption) *RateLimiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if cfg.MinInterval < 0 {
		cfg.MinInterval = 0
	}

	l := &RateLimiter{
		rpm:          cfg.RequestsPerMinute,
		minInterval:  cfg.MinInterval,
		window:       make([]time.Time, 0, cfg.RequestsPerMinute),
		now:          time.Now,
		sleep:        Sleep,
		logger:       slog.Default(),
		throttledLog: rate.Sometimes{First: 1, Interval: time.Minute},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until the next call respects both the minimum spacing and the
// per-minute cap, then records the call. It returns early only if ctx ends
// during a sleep, in which case nothing is recorded.
func (l *RateLimiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if n := len(l.window); n > 0 && l.minInterval > 0 {
		if elapsed := now.Sub(l.window[n-1]); elapsed < l.minInterval {
			wait := l.minInterval - elapsed
			l.logger.DebugContext(ctx, "spacing model call",
				"wait_ms", wait.Milliseconds())
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
			now = l.now()
			l.prune(now)
		}
	}

	if len(l.window) >= l.rpm {
		wait := l.window[0].Add(rateWindow + rateWindowMargin).Sub(now)
		if wait > 0 {
			l.throttledLog.Do(func() {
				l.logger.WarnContext(ctx, "per-minute model call limit reached, waiting",
					"requests_per_minute", l.rpm,
					"wait_seconds", wait.Seconds())
			})
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
			now = l.now()
		}
		l.prune(now)
	}

	l.window = append(l.window, now)
	return nil
}

// prune drops timestamps that fell out of the trailing window.
func (l *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-rateWindow)
	i := 0
	for i < len(l.window) && !l.window[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.window = append(l.window[:0], l.window[i:]...)
	}
}

// Recorded returns a copy of the timestamps currently in the window.
func (l *RateLimiter) Recorded() []time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]time.Time(nil), l.window...)
}
