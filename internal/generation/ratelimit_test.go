package generation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(cfg RateLimitConfig, clock *fakeClock) *RateLimiter {
	return NewRateLimiter(cfg,
		WithClock(clock.Now),
		WithSleeper(clock.Sleep),
		WithLimiterLogger(discardLogger()))
}

func TestDefaultRateLimitConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	assert.Equal(t, 8, cfg.RequestsPerMinute)
	assert.Equal(t, 7*time.Second, cfg.MinInterval)
}

func TestRateLimiter_FirstCallDoesNotWait(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(DefaultRateLimitConfig(), clock)
	start := clock.Now()

	require.NoError(t, limiter.Wait(context.Background()))

	assert.Empty(t, clock.Sleeps())
	assert.Equal(t, []time.Time{start}, limiter.Recorded())
}

func TestRateLimiter_EnforcesMinInterval(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(RateLimitConfig{RequestsPerMinute: 100, MinInterval: 7 * time.Second}, clock)
	start := clock.Now()
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx))
	clock.Advance(2 * time.Second)
	require.NoError(t, limiter.Wait(ctx))
	require.NoError(t, limiter.Wait(ctx))

	assert.Equal(t, []time.Duration{5 * time.Second, 7 * time.Second}, clock.Sleeps())
	assert.Equal(t, []time.Time{
		start,
		start.Add(7 * time.Second),
		start.Add(14 * time.Second),
	}, limiter.Recorded())
}

func TestRateLimiter_NoWaitWhenSpacedEnough(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(DefaultRateLimitConfig(), clock)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx))
	clock.Advance(10 * time.Second)
	require.NoError(t, limiter.Wait(ctx))

	assert.Empty(t, clock.Sleeps())
}

func TestRateLimiter_BlocksWhenWindowFull(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(RateLimitConfig{RequestsPerMinute: 3}, clock)
	start := clock.Now()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.Empty(t, clock.Sleeps(), "spacing disabled and window not yet full")

	require.NoError(t, limiter.Wait(ctx))

	// The oldest call must leave the 60s window, plus a one second margin.
	assert.Equal(t, []time.Duration{61 * time.Second}, clock.Sleeps())
	assert.Equal(t, []time.Time{start.Add(61 * time.Second)}, limiter.Recorded())
}

func TestRateLimiter_PrunesExpiredTimestamps(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(RateLimitConfig{RequestsPerMinute: 2}, clock)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx))
	require.NoError(t, limiter.Wait(ctx))
	clock.Advance(time.Minute)
	require.NoError(t, limiter.Wait(ctx))

	assert.Empty(t, clock.Sleeps())
	assert.Len(t, limiter.Recorded(), 1)
}

func TestRateLimiter_SpacingAndWindowInvariants(t *testing.T) {
	clock := newFakeClock()
	cfg := DefaultRateLimitConfig()
	limiter := newTestLimiter(cfg, clock)
	ctx := context.Background()

	// Bursty arrivals: several calls at once, then idle gaps.
	arrivalGaps := []time.Duration{0, 0, 0, 1, 0, 3, 0, 0, 0, 0, 2, 0, 0, 30, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	var started []time.Time
	for _, gap := range arrivalGaps {
		clock.Advance(gap * time.Second)
		require.NoError(t, limiter.Wait(ctx))
		started = append(started, clock.Now())
	}

	for i := 1; i < len(started); i++ {
		assert.GreaterOrEqual(t, started[i].Sub(started[i-1]), cfg.MinInterval,
			"calls %d and %d are too close", i-1, i)
	}
	for i := range started {
		inWindow := 0
		for j := i; j < len(started) && started[j].Sub(started[i]) < time.Minute; j++ {
			inWindow++
		}
		assert.LessOrEqual(t, inWindow, cfg.RequestsPerMinute,
			"window starting at call %d holds too many calls", i)
	}
}

func TestRateLimiter_ConcurrentCallersSerialize(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(RateLimitConfig{RequestsPerMinute: 100, MinInterval: 7 * time.Second}, clock)
	start := clock.Now()

	const callers = 8
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, limiter.Wait(context.Background()))
		}()
	}
	wg.Wait()

	recorded := limiter.Recorded()
	require.Len(t, recorded, callers)
	for i, ts := range recorded {
		assert.Equal(t, start.Add(time.Duration(i)*7*time.Second), ts)
	}
}

func TestRateLimiter_CancelledWaitRecordsNothing(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(DefaultRateLimitConfig(), clock)

	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := limiter.Wait(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, limiter.Recorded(), 1)
}

func TestNewRateLimiter_InvalidConfigFallsBack(t *testing.T) {
	clock := newFakeClock()
	limiter := newTestLimiter(RateLimitConfig{RequestsPerMinute: -1, MinInterval: -time.Second}, clock)
	ctx := context.Background()

	for i := 0; i < DefaultRequestsPerMinute; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.Empty(t, clock.Sleeps())

	require.NoError(t, limiter.Wait(ctx))
	assert.Len(t, clock.Sleeps(), 1, "ninth call waits for the window")
}

func TestSleep(t *testing.T) {
	t.Run("zero_duration_returns_immediately", func(t *testing.T) {
		assert.NoError(t, Sleep(context.Background(), 0))
	})

	t.Run("cancelled_context_interrupts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	})

	t.Run("short_sleep_completes", func(t *testing.T) {
		assert.NoError(t, Sleep(context.Background(), time.Millisecond))
	})
}
