package generation

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// fakeClock is a manually advanced clock whose sleeper moves time forward
// instead of blocking.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// noopLimiter lets every call through and counts them.
type noopLimiter struct {
	mu    sync.Mutex
	calls int
}

func (l *noopLimiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return ctx.Err()
}

func (l *noopLimiter) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// scriptedModel replays a fixed sequence of replies, one per call, and
// records the key each call was made with.
type scriptedModel struct {
	mu      sync.Mutex
	replies []scriptedReply
	keys    []string
	opts    []GenerateOptions
	prompts []string
}

type scriptedReply struct {
	text string
	err  error
}

func (m *scriptedModel) factory() ModelFactory {
	return ModelFactoryFunc(func(_ context.Context, apiKey string) (Model, error) {
		return ModelFunc(func(_ context.Context, prompt string, opts GenerateOptions) (string, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.keys = append(m.keys, apiKey)
			m.opts = append(m.opts, opts)
			m.prompts = append(m.prompts, prompt)
			if len(m.replies) == 0 {
				return "", io.ErrUnexpectedEOF
			}
			r := m.replies[0]
			m.replies = m.replies[1:]
			return r.text, r.err
		}), nil
	})
}

func (m *scriptedModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
