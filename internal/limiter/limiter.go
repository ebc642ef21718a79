package limiter

import (
	"context"
	"fmt"
	"time"
)

// CounterStore is the counter backend; Redis in production, a map in tests.
type CounterStore interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Config is a fixed-window limit: at most Limit requests per Window.
type Config struct {
	Limit  int64
	Window time.Duration
}

type Limiter struct {
	store  CounterStore
	config Config
}

type CheckResult struct {
	Allowed   bool  `json:"allowed"`
	Remaining int64 `json:"remaining"`
	ResetAt   int64 `json:"reset_at"`
	Limit     int64 `json:"limit"`
}

func New(store CounterStore, config Config) *Limiter {
	return &Limiter{store: store, config: config}
}

func (l *Limiter) Check(ctx context.Context, clientID string) (*CheckResult, error) {
	key := fmt.Sprintf("rate:%s:generate", clientID)

	count, err := l.store.Incr(ctx, key, l.config.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to increment counter: %w", err)
	}

	ttl, err := l.store.TTL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get TTL: %w", err)
	}

	remaining := l.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &CheckResult{
		Allowed:   count <= l.config.Limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl).Unix(),
		Limit:     l.config.Limit,
	}, nil
}
