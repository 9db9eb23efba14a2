// Package ratelimit throttles public intake and checkout requests.
package ratelimit

import (
	"context"
	"time"

	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
)

// Limit allows Requests per Window. A non-positive Requests disables it.
type Limit struct {
	Requests int
	Window   time.Duration
}

func PerHour(n int) Limit {
	return Limit{Requests: n, Window: time.Hour}
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

// Limits are the per-route budgets built from configuration.
type Limits struct {
	Intake   Limit
	Checkout Limit
}

func LimitsFrom(cfg sharedConfig.RateLimitConfig) Limits {
	return Limits{
		Intake:   PerHour(cfg.IntakePerHour),
		Checkout: PerHour(cfg.CheckoutPerHr),
	}
}

// NoopRateLimiter allows everything. Used when redis is disabled.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(context.Context, string, Limit) (bool, error) { return true, nil }

func (NoopRateLimiter) Count(context.Context, string, time.Duration) (int64, error) { return 0, nil }

func (NoopRateLimiter) Reset(context.Context, string) error { return nil }
