package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/notionpush/notionpush/internal/metrics"
)

// Limiter gates callers on a shared Store. Acquire blocks until one unit of
// budget is available for the requested key; it never rejects a caller except
// on context cancellation or store failure.
type Limiter struct {
	store   Store
	def     Limit
	classes map[string]Limit
	log     *slog.Logger
}

// NewLimiter creates a limiter with a default budget and optional per-class
// overrides. A key's class is its prefix up to the first ':' ("page:abc" is
// class "page"); keys without a ':' are their own class.
func NewLimiter(store Store, def Limit, classes map[string]Limit) *Limiter {
	return &Limiter{
		store:   store,
		def:     def,
		classes: classes,
		log:     slog.Default(),
	}
}

// LimitFor returns the budget applied to key.
func (l *Limiter) LimitFor(key string) Limit {
	if limit, ok := l.classes[keyClass(key)]; ok {
		return limit
	}
	return l.def
}

// Acquire consumes one unit of budget for key, suspending until the shared
// store admits the caller. When the budget is exhausted it sleeps for the
// store-reported time-to-reset and re-checks. If the store itself fails the
// error wraps ErrLimiterUnavailable: with the shared counters unreadable we
// cannot know the real budget, and exceeding the upstream quota costs more
// than waiting, so we refuse instead of letting traffic through.
func (l *Limiter) Acquire(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("ratelimit: empty limiter key")
	}

	limit := l.LimitFor(key)
	start := time.Now()

	for {
		decision, err := l.store.Take(ctx, key, limit)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLimiterUnavailable, err)
		}
		if decision.Allowed {
			if waited := time.Since(start); waited > 0 {
				metrics.RateLimitWaitSeconds.WithLabelValues(keyClass(key)).
					Observe(waited.Seconds())
			}
			return nil
		}

		wait := decision.RetryAfter
		if wait <= 0 {
			wait = limit.Window
		}
		l.log.Debug("rate limit budget exhausted, waiting",
			"key", key, "retry_after", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func keyClass(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
