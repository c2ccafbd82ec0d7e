// Package ratelimit coordinates a shared request budget per limiter key
// across all process instances.
//
// This package contains:
//   - Store: interface for atomic consume-or-report-wait counter backends
//   - RedisStore: Redis-backed fixed-window counters shared between processes
//   - MemoryStore: in-process equivalent for tests and single-instance runs
//   - Limiter: blocking Acquire on top of a Store
package ratelimit

import (
	"context"
	"errors"
	"time"
)

// Limit is the budget consumable under one key within a window.
type Limit struct {
	Points int64
	Window time.Duration
}

// Decision is the outcome of a single atomic take.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Store is a counting backend with atomic take semantics. Take consumes one
// unit of budget for key if any remains; otherwise it reports how long until
// the window resets. Implementations must serialize concurrent takes on the
// same key.
type Store interface {
	Take(ctx context.Context, key string, limit Limit) (Decision, error)
}

// ErrLimiterUnavailable is returned when the backing store cannot be reached.
// The limiter fails closed: an unreachable store denies traffic instead of
// letting it through unmetered.
var ErrLimiterUnavailable = errors.New("ratelimit: limiter unavailable")
