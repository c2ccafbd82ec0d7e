// Package retry bounds transient API failures with capped, jittered
// exponential backoff. Retry state lives entirely inside a single Do call;
// nothing is shared between invocations.
package retry

import (
	"context"
	"time"

	sretry "github.com/sethvargo/go-retry"

	"github.com/notionpush/notionpush/internal/infra/notion"
)

// Policy describes the backoff curve for one operation invocation. The n-th
// retry waits Base*2^(n-1), capped at Cap, with up to JitterPct percent of
// random spread so concurrent callers do not retry in lockstep.
type Policy struct {
	MaxRetries uint64
	Base       time.Duration
	Cap        time.Duration
	JitterPct  uint64
}

// DefaultPolicy matches the service's published guidance: three retries from
// a one second base, capped at thirty seconds.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		Base:       time.Second,
		Cap:        30 * time.Second,
		JitterPct:  10,
	}
}

// Backoff builds a fresh backoff sequence for one invocation.
func (p Policy) Backoff() sretry.Backoff {
	b := sretry.NewExponential(p.Base)
	if p.Cap > 0 {
		b = sretry.WithCappedDuration(p.Cap, b)
	}
	if p.JitterPct > 0 {
		b = sretry.WithJitterPercent(p.JitterPct, b)
	}
	return sretry.WithMaxRetries(p.MaxRetries, b)
}

// Do runs fn, retrying transient failures per the policy. Terminal failures
// and exhausted budgets surface the original error unchanged; the caller sees
// the true underlying failure, never a synthetic gave-up wrapper. fn is
// attempted at most MaxRetries+1 times. Waits respect ctx cancellation.
func Do[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := sretry.Do(ctx, p.Backoff(), func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			if notion.Retryable(err) {
				return sretry.RetryableError(err)
			}
			return err
		}
		out = v
		return nil
	})
	return out, err
}
