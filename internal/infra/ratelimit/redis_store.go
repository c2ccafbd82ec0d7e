package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed fixed_window.lua
var fixedWindowScript string

// RedisStore keeps per-key fixed-window counters in Redis so that every
// process sharing the same Redis sees the same budget.
type RedisStore struct {
	rdb    *redis.Client
	script *redis.Script
	prefix string
}

// NewRedisStore creates a store on top of an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		script: redis.NewScript(fixedWindowScript),
		prefix: "ratelimit:",
	}
}

// Take atomically consumes one unit of budget for key, or reports the time
// until the current window expires.
func (s *RedisStore) Take(ctx context.Context, key string, limit Limit) (Decision, error) {
	res, err := s.script.Run(ctx, s.rdb,
		[]string{s.prefix + key},
		limit.Points,
		limit.Window.Milliseconds(),
	).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("take %q: %w", key, err)
	}

	values, ok := res.([]interface{})
	if !ok || len(values) != 3 {
		return Decision{}, fmt.Errorf("take %q: unexpected script reply %v", key, res)
	}

	allowed, _ := values[0].(int64)
	remaining, _ := values[1].(int64)
	retryAfterMS, _ := values[2].(int64)

	return Decision{
		Allowed:    allowed == 1,
		Remaining:  remaining,
		RetryAfter: time.Duration(retryAfterMS) * time.Millisecond,
	}, nil
}
