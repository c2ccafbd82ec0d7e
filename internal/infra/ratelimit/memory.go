package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryWindow struct {
	start time.Time
	count int64
}

// MemoryStore is a process-local Store. It enforces the same fixed-window
// semantics as RedisStore but shares nothing across processes. Intended for
// tests and single-instance runs without Redis.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
	}
}

// Take consumes one unit of budget for key, or reports the time until the
// current window expires.
func (s *MemoryStore) Take(_ context.Context, key string, limit Limit) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= limit.Window {
		w = &memoryWindow{start: now}
		s.windows[key] = w
	}

	if w.count >= limit.Points {
		return Decision{
			Allowed:    false,
			RetryAfter: w.start.Add(limit.Window).Sub(now),
		}, nil
	}

	w.count++
	return Decision{
		Allowed:   true,
		Remaining: limit.Points - w.count,
	}, nil
}
