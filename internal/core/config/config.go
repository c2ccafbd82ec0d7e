package config

import (
	"fmt"
	"time"

	"github.com/notionpush/notionpush/internal/infra/notion"
	"github.com/notionpush/notionpush/internal/infra/ratelimit"
	redisclient "github.com/notionpush/notionpush/internal/infra/redis"
	"github.com/notionpush/notionpush/internal/infra/retry"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Notion    notion.Config      `yaml:"notion"`
	Redis     redisclient.Config `yaml:"redis"`
	RateLimit RateLimitConfig    `yaml:"rate_limit"`
	Retry     RetryConfig        `yaml:"retry"`
	Logging   LoggingConfig      `yaml:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RateLimitConfig holds the default budget and per-class overrides. Durations
// are strings ("1s", "500ms") parsed at load time.
type RateLimitConfig struct {
	Default LimitConfig            `yaml:"default"`
	Classes map[string]LimitConfig `yaml:"classes"`
}

// LimitConfig is one budget: points consumable per window.
type LimitConfig struct {
	Points int64  `yaml:"points"`
	Window string `yaml:"window"`
}

// Limit converts to the limiter's typed budget.
func (c LimitConfig) Limit() (ratelimit.Limit, error) {
	w, err := time.ParseDuration(c.Window)
	if err != nil {
		return ratelimit.Limit{}, fmt.Errorf("invalid window %q: %w", c.Window, err)
	}
	if c.Points <= 0 {
		return ratelimit.Limit{}, fmt.Errorf("points must be positive, got %d", c.Points)
	}
	return ratelimit.Limit{Points: c.Points, Window: w}, nil
}

// RetryConfig holds backoff settings. Durations are strings parsed at load
// time.
type RetryConfig struct {
	MaxRetries int    `yaml:"max_retries"`
	Base       string `yaml:"base"`
	Cap        string `yaml:"cap"`
	JitterPct  int    `yaml:"jitter_pct"`
}

// Policy converts to the retry package's typed policy.
func (c RetryConfig) Policy() (retry.Policy, error) {
	base, err := time.ParseDuration(c.Base)
	if err != nil {
		return retry.Policy{}, fmt.Errorf("invalid base %q: %w", c.Base, err)
	}
	cap, err := time.ParseDuration(c.Cap)
	if err != nil {
		return retry.Policy{}, fmt.Errorf("invalid cap %q: %w", c.Cap, err)
	}
	if c.MaxRetries < 0 || c.JitterPct < 0 {
		return retry.Policy{}, fmt.Errorf("max_retries and jitter_pct must be non-negative")
	}
	return retry.Policy{
		MaxRetries: uint64(c.MaxRetries),
		Base:       base,
		Cap:        cap,
		JitterPct:  uint64(c.JitterPct),
	}, nil
}
