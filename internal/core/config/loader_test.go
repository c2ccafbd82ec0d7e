package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("TEST_NOTION_TOKEN", "secret-123")

	cfg, err := Load(writeConfig(t, `
notion:
  token: ${TEST_NOTION_TOKEN}
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Notion.Token != "secret-123" {
		t.Errorf("token = %q, want secret-123", cfg.Notion.Token)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
notion:
  token: x
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RateLimit.Default.Points != 3 || cfg.RateLimit.Default.Window != "1s" {
		t.Errorf("rate limit default = %+v, want 3 points / 1s", cfg.RateLimit.Default)
	}
	if cfg.Retry.MaxRetries != 3 || cfg.Retry.Base != "1s" || cfg.Retry.Cap != "30s" {
		t.Errorf("retry = %+v, want 3 retries / 1s base / 30s cap", cfg.Retry)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_ClassWindowInheritsDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
rate_limit:
  default:
    points: 5
    window: 2s
  classes:
    search:
      points: 1
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	search := cfg.RateLimit.Classes["search"]
	if search.Window != "2s" {
		t.Errorf("search window = %q, want inherited 2s", search.Window)
	}
}

func TestLimitConfig_Limit(t *testing.T) {
	limit, err := LimitConfig{Points: 3, Window: "500ms"}.Limit()
	if err != nil {
		t.Fatalf("limit: %v", err)
	}
	if limit.Points != 3 || limit.Window != 500*time.Millisecond {
		t.Errorf("limit = %+v", limit)
	}

	if _, err := (LimitConfig{Points: 0, Window: "1s"}).Limit(); err == nil {
		t.Error("zero points should fail")
	}
	if _, err := (LimitConfig{Points: 1, Window: "fast"}).Limit(); err == nil {
		t.Error("invalid window should fail")
	}
}

func TestRetryConfig_Policy(t *testing.T) {
	policy, err := RetryConfig{MaxRetries: 2, Base: "1s", Cap: "10s", JitterPct: 5}.Policy()
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	if policy.MaxRetries != 2 || policy.Base != time.Second || policy.Cap != 10*time.Second || policy.JitterPct != 5 {
		t.Errorf("policy = %+v", policy)
	}

	if _, err := (RetryConfig{MaxRetries: 1, Base: "soon", Cap: "10s"}).Policy(); err == nil {
		t.Error("invalid base should fail")
	}
}
