package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in the rate limit and retry settings the file omits.
// The default budget tracks the service's published average of three
// requests per second per integration.
func applyDefaults(cfg *AppConfig) {
	if cfg.RateLimit.Default.Points == 0 {
		cfg.RateLimit.Default.Points = 3
	}
	if cfg.RateLimit.Default.Window == "" {
		cfg.RateLimit.Default.Window = "1s"
	}
	for class, limit := range cfg.RateLimit.Classes {
		if limit.Window == "" {
			limit.Window = cfg.RateLimit.Default.Window
			cfg.RateLimit.Classes[class] = limit
		}
	}

	if cfg.Retry.MaxRetries == 0 {
		cfg.Retry.MaxRetries = 3
	}
	if cfg.Retry.Base == "" {
		cfg.Retry.Base = "1s"
	}
	if cfg.Retry.Cap == "" {
		cfg.Retry.Cap = "30s"
	}
	if cfg.Retry.JitterPct == 0 {
		cfg.Retry.JitterPct = 10
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
