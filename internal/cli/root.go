package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/notionpush/notionpush/internal/core/config"
	"github.com/notionpush/notionpush/internal/infra/api"
	"github.com/notionpush/notionpush/internal/infra/notion"
	"github.com/notionpush/notionpush/internal/infra/ratelimit"
	redisclient "github.com/notionpush/notionpush/internal/infra/redis"
)

var (
	cfgPath string
	isDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "notionpush",
	Short: "Push structured documents into a Notion workspace",
	Long: `notionpush builds pages, block trees and database records and pushes them
through the Notion API, coordinating request budgets across instances via
Redis and retrying transient failures with capped exponential backoff.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
}

// setup loads .env and config, and installs the logger. Called at the top of
// every subcommand.
func setup() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		initLogger("info")
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if isDebug {
		level = "debug"
	}
	initLogger(level)

	return cfg
}

func initLogger(level string) {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})))
}

// buildClient wires the resilient client: Redis-backed limiter store when
// Redis is configured, in-process store otherwise.
func buildClient(cfg *config.AppConfig) (*api.Client, error) {
	var store ratelimit.Store
	if cfg.Redis.URL != "" {
		rdb, err := redisclient.NewClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		store = ratelimit.NewRedisStore(rdb)
	} else {
		slog.Warn("no redis configured, rate limits are per-process only")
		store = ratelimit.NewMemoryStore()
	}

	defLimit, err := cfg.RateLimit.Default.Limit()
	if err != nil {
		return nil, fmt.Errorf("rate_limit.default: %w", err)
	}
	classes := make(map[string]ratelimit.Limit, len(cfg.RateLimit.Classes))
	for class, lc := range cfg.RateLimit.Classes {
		limit, err := lc.Limit()
		if err != nil {
			return nil, fmt.Errorf("rate_limit.classes.%s: %w", class, err)
		}
		classes[class] = limit
	}
	limiter := ratelimit.NewLimiter(store, defLimit, classes)

	policy, err := cfg.Retry.Policy()
	if err != nil {
		return nil, fmt.Errorf("retry: %w", err)
	}

	transport, err := notion.NewClient(cfg.Notion)
	if err != nil {
		return nil, err
	}

	return api.NewClient(transport, limiter, policy), nil
}
