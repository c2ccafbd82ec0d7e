package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/notionpush/notionpush/internal/loadtest"
	"github.com/notionpush/notionpush/internal/publish"
)

var (
	loadtestParent    string
	loadtestWorkers   int
	loadtestDocuments int
	loadtestAddr      string
)

var loadtestCmd = &cobra.Command{
	Use:   "loadtest",
	Short: "Publish synthetic documents concurrently to exercise the rate limiter",
	Run:   runLoadtest,
}

func init() {
	loadtestCmd.Flags().StringVar(&loadtestParent, "parent", "", "destination parent page id (required)")
	loadtestCmd.Flags().IntVar(&loadtestWorkers, "workers", 4, "concurrent workers")
	loadtestCmd.Flags().IntVar(&loadtestDocuments, "documents", 20, "documents to publish")
	loadtestCmd.Flags().StringVar(&loadtestAddr, "metrics-addr", ":9090", "address for /health and /metrics")
	_ = loadtestCmd.MarkFlagRequired("parent")
	rootCmd.AddCommand(loadtestCmd)
}

func runLoadtest(cmd *cobra.Command, args []string) {
	cfg := setup()

	client, err := buildClient(cfg)
	if err != nil {
		slog.Error("Failed to build client", "error", err)
		os.Exit(1)
	}

	server := loadtest.NewServer(loadtestAddr)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := loadtest.NewRunner(publish.NewPublisher(client), loadtest.Config{
		Workers:   loadtestWorkers,
		Documents: loadtestDocuments,
		ParentID:  loadtestParent,
	})

	report, err := runner.Run(ctx)
	if err != nil {
		slog.Error("Load test aborted", "error", err)
	}
	if report.Failed > 0 {
		slog.Warn("Load test had failures", "failed", report.Failed)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Stop(shutdownCtx)

	if err != nil || report.Failed > 0 {
		os.Exit(1)
	}
}
