package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish <document.yaml>",
	Short: "Build and push a document described in a YAML file",
	Args:  cobra.ExactArgs(1),
	Run:   runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) {
	cfg := setup()

	doc, err := document.Load(args[0])
	if err != nil {
		slog.Error("Failed to load document", "file", args[0], "error", err)
		os.Exit(1)
	}

	client, err := buildClient(cfg)
	if err != nil {
		slog.Error("Failed to build client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	page, err := publish.NewPublisher(client).Publish(ctx, doc)
	if err != nil {
		slog.Error("Publish failed", "title", doc.Title, "error", err)
		os.Exit(1)
	}

	slog.Info("Published", "page_id", page.ID, "url", page.URL)
}
