package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/publish"
	"github.com/notionpush/notionpush/internal/publish/template"
)

var (
	changelogParent  string
	changelogVersion string
	changelogAdded   []string
	changelogFixed   []string
	changelogNotes   string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Publish a changelog entry from the built-in template",
	Run:   runChangelog,
}

func init() {
	changelogCmd.Flags().StringVar(&changelogParent, "parent", "", "destination parent page id (required)")
	changelogCmd.Flags().StringVar(&changelogVersion, "version", "", "release version (required)")
	changelogCmd.Flags().StringArrayVar(&changelogAdded, "added", nil, "added item (repeatable)")
	changelogCmd.Flags().StringArrayVar(&changelogFixed, "fixed", nil, "fixed item (repeatable)")
	changelogCmd.Flags().StringVar(&changelogNotes, "notes", "", "release notes callout")
	_ = changelogCmd.MarkFlagRequired("parent")
	_ = changelogCmd.MarkFlagRequired("version")
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, args []string) {
	cfg := setup()

	doc := template.Changelog(
		document.Parent{PageID: changelogParent},
		template.ChangelogParams{
			Version: changelogVersion,
			Date:    time.Now(),
			Added:   changelogAdded,
			Fixed:   changelogFixed,
			Notes:   changelogNotes,
		},
	)

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
