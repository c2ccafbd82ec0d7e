package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var searchDatabases bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the workspace for pages or databases",
	Args:  cobra.ExactArgs(1),
	Run:   runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchDatabases, "databases", false, "search databases instead of pages")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	cfg := setup()

	client, err := buildClient(cfg)
	if err != nil {
		slog.Error("Failed to build client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if searchDatabases {
		dbs, err := client.SearchDatabases(ctx, args[0])
		if err != nil {
			slog.Error("Search failed", "query", args[0], "error", err)
			os.Exit(1)
		}
		for _, db := range dbs {
			fmt.Printf("%s\t%s\n", db.ID, db.URL)
		}
		return
	}

	pages, err := client.SearchPages(ctx, args[0])
	if err != nil {
		slog.Error("Search failed", "query", args[0], "error", err)
		os.Exit(1)
	}
	for _, p := range pages {
		fmt.Printf("%s\t%s\n", p.ID, p.URL)
	}
}
