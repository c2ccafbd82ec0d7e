// Package loadtest drives concurrent publishes against a workspace to
// exercise the rate limiter and retry path under real contention.
package loadtest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/publish"
)

// Config holds load test parameters.
type Config struct {
	Workers   int
	Documents int
	ParentID  string // destination page id
}

// Report summarizes one run.
type Report struct {
	Documents int
	Succeeded int64
	Failed    int64
	Elapsed   time.Duration
}

// Runner fans documents out over a worker pool.
type Runner struct {
	publisher *publish.Publisher
	cfg       Config
	log       *slog.Logger
}

// NewRunner creates a runner.
func NewRunner(publisher *publish.Publisher, cfg Config) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Documents <= 0 {
		cfg.Documents = 20
	}
	return &Runner{
		publisher: publisher,
		cfg:       cfg,
		log:       slog.Default(),
	}
}

// Run publishes cfg.Documents small documents with cfg.Workers concurrent
// workers and reports the outcome. Individual failures are counted, not
// fatal; the run only aborts on context cancellation.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var succeeded, failed int64
	jobs := make(chan int)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < r.cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range jobs {
				doc := r.testDocument(i)
				if _, err := r.publisher.Publish(ctx, doc); err != nil {
					atomic.AddInt64(&failed, 1)
					r.log.Warn("load test publish failed",
						"worker", worker, "doc", i, "error", err)
					continue
				}
				atomic.AddInt64(&succeeded, 1)
			}
		}(w)
	}

	var runErr error
feed:
	for i := 0; i < r.cfg.Documents; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	report := Report{
		Documents: r.cfg.Documents,
		Succeeded: atomic.LoadInt64(&succeeded),
		Failed:    atomic.LoadInt64(&failed),
		Elapsed:   time.Since(start),
	}
	r.log.Info("load test finished",
		"documents", report.Documents,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"elapsed", report.Elapsed)
	return report, runErr
}

func (r *Runner) testDocument(i int) *document.Document {
	return &document.Document{
		Title:  fmt.Sprintf("loadtest %d — %s", i, time.Now().Format(time.RFC3339)),
		Parent: document.Parent{PageID: r.cfg.ParentID},
		Blocks: []document.Block{
			{Type: "paragraph", Text: fmt.Sprintf("Synthetic document %d.", i)},
			{Type: "bulleted", Text: "generated by notionpush loadtest"},
		},
	}
}
