package loadtest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/notionpush/notionpush/internal/infra/api"
	"github.com/notionpush/notionpush/internal/infra/notion"
	"github.com/notionpush/notionpush/internal/infra/ratelimit"
	"github.com/notionpush/notionpush/internal/infra/retry"
	"github.com/notionpush/notionpush/internal/publish"
)

func newTestRunner(t *testing.T, handler http.HandlerFunc, cfg Config) *Runner {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport, err := notion.NewClient(notion.Config{BaseURL: server.URL, Token: "test"})
	if err != nil {
		t.Fatalf("transport: %v", err)
	}
	limiter := ratelimit.NewLimiter(
		ratelimit.NewMemoryStore(),
		ratelimit.Limit{Points: 1000, Window: time.Second},
		nil,
	)
	client := api.NewClient(transport, limiter, retry.Policy{MaxRetries: 1, Base: time.Millisecond})
	return NewRunner(publish.NewPublisher(client), cfg)
}

func TestRunner_PublishesAllDocuments(t *testing.T) {
	var creates int32
	r := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&creates, 1)
		_, _ = fmt.Fprint(w, `{"object":"page","id":"p1","url":"https://notion.so/p1"}`)
	}, Config{Workers: 3, Documents: 12, ParentID: "root"})

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Succeeded != 12 || report.Failed != 0 {
		t.Errorf("report = %+v, want 12 succeeded", report)
	}
	if got := atomic.LoadInt32(&creates); got != 12 {
		t.Errorf("create requests = %d, want 12", got)
	}
}

func TestRunner_CountsFailures(t *testing.T) {
	var creates int32
	r := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		if atomic.AddInt32(&creates, 1)%2 == 0 {
			w.WriteHeader(http.StatusForbidden)
			_, _ = fmt.Fprint(w, `{"object":"error","status":403,"code":"restricted_resource","message":"no"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"object":"page","id":"p1","url":"https://notion.so/p1"}`)
	}, Config{Workers: 2, Documents: 10, ParentID: "root"})

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Succeeded+report.Failed != 10 {
		t.Errorf("report = %+v, want 10 total", report)
	}
	if report.Failed == 0 {
		t.Error("expected some failures")
	}
}

func TestRunner_CancelledRun(t *testing.T) {
	blocked := make(chan struct{})
	r := newTestRunner(t, func(w http.ResponseWriter, req *http.Request) {
		<-blocked
		_, _ = fmt.Fprint(w, `{"object":"page","id":"p1","url":"https://notion.so/p1"}`)
	}, Config{Workers: 1, Documents: 100, ParentID: "root"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := r.Run(ctx); err == nil {
			t.Error("cancelled run should report an error")
		}
	}()

	cancel()
	close(blocked)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}
}
