package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/infra/api"
	"github.com/notionpush/notionpush/internal/infra/notion"
	"github.com/notionpush/notionpush/internal/infra/ratelimit"
	"github.com/notionpush/notionpush/internal/infra/retry"
	"github.com/notionpush/notionpush/internal/publish/validate"
)

type recordedRequest struct {
	method   string
	path     string
	children int
}

func newTestPublisher(t *testing.T, requests *[]recordedRequest) *Publisher {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Children []json.RawMessage `json:"children"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		*requests = append(*requests, recordedRequest{
			method:   r.Method,
			path:     r.URL.Path,
			children: len(body.Children),
		})

		if r.URL.Path == "/v1/pages" {
			_, _ = fmt.Fprint(w, `{"object":"page","id":"new-page","url":"https://notion.so/new-page"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"object":"list","results":[],"has_more":false}`)
	}))
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
	return NewPublisher(client)
}

func flatDocument(blocks int) *document.Document {
	doc := &document.Document{
		Title:  "Big doc",
		Parent: document.Parent{PageID: "root"},
	}
	for i := 0; i < blocks; i++ {
		doc.Blocks = append(doc.Blocks, document.Block{
			Type: "paragraph",
			Text: fmt.Sprintf("paragraph %d", i),
		})
	}
	return doc
}

func TestPublish_SmallDocumentSingleRequest(t *testing.T) {
	var requests []recordedRequest
	p := newTestPublisher(t, &requests)

	page, err := p.Publish(context.Background(), flatDocument(5))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if page.ID != "new-page" {
		t.Errorf("page id = %q", page.ID)
	}

	if len(requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(requests))
	}
	if requests[0].path != "/v1/pages" || requests[0].children != 5 {
		t.Errorf("request = %+v", requests[0])
	}
}

func TestPublish_ChunksLongBlockTrees(t *testing.T) {
	var requests []recordedRequest
	p := newTestPublisher(t, &requests)

	total := validate.MaxChildrenPerRequest*2 + 30
	if _, err := p.Publish(context.Background(), flatDocument(total)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(requests) != 3 {
		t.Fatalf("requests = %d, want 1 create + 2 appends", len(requests))
	}
	if requests[0].path != "/v1/pages" || requests[0].children != validate.MaxChildrenPerRequest {
		t.Errorf("create = %+v", requests[0])
	}
	for i, r := range requests[1:] {
		if !strings.HasSuffix(r.path, "/blocks/new-page/children") || r.method != http.MethodPatch {
			t.Errorf("append %d = %+v", i, r)
		}
	}
	if requests[1].children != validate.MaxChildrenPerRequest || requests[2].children != 30 {
		t.Errorf("append sizes = %d, %d; want %d, 30",
			requests[1].children, requests[2].children, validate.MaxChildrenPerRequest)
	}
}

func TestPublish_InvalidDocumentNeverHitsTransport(t *testing.T) {
	var requests []recordedRequest
	p := newTestPublisher(t, &requests)

	doc := &document.Document{
		Title:  "Bad",
		Parent: document.Parent{PageID: "root"},
		Blocks: []document.Block{{Type: "paragraph", Text: strings.Repeat("a", validate.MaxRichTextLength+1)}},
	}
	if _, err := p.Publish(context.Background(), doc); err == nil {
		t.Fatal("invalid document should fail")
	}
	if len(requests) != 0 {
		t.Errorf("transport requests = %d, want 0", len(requests))
	}
}
