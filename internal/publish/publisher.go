// Package publish turns source documents into API payloads and pushes them
// through the resilient client, chunking block trees that exceed the
// per-request children limit.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/infra/api"
	"github.com/notionpush/notionpush/internal/infra/notion"
	"github.com/notionpush/notionpush/internal/metrics"
	"github.com/notionpush/notionpush/internal/publish/builder"
	"github.com/notionpush/notionpush/internal/publish/validate"
)

// Publisher pushes documents through the resilient client.
type Publisher struct {
	client *api.Client
	log    *slog.Logger
}

// NewPublisher creates a publisher.
func NewPublisher(client *api.Client) *Publisher {
	return &Publisher{
		client: client,
		log:    slog.Default(),
	}
}

// Publish builds, validates and pushes one document. Block trees longer than
// the per-request limit are created in chunks: the first chunk rides on the
// page creation, the rest are appended to the new page.
func (p *Publisher) Publish(ctx context.Context, doc *document.Document) (*notion.Page, error) {
	params, err := builder.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("build document %q: %w", doc.Title, err)
	}
	if err := validate.Page(params); err != nil {
		return nil, fmt.Errorf("validate document %q: %w", doc.Title, err)
	}

	blocks := params.Children
	if len(blocks) > validate.MaxChildrenPerRequest {
		params.Children = blocks[:validate.MaxChildrenPerRequest]
	}

	page, err := p.client.CreatePage(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create page %q: %w", doc.Title, err)
	}

	for start := validate.MaxChildrenPerRequest; start < len(blocks); start += validate.MaxChildrenPerRequest {
		end := min(start+validate.MaxChildrenPerRequest, len(blocks))
		chunk := &builder.AppendChildrenParams{Children: blocks[start:end]}
		if _, err := p.client.AppendBlockChildren(ctx, page.ID, chunk); err != nil {
			return nil, fmt.Errorf("append blocks %d-%d to page %s: %w", start, end, page.ID, err)
		}
	}

	p.log.Info("document published",
		"title", doc.Title, "page_id", page.ID, "blocks", len(blocks), "url", page.URL)
	metrics.DocumentsPublished.Inc()
	return page, nil
}
