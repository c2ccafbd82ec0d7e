// Package api is the resilient surface over the raw transport. Every
// operation acquires distributed rate-limiter budget for a key scoped to the
// operation and target resource, executes the transport call under a bounded
// retry policy, and narrows the response to the object kind the caller asked
// for.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/notionpush/notionpush/internal/infra/notion"
	"github.com/notionpush/notionpush/internal/infra/ratelimit"
	"github.com/notionpush/notionpush/internal/infra/retry"
	"github.com/notionpush/notionpush/internal/metrics"
)

// Client composes the rate limiter, retry policy and transport into the
// operation surface callers use.
type Client struct {
	transport *notion.Client
	limiter   *ratelimit.Limiter
	policy    retry.Policy
	log       *slog.Logger
}

// NewClient creates a resilient client.
func NewClient(transport *notion.Client, limiter *ratelimit.Limiter, policy retry.Policy) *Client {
	return &Client{
		transport: transport,
		limiter:   limiter,
		policy:    policy,
		log:       slog.Default(),
	}
}

// SearchPages searches the workspace and returns the page results. Non-page
// entries in the result set are dropped, not errors.
func (c *Client) SearchPages(ctx context.Context, query string) ([]*notion.Page, error) {
	req := &notion.SearchRequest{
		Query:  query,
		Filter: &notion.SearchFilter{Property: "object", Value: notion.KindPage},
	}
	raw, err := c.call(ctx, "search", searchKey(), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.Search(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	list, err := notion.DecodeList(raw)
	if err != nil {
		return nil, err
	}
	return notion.FilterPages(list), nil
}

// SearchDatabases searches the workspace and returns the database results.
func (c *Client) SearchDatabases(ctx context.Context, query string) ([]*notion.Database, error) {
	req := &notion.SearchRequest{
		Query:  query,
		Filter: &notion.SearchFilter{Property: "object", Value: notion.KindDatabase},
	}
	raw, err := c.call(ctx, "search", searchKey(), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.Search(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	list, err := notion.DecodeList(raw)
	if err != nil {
		return nil, err
	}
	return notion.FilterDatabases(list), nil
}

// GetPage fetches a page by id.
func (c *Client) GetPage(ctx context.Context, pageID string) (*notion.Page, error) {
	raw, err := c.call(ctx, "pages.get", pageKey(pageID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.GetPage(ctx, pageID)
	})
	if err != nil {
		return nil, err
	}
	return notion.DecodePage(raw)
}

// CreatePage creates a page from an already-shaped payload.
func (c *Client) CreatePage(ctx context.Context, payload any) (*notion.Page, error) {
	raw, err := c.call(ctx, "pages.create", createPageKey(), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.CreatePage(ctx, payload)
	})
	if err != nil {
		return nil, err
	}
	return notion.DecodePage(raw)
}

// UpdatePage patches page properties or archival state.
func (c *Client) UpdatePage(ctx context.Context, pageID string, payload any) (*notion.Page, error) {
	raw, err := c.call(ctx, "pages.update", pageKey(pageID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.UpdatePage(ctx, pageID, payload)
	})
	if err != nil {
		return nil, err
	}
	return notion.DecodePage(raw)
}

// GetDatabase fetches a database by id.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*notion.Database, error) {
	raw, err := c.call(ctx, "databases.get", databaseKey(databaseID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.GetDatabase(ctx, databaseID)
	})
	if err != nil {
		return nil, err
	}
	return notion.DecodeDatabase(raw)
}

// QueryDatabase runs a query and returns one page of matching records plus
// the cursor for the next page, if any.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, payload any) ([]*notion.Page, string, error) {
	raw, err := c.call(ctx, "databases.query", databaseKey(databaseID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.QueryDatabase(ctx, databaseID, payload)
	})
	if err != nil {
		return nil, "", err
	}
	list, err := notion.DecodeList(raw)
	if err != nil {
		return nil, "", err
	}
	return notion.FilterPages(list), nextCursor(list), nil
}

// GetBlock fetches a block by id.
func (c *Client) GetBlock(ctx context.Context, blockID string) (*notion.Block, error) {
	raw, err := c.call(ctx, "blocks.get", blockKey(blockID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.GetBlock(ctx, blockID)
	})
	if err != nil {
		return nil, err
	}
	return notion.DecodeBlock(raw)
}

// UpdateBlock patches a block's content.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, payload any) (*notion.Block, error) {
	raw, err := c.call(ctx, "blocks.update", blockKey(blockID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.UpdateBlock(ctx, blockID, payload)
	})
	if err != nil {
		return nil, err
	}
	return notion.DecodeBlock(raw)
}

// ListBlockChildren fetches one page of a block's children plus the cursor
// for the next page, if any.
func (c *Client) ListBlockChildren(ctx context.Context, blockID, cursor string, pageSize int) ([]*notion.Block, string, error) {
	raw, err := c.call(ctx, "blocks.children.list", blockChildrenKey(blockID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.ListBlockChildren(ctx, blockID, cursor, pageSize)
	})
	if err != nil {
		return nil, "", err
	}
	list, err := notion.DecodeList(raw)
	if err != nil {
		return nil, "", err
	}
	return notion.FilterBlocks(list), nextCursor(list), nil
}

// AppendBlockChildren appends children to a block or page and returns the
// created blocks.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, payload any) ([]*notion.Block, error) {
	raw, err := c.call(ctx, "blocks.children.append", blockChildrenKey(blockID), func(ctx context.Context) (json.RawMessage, error) {
		return c.transport.AppendBlockChildren(ctx, blockID, payload)
	})
	if err != nil {
		return nil, err
	}
	list, err := notion.DecodeList(raw)
	if err != nil {
		return nil, err
	}
	return notion.FilterBlocks(list), nil
}

// call runs one logical operation: acquire limiter budget for key, then
// execute fn under the retry policy. Both waits respect ctx.
func (c *Client) call(
	ctx context.Context,
	op, key string,
	fn func(context.Context) (json.RawMessage, error),
) (json.RawMessage, error) {
	opID := uuid.NewString()
	start := time.Now()
	metrics.APICallsTotal.WithLabelValues(op).Inc()

	if err := c.limiter.Acquire(ctx, key); err != nil {
		c.log.Error("rate limiter acquire failed",
			"op", op, "op_id", opID, "key", key, "error", err)
		metrics.APIErrorsTotal.WithLabelValues(op, errorCode(err)).Inc()
		return nil, err
	}

	attempts := 0
	raw, err := retry.Do(ctx, c.policy, func(ctx context.Context) (json.RawMessage, error) {
		attempts++
		if attempts > 1 {
			metrics.APIRetriesTotal.WithLabelValues(op).Inc()
			c.log.Debug("retrying operation",
				"op", op, "op_id", opID, "attempt", attempts)
		}
		return fn(ctx)
	})

	metrics.APICallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		c.log.Warn("operation failed",
			"op", op, "op_id", opID, "attempts", attempts, "error", err)
		metrics.APIErrorsTotal.WithLabelValues(op, errorCode(err)).Inc()
		return nil, err
	}
	return raw, nil
}

func nextCursor(l *notion.List) string {
	if !l.HasMore {
		return ""
	}
	return l.NextCursor
}

func errorCode(err error) string {
	var apiErr *notion.Error
	if errors.As(err, &apiErr) && apiErr.Code != "" {
		return string(apiErr.Code)
	}
	var kindErr *notion.KindError
	if errors.As(err, &kindErr) {
		return "unexpected_object_kind"
	}
	if errors.Is(err, ratelimit.ErrLimiterUnavailable) {
		return "rate_limiter_unavailable"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "cancelled"
	}
	return "unknown"
}
