package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.notion.com"
	// DefaultVersion pins the API revision via the Notion-Version header.
	DefaultVersion = "2022-06-28"

	defaultTimeout = 30 * time.Second
)

// Config holds transport settings.
type Config struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
	Version string `yaml:"version"`
	Timeout string `yaml:"timeout"` // e.g. "30s"
}

// Client is the raw HTTP transport for the API. It performs single requests
// and decodes error bodies; it does not rate-limit or retry. Use the api
// package for the resilient surface.
type Client struct {
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
}

// NewClient creates a transport from config, filling in defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion: token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	timeout := defaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("notion: invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		version: version,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// SearchRequest is the body for Search.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// SearchFilter restricts search results to one object kind.
type SearchFilter struct {
	Property string     `json:"property"`
	Value    ObjectKind `json:"value"`
}

// Search runs a workspace search.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1/search", req)
}

// GetPage fetches a page by id.
func (c *Client) GetPage(ctx context.Context, pageID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(pageID), nil)
}

// CreatePage creates a page. The payload must be a finished, already-shaped
// page body (builders produce these); the transport only carries it.
func (c *Client) CreatePage(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1/pages", payload)
}

// UpdatePage patches page properties or archival state.
func (c *Client) UpdatePage(ctx context.Context, pageID string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/v1/pages/"+url.PathEscape(pageID), payload)
}

// GetDatabase fetches a database by id.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/v1/databases/"+url.PathEscape(databaseID), nil)
}

// QueryDatabase runs a database query.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1/databases/"+url.PathEscape(databaseID)+"/query", payload)
}

// GetBlock fetches a block by id.
func (c *Client) GetBlock(ctx context.Context, blockID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/v1/blocks/"+url.PathEscape(blockID), nil)
}

// UpdateBlock patches a block's content.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/v1/blocks/"+url.PathEscape(blockID), payload)
}

// ListBlockChildren fetches one page of a block's children.
func (c *Client) ListBlockChildren(ctx context.Context, blockID, cursor string, pageSize int) (json.RawMessage, error) {
	path := "/v1/blocks/" + url.PathEscape(blockID) + "/children"
	q := url.Values{}
	if cursor != "" {
		q.Set("start_cursor", cursor)
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// AppendBlockChildren appends children blocks to a block or page.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/v1/blocks/"+url.PathEscape(blockID)+"/children", payload)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, data)
	}

	return data, nil
}

// decodeError turns a failed response into an *Error. Bodies that do not
// match the service error shape get a code synthesized from the HTTP status
// so 429/5xx from intermediaries still classify as transient.
func decodeError(status int, body []byte) error {
	var apiErr Error
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		if apiErr.Status == 0 {
			apiErr.Status = status
		}
		return &apiErr
	}

	return &Error{
		Status:  status,
		Code:    codeForStatus(status),
		Message: http.StatusText(status),
	}
}
