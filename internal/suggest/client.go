package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sitesift/internal/domain"
)

const requestTimeout = 10 * time.Second

// Client talks to the suggest backend. The backend is a black box; the
// client owns the wire format and nothing else.
type Client struct {
	base  *url.URL
	httpc *http.Client
}

// NewClient creates a client for the given endpoint base URL
func NewClient(endpoint string) (*Client, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be an absolute URL", endpoint)
	}

	return &Client{
		base:  base,
		httpc: &http.Client{Timeout: requestTimeout},
	}, nil
}

// Origin returns the scheme://host of the endpoint, used to resolve
// origin-relative thumbnail paths.
func (c *Client) Origin() string {
	return c.base.Scheme + "://" + c.base.Host
}

// Suggest performs one typeahead call. types is the comma-joined list of
// enabled result-type tags; an empty list is passed through as-is and
// yields an empty result set server-side.
func (c *Client) Suggest(ctx context.Context, query, types string, limit int) (*domain.SuggestResponse, error) {
	u := c.base.JoinPath("api", "suggest")
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("types", types)
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var resp domain.SuggestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed suggest response: %w", err)
	}

	return &resp, nil
}

// Health probes the backend health endpoint
func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	body, err := c.get(ctx, c.base.JoinPath("health").String())
	if err != nil {
		return nil, err
	}

	var hs domain.HealthStatus
	if err := json.Unmarshal(body, &hs); err != nil {
		return nil, fmt.Errorf("malformed health response: %w", err)
	}

	return &hs, nil
}

// Fetch retrieves an arbitrary page body, used for in-place document
// preview. The URL may be origin-relative.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if !u.IsAbs() {
		u = c.base.ResolveReference(u)
	}
	return c.get(ctx, u.String())
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
