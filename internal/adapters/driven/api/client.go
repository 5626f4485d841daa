// Package api is the HTTP adapter for the remote transcript search
// service.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driven"
	"github.com/attable-dev/tatt-cli/internal/logger"
)

// DefaultBaseURL is the public search service endpoint.
const DefaultBaseURL = "https://search.attable.dev"

// Ensure Client implements the interface.
var _ driven.SearchAPI = (*Client)(nil)

// Client issues search requests over HTTP GET. It applies no
// client-side timeout and never retries; every call result is terminal.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a search client. An empty baseURL falls back to the
// public endpoint; a nil httpClient falls back to http.DefaultClient,
// whose transport defaults apply.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Search performs one search or continuation call.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	u, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("search URL: %w", err)
	}
	u.RawQuery = query.Values().Encode()

	logger.Debug("GET %s", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	// Success bodies are decoded structurally as-is, without any
	// schema validation on top.
	var body domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &body, nil
}
