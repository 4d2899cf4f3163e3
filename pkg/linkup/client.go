// Package linkup is a client for the Linkup agentic-search API.
package linkup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.linkup.so/v1"

	standardTimeout = 60 * time.Second
	deepTimeout     = 120 * time.Second
)

// Client calls the Linkup search API. One Client is shared by all
// sessions; the API key travels per call, not per client, because each
// session carries its own credential.
type Client struct {
	baseURL    string
	httpClient *http.Client
	closeOnce  sync.Once
}

// New creates a Client for the given base URL. An empty baseURL means
// the production endpoint.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Search executes one search call. Deep searches get a longer deadline
// than standard ones; both are fixed policy, not per-request knobs.
func (c *Client) Search(ctx context.Context, apiKey string, req *SearchRequest) (*SearchResponse, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	depth := req.Depth
	if depth == "" {
		depth = DepthStandard
	}
	outputType := req.OutputType
	if outputType == "" {
		outputType = OutputSourcedAnswer
	}

	body := payload{
		Query:         req.Query,
		Depth:         string(depth),
		OutputType:    outputType,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		IncludeImages: req.IncludeImages,
		MaxResults:    req.MaxResults,
	}
	if outputType == OutputStructured {
		if len(req.Schema) == 0 {
			return nil, fmt.Errorf("schema required for structured output")
		}
		body.StructuredOutputSchema = string(req.Schema)
	}
	if len(req.IncludeDomains) > 0 {
		body.IncludeDomains = capDomains(req.IncludeDomains)
	}
	if len(req.ExcludeDomains) > 0 {
		body.ExcludeDomains = capDomains(req.ExcludeDomains)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	timeout := standardTimeout
	if depth == DepthDeep {
		timeout = deepTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("linkup API error (status %d): %s", resp.StatusCode, excerpt(respBody))
	}

	result := &SearchResponse{Raw: respBody}
	// Structured responses are arbitrary JSON shaped by the schema, so
	// a failed unmarshal here just leaves Answer/Sources empty.
	_ = json.Unmarshal(respBody, result)
	return result, nil
}

// Close releases pooled connections. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

func capDomains(domains []string) []string {
	if len(domains) > maxDomainFilters {
		return domains[:maxDomainFilters]
	}
	return domains
}

func excerpt(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
