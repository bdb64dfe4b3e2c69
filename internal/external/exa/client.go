// Package exa wraps the Exa neural web search API.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lcintel/internal/config"
	"lcintel/internal/port"
)

const apiURL = "https://api.exa.ai/search"

// Client implements port.Searcher using Exa.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient creates an Exa client from verification config.
func NewClient(cfg *config.VerifyConfig) *Client {
	return newClient(cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.VerifyConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.VerifyConfig, endpoint string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:   cfg.ExaKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type exaResponse struct {
	Results []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Text  string `json:"text"`
	} `json:"results"`
}

// Search runs a neural web search and returns the top hits.
func (c *Client) Search(ctx context.Context, query string, numResults int) ([]port.SearchHit, error) {
	if numResults <= 0 {
		numResults = 5
	}
	reqBody := map[string]interface{}{
		"query":      query,
		"numResults": numResults,
		"contents": map[string]interface{}{
			"text": true,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling exa: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exa error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed exaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	hits := make([]port.SearchHit, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		hits = append(hits, port.SearchHit{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Text,
		})
	}
	return hits, nil
}
