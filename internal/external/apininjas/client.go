// Package apininjas wraps the API Ninjas SWIFT code directory.
package apininjas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lcintel/internal/config"
	"lcintel/internal/domain"
	"lcintel/internal/port"
)

const apiURL = "https://api.api-ninjas.com/v1/swiftcode"

// Client implements port.SwiftDirectory using API Ninjas.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient creates an API Ninjas client from verification config.
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
		apiKey:   cfg.APINinjasKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type swiftEntry struct {
	Swift    string `json:"swift"`
	BankName string `json:"bank_name"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// LookupSwift resolves a SWIFT/BIC code to a bank record. Unknown codes
// return domain.ErrNotFound.
func (c *Client) LookupSwift(ctx context.Context, code string) (*port.SwiftRecord, error) {
	reqURL := fmt.Sprintf("%s?swift=%s", c.endpoint, url.QueryEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling api-ninjas: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api-ninjas error (status %d): %s", resp.StatusCode, string(body))
	}

	var entries []swiftEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNotFound
	}

	e := entries[0]
	return &port.SwiftRecord{
		Swift:    e.Swift,
		BankName: e.BankName,
		City:     e.City,
		Country:  e.Country,
	}, nil
}
