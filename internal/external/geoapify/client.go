// Package geoapify wraps the Geoapify geocoding API.
package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lcintel/internal/config"
	"lcintel/internal/port"
)

const apiURL = "https://api.geoapify.com/v1/geocode/search"

// Client implements port.Geocoder using Geoapify.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient creates a Geoapify client from verification config.
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
		apiKey:   cfg.GeoapifyKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			Name        string  `json:"name"`
			Country     string  `json:"country"`
			CountryCode string  `json:"country_code"`
			Lat         float64 `json:"lat"`
			Lon         float64 `json:"lon"`
			Category    string  `json:"category"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves a place name to candidate locations.
func (c *Client) Geocode(ctx context.Context, name string) ([]port.Place, error) {
	q := url.Values{}
	q.Set("text", name)
	q.Set("apiKey", c.apiKey)
	q.Set("limit", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling geoapify: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoapify error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed geoapifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	places := make([]port.Place, 0, len(parsed.Features))
	for _, f := range parsed.Features {
		places = append(places, port.Place{
			Name:        f.Properties.Name,
			Country:     f.Properties.Country,
			CountryCode: f.Properties.CountryCode,
			Lat:         f.Properties.Lat,
			Lon:         f.Properties.Lon,
			Category:    f.Properties.Category,
		})
	}
	return places, nil
}
