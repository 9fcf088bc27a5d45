// Package nominatim implements the reverse geocoding port against the
// OpenStreetMap Nominatim API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// reverseResponse mirrors the Nominatim reverse geocoding JSON response.
// Only the display name is used.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Client resolves coordinates to addresses via the Nominatim reverse
// endpoint. Lookups are best effort: any failure is reported as ok=false and
// logged, never returned as an error, so a flaky geocoding service cannot
// block deliveries.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       *slog.Logger
}

// NewClient creates a geocoding client for the given Nominatim base URL
// (e.g. "https://nominatim.openstreetmap.org"). The user agent identifies
// this service per the Nominatim usage policy. A nil httpClient gets a
// client with a 10-second timeout.
func NewClient(baseURL, userAgent string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    httpClient,
		log:       log,
	}
}

// Reverse resolves the point to a display address.
// Returns ok=false on any failure: network error, non-200 status, malformed
// body, or an empty display name.
func (c *Client) Reverse(ctx context.Context, point kernel.GeoPoint) (string, bool) {
	address, ok := c.reverse(ctx, point)
	if !ok {
		metrics.GeocodeFailuresTotal.Inc()
	}

	return address, ok
}

func (c *Client) reverse(ctx context.Context, point kernel.GeoPoint) (string, bool) {
	reverseURL := fmt.Sprintf(
		"%s/reverse?format=json&lat=%s&lon=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%.7f", point.Latitude())),
		url.QueryEscape(fmt.Sprintf("%.7f", point.Longitude())),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reverseURL, nil)
	if err != nil {
		c.log.Warn("build reverse geocode request", "error", err)
		return "", false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("reverse geocode request", "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("reverse geocode returned non-200", "status", resp.Status)
		return "", false
	}

	var result reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warn("decode reverse geocode response", "error", err)
		return "", false
	}

	if result.DisplayName == "" {
		return "", false
	}

	return result.DisplayName, true
}
