package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wonny/premia/internal/options"
	"github.com/wonny/premia/pkg/config"
	"github.com/wonny/premia/pkg/httputil"
	"github.com/wonny/premia/pkg/logger"
)

// Client handles communication with the Polygon.io REST API.
// All Polygon calls go through this client so retry and pacing
// policy live in one place.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	cfg        config.PolygonConfig
}

// NewClient creates a new Polygon.io client. The HTTP client is expected to
// carry a rate limiter so back-to-back price and chain calls never hit the
// API faster than the configured spacing.
func NewClient(cfg config.PolygonConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		cfg:        cfg,
	}
}

// getJSON fetches a Polygon endpoint and decodes the response body into out.
// The API key is appended as a query parameter and the call is bounded by the
// given timeout on top of whatever deadline ctx already carries.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, timeout time.Duration, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.cfg.APIKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, params.Encode())

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// compile-time interface check
var _ options.QuoteProvider = (*Client)(nil)
