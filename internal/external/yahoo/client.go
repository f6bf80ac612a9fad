package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/wonny/premia/pkg/config"
	"github.com/wonny/premia/pkg/httputil"
	"github.com/wonny/premia/pkg/logger"
)

// Client scrapes quote pages from Yahoo Finance. It serves as the fallback
// spot price source when the primary market data provider has no price.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new Yahoo Finance client
func NewClient(cfg config.YahooConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    cfg.BaseURL,
	}
}

// fetchHTML fetches an HTML page from Yahoo Finance
func (c *Client) fetchHTML(ctx context.Context, path string) (string, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
