package polygon

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wonny/premia/internal/options"
)

// GetSpotPrice returns the previous close for a ticker.
// An empty result set (unknown ticker, no trades) is reported as
// options.ErrNoData so callers can tell it apart from an outage.
func (c *Client) GetSpotPrice(ctx context.Context, ticker string) (float64, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/prev", url.PathEscape(ticker))
	params := url.Values{}
	params.Set("adjusted", "true")

	var resp prevCloseResponse
	if err := c.getJSON(ctx, path, params, c.cfg.PriceTimeout, &resp); err != nil {
		return 0, fmt.Errorf("previous close for %s: %w", ticker, err)
	}

	if len(resp.Results) == 0 {
		return 0, fmt.Errorf("previous close for %s: %w", ticker, options.ErrNoData)
	}

	price := resp.Results[0].Close
	c.logger.WithFields(map[string]interface{}{
		"symbol": ticker,
		"price":  price,
	}).Debug("Fetched previous close")

	return price, nil
}
