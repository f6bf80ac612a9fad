package polygon

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wonny/premia/internal/options"
)

// GetOptionChain returns the option chain snapshot for an underlying ticker.
// A single page is fetched; the page size is the configured chain limit.
func (c *Client) GetOptionChain(ctx context.Context, ticker string) ([]options.RawContract, error) {
	path := fmt.Sprintf("/v3/snapshot/options/%s", url.PathEscape(ticker))
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.cfg.ChainLimit))

	var resp chainResponse
	if err := c.getJSON(ctx, path, params, c.cfg.ChainTimeout, &resp); err != nil {
		return nil, fmt.Errorf("option chain for %s: %w", ticker, err)
	}

	raw := make([]options.RawContract, 0, len(resp.Results))
	for _, entry := range resp.Results {
		raw = append(raw, options.RawContract{
			ContractType: entry.Details.ContractType,
			Strike:       entry.Details.StrikePrice,
			Expiration:   entry.Details.ExpirationDate,
			Delta:        entry.Greeks.Delta,
			Bid:          entry.LastQuote.Bid,
			Ask:          entry.LastQuote.Ask,
			Volume:       entry.Day.Volume,
			OpenInterest: entry.OpenInterest,
		})
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol":    ticker,
		"contracts": len(raw),
	}).Debug("Fetched option chain snapshot")

	return raw, nil
}
