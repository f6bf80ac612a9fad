package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/premia/internal/options"
)

// GetSpotPrice scrapes the regular market price from a ticker's quote page.
// A page without a recognizable price element is reported as options.ErrNoData.
func (c *Client) GetSpotPrice(ctx context.Context, ticker string) (float64, error) {
	path := fmt.Sprintf("/quote/%s", url.PathEscape(ticker))

	html, err := c.fetchHTML(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("quote page for %s: %w", ticker, err)
	}

	price, err := c.parseQuoteHTML(html, ticker)
	if err != nil {
		return 0, fmt.Errorf("quote page for %s: %w", ticker, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol": ticker,
		"price":  price,
	}).Debug("Scraped spot price")

	return price, nil
}

// parseQuoteHTML extracts the market price from a Yahoo Finance quote page.
// The price lives in a fin-streamer element keyed by data-field and data-symbol.
func (c *Client) parseQuoteHTML(html string, ticker string) (float64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, fmt.Errorf("failed to parse HTML: %w", err)
	}

	selector := fmt.Sprintf(`fin-streamer[data-field="regularMarketPrice"][data-symbol=%q]`, ticker)
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		// Fall back to any regularMarketPrice streamer on the page
		node = doc.Find(`fin-streamer[data-field="regularMarketPrice"]`).First()
	}
	if node.Length() == 0 {
		return 0, options.ErrNoData
	}

	value, ok := node.Attr("data-value")
	if !ok || strings.TrimSpace(value) == "" {
		value = strings.TrimSpace(node.Text())
	}
	value = strings.ReplaceAll(value, ",", "")

	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", value, err)
	}
	if price <= 0 {
		return 0, options.ErrNoData
	}

	return price, nil
}
