package commands

import (
	"github.com/wonny/premia/internal/external/polygon"
	"github.com/wonny/premia/internal/external/yahoo"
	"github.com/wonny/premia/internal/options"
	"github.com/wonny/premia/pkg/config"
	"github.com/wonny/premia/pkg/httputil"
	"github.com/wonny/premia/pkg/logger"
)

// buildSelector wires the full selection pipeline from config: paced Polygon
// client, optional Yahoo spot fallback, cache, filter and ranker.
func buildSelector(cfg *config.Config, log *logger.Logger) *options.Selector {
	// Polygon calls share one paced HTTP client
	polygonHTTP := httputil.New(cfg, log).WithRateLimiter(cfg.Polygon.CallSpacing)
	polygonClient := polygon.NewClient(cfg.Polygon, polygonHTTP, log)

	var provider options.QuoteProvider = polygonClient
	if cfg.Yahoo.Enabled {
		yahooClient := yahoo.NewClient(cfg.Yahoo, httputil.New(cfg, log), log)
		provider = options.NewFallbackProvider(polygonClient, yahooClient, log)
	}

	filter := options.NewFilter(options.FilterConfig{
		ExpiryHorizonDays: cfg.Screener.ExpiryHorizonDays,
		PremiumFloor:      cfg.Screener.PremiumFloor,
	}, log)

	return options.NewSelector(
		provider,
		options.NewCache(cfg.Screener.CacheTTL),
		filter,
		options.NewRanker(cfg.Screener.MaxResults),
		log,
	)
}
