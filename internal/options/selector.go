package options

import (
	"context"
	"strings"
	"time"

	"github.com/wonny/premia/pkg/logger"
)

// QuoteProvider supplies the spot price and raw option chain for a ticker.
// Implementations own their retry policy and call pacing; the selector treats
// a provider error as terminal for the request.
type QuoteProvider interface {
	GetSpotPrice(ctx context.Context, ticker string) (float64, error)
	GetOptionChain(ctx context.Context, ticker string) ([]RawContract, error)
}

// Selector orchestrates one selection request: cache lookup, provider fetch,
// candidate screening, re-filtering, and ranking. Every request ends in either
// a SelectionResult or a *FailureReason, never a panic.
type Selector struct {
	provider QuoteProvider
	cache    *Cache
	filter   *Filter
	ranker   *Ranker
	logger   *logger.Logger
	now      func() time.Time
}

// NewSelector creates a new selector
func NewSelector(provider QuoteProvider, cache *Cache, filter *Filter, ranker *Ranker, log *logger.Logger) *Selector {
	return &Selector{
		provider: provider,
		cache:    cache,
		filter:   filter,
		ranker:   ranker,
		logger:   log,
		now:      time.Now,
	}
}

// Select returns the ranked contracts for a ticker under the given parameters.
// The ticker is uppercased before any lookup. On a fresh cache entry the
// provider is not consulted; on a miss or expiry the price and chain are
// fetched sequentially and the rebuilt candidate set replaces the cache entry.
func (s *Selector) Select(ctx context.Context, ticker string, p Params) (*SelectionResult, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if err := p.Validate(); err != nil {
		return nil, &FailureReason{
			Code:    FailureNoMatchingContracts,
			Message: err.Error(),
			cause:   err,
		}
	}

	if set, ok := s.cache.Get(ticker); ok {
		s.logger.WithField("symbol", ticker).Debug("Using cached candidate set")
		return s.buildResult(set, p, true)
	}

	set, err := s.fetchCandidates(ctx, ticker)
	if err != nil {
		return nil, err
	}

	// Store before the match check so a too-strict first request still leaves
	// a reusable candidate set behind.
	s.cache.Put(ticker, set)

	return s.buildResult(set, p, false)
}

// fetchCandidates runs the provider path: spot price, option chain, screening
func (s *Selector) fetchCandidates(ctx context.Context, ticker string) (*CandidateSet, error) {
	s.logger.WithField("symbol", ticker).Info("Fetching fresh market data")

	spot, err := s.provider.GetSpotPrice(ctx, ticker)
	if err != nil {
		s.logger.WithError(err).WithField("symbol", ticker).Warn("Spot price fetch failed")
		return nil, priceFetchFailure(ticker, err)
	}

	chain, err := s.provider.GetOptionChain(ctx, ticker)
	if err != nil {
		s.logger.WithError(err).WithField("symbol", ticker).Warn("Option chain fetch failed")
		return nil, chainFetchFailure(ticker, err)
	}

	if len(chain) == 0 {
		return nil, noOptionsFailure(ticker)
	}

	retrievedAt := s.now()
	contracts, skipped := s.filter.BuildCandidates(chain, spot, retrievedAt)

	if skipped > 0 {
		s.logger.WithFields(map[string]interface{}{
			"symbol":  ticker,
			"skipped": skipped,
		}).Debug("Skipped malformed option records")
	}

	return &CandidateSet{
		Ticker:         ticker,
		SpotPrice:      spot,
		RetrievedAt:    retrievedAt,
		Contracts:      contracts,
		SkippedRecords: skipped,
	}, nil
}

// buildResult applies the request parameters to a candidate set and ranks it
func (s *Selector) buildResult(set *CandidateSet, p Params, cached bool) (*SelectionResult, error) {
	matched := s.filter.Apply(set.Contracts, p)
	ranked := s.ranker.Rank(matched)

	if len(ranked) == 0 {
		return nil, noMatchFailure(set.Ticker, p)
	}

	s.logger.WithFields(map[string]interface{}{
		"symbol":  set.Ticker,
		"matched": len(matched),
		"ranked":  len(ranked),
		"cached":  cached,
	}).Info("Selection completed")

	return &SelectionResult{
		Ticker:        set.Ticker,
		SpotPrice:     set.SpotPrice,
		Timestamp:     set.RetrievedAt,
		Cached:        cached,
		Contracts:     ranked,
		MaxDeltaCalls: p.MaxDeltaCalls,
		MaxDeltaPuts:  p.MaxDeltaPuts,
		FilterType:    p.FilterType,
	}, nil
}
