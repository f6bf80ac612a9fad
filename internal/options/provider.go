package options

import (
	"context"

	"github.com/wonny/premia/pkg/logger"
)

// SpotSource supplies only a spot price. Used for secondary price sources
// that carry no option chain.
type SpotSource interface {
	GetSpotPrice(ctx context.Context, ticker string) (float64, error)
}

// FallbackProvider wraps a primary quote provider with a secondary spot
// source. The chain always comes from the primary; the spot price falls back
// to the secondary when the primary cannot produce one.
type FallbackProvider struct {
	primary  QuoteProvider
	fallback SpotSource
	logger   *logger.Logger
}

// NewFallbackProvider creates a provider with a secondary spot source
func NewFallbackProvider(primary QuoteProvider, fallback SpotSource, log *logger.Logger) *FallbackProvider {
	return &FallbackProvider{
		primary:  primary,
		fallback: fallback,
		logger:   log,
	}
}

// GetSpotPrice tries the primary source first. On any primary failure the
// fallback is consulted; if the fallback also fails, the primary error is
// returned so the caller sees the authoritative failure.
func (p *FallbackProvider) GetSpotPrice(ctx context.Context, ticker string) (float64, error) {
	price, primaryErr := p.primary.GetSpotPrice(ctx, ticker)
	if primaryErr == nil {
		return price, nil
	}

	p.logger.WithError(primaryErr).WithField("symbol", ticker).Warn("Primary spot source failed, trying fallback")

	price, fallbackErr := p.fallback.GetSpotPrice(ctx, ticker)
	if fallbackErr != nil {
		p.logger.WithError(fallbackErr).WithField("symbol", ticker).Warn("Fallback spot source failed")
		return 0, primaryErr
	}

	return price, nil
}

// GetOptionChain delegates to the primary provider
func (p *FallbackProvider) GetOptionChain(ctx context.Context, ticker string) ([]RawContract, error) {
	return p.primary.GetOptionChain(ctx, ticker)
}

var _ QuoteProvider = (*FallbackProvider)(nil)
