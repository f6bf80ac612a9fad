package options

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpotSource struct {
	price float64
	err   error
	calls int
}

func (s *fakeSpotSource) GetSpotPrice(ctx context.Context, ticker string) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.price, nil
}

func TestFallbackProviderPrimaryWins(t *testing.T) {
	primary := &fakeProvider{spot: 100.5}
	fallback := &fakeSpotSource{price: 99.9}
	p := NewFallbackProvider(primary, fallback, testLogger())

	price, err := p.GetSpotPrice(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, 100.5, price)
	assert.Equal(t, 0, fallback.calls, "fallback must not be consulted when the primary succeeds")
}

func TestFallbackProviderFallsBack(t *testing.T) {
	primary := &fakeProvider{spotErr: ErrNoData}
	fallback := &fakeSpotSource{price: 99.9}
	p := NewFallbackProvider(primary, fallback, testLogger())

	price, err := p.GetSpotPrice(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, 99.9, price)
}

func TestFallbackProviderReturnsPrimaryError(t *testing.T) {
	// Both sources fail: the primary error is authoritative
	primary := &fakeProvider{spotErr: ErrNoData}
	fallback := &fakeSpotSource{err: errors.New("status 503")}
	p := NewFallbackProvider(primary, fallback, testLogger())

	_, err := p.GetSpotPrice(context.Background(), "SPY")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestFallbackProviderChainIsPrimaryOnly(t *testing.T) {
	primary := &fakeProvider{chain: []RawContract{{ContractType: "call"}}}
	p := NewFallbackProvider(primary, &fakeSpotSource{}, testLogger())

	chain, err := p.GetOptionChain(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Len(t, chain, 1)
	assert.Equal(t, 1, primary.chainCalls)
}
