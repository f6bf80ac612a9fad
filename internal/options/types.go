package options

import (
	"fmt"
	"time"
)

// ContractType identifies the side of an option contract
type ContractType string

const (
	Call ContractType = "Call"
	Put  ContractType = "Put"
)

// FilterType restricts which contract types a request wants back
type FilterType string

const (
	FilterBoth  FilterType = "both"
	FilterCalls FilterType = "calls"
	FilterPuts  FilterType = "puts"
)

// ParseFilterType validates a request-supplied filter string
func ParseFilterType(s string) (FilterType, error) {
	switch FilterType(s) {
	case FilterBoth, FilterCalls, FilterPuts:
		return FilterType(s), nil
	}
	return "", fmt.Errorf("invalid filter type %q (must be both, calls or puts)", s)
}

// Allows reports whether the filter admits the given contract type
func (f FilterType) Allows(ct ContractType) bool {
	switch f {
	case FilterCalls:
		return ct == Call
	case FilterPuts:
		return ct == Put
	default:
		return true
	}
}

// RawContract is a single option record as delivered by a quote provider.
// Zero values mark absent fields: providers that omit greeks report Delta as 0,
// and a missing bid or ask is treated as 0 when computing the premium.
type RawContract struct {
	ContractType string  // "call" or "put"
	Strike       float64 // strike price
	Expiration   string  // ISO date, e.g. "2026-09-18"
	Delta        float64 // provider greek; 0 means not supplied
	Bid          float64
	Ask          float64
	Volume       int64
	OpenInterest int64
}

// Contract is a fully resolved, screener-ready option contract.
// Invariants: out-of-the-money relative to spot, premium at or above the
// configured floor, and 0 < DaysToExpiry <= the configured horizon.
type Contract struct {
	Type         ContractType `json:"type"`
	Strike       float64      `json:"strike"`
	Expiration   time.Time    `json:"expiration"`
	DaysToExpiry int          `json:"days_to_expiration"`
	Premium      float64      `json:"premium"`
	Bid          float64      `json:"bid"`
	Ask          float64      `json:"ask"`
	Delta        float64      `json:"delta"`
	AnnualReturn float64      `json:"annual_return"`
	Volume       int64        `json:"volume"`
	OpenInterest int64        `json:"open_interest"`
}

// CandidateSet is the full, parameter-independent contract universe discovered
// for a ticker in one fetch. It is immutable after creation and owned by the
// cache entry; re-filtering with different request parameters slices it without
// touching the provider again.
type CandidateSet struct {
	Ticker         string
	SpotPrice      float64
	RetrievedAt    time.Time
	Contracts      []Contract
	SkippedRecords int // malformed provider records dropped during processing
}

// Params are the per-request selection parameters
type Params struct {
	MaxDeltaCalls float64
	MaxDeltaPuts  float64
	FilterType    FilterType
}

const (
	// MinDeltaCeiling and MaxDeltaCeiling bound the request-supplied delta filters
	MinDeltaCeiling = 0.05
	MaxDeltaCeiling = 0.50
)

// Validate checks the parameters against their allowed ranges
func (p Params) Validate() error {
	if p.MaxDeltaCalls < MinDeltaCeiling || p.MaxDeltaCalls > MaxDeltaCeiling {
		return fmt.Errorf("max delta for calls must be in [%.2f, %.2f], got %.2f",
			MinDeltaCeiling, MaxDeltaCeiling, p.MaxDeltaCalls)
	}
	if p.MaxDeltaPuts < MinDeltaCeiling || p.MaxDeltaPuts > MaxDeltaCeiling {
		return fmt.Errorf("max delta for puts must be in [%.2f, %.2f], got %.2f",
			MinDeltaCeiling, MaxDeltaCeiling, p.MaxDeltaPuts)
	}
	if _, err := ParseFilterType(string(p.FilterType)); err != nil {
		return err
	}
	return nil
}

// SelectionResult is the ranked, capped answer for one request.
// Transient: recomputed per request, never cached.
type SelectionResult struct {
	Ticker        string     `json:"symbol"`
	SpotPrice     float64    `json:"price"`
	Timestamp     time.Time  `json:"timestamp"`
	Cached        bool       `json:"cached"`
	Contracts     []Contract `json:"options"`
	MaxDeltaCalls float64    `json:"max_delta_calls"`
	MaxDeltaPuts  float64    `json:"max_delta_puts"`
	FilterType    FilterType `json:"filter_type"`
}
