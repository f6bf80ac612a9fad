package options

import (
	"strings"
	"time"

	"github.com/wonny/premia/pkg/logger"
)

// FilterConfig defines the structural screening rules that do not vary
// per request.
type FilterConfig struct {
	ExpiryHorizonDays int     // drop contracts expiring after this many days
	PremiumFloor      float64 // drop contracts whose bid/ask midpoint is below this
}

// DefaultFilterConfig returns the standard screening configuration
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		ExpiryHorizonDays: 90,
		PremiumFloor:      0.05,
	}
}

// Filter screens raw option records into ranked-ready contracts.
// BuildCandidates applies the parameter-independent rules once per fetch;
// Apply runs the per-request rules and is cheap enough to re-run against a
// cached candidate set.
type Filter struct {
	config FilterConfig
	logger *logger.Logger
}

// NewFilter creates a new contract filter
func NewFilter(config FilterConfig, log *logger.Logger) *Filter {
	return &Filter{
		config: config,
		logger: log,
	}
}

const expirationLayout = "2006-01-02"

// BuildCandidates converts raw provider records into Contracts, applying every
// rule that does not depend on request parameters: field presence, expiration
// parse, expiry window, out-of-the-money check, premium floor, and delta
// resolution (provider value or estimate). Malformed records are skipped and
// counted; a bad record never aborts the batch.
//
// The returned slice keeps both contract types and all deltas so that the same
// set can be re-filtered later with different request parameters.
func (f *Filter) BuildCandidates(raw []RawContract, spot float64, now time.Time) ([]Contract, int) {
	candidates := make([]Contract, 0, len(raw))
	skipped := 0

	for _, rec := range raw {
		contract, ok := f.buildCandidate(rec, spot, now)
		if !ok {
			skipped++
			continue
		}
		candidates = append(candidates, contract)
	}

	f.logger.WithFields(map[string]interface{}{
		"total_input": len(raw),
		"candidates":  len(candidates),
		"skipped":     skipped,
	}).Debug("Candidate screening completed")

	return candidates, skipped
}

// buildCandidate screens a single record. Rules short-circuit on the first
// failure; ordering affects performance only since the rules are independent.
func (f *Filter) buildCandidate(rec RawContract, spot float64, now time.Time) (Contract, bool) {
	// Required fields
	ctype, ok := parseContractType(rec.ContractType)
	if !ok || rec.Strike <= 0 || rec.Expiration == "" {
		return Contract{}, false
	}

	expiration, err := time.Parse(expirationLayout, rec.Expiration)
	if err != nil {
		return Contract{}, false
	}

	// Expiry window
	days := daysUntil(now, expiration)
	if days <= 0 || days > f.config.ExpiryHorizonDays {
		return Contract{}, false
	}

	// Out-of-the-money only: call strike above spot, put strike below spot
	if ctype == Call && rec.Strike <= spot {
		return Contract{}, false
	}
	if ctype == Put && rec.Strike >= spot {
		return Contract{}, false
	}

	// Premium floor on the bid/ask midpoint; missing sides count as 0
	premium := (rec.Bid + rec.Ask) / 2
	if premium < f.config.PremiumFloor {
		return Contract{}, false
	}

	// Provider delta wins when present and nonzero; estimate otherwise
	delta := rec.Delta
	if delta == 0 {
		delta = EstimateDelta(rec.Strike, spot, days)
	} else if delta < 0 {
		delta = -delta
	}

	return Contract{
		Type:         ctype,
		Strike:       rec.Strike,
		Expiration:   expiration,
		DaysToExpiry: days,
		Premium:      premium,
		Bid:          rec.Bid,
		Ask:          rec.Ask,
		Delta:        delta,
		AnnualReturn: annualReturn(premium, spot, days),
		Volume:       rec.Volume,
		OpenInterest: rec.OpenInterest,
	}, true
}

// Apply runs the parameter-dependent rules over already-screened contracts:
// the contract-type filter and the per-type delta ceilings. Pure function;
// the input slice is never modified.
func (f *Filter) Apply(contracts []Contract, p Params) []Contract {
	matched := make([]Contract, 0, len(contracts))

	for _, c := range contracts {
		if !p.FilterType.Allows(c.Type) {
			continue
		}

		ceiling := p.MaxDeltaCalls
		if c.Type == Put {
			ceiling = p.MaxDeltaPuts
		}
		if c.Delta > ceiling {
			continue
		}

		matched = append(matched, c)
	}

	return matched
}

// parseContractType normalizes a provider-side contract type string
func parseContractType(s string) (ContractType, bool) {
	switch strings.ToLower(s) {
	case "call":
		return Call, true
	case "put":
		return Put, true
	}
	return "", false
}

// daysUntil counts calendar days from now's date to the expiration date
func daysUntil(now, expiration time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	exp := time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(today).Hours() / 24)
}
