package options

import (
	"errors"
	"fmt"
)

// FailureCode classifies terminal pipeline failures
type FailureCode string

const (
	FailureProviderUnavailable FailureCode = "provider_unavailable"
	FailureNoPriceData         FailureCode = "no_price_data"
	FailureNoOptionsListed     FailureCode = "no_options_listed"
	FailureNoMatchingContracts FailureCode = "no_matching_contracts"
)

// ErrNoData is returned by quote providers when a request succeeds but the
// response carries no usable data. The selector maps it to FailureNoPriceData.
var ErrNoData = errors.New("no data available")

// FailureReason is the structured failure returned by the selection pipeline.
// The message is meant to be rendered to the user verbatim.
type FailureReason struct {
	Code    FailureCode
	Message string
	cause   error
}

func (f *FailureReason) Error() string {
	return f.Message
}

func (f *FailureReason) Unwrap() error {
	return f.cause
}

// AsFailure extracts a FailureReason from an error chain
func AsFailure(err error) (*FailureReason, bool) {
	var f *FailureReason
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func priceFetchFailure(ticker string, err error) *FailureReason {
	code := FailureProviderUnavailable
	if errors.Is(err, ErrNoData) {
		code = FailureNoPriceData
	}
	return &FailureReason{
		Code:    code,
		Message: fmt.Sprintf("Could not fetch price for %s: %v", ticker, err),
		cause:   err,
	}
}

func chainFetchFailure(ticker string, err error) *FailureReason {
	return &FailureReason{
		Code:    FailureProviderUnavailable,
		Message: fmt.Sprintf("Could not fetch options for %s: %v", ticker, err),
		cause:   err,
	}
}

func noOptionsFailure(ticker string) *FailureReason {
	return &FailureReason{
		Code:    FailureNoOptionsListed,
		Message: fmt.Sprintf("No options data available for %s", ticker),
	}
}

// noMatchFailure carries the active thresholds so the caller can decide to
// loosen them.
func noMatchFailure(ticker string, p Params) *FailureReason {
	return &FailureReason{
		Code: FailureNoMatchingContracts,
		Message: fmt.Sprintf(
			"No options found for %s matching delta <= %.2f (calls) / %.2f (puts). Try increasing the delta filters.",
			ticker, p.MaxDeltaCalls, p.MaxDeltaPuts),
	}
}
