package options

import "sort"

// annualReturn extrapolates the premium yield over 365 days, as a percentage
// of spot. A simplifying proxy: no compounding, assignment risk, or cost basis.
func annualReturn(premium, spot float64, daysToExpiry int) float64 {
	return (premium / spot) * (365.0 / float64(daysToExpiry)) * 100.0
}

// Ranker orders contracts by annualized return and caps the result size
type Ranker struct {
	maxResults int
}

// NewRanker creates a ranker that returns at most maxResults contracts
func NewRanker(maxResults int) *Ranker {
	return &Ranker{maxResults: maxResults}
}

// Rank returns the contracts sorted by annualized return, descending, capped
// at maxResults. The sort is stable so equal scores keep their input order.
// The input slice is not modified.
func (r *Ranker) Rank(contracts []Contract) []Contract {
	ranked := make([]Contract, len(contracts))
	copy(ranked, contracts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AnnualReturn > ranked[j].AnnualReturn
	})

	if len(ranked) > r.maxResults {
		ranked = ranked[:r.maxResults]
	}

	return ranked
}
