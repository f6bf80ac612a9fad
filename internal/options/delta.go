package options

import "math"

// EstimateDelta produces a risk proxy in (0, 0.5] for contracts whose provider
// omitted a delta. It decreases as the strike moves away from spot and
// increases with time to expiration. This is a ranking/filtering proxy, not a
// pricing-model greek.
//
// Inputs must be positive; daysToExpiry > 0 guarantees a nonzero time factor.
func EstimateDelta(strike, spot float64, daysToExpiry int) float64 {
	moneyness := math.Abs(strike-spot) / spot
	timeFactor := float64(daysToExpiry) / 365.0
	return math.Min(0.5, 1.0/(1.0+moneyness*10.0/math.Sqrt(timeFactor)))
}
