// Package scan locates the break-even point and the minimum-unit-cost point
// with a bounded linear pass over client counts.
//
// The scan is deliberately linear: the curve is a sum of terms with different
// growth exponents plus a discount term, so monotonicity of revenue minus
// total cost is not guaranteed for every permitted parameter combination.
// A bounded scan is the only always-correct search; do not replace it with
// binary search without proving unimodality first.
package scan

import (
	"math"

	"finops-calc/core/curve"
	"finops-calc/core/types"
)

// minSearchCeiling keeps the break-even search from being truncated by a
// small nMax configuration.
const minSearchCeiling = 20000

// Result is the outcome of one economic range scan. BreakEvenN is nil when
// ARPU is non-positive or no crossing occurs within range. The unit-cost
// minimum always exists; ties keep the first occurrence.
type Result struct {
	BreakEvenN           *int
	MinUnitCostN         int
	MinUnitCostPerClient *float64
}

// SearchCeiling returns the client-count bound used for break-even and
// required-clients searches: max(20000, nMax).
func SearchCeiling(m types.EconomicModel) float64 {
	return math.Max(minSearchCeiling, m.NMax)
}

// EconomicRange performs one pass n = 1..round(maxN), tracking the first n
// where arpu·n covers total cost and the strict minimum of total(n)/n.
func EconomicRange(arpu *float64, maxN float64, m types.EconomicModel) Result {
	limit := int(math.Max(1, math.Round(maxN)))
	hasARPU := arpu != nil && *arpu > 0

	var breakEvenN *int
	minUnitCost := math.Inf(1)
	minUnitCostN := 1

	for n := 1; n <= limit; n++ {
		total := curve.Total(m, float64(n))
		unitCost := total / float64(n)

		if unitCost < minUnitCost {
			minUnitCost = unitCost
			minUnitCostN = n
		}

		if hasARPU && breakEvenN == nil && *arpu*float64(n) >= total {
			be := n
			breakEvenN = &be
		}
	}

	result := Result{MinUnitCostN: minUnitCostN, BreakEvenN: breakEvenN}
	if !math.IsInf(minUnitCost, 1) {
		result.MinUnitCostPerClient = &minUnitCost
	}
	return result
}

// RequiredClientsForTargetPrice finds the first client count at which the
// minimum sustainable price drops to the target. Nil when the target is
// non-positive or unreachable within range.
func RequiredClientsForTargetPrice(targetPrice, maxN float64, m types.EconomicModel) *int {
	if !(targetPrice > 0) {
		return nil
	}
	limit := int(math.Max(1, math.Round(maxN)))

	for n := 1; n <= limit; n++ {
		if curve.MinPrice(m, float64(n)) <= targetPrice {
			found := n
			return &found
		}
	}
	return nil
}

// RequiredClientsForTargetPriceWithReliability is the same search with a
// constant monthly reliability load folded into total cost before the markup.
func RequiredClientsForTargetPriceWithReliability(targetPrice, maxN, reliabilityLoadMonthly float64, m types.EconomicModel) *int {
	if !(targetPrice > 0) {
		return nil
	}
	limit := int(math.Max(1, math.Round(maxN)))
	load := math.Max(0, reliabilityLoadMonthly)

	for n := 1; n <= limit; n++ {
		baseTotal := curve.Total(m, float64(n))
		adjusted := ((baseTotal + load) / math.Max(1, float64(n))) * (1 + m.M)
		if adjusted <= targetPrice {
			found := n
			return &found
		}
	}
	return nil
}
