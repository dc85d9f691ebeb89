// Package scan - Range scan tests
package scan

import (
	"math"
	"testing"

	"finops-calc/core/types"
)

// calibrated returns a model fitted to dev 500/client and infra 2400 at
// n=100, the round-number fixture used across the scanner tests.
func calibrated() types.EconomicModel {
	return types.EconomicModel{
		K:    500 * math.Pow(100, 0.45),
		A:    0.45,
		C:    2400 / math.Pow(100, 1.28),
		B:    1.28,
		G:    0.68,
		ARPU: 30,
		M:    0.15,
		NMax: 1000,
	}
}

// TestSearchCeiling proves small nMax never truncates the search
func TestSearchCeiling(t *testing.T) {
	m := calibrated()
	if got := SearchCeiling(m); got != 20000 {
		t.Fatalf("ceiling = %v, want 20000 floor", got)
	}
	m.NMax = 50000
	if got := SearchCeiling(m); got != 50000 {
		t.Fatalf("ceiling = %v, want nMax 50000", got)
	}
}

// TestEconomicRangeFindsFirstBreakEven proves break-even is the first client
// count where revenue covers total cost
func TestEconomicRangeFindsFirstBreakEven(t *testing.T) {
	m := calibrated()
	result := EconomicRange(types.Float(30), SearchCeiling(m), m)

	if result.BreakEvenN == nil || *result.BreakEvenN != 72 {
		t.Fatalf("breakEvenN = %v, want 72", result.BreakEvenN)
	}

	// Minimality: revenue must not cover cost one client earlier.
	n := float64(*result.BreakEvenN - 1)
	total := m.K*math.Pow(n, -m.A) + m.C*math.Pow(n, m.B)
	if 30*n >= total {
		t.Fatalf("n=%v already covers cost %v, break-even is not minimal", n, total)
	}
}

// TestEconomicRangeMinUnitCost proves the unit-cost minimum sits between the
// shrinking dev term and the growing infra term
func TestEconomicRangeMinUnitCost(t *testing.T) {
	m := calibrated()
	result := EconomicRange(nil, SearchCeiling(m), m)

	if result.MinUnitCostN != 104 {
		t.Fatalf("minUnitCostN = %v, want 104", result.MinUnitCostN)
	}
	if result.MinUnitCostPerClient == nil || math.Abs(*result.MinUnitCostPerClient-28.988599915619893) > 1e-6 {
		t.Fatalf("minUnitCostPerClient = %v, want ~28.9886", result.MinUnitCostPerClient)
	}
	if result.BreakEvenN != nil {
		t.Fatalf("breakEvenN = %v, want nil without ARPU", *result.BreakEvenN)
	}
}

// TestEconomicRangeTieKeepsFirst proves a flat unit-cost curve keeps the
// earliest minimum
func TestEconomicRangeTieKeepsFirst(t *testing.T) {
	// K=0 and b=1 make unit cost constant: every n ties.
	m := types.EconomicModel{K: 0, A: 0.45, C: 5, B: 1, G: 0.68, M: 0.15, NMax: 100}
	result := EconomicRange(nil, 100, m)
	if result.MinUnitCostN != 1 {
		t.Fatalf("minUnitCostN = %v, want first occurrence 1", result.MinUnitCostN)
	}
}

// TestEconomicRangeNoBreakEvenBelowFloor proves an ARPU under the cost floor
// never finds a crossing
func TestEconomicRangeNoBreakEvenBelowFloor(t *testing.T) {
	m := calibrated()
	result := EconomicRange(types.Float(25), SearchCeiling(m), m)
	if result.BreakEvenN != nil {
		t.Fatalf("breakEvenN = %v, want nil below the ~28.99 floor", *result.BreakEvenN)
	}
}

// TestRequiredClientsForTargetPrice proves the search returns the first
// count where the price floor reaches the target
func TestRequiredClientsForTargetPrice(t *testing.T) {
	m := calibrated()

	n := RequiredClientsForTargetPrice(40, SearchCeiling(m), m)
	if n == nil {
		t.Fatal("expected a reachable client count for target 40")
	}
	price := ((m.K*math.Pow(float64(*n), -m.A) + m.C*math.Pow(float64(*n), m.B)) / float64(*n)) * 1.15
	if price > 40 {
		t.Fatalf("price floor at n=%d is %v, above target", *n, price)
	}
	prev := float64(*n - 1)
	prevPrice := ((m.K*math.Pow(prev, -m.A) + m.C*math.Pow(prev, m.B)) / prev) * 1.15
	if prevPrice <= 40 {
		t.Fatalf("n=%v already meets target, result is not minimal", prev)
	}

	if got := RequiredClientsForTargetPrice(0, SearchCeiling(m), m); got != nil {
		t.Fatalf("target 0 = %v, want nil", *got)
	}
	// Below the absolute floor (~33.34) no count ever qualifies.
	if got := RequiredClientsForTargetPrice(25, SearchCeiling(m), m); got != nil {
		t.Fatalf("target 25 = %v, want nil", *got)
	}
}

// TestRequiredClientsWithReliabilityLoad proves a constant load pushes the
// required count up
func TestRequiredClientsWithReliabilityLoad(t *testing.T) {
	m := calibrated()
	base := RequiredClientsForTargetPrice(40, SearchCeiling(m), m)
	loaded := RequiredClientsForTargetPriceWithReliability(40, SearchCeiling(m), 500, m)

	if base == nil || loaded == nil {
		t.Fatal("expected both searches to find a count")
	}
	if *loaded <= *base {
		t.Fatalf("loaded count %d not above base %d", *loaded, *base)
	}

	// Negative loads clamp to zero and reproduce the base search.
	clamped := RequiredClientsForTargetPriceWithReliability(40, SearchCeiling(m), -100, m)
	if clamped == nil || *clamped != *base {
		t.Fatalf("clamped count = %v, want base %d", clamped, *base)
	}
}
