// Package types - Reliability risk record
package types

// ReliabilityMetrics quantifies the monthly monetary exposure implied by
// SLA/SLO/incident inputs. When reliability modeling is disabled the record
// is entirely null-valued with band "none" and confidence "low".
type ReliabilityMetrics struct {
	Enabled bool `json:"enabled"`

	SLOTargetAvailabilityPct   *float64 `json:"sloTargetAvailabilityPct,omitempty"`
	SLIObservedAvailabilityPct *float64 `json:"sliObservedAvailabilityPct,omitempty"`

	ExpectedDowntimeMinutes               *float64 `json:"expectedDowntimeMinutes"`
	ExpectedSLAPenaltyMonthly             *float64 `json:"expectedSlaPenaltyMonthly"`
	ExpectedIncidentLaborMonthly          *float64 `json:"expectedIncidentLaborMonthly"`
	ExpectedRevenueAtRiskMonthly          *float64 `json:"expectedRevenueAtRiskMonthly"`
	ExpectedChurnRiskMonthly              *float64 `json:"expectedChurnRiskMonthly"`
	ExpectedReliabilityFailureCostMonthly *float64 `json:"expectedReliabilityFailureCostMonthly"`
	ReliabilityInvestmentMonthly          *float64 `json:"reliabilityInvestmentMonthly"`
	ReliabilityAdjustedCostMonthly        *float64 `json:"reliabilityAdjustedCostMonthly"`

	ReliabilityRiskBand       RiskBand       `json:"reliabilityRiskBand"`
	ReliabilityDataConfidence ConfidenceTier `json:"reliabilityDataConfidence"`
}

// MonthlyLoad returns investment plus expected failure cost, the constant
// load overlaid on comparison curves. Nil when the metrics carry no signal.
func (r *ReliabilityMetrics) MonthlyLoad() *float64 {
	if r == nil || !r.Enabled || r.ExpectedReliabilityFailureCostMonthly == nil {
		return nil
	}
	load := 0.0
	if r.ReliabilityInvestmentMonthly != nil && *r.ReliabilityInvestmentMonthly > 0 {
		load += *r.ReliabilityInvestmentMonthly
	}
	if *r.ExpectedReliabilityFailureCostMonthly > 0 {
		load += *r.ExpectedReliabilityFailureCostMonthly
	}
	return &load
}
