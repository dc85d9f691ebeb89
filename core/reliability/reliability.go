// Package reliability converts SLO, SLI, and incident telemetry into monthly
// monetary exposure figures: expected downtime cost, SLA penalties, incident
// labor, revenue at risk, and churn risk, plus a qualitative risk band and a
// data-completeness confidence grade.
package reliability

import (
	"math"

	"finops-calc/core/types"
)

const defaultAvailabilityPct = 99.9

// Compute builds the reliability exposure record for the given canonical
// input. modeledCostMonthly is the base cost figure the adjusted cost is
// derived from; normally the model total at the reference client count, or
// the normalization total when multi-domain figures dominate.
func Compute(in types.CanonicalInput, modeledCostMonthly float64) types.ReliabilityMetrics {
	if !in.ReliabilityEnabled {
		return types.ReliabilityMetrics{
			Enabled:                   false,
			ReliabilityRiskBand:       types.RiskBandNone,
			ReliabilityDataConfidence: types.ConfidenceLow,
		}
	}

	slo := clampPercent(in.SLOTargetAvailabilityPct, defaultAvailabilityPct)
	sli := clampPercent(in.SLIObservedAvailabilityPct, defaultAvailabilityPct)
	trafficShare := clampPercent(in.CriticalTrafficSharePct, 100) / 100
	churnPct := clampPercent(in.ChurnSensitivityPct, 0)
	breachPct := clampPercent(in.BreachProbabilityPct, 0)

	minutes := float64(types.DefaultMinutesInMonth)
	if in.MinutesInMonth != nil && *in.MinutesInMonth > 0 {
		minutes = *in.MinutesInMonth
	}

	downtimeMinutes := (1 - sli/100) * minutes
	breachGap := math.Max(0, slo-sli)

	penalty := 0.0
	if in.SLAPenaltyMonthly != nil && *in.SLAPenaltyMonthly > 0 {
		penalty = *in.SLAPenaltyMonthly
	} else if in.SLAPenaltyRatePerBreachPointMonthly != nil {
		penalty = breachGap * *in.SLAPenaltyRatePerBreachPointMonthly
	}

	labor := 0.0
	if in.IncidentCountMonthly != nil && in.MTTRHours != nil && in.IncidentBlendedHourlyRate != nil {
		fte := 1.0
		if in.IncidentFTECount != nil && *in.IncidentFTECount > 0 {
			fte = *in.IncidentFTECount
		}
		labor = *in.IncidentCountMonthly * *in.MTTRHours * fte * *in.IncidentBlendedHourlyRate
	}

	revenueAtRisk := 0.0
	if in.CriticalRevenuePerMinute != nil {
		revenueAtRisk = downtimeMinutes * *in.CriticalRevenuePerMinute * trafficShare
	}

	churnRisk := 0.0
	if in.ARRExposedMonthly != nil {
		churnRisk = *in.ARRExposedMonthly * (churnPct / 100) * (breachPct / 100)
	}

	failureCost := penalty + labor + revenueAtRisk + churnRisk

	investment := 0.0
	if in.ReliabilityInvestmentMonthly != nil && *in.ReliabilityInvestmentMonthly > 0 {
		investment = *in.ReliabilityInvestmentMonthly
	}

	adjusted := math.Max(0, modeledCostMonthly) + investment + failureCost

	band := types.RiskBandLow
	failureShare := 0.0
	if adjusted > 0 {
		failureShare = failureCost / adjusted
	}
	switch {
	case failureShare >= 0.2 || breachGap >= 0.5 || sli < 99.0:
		band = types.RiskBandHigh
	case failureShare >= 0.1 || breachGap >= 0.1 || sli < 99.5:
		band = types.RiskBandMedium
	}

	return types.ReliabilityMetrics{
		Enabled:                               true,
		SLOTargetAvailabilityPct:              types.Float(slo),
		SLIObservedAvailabilityPct:            types.Float(sli),
		ExpectedDowntimeMinutes:               types.Float(downtimeMinutes),
		ExpectedSLAPenaltyMonthly:             types.Float(penalty),
		ExpectedIncidentLaborMonthly:          types.Float(labor),
		ExpectedRevenueAtRiskMonthly:          types.Float(revenueAtRisk),
		ExpectedChurnRiskMonthly:              types.Float(churnRisk),
		ExpectedReliabilityFailureCostMonthly: types.Float(failureCost),
		ReliabilityInvestmentMonthly:          types.Float(investment),
		ReliabilityAdjustedCostMonthly:        types.Float(adjusted),
		ReliabilityRiskBand:                   band,
		ReliabilityDataConfidence:             confidence(in),
	}
}

// clampPercent resolves an optional percentage to [0,100] with a fallback
// for the absent case.
func clampPercent(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return math.Min(100, math.Max(0, *v))
}

// confidence grades data completeness over the ten canonical optional
// reliability fields. Eight or more present grades high, five medium.
func confidence(in types.CanonicalInput) types.ConfidenceTier {
	fields := []*float64{
		in.SLOTargetAvailabilityPct,
		in.SLIObservedAvailabilityPct,
		in.IncidentCountMonthly,
		in.MTTRHours,
		in.IncidentBlendedHourlyRate,
		in.CriticalRevenuePerMinute,
		in.ARRExposedMonthly,
		in.ChurnSensitivityPct,
		in.BreachProbabilityPct,
		in.ReliabilityInvestmentMonthly,
	}
	present := 0
	for _, f := range fields {
		if f != nil {
			present++
		}
	}
	switch {
	case present >= 8:
		return types.ConfidenceHigh
	case present >= 5:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}
