// Package health grades model economics into a 0..100 score and a
// traffic-light zone. Scoring only activates once both a cloud spend figure
// and a resolved ARPU exist; before that the result is the awaiting state.
package health

import (
	"fmt"
	"math"

	"finops-calc/core/curve"
	"finops-calc/core/model"
	"finops-calc/core/scan"
	"finops-calc/core/types"
)

// Zone titles shown alongside the zone key.
const (
	titleAwaiting = "Awaiting Inputs"
	titleGreen    = "Green Zone - Healthy Economics"
	titleYellow   = "Yellow Zone - Needs Improvement"
	titleRed      = "Red Zone - Critical Action Needed"
)

// Score evaluates economics at the reference client count and returns the
// zone, the clamped score, and the plain-language reasons for each
// deduction. Planning-mode ARPU assumptions are appended as notes.
func Score(in types.CanonicalInput, d model.Derivation) types.HealthResult {
	nSample := in.RefClients()

	arpuUsed := resolveARPU(in, d)
	if in.InfraTotal == nil || arpuUsed == nil {
		return types.HealthResult{
			ZoneKey:      types.ZoneAwaiting,
			ZoneTitle:    titleAwaiting,
			FailedChecks: []string{},
		}
	}

	m := d.Model
	infraRaw := curve.InfraRaw(m, nSample)
	infraCUD := curve.InfraCUD(m, nSample)

	revenue := *arpuUsed * nSample
	vcpu := infraRaw / nSample
	contributionMargin := *arpuUsed - vcpu

	ccer := math.Inf(1)
	if infraRaw > 0 {
		ccer = revenue / infraRaw
	}
	cudSaveGap := 0.0
	if infraRaw > 0 {
		cudSaveGap = (infraRaw - infraCUD) / infraRaw
	}

	economics := scan.EconomicRange(arpuUsed, scan.SearchCeiling(m), m)

	score := 100.0
	var failed []string

	if economics.BreakEvenN == nil {
		score -= 35
		failed = append(failed, "No break-even point exists within the current model range.")
	} else if nSample < float64(*economics.BreakEvenN) {
		score -= 35
		failed = append(failed, fmt.Sprintf("Current clients (%d) are below break-even (%d).", int(math.Round(nSample)), *economics.BreakEvenN))
	}

	if !math.IsInf(ccer, 1) && ccer < 1 {
		score -= 30
		failed = append(failed, fmt.Sprintf("CCER is %.2fx (<1x).", ccer))
	} else if !math.IsInf(ccer, 1) && ccer < 3 {
		score -= 15
		failed = append(failed, fmt.Sprintf("CCER is %.2fx (below 3x benchmark).", ccer))
	}

	if contributionMargin <= 0 {
		score -= 20
		failed = append(failed, fmt.Sprintf("Contribution margin is negative (%.2f per client).", contributionMargin))
	}

	if cudSaveGap > 0.15 {
		score -= 5
		failed = append(failed, fmt.Sprintf("Commitment saving gap is %.1f%% of infra spend.", cudSaveGap*100))
	}

	score = math.Max(0, math.Min(100, score))

	zoneKey := types.ZoneGreen
	zoneTitle := titleGreen
	switch {
	case score < 40:
		zoneKey = types.ZoneRed
		zoneTitle = titleRed
	case score < 70:
		zoneKey = types.ZoneYellow
		zoneTitle = titleYellow
	}

	switch d.ARPUMode {
	case types.ARPUStartupPrice:
		failed = append(failed, "Planning mode: ARPU estimated from target price assumption.")
	case types.ARPUStartupClients:
		failed = append(failed, "Planning mode: ARPU estimated from target clients assumption.")
	}

	rounded := int(math.Round(score))
	if failed == nil {
		failed = []string{}
	}
	return types.HealthResult{
		ZoneKey:      zoneKey,
		ZoneTitle:    zoneTitle,
		Score:        &rounded,
		FailedChecks: failed,
	}
}

// ResolveARPU applies the effective-then-explicit ARPU precedence shared by
// scoring, recommendations, and output computation.
func ResolveARPU(in types.CanonicalInput, d model.Derivation) *float64 {
	return resolveARPU(in, d)
}

func resolveARPU(in types.CanonicalInput, d model.Derivation) *float64 {
	if d.EffectiveARPU != nil && *d.EffectiveARPU > 0 {
		return d.EffectiveARPU
	}
	if in.ARPU != nil && *in.ARPU > 0 {
		return in.ARPU
	}
	return nil
}
