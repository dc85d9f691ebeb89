// Package normalize builds the multi-domain cost normalization snapshot.
// It converts heterogeneous monthly cost figures into a per-client
// normalized technology cost so portfolios mixing cloud, SaaS, licensing,
// facility, and labor spend stay comparable.
package normalize

import (
	"fmt"
	"strings"

	"finops-calc/core/types"
)

// Snapshot computes domain rows, coverage ratios, confidence, and advisory
// text for the selected technology-domain scope. nRef of zero or below falls
// back to the default client baseline.
func Snapshot(in types.CanonicalInput) types.NormalizationSnapshot {
	selected := selectedDomains(in)
	nSample := in.RefClients()

	rows := make([]types.DomainRow, 0, len(types.TechDomainSchema))
	var totalMonthly float64
	providedTotal := 0
	providedInScope := 0
	nonCloudInScopeProvided := false

	var missingInScope []string
	for _, spec := range types.TechDomainSchema {
		monthly := 0.0
		provided := false
		if v := in.DomainMonthly(spec.Key); v != nil && *v > 0 {
			monthly = *v
			provided = true
		}
		inScope := selected[spec.Key]

		if provided {
			providedTotal++
		}
		if inScope {
			if provided {
				providedInScope++
				totalMonthly += monthly
				if spec.Key != "cloud" {
					nonCloudInScopeProvided = true
				}
			} else {
				missingInScope = append(missingInScope, spec.Label)
			}
		}

		rows = append(rows, types.DomainRow{
			Key:        spec.Key,
			Label:      spec.Label,
			Monthly:    monthly,
			Normalized: monthly / nSample,
			Provided:   provided,
			InScope:    inScope,
		})
	}

	selectedCount := len(selected)
	coveragePct := 0.0
	if selectedCount > 0 {
		coveragePct = float64(providedInScope) / float64(selectedCount) * 100
	}
	schemaCoveragePct := float64(providedTotal) / float64(len(types.TechDomainSchema)) * 100

	confidence := types.ConfidenceLow
	switch {
	case coveragePct >= 80 && selectedCount >= 2 && nonCloudInScopeProvided:
		confidence = types.ConfidenceHigh
	case coveragePct >= 50:
		confidence = types.ConfidenceMedium
	}

	var warnings []string
	if !in.HasExplicitRef() && totalMonthly > 0 {
		warnings = append(warnings, "Normalization uses default client baseline n=100. Add nRef for exact comparability.")
	}
	if len(missingInScope) > 0 {
		warnings = append(warnings, fmt.Sprintf("Selected scope missing costs for: %s.", strings.Join(missingInScope, ", ")))
	}

	var advisories []string
	if selectedCount == 1 {
		advisories = append(advisories, "Single-domain mode is active. Select additional domains for portfolio comparability.")
	}
	if selectedCount > 0 && onlyCloud(selected) {
		advisories = append(advisories, "Only Cloud is in scope. Add non-cloud domains for broader FinOps 2026 alignment.")
	}

	return types.NormalizationSnapshot{
		Rows:                 rows,
		SelectedDomains:      orderedSelection(selected),
		SelectedCount:        selectedCount,
		ProvidedInScopeCount: providedInScope,
		TotalTrackedDomains:  len(types.TechDomainSchema),
		SchemaCoveragePct:    schemaCoveragePct,
		CoveragePct:          coveragePct,
		TotalMonthly:         totalMonthly,
		NormalizedTotal:      totalMonthly / nSample,
		Confidence:           string(confidence),
		Warnings:             warnings,
		Advisories:           advisories,
		Formula:              "NTC/client = sum(alpha_d * C_d) / n",
		WeightingPolicy: &types.WeightingPolicy{
			RecommendedMode:           "financial-truth",
			FinancialTruthRule:        "alpha_d = 1 if selected in scope, else 0",
			OptionalPriorityIndexRule: "sum(w_d) = 1",
			Bands:                     types.PriorityWeightBands,
			BalancedDefaultProfile:    types.BalancedPriorityProfile,
		},
	}
}

func selectedDomains(in types.CanonicalInput) map[string]bool {
	out := make(map[string]bool, len(in.TechDomains))
	for _, d := range in.TechDomains {
		out[d] = true
	}
	if len(out) == 0 {
		for _, d := range types.DefaultTechDomains {
			out[d] = true
		}
	}
	return out
}

func onlyCloud(selected map[string]bool) bool {
	for key := range selected {
		if key != "cloud" {
			return false
		}
	}
	return true
}

// orderedSelection returns the selected keys in schema order so snapshots
// serialize deterministically.
func orderedSelection(selected map[string]bool) []string {
	out := make([]string, 0, len(selected))
	for _, spec := range types.TechDomainSchema {
		if selected[spec.Key] {
			out = append(out, spec.Key)
		}
	}
	return out
}
