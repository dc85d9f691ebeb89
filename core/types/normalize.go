// Package types - Multi-domain normalization records
package types

// DomainRow is one technology-spend domain in a normalization snapshot.
// Normalized is the monthly figure divided by the reference client count.
type DomainRow struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	InScope    bool    `json:"inScope"`
	Provided   bool    `json:"provided"`
	Monthly    float64 `json:"monthly"`
	Normalized float64 `json:"normalized"`
}

// WeightingPolicy documents how domain figures combine into the normalized
// total. The default "financial truth" mode counts every in-scope domain at
// full weight; the priority-index mode is advisory only.
type WeightingPolicy struct {
	RecommendedMode           string                `json:"recommendedMode"`
	FinancialTruthRule        string                `json:"financialTruthRule"`
	OptionalPriorityIndexRule string                `json:"optionalPriorityIndexRule"`
	Bands                     map[string][2]float64 `json:"bands"`
	BalancedDefaultProfile    map[string]float64    `json:"balancedDefaultProfile"`
}

// NormalizationSnapshot is the full multi-domain normalization result:
// per-domain rows, in-scope aggregates, a coverage-driven confidence grade,
// and advisory strings. Warnings and advisories are never fatal.
type NormalizationSnapshot struct {
	Rows                 []DomainRow      `json:"rows"`
	SelectedDomains      []string         `json:"selectedDomains"`
	SelectedCount        int              `json:"selectedCount"`
	ProvidedInScopeCount int              `json:"providedInScopeCount"`
	TotalTrackedDomains  int              `json:"totalTrackedDomains"`
	SchemaCoveragePct    float64          `json:"schemaCoveragePct"`
	CoveragePct          float64          `json:"coveragePct"`
	TotalMonthly         float64          `json:"totalMonthly"`
	NormalizedTotal      float64          `json:"normalizedTotal"`
	Confidence           string           `json:"confidence"`
	Warnings             []string         `json:"warnings"`
	Advisories           []string         `json:"advisories"`
	Formula              string           `json:"formula"`
	WeightingPolicy      *WeightingPolicy `json:"weightingPolicy"`
}

// Report converts the snapshot into its caller-facing embedded form.
func (s *NormalizationSnapshot) Report() *NormalizationReport {
	return &NormalizationReport{
		SelectedDomains:             s.SelectedDomains,
		SelectedCount:               s.SelectedCount,
		ProvidedInScopeCount:        s.ProvidedInScopeCount,
		TotalTrackedDomains:         s.TotalTrackedDomains,
		SchemaCoveragePct:           s.SchemaCoveragePct,
		CoveragePct:                 s.CoveragePct,
		TotalMonthly:                s.TotalMonthly,
		NormalizedTechCostPerClient: s.NormalizedTotal,
		Confidence:                  s.Confidence,
		Warnings:                    s.Warnings,
		Advisories:                  s.Advisories,
		Formula:                     s.Formula,
		WeightingPolicy:             s.WeightingPolicy,
		DomainRows:                  s.Rows,
	}
}
