// Package types - Curve samples and aggregated economics
package types

// CurvePoint is one sampled client count on the cost/revenue curves.
// TotalRel and ProfitRel are present only when a reliability load overlay
// was requested for the series.
type CurvePoint struct {
	N         float64  `json:"n"`
	Dev       float64  `json:"dev"`
	InfraRaw  float64  `json:"infraRaw"`
	InfraCUD  float64  `json:"infraCud"`
	Total     float64  `json:"total"`
	TotalRel  *float64 `json:"totalRel"`
	Revenue   float64  `json:"revenue"`
	Profit    float64  `json:"profit"`
	ProfitRel *float64 `json:"profitRel"`
	PriceMin  float64  `json:"priceMin"`
}

// Outputs is the aggregated economics computed for one request. Absent
// figures (insufficient input) are nil and serialize as null.
//
// CCER is nil both when it cannot be computed and when raw infra cost is
// zero: the ratio would be infinite, and an infinite ratio has always
// serialized as null on the wire.
type Outputs struct {
	BreakEvenClients             *int                 `json:"breakEvenClients"`
	MinPricePerClient            *float64             `json:"minPricePerClient"`
	VCPU                         *float64             `json:"vcpu"`
	ContributionMargin           *float64             `json:"contributionMargin"`
	CCER                         *float64             `json:"ccer"`
	CUDMonthlySaving             *float64             `json:"cudMonthlySaving"`
	RequiredClientsAtTargetPrice *int                 `json:"requiredClientsAtTargetPrice"`
	RequiredPriceAtTargetClients *float64             `json:"requiredPriceAtTargetClients"`
	TargetMonthlyRevenue         *float64             `json:"targetMonthlyRevenue"`
	ReliabilityAdjustedProfit    *float64             `json:"reliabilityAdjustedProfit"`
	RequiredARPUWithReliability  *float64             `json:"requiredARPU_with_rel"`
	ARPUUpliftWithReliability    *float64             `json:"arpuUplift_with_rel"`
	RequiredClientsWithRel       *int                 `json:"requiredClients_with_rel"`
	ExtraClientsWithRel          *int                 `json:"extraClients_with_rel"`
	Reliability                  *ReliabilityMetrics  `json:"reliability"`
	Normalization                *NormalizationReport `json:"normalization"`
}

// NormalizationReport is the caller-facing view of a normalization
// snapshot, embedded in Outputs.
type NormalizationReport struct {
	SelectedDomains             []string         `json:"selectedDomains"`
	SelectedCount               int              `json:"selectedCount"`
	ProvidedInScopeCount        int              `json:"providedInScopeCount"`
	TotalTrackedDomains         int              `json:"totalTrackedDomains"`
	SchemaCoveragePct           float64          `json:"schemaCoveragePct"`
	CoveragePct                 float64          `json:"coveragePct"`
	TotalMonthly                float64          `json:"totalMonthly"`
	NormalizedTechCostPerClient float64          `json:"normalizedTechCostPerClient"`
	Confidence                  string           `json:"confidence"`
	Warnings                    []string         `json:"warnings"`
	Advisories                  []string         `json:"advisories"`
	Formula                     string           `json:"formula"`
	WeightingPolicy             *WeightingPolicy `json:"weightingPolicy"`
	DomainRows                  []DomainRow      `json:"domainRows"`
}
