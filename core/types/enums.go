// Package types holds the shared data model for the FinOps calculator engine.
// Everything here is a request-scoped value object; the only process-wide
// state anywhere in the engine is read-only static tables.
package types

// Currency represents a carried currency label. No conversion is ever
// performed; the code is cosmetic metadata on monetary figures.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
)

// DefaultCurrency is assumed when no currency label is supplied.
const DefaultCurrency = CurrencyEUR

// Currencies lists the accepted currency labels.
var Currencies = []Currency{CurrencyEUR, CurrencyGBP, CurrencyUSD}

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Provider is a cloud provider key used to scope recommendations.
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderAzure   Provider = "azure"
	ProviderGCP     Provider = "gcp"
	ProviderOCI     Provider = "oci"
	ProviderIBM     Provider = "ibm"
	ProviderAlibaba Provider = "alibaba"
	ProviderHuawei  Provider = "huawei"
	ProviderMulti   Provider = "multi"
)

// Providers is the fixed provider vocabulary, in canonical order.
var Providers = []Provider{
	ProviderAWS, ProviderAzure, ProviderGCP, ProviderOCI,
	ProviderIBM, ProviderAlibaba, ProviderHuawei, ProviderMulti,
}

// Zone is a qualitative health bucket.
type Zone string

const (
	ZoneAwaiting Zone = "awaiting"
	ZoneGreen    Zone = "green"
	ZoneYellow   Zone = "yellow"
	ZoneRed      Zone = "red"
)

// IsActionable reports whether the zone carries enough signal for
// recommendations (awaiting never does).
func (z Zone) IsActionable() bool {
	return z == ZoneGreen || z == ZoneYellow || z == ZoneRed
}

// CurveKey identifies one of the chartable curves.
type CurveKey string

// CurveKeys is the fixed vocabulary of chartable curves.
var CurveKeys = []CurveKey{
	"dev", "infra-raw", "infra-cud", "total", "total-rel",
	"revenue", "profit", "profit-rel", "price-min",
}

// UIMode is the frontend display mode carried through share state.
type UIMode string

const (
	UIModeQuick     UIMode = "quick"
	UIModeOperator  UIMode = "operator"
	UIModeArchitect UIMode = "architect"
)

// UIModes is the fixed mode vocabulary; UIModeQuick is the default.
var UIModes = []UIMode{UIModeQuick, UIModeOperator, UIModeArchitect}

// UIIntent is the analyst's declared goal carried through share state.
type UIIntent string

const (
	UIIntentViability    UIIntent = "viability"
	UIIntentOperations   UIIntent = "operations"
	UIIntentArchitecture UIIntent = "architecture"
	UIIntentExecutive    UIIntent = "executive"
)

// UIIntents is the fixed intent vocabulary; UIIntentViability is the default.
var UIIntents = []UIIntent{UIIntentViability, UIIntentOperations, UIIntentArchitecture, UIIntentExecutive}

// RiskBand qualifies reliability risk.
type RiskBand string

const (
	RiskBandNone   RiskBand = "none"
	RiskBandLow    RiskBand = "low"
	RiskBandMedium RiskBand = "medium"
	RiskBandHigh   RiskBand = "high"
)

// ConfidenceTier is a data-completeness signal, independent of risk.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)

// Priority orders recommendations.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the sort weight for a priority; lower sorts first.
// Unknown priorities sink to the bottom with the low band.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Category buckets recommendations by remediation discipline.
type Category string

const (
	CategoryAll            Category = "all"
	CategoryInfrastructure Category = "infrastructure"
	CategoryPricing        Category = "pricing"
	CategoryMarketing      Category = "marketing"
	CategoryCRM            Category = "crm"
	CategoryGovernance     Category = "governance"
)

// Categories lists every accepted category filter, including the
// "all" pseudo-category.
var Categories = []Category{
	CategoryAll, CategoryInfrastructure, CategoryPricing,
	CategoryMarketing, CategoryCRM, CategoryGovernance,
}

// TechDomainSpec describes one of the six tracked technology-spend domains.
type TechDomainSpec struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// TechDomainSchema is the fixed six-domain vocabulary, in canonical order.
var TechDomainSchema = []TechDomainSpec{
	{Key: "cloud", Label: "Cloud"},
	{Key: "saas", Label: "SaaS"},
	{Key: "licensing", Label: "Licensing"},
	{Key: "private-cloud", Label: "Private Cloud"},
	{Key: "data-center", Label: "Data Center"},
	{Key: "labor", Label: "Labor"},
}

// DefaultTechDomains is the scope assumed when none is selected.
var DefaultTechDomains = []string{"cloud"}

// TechDomainKeys returns the valid domain keys in schema order.
func TechDomainKeys() []string {
	keys := make([]string, len(TechDomainSchema))
	for i, d := range TechDomainSchema {
		keys[i] = d.Key
	}
	return keys
}

// PriorityWeightBands are advisory per-domain weight ranges for the optional
// priority-index weighting mode of the normalizer.
var PriorityWeightBands = map[string][2]float64{
	"cloud":         {0.25, 0.45},
	"saas":          {0.15, 0.30},
	"licensing":     {0.08, 0.20},
	"private-cloud": {0.05, 0.20},
	"data-center":   {0.03, 0.15},
	"labor":         {0.08, 0.20},
}

// BalancedPriorityProfile is a reference weighting profile summing to 1.
var BalancedPriorityProfile = map[string]float64{
	"cloud":         0.35,
	"saas":          0.20,
	"licensing":     0.12,
	"private-cloud": 0.13,
	"data-center":   0.08,
	"labor":         0.12,
}

const (
	// DefaultRefClients is the calibration client count used whenever the
	// caller does not supply nRef.
	DefaultRefClients = 100.0

	// DefaultMinutesInMonth is 30 days expressed in minutes.
	DefaultMinutesInMonth = 30 * 24 * 60

	// ShareStateVersion is the current share-state schema version.
	ShareStateVersion = 1
)
