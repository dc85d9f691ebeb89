// Package recommend filters and ranks remediation advice. The output is the
// stable priority-ordered union of per-request strategic items and the static
// catalog, filtered by health zone, provider selection, and category.
package recommend

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"finops-calc/core/health"
	"finops-calc/core/model"
	"finops-calc/core/scan"
	"finops-calc/core/types"
)

// Category inference probes run in order; the first match wins and anything
// unmatched falls through to infrastructure.
var (
	crmPattern        = regexp.MustCompile(`(crm|churn|renewal|upsell|cross-sell|retention)`)
	pricingPattern    = regexp.MustCompile(`(pricing|price floor|arpu|package|fee increase|realized price)`)
	marketingPattern  = regexp.MustCompile(`(marketing|funnel|mql|sql|cac|demand generation|acquisition|sales motion)`)
	governancePattern = regexp.MustCompile(`(tagging|forecast|budget|anomaly|governance|allocation|guardrail|policy)`)
)

// InferCategory resolves an item's category. An explicit category is trusted
// ("all" degrades to infrastructure); otherwise the lowercased title, desc,
// and action text is probed.
func InferCategory(rec types.Recommendation) types.Category {
	if rec.Category != "" {
		if rec.Category == types.CategoryAll {
			return types.CategoryInfrastructure
		}
		return rec.Category
	}

	haystack := strings.ToLower(rec.Title + " " + rec.Desc + " " + rec.Action)
	switch {
	case crmPattern.MatchString(haystack):
		return types.CategoryCRM
	case pricingPattern.MatchString(haystack):
		return types.CategoryPricing
	case marketingPattern.MatchString(haystack):
		return types.CategoryMarketing
	case governancePattern.MatchString(haystack):
		return types.CategoryGovernance
	default:
		return types.CategoryInfrastructure
	}
}

// Context carries the scanner-derived facts strategic synthesis needs.
type Context struct {
	NSample              float64
	ARPUUsed             *float64
	BreakEvenN           *int
	MinUnitCostN         int
	MinUnitCostPerClient *float64
}

// BuildContext derives the strategic context from canonical inputs and a
// derived model.
func BuildContext(in types.CanonicalInput, d model.Derivation) Context {
	arpuUsed := health.ResolveARPU(in, d)
	economics := scan.EconomicRange(arpuUsed, scan.SearchCeiling(d.Model), d.Model)
	return Context{
		NSample:              in.RefClients(),
		ARPUUsed:             arpuUsed,
		BreakEvenN:           economics.BreakEvenN,
		MinUnitCostN:         economics.MinUnitCostN,
		MinUnitCostPerClient: economics.MinUnitCostPerClient,
	}
}

// Strategic synthesizes per-request items from scanner output. When no
// break-even exists and ARPU sits below the cost floor, the response is a
// three-lever plan (pricing, marketing, CRM). When break-even exists but the
// current client count is short of it, a single go-to-market item quantifies
// the gap.
func Strategic(zone types.Zone, ctx Context) []types.Recommendation {
	if !zone.IsActionable() || ctx.ARPUUsed == nil {
		return nil
	}

	arpu := *ctx.ARPUUsed
	floor := 0.0
	if ctx.MinUnitCostPerClient != nil {
		floor = *ctx.MinUnitCostPerClient
	}
	minCostGap := math.Max(0, floor-arpu)
	upliftPct := 0.0
	if arpu > 0 {
		upliftPct = minCostGap / arpu * 100
	}

	if ctx.BreakEvenN == nil && minCostGap > 0 {
		return []types.Recommendation{
			{
				Title:     "Raise realized ARPU above cost floor",
				Providers: []types.Provider{},
				Desc:      fmt.Sprintf("Current ARPU (%.2f per client) is below the model floor (%.2f per client near n~%d).", arpu, floor, ctx.MinUnitCostN),
				Action:    fmt.Sprintf("Improve realized price by at least %.2f per client (%.1f%%) via packaging tiers, add-ons, annual commitment discounts, or selective fee increases.", minCostGap, upliftPct),
				Category:  types.CategoryPricing,
				Zones:     []types.Zone{zone},
				Priority:  types.PriorityHigh,
			},
			{
				Title:     "Marketing + funnel acceleration toward efficient scale",
				Providers: []types.Provider{},
				Desc:      fmt.Sprintf("Client volume still matters: unit cost bottoms near n~%d. Demand generation should align with this operating band.", ctx.MinUnitCostN),
				Action:    "Run a 90-day growth motion (paid + partner + referral), improve MQL->SQL->Win conversion in CRM, and review CAC payback against the ARPU gap weekly.",
				Category:  types.CategoryMarketing,
				Zones:     []types.Zone{zone},
				Priority:  types.PriorityMedium,
			},
			{
				Title:     "CRM retention and expansion revenue playbook",
				Providers: []types.Provider{},
				Desc:      "When cost cuts are near limit, expansion and retention become the fastest margin levers.",
				Action:    fmt.Sprintf("Launch upsell/cross-sell journeys, renewal controls, and churn-prevention triggers to add at least %.2f per client in net revenue over the next cycle.", minCostGap),
				Category:  types.CategoryCRM,
				Zones:     []types.Zone{zone},
				Priority:  types.PriorityHigh,
			},
		}
	}

	if ctx.BreakEvenN != nil && ctx.NSample < float64(*ctx.BreakEvenN) {
		gapClients := int(math.Max(1, math.Round(float64(*ctx.BreakEvenN)-ctx.NSample)))
		return []types.Recommendation{
			{
				Title:     "Close break-even client gap with GTM execution",
				Providers: []types.Provider{},
				Desc:      fmt.Sprintf("You are %d clients below break-even volume (%d).", gapClients, *ctx.BreakEvenN),
				Action:    "Prioritize pipeline quality, onboarding speed, and CRM conversion stages to move qualified demand into paying clients faster while protecting margin.",
				Category:  types.CategoryMarketing,
				Zones:     []types.Zone{zone},
				Priority:  types.PriorityHigh,
			},
		}
	}

	return nil
}

// Filter describes one recommendation query.
type Filter struct {
	Zone      types.Zone
	Providers []types.Provider
	Category  types.Category
}

// Build returns the prioritized advice list for a query. Strategic items are
// ranked ahead of catalog peers at equal priority because sorting is stable
// and they are prepended. An unactionable zone yields an empty list.
func Build(f Filter, strategic []types.Recommendation) []types.Recommendation {
	if !f.Zone.IsActionable() {
		return []types.Recommendation{}
	}

	categoryKey := f.Category
	if categoryKey == "" {
		categoryKey = types.CategoryAll
	}

	pool := make([]types.Recommendation, 0, len(strategic)+len(catalog))
	pool = append(pool, strategic...)
	pool = append(pool, catalog...)

	out := make([]types.Recommendation, 0, len(pool))
	for _, rec := range pool {
		rec.Category = InferCategory(rec)
		if !rec.AppliesTo(f.Zone) {
			continue
		}
		if !rec.MatchesProviders(f.Providers) {
			continue
		}
		if categoryKey != types.CategoryAll && rec.Category != categoryKey {
			continue
		}
		rec.Zones = nil
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Weight() < out[j].Priority.Weight()
	})
	return out
}
