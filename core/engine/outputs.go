package engine

import (
	"math"

	"finops-calc/core/curve"
	"finops-calc/core/model"
	"finops-calc/core/normalize"
	"finops-calc/core/reliability"
	"finops-calc/core/scan"
	"finops-calc/core/types"
)

// ComputeOutputs evaluates the aggregated economics for one request at the
// reference client count. Figures that the supplied inputs cannot support
// stay nil.
//
// The reliability basis cost prefers the multi-domain normalization total
// over the single-curve model total: when the caller declares spend across
// domains, reliability exposure should scale with the whole budget, not just
// the cloud curve.
func ComputeOutputs(in types.CanonicalInput, d model.Derivation) types.Outputs {
	m := d.Model
	nSample := in.RefClients()

	arpuUsed := resolveARPU(in, d)
	hasARPU := arpuUsed != nil
	hasInfra := in.InfraTotal != nil
	hasStartupPrice := in.StartupTargetPrice != nil && *in.StartupTargetPrice > 0
	hasStartupClients := in.StartupTargetClients != nil && *in.StartupTargetClients > 0
	hasAnyCostInput := in.HasCostBasis()

	infraRaw := curve.InfraRaw(m, nSample)
	infraCUD := curve.InfraCUD(m, nSample)
	total := curve.Total(m, nSample)

	revenue := 0.0
	if hasARPU {
		revenue = *arpuUsed * nSample
	}
	vcpu := infraRaw / nSample
	minPricePerClient := (total / nSample) * (1 + m.M)

	out := types.Outputs{}

	if hasAnyCostInput {
		out.MinPricePerClient = types.Float(minPricePerClient)
	}
	if hasInfra {
		out.VCPU = types.Float(vcpu)
		out.CUDMonthlySaving = types.Float(infraRaw - infraCUD)
	}
	if hasInfra && hasARPU {
		out.ContributionMargin = types.Float(*arpuUsed - vcpu)
		if infraRaw > 0 {
			out.CCER = types.Float(revenue / infraRaw)
		}
	}

	searchMax := scan.SearchCeiling(m)
	economics := scan.EconomicRange(arpuUsed, searchMax, m)

	if hasStartupPrice && hasAnyCostInput {
		out.RequiredClientsAtTargetPrice = scan.RequiredClientsForTargetPrice(*in.StartupTargetPrice, searchMax, m)
	}
	if hasStartupClients && hasAnyCostInput {
		out.RequiredPriceAtTargetClients = types.Float(curve.MinPrice(m, *in.StartupTargetClients))
	}

	var reqClientsFromClientsMode *int
	if d.ARPUMode == types.ARPUStartupClients && out.RequiredPriceAtTargetClients != nil {
		reqClientsFromClientsMode = scan.RequiredClientsForTargetPrice(*out.RequiredPriceAtTargetClients, searchMax, m)
	}

	snapshot := normalize.Snapshot(in)
	out.Normalization = snapshot.Report()

	budgetBasisCost := total
	if snapshot.TotalMonthly > 0 {
		budgetBasisCost = snapshot.TotalMonthly
	}
	rel := reliability.Compute(in, budgetBasisCost)
	out.Reliability = &rel
	relLoad := rel.MonthlyLoad()

	if hasARPU && hasAnyCostInput {
		switch {
		case d.ARPUMode == types.ARPUStartupPrice && out.RequiredClientsAtTargetPrice != nil:
			out.BreakEvenClients = out.RequiredClientsAtTargetPrice
		case d.ARPUMode == types.ARPUStartupClients && reqClientsFromClientsMode != nil:
			out.BreakEvenClients = reqClientsFromClientsMode
		case economics.BreakEvenN != nil && float64(*economics.BreakEvenN) <= m.NMax:
			out.BreakEvenClients = economics.BreakEvenN
		}
	}

	if hasStartupClients && out.RequiredPriceAtTargetClients != nil {
		price := *out.RequiredPriceAtTargetClients
		if hasStartupPrice {
			price = *in.StartupTargetPrice
		}
		out.TargetMonthlyRevenue = types.Float(price * *in.StartupTargetClients)
	} else if hasStartupPrice && out.RequiredClientsAtTargetPrice != nil {
		out.TargetMonthlyRevenue = types.Float(*in.StartupTargetPrice * float64(*out.RequiredClientsAtTargetPrice))
	}

	if rel.ReliabilityAdjustedCostMonthly != nil {
		adjusted := *rel.ReliabilityAdjustedCostMonthly
		if hasARPU {
			out.ReliabilityAdjustedProfit = types.Float(revenue - adjusted)
		}
		required := (adjusted / math.Max(1, nSample)) * (1 + m.M)
		out.RequiredARPUWithReliability = types.Float(required)
		if hasARPU {
			out.ARPUUpliftWithReliability = types.Float(math.Max(0, required-*arpuUsed))
		}
	}

	if hasARPU && hasAnyCostInput && relLoad != nil {
		out.RequiredClientsWithRel = scan.RequiredClientsForTargetPriceWithReliability(*arpuUsed, searchMax, *relLoad, m)
		if out.RequiredClientsWithRel != nil {
			extra := int(math.Max(0, math.Ceil(float64(*out.RequiredClientsWithRel)-nSample)))
			out.ExtraClientsWithRel = &extra
		}
	}

	return out
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
