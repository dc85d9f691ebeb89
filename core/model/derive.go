// Package model derives the per-request economic model from canonical
// inputs. Derivation starts from fixed defaults and calibrates the power-law
// coefficients so the curves pass through any observed cost figures at the
// reference client count.
package model

import (
	"fmt"
	"math"

	"finops-calc/core/curve"
	"finops-calc/core/types"
	"finops-calc/internal/money"
)

// Defaults returns the baseline model parameters. Calibration overwrites
// individual parameters; anything the caller never supplies keeps its
// default.
func Defaults() types.EconomicModel {
	return types.EconomicModel{
		K:    50000,
		A:    0.45,
		C:    0.8,
		B:    1.28,
		G:    0.68,
		ARPU: 30,
		M:    0.15,
		NMax: 1000,
	}
}

// Derivation is the result of deriving a model: the immutable parameter
// snapshot, the resolved ARPU (nil when unresolvable), how it was resolved,
// and a trace of the calibration steps taken.
type Derivation struct {
	Model         types.EconomicModel
	EffectiveARPU *float64
	ARPUMode      types.ARPUMode
	Derivations   []string
}

// Derive computes the economic model for one request.
//
// ARPU resolution is a deliberate precedence chain: an explicit ARPU always
// wins; a target price is the next-best observed figure; back-solving from a
// target client count is a goal-seek estimate and only applies when some cost
// basis exists to solve against.
func Derive(in types.CanonicalInput) Derivation {
	m := Defaults()
	var effectiveARPU *float64
	mode := types.ARPUMissing
	derivations := []string{}

	if in.NMax != nil && *in.NMax >= 10 {
		m.NMax = *in.NMax
	}
	if in.Margin != nil {
		m.M = math.Max(0, *in.Margin/100)
	}
	if in.CUDPct != nil {
		m.G = math.Max(0.01, 1-*in.CUDPct/100)
		derivations = append(derivations, fmt.Sprintf("g=%s", money.Amount(m.G)))
	}

	refN := in.RefClients()

	if in.DevPerClient != nil && *in.DevPerClient >= 0 {
		// Undo the power law at the reference point so dev(refN) equals the
		// observed per-client figure times refN.
		m.K = *in.DevPerClient * math.Pow(refN, m.A)
		derivations = append(derivations, fmt.Sprintf("K=%s", money.Whole(m.K)))
	}

	if in.InfraTotal != nil && *in.InfraTotal >= 0 {
		m.C = *in.InfraTotal / math.Pow(refN, m.B)
		derivations = append(derivations, fmt.Sprintf("c=%s@n=%d", money.Rate(m.C), int(refN)))
	}

	switch {
	case in.ARPU != nil && *in.ARPU > 0:
		m.ARPU = *in.ARPU
		effectiveARPU = types.Float(*in.ARPU)
		mode = types.ARPUManual

	case in.StartupTargetPrice != nil && *in.StartupTargetPrice > 0:
		m.ARPU = *in.StartupTargetPrice
		effectiveARPU = types.Float(*in.StartupTargetPrice)
		mode = types.ARPUStartupPrice
		derivations = append(derivations, fmt.Sprintf("ARPU~%s(startup-price)", money.Amount(m.ARPU)))

	case in.StartupTargetClients != nil && *in.StartupTargetClients > 0 && in.HasCostBasis():
		m.ARPU = curve.MinPrice(m, *in.StartupTargetClients)
		effectiveARPU = types.Float(m.ARPU)
		mode = types.ARPUStartupClients
		derivations = append(derivations, fmt.Sprintf("ARPU~%s@clients=%d",
			money.Amount(m.ARPU), int(math.Round(*in.StartupTargetClients))))
	}

	return Derivation{
		Model:         m,
		EffectiveARPU: effectiveARPU,
		ARPUMode:      mode,
		Derivations:   derivations,
	}
}
