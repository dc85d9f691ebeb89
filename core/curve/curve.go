// Package curve holds the pure per-point cost formulas. Every function maps
// a client count to a monetary figure under an immutable model; client counts
// are floored at 1 to avoid the power-law singularity at zero.
package curve

import (
	"math"

	"finops-calc/core/types"
)

// cudExponentRatio shrinks the discounted-infra exponent slightly below the
// raw one: committed-use coverage is partial, so the discounted curve decays
// a touch slower than raw spend grows.
const cudExponentRatio = 0.96

// Dev returns the monthly development cost at n clients: K·n^-a.
func Dev(m types.EconomicModel, n float64) float64 {
	return m.K * math.Pow(math.Max(1, n), -m.A)
}

// InfraRaw returns the undiscounted monthly infrastructure cost: c·n^b.
func InfraRaw(m types.EconomicModel, n float64) float64 {
	return m.C * math.Pow(math.Max(1, n), m.B)
}

// InfraCUD returns the committed-use-discounted infrastructure cost:
// g·c·n^(0.96·b).
func InfraCUD(m types.EconomicModel, n float64) float64 {
	return m.G * m.C * math.Pow(math.Max(1, n), m.B*cudExponentRatio)
}

// Total returns the total modeled monthly cost (dev plus raw infra).
func Total(m types.EconomicModel, n float64) float64 {
	safeN := math.Max(1, n)
	return m.K*math.Pow(safeN, -m.A) + m.C*math.Pow(safeN, m.B)
}

// MinPrice returns the minimum sustainable per-client price at n clients:
// unit cost marked up by the target margin.
func MinPrice(m types.EconomicModel, n float64) float64 {
	safeN := math.Max(1, n)
	return (Total(m, safeN) / safeN) * (1 + m.M)
}

// BuildSeries samples the curves at evenly spaced client counts from 0 to
// nMax, for charting. The sample count is floored at 10; a series always has
// points+1 rows. When reliabilityLoadMonthly is non-nil its non-negative
// value is overlaid as a constant monthly load on total and profit.
//
// The series exists for visualization only. Root-finding must use the
// scanner, never a sampled series.
func BuildSeries(m types.EconomicModel, points int, reliabilityLoadMonthly *float64) []types.CurvePoint {
	var relLoad float64
	hasOverlay := reliabilityLoadMonthly != nil
	if hasOverlay {
		relLoad = math.Max(0, *reliabilityLoadMonthly)
	}

	totalPoints := points
	if totalPoints < 10 {
		totalPoints = 10
	}

	rows := make([]types.CurvePoint, 0, totalPoints+1)
	for i := 0; i <= totalPoints; i++ {
		n := math.Max(1, float64(i)/float64(totalPoints)*m.NMax)
		dev := Dev(m, n)
		infraRaw := InfraRaw(m, n)
		infraCUD := InfraCUD(m, n)
		total := dev + infraRaw
		revenue := m.ARPU * n
		profit := revenue - total
		priceMin := total * (1 + m.M)

		point := types.CurvePoint{
			N:        n,
			Dev:      dev,
			InfraRaw: infraRaw,
			InfraCUD: infraCUD,
			Total:    total,
			Revenue:  revenue,
			Profit:   profit,
			PriceMin: priceMin,
		}
		if hasOverlay {
			totalRel := total + relLoad
			point.TotalRel = types.Float(totalRel)
			point.ProfitRel = types.Float(revenue - totalRel)
		}
		rows = append(rows, point)
	}
	return rows
}
