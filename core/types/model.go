// Package types - Economic model snapshot
package types

// EconomicModel is the immutable parameter snapshot driving every curve.
// K scales the negative power-law development cost term (per-client dev
// cost shrinks with scale at exponent a); c and b parameterize the
// super-linear infrastructure cost term; g is the fraction of infra cost
// surviving committed-use discounting; m is the target markup over unit
// cost; nMax bounds the simulated scale.
//
// A model is derived once per request and never mutated afterward.
type EconomicModel struct {
	K    float64 `json:"K"`
	A    float64 `json:"a"`
	C    float64 `json:"c"`
	B    float64 `json:"b"`
	G    float64 `json:"g"`
	ARPU float64 `json:"ARPU"`
	M    float64 `json:"m"`
	NMax float64 `json:"nMax"`
}

// ARPUMode records how the effective ARPU was resolved.
type ARPUMode string

const (
	// ARPUManual means an explicit ARPU figure was supplied.
	ARPUManual ARPUMode = "manual"

	// ARPUStartupPrice means ARPU was taken from a target price.
	ARPUStartupPrice ARPUMode = "startup-price"

	// ARPUStartupClients means ARPU was back-solved as the minimum
	// sustainable price at a target client count.
	ARPUStartupClients ARPUMode = "startup-clients"

	// ARPUMissing means no ARPU could be resolved.
	ARPUMissing ARPUMode = "missing"
)
