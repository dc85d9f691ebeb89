// Package types - Canonical input record
package types

// RawInput is the untrusted key/value payload supplied by a caller. Values
// may be numbers, strings, booleans, or arrays in any mix; canonicalization
// never rejects a RawInput, it only degrades bad fields to absence.
type RawInput map[string]interface{}

// CanonicalInput is the typed, range-checked view of a RawInput. Every
// numeric field is either a finite value inside its documented range or nil
// ("absent"). Enum and array fields are already reduced to the fixed
// vocabularies in this package.
type CanonicalInput struct {
	NRef                 *float64 `json:"nRef"`
	Currency             *string  `json:"currency"`
	DevPerClient         *float64 `json:"devPerClient"`
	InfraTotal           *float64 `json:"infraTotal"`
	ARPU                 *float64 `json:"ARPU"`
	StartupTargetPrice   *float64 `json:"startupTargetPrice"`
	StartupTargetClients *float64 `json:"startupTargetClients"`
	CUDPct               *float64 `json:"cudPct"`
	Margin               *float64 `json:"margin"`
	NMax                 *float64 `json:"nMax"`
	TechDomains          []string `json:"techDomains"`

	// Per-domain monthly spend, beyond the cloud figure carried by InfraTotal.
	CostSaaS         *float64 `json:"costSaaS"`
	CostLicensing    *float64 `json:"costLicensing"`
	CostPrivateCloud *float64 `json:"costPrivateCloud"`
	CostDataCenter   *float64 `json:"costDataCenter"`
	CostLabor        *float64 `json:"costLabor"`

	// Reliability modeling inputs; ignored unless ReliabilityEnabled.
	ReliabilityEnabled                  bool     `json:"reliabilityEnabled"`
	SLOTargetAvailabilityPct            *float64 `json:"sloTargetAvailabilityPct"`
	SLIObservedAvailabilityPct          *float64 `json:"sliObservedAvailabilityPct"`
	IncidentCountMonthly                *float64 `json:"incidentCountMonthly"`
	MTTRHours                           *float64 `json:"mttrHours"`
	IncidentBlendedHourlyRate           *float64 `json:"incidentBlendedHourlyRate"`
	CriticalRevenuePerMinute            *float64 `json:"criticalRevenuePerMinute"`
	ARRExposedMonthly                   *float64 `json:"arrExposedMonthly"`
	SLAPenaltyRatePerBreachPointMonthly *float64 `json:"slaPenaltyRatePerBreachPointMonthly"`
	ReliabilityInvestmentMonthly        *float64 `json:"reliabilityInvestmentMonthly"`
	MinutesInMonth                      *float64 `json:"minutesInMonth"`
	IncidentFTECount                    *float64 `json:"incidentFteCount"`
	CriticalTrafficSharePct             *float64 `json:"criticalTrafficSharePct"`
	ChurnSensitivityPct                 *float64 `json:"churnSensitivityPct"`
	BreachProbabilityPct                *float64 `json:"breachProbabilityPct"`
	SLAPenaltyMonthly                   *float64 `json:"slaPenaltyMonthly"`
}

// RefClients returns the reference client count, falling back to
// DefaultRefClients when nRef is absent or non-positive.
func (in *CanonicalInput) RefClients() float64 {
	if in.NRef != nil && *in.NRef > 0 {
		return *in.NRef
	}
	return DefaultRefClients
}

// HasExplicitRef reports whether the reference client count was supplied
// rather than defaulted.
func (in *CanonicalInput) HasExplicitRef() bool {
	return in.NRef != nil && *in.NRef > 0
}

// HasCostBasis reports whether any cost calibration figure exists.
func (in *CanonicalInput) HasCostBasis() bool {
	return in.DevPerClient != nil || in.InfraTotal != nil
}

// DomainMonthly returns the supplied monthly spend for a tech-domain key,
// or nil when the domain has no figure. The cloud domain is carried by
// InfraTotal; the rest map to their cost* fields.
func (in *CanonicalInput) DomainMonthly(key string) *float64 {
	switch key {
	case "cloud":
		return in.InfraTotal
	case "saas":
		return in.CostSaaS
	case "licensing":
		return in.CostLicensing
	case "private-cloud":
		return in.CostPrivateCloud
	case "data-center":
		return in.CostDataCenter
	case "labor":
		return in.CostLabor
	}
	return nil
}

// Float returns a pointer to v. Convenience for building inputs in tests
// and adapters.
func Float(v float64) *float64 {
	return &v
}

// Str returns a pointer to s.
func Str(s string) *string {
	return &s
}
