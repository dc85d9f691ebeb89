// Package inputs converts untrusted raw key/value payloads into the typed
// canonical input record. Canonicalization is total: it never fails, it only
// degrades unknown or invalid fields to absence or documented defaults.
// Callers rely on that silent degradation instead of validation errors.
package inputs

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"finops-calc/core/types"
)

// numberSpec is the per-field validation rule for a numeric input.
type numberSpec struct {
	min     *float64
	max     *float64
	integer bool
}

func bound(v float64) *float64 { return &v }

// toNumber coerces an arbitrary raw value to a finite float64. Empty strings,
// nils, non-numeric text, NaN, and infinities all coerce to absence.
func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return toNumber(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return toNumber(f)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return toNumber(f)
	default:
		return 0, false
	}
}

// normalizeNumber applies coercion, optional integer rounding, and range
// rejection. Out-of-range values become absent, never clamped.
func normalizeNumber(value interface{}, spec numberSpec) *float64 {
	n, ok := toNumber(value)
	if !ok {
		return nil
	}
	if spec.integer {
		n = math.Round(n)
	}
	if spec.min != nil && n < *spec.min {
		return nil
	}
	if spec.max != nil && n > *spec.max {
		return nil
	}
	return &n
}

// normalizeToggle accepts booleans, the number 1, and the textual spellings
// "on", "true", and "1" (case-insensitive). Everything else is false.
func normalizeToggle(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int:
		return v == 1
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1":
			return true
		}
	}
	return false
}

// normalizeCurrency matches case-insensitively against the accepted currency
// labels; anything else is absent.
func normalizeCurrency(value interface{}) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return nil
	}
	for _, c := range types.Currencies {
		if upper == string(c) {
			return &upper
		}
	}
	return nil
}

// stringSlice flattens []string or []interface{}-of-strings raw values.
// Non-array values and non-string entries yield nothing.
func stringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// filterVocabulary keeps entries found in vocab, deduplicated and in caller
// order.
func filterVocabulary(entries []string, vocab []string) []string {
	seen := make(map[string]bool, len(entries))
	out := []string{}
	for _, entry := range entries {
		if seen[entry] {
			continue
		}
		for _, valid := range vocab {
			if entry == valid {
				seen[entry] = true
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

// NormalizeTechDomains filters a raw value to the fixed six-domain
// vocabulary. Empty or fully-invalid selections fall back to the default
// scope.
func NormalizeTechDomains(value interface{}) []string {
	entries, ok := stringSlice(value)
	if !ok {
		return append([]string{}, types.DefaultTechDomains...)
	}
	filtered := filterVocabulary(entries, types.TechDomainKeys())
	if len(filtered) == 0 {
		return append([]string{}, types.DefaultTechDomains...)
	}
	return filtered
}

// NormalizeProviders filters a raw value to the fixed provider vocabulary.
// Invalid or absent selections yield an empty set, never a default.
func NormalizeProviders(value interface{}) []types.Provider {
	entries, ok := stringSlice(value)
	if !ok {
		return []types.Provider{}
	}
	vocab := make([]string, len(types.Providers))
	for i, p := range types.Providers {
		vocab[i] = string(p)
	}
	filtered := filterVocabulary(entries, vocab)
	out := make([]types.Provider, len(filtered))
	for i, s := range filtered {
		out[i] = types.Provider(s)
	}
	return out
}

// NormalizeHiddenCurves filters a raw value to the fixed curve-key
// vocabulary, yielding an empty set when nothing valid remains.
func NormalizeHiddenCurves(value interface{}) []types.CurveKey {
	entries, ok := stringSlice(value)
	if !ok {
		return []types.CurveKey{}
	}
	vocab := make([]string, len(types.CurveKeys))
	for i, k := range types.CurveKeys {
		vocab[i] = string(k)
	}
	filtered := filterVocabulary(entries, vocab)
	out := make([]types.CurveKey, len(filtered))
	for i, s := range filtered {
		out[i] = types.CurveKey(s)
	}
	return out
}

// NormalizeUIMode falls back to the quick mode for anything outside the
// vocabulary.
func NormalizeUIMode(value interface{}) types.UIMode {
	if s, ok := value.(string); ok {
		for _, m := range types.UIModes {
			if s == string(m) {
				return m
			}
		}
	}
	return types.UIModeQuick
}

// NormalizeUIIntent falls back to the viability intent for anything outside
// the vocabulary.
func NormalizeUIIntent(value interface{}) types.UIIntent {
	if s, ok := value.(string); ok {
		for _, i := range types.UIIntents {
			if s == string(i) {
				return i
			}
		}
	}
	return types.UIIntentViability
}

// NormalizeCategory falls back to the "all" pseudo-category for anything
// outside the vocabulary.
func NormalizeCategory(value interface{}) types.Category {
	if s, ok := value.(string); ok {
		for _, c := range types.Categories {
			if s == string(c) {
				return c
			}
		}
	}
	return types.CategoryAll
}

// Canonicalize converts a raw payload into the typed canonical record.
// It is a total function: every field independently degrades to absence
// or its default when invalid.
func Canonicalize(raw types.RawInput) types.CanonicalInput {
	if raw == nil {
		raw = types.RawInput{}
	}

	nonNegative := numberSpec{min: bound(0)}

	return types.CanonicalInput{
		NRef:                 normalizeNumber(raw["nRef"], numberSpec{min: bound(1), max: bound(100000), integer: true}),
		Currency:             normalizeCurrency(raw["currency"]),
		DevPerClient:         normalizeNumber(raw["devPerClient"], nonNegative),
		InfraTotal:           normalizeNumber(raw["infraTotal"], nonNegative),
		ARPU:                 normalizeNumber(raw["ARPU"], nonNegative),
		StartupTargetPrice:   normalizeNumber(raw["startupTargetPrice"], nonNegative),
		StartupTargetClients: normalizeNumber(raw["startupTargetClients"], numberSpec{min: bound(1), integer: true}),
		CUDPct:               normalizeNumber(raw["cudPct"], numberSpec{min: bound(0), max: bound(95)}),
		Margin:               normalizeNumber(raw["margin"], numberSpec{min: bound(0), max: bound(200)}),
		NMax:                 normalizeNumber(raw["nMax"], numberSpec{min: bound(10), max: bound(100000), integer: true}),
		TechDomains:          NormalizeTechDomains(raw["techDomains"]),
		CostSaaS:             normalizeNumber(raw["costSaaS"], nonNegative),
		CostLicensing:        normalizeNumber(raw["costLicensing"], nonNegative),
		CostPrivateCloud:     normalizeNumber(raw["costPrivateCloud"], nonNegative),
		CostDataCenter:       normalizeNumber(raw["costDataCenter"], nonNegative),
		CostLabor:            normalizeNumber(raw["costLabor"], nonNegative),

		ReliabilityEnabled:                  normalizeToggle(raw["reliabilityEnabled"]),
		SLOTargetAvailabilityPct:            normalizeNumber(raw["sloTargetAvailabilityPct"], numberSpec{min: bound(0), max: bound(100)}),
		SLIObservedAvailabilityPct:          normalizeNumber(raw["sliObservedAvailabilityPct"], numberSpec{min: bound(0), max: bound(100)}),
		IncidentCountMonthly:                normalizeNumber(raw["incidentCountMonthly"], numberSpec{min: bound(0), integer: true}),
		MTTRHours:                           normalizeNumber(raw["mttrHours"], nonNegative),
		IncidentBlendedHourlyRate:           normalizeNumber(raw["incidentBlendedHourlyRate"], nonNegative),
		CriticalRevenuePerMinute:            normalizeNumber(raw["criticalRevenuePerMinute"], nonNegative),
		ARRExposedMonthly:                   normalizeNumber(raw["arrExposedMonthly"], nonNegative),
		SLAPenaltyRatePerBreachPointMonthly: normalizeNumber(raw["slaPenaltyRatePerBreachPointMonthly"], nonNegative),
		ReliabilityInvestmentMonthly:        normalizeNumber(raw["reliabilityInvestmentMonthly"], nonNegative),
		MinutesInMonth:                      normalizeNumber(raw["minutesInMonth"], numberSpec{min: bound(1), integer: true}),
		IncidentFTECount:                    normalizeNumber(raw["incidentFteCount"], nonNegative),
		CriticalTrafficSharePct:             normalizeNumber(raw["criticalTrafficSharePct"], numberSpec{min: bound(0), max: bound(100)}),
		ChurnSensitivityPct:                 normalizeNumber(raw["churnSensitivityPct"], numberSpec{min: bound(0), max: bound(100)}),
		BreachProbabilityPct:                normalizeNumber(raw["breachProbabilityPct"], numberSpec{min: bound(0), max: bound(100)}),
		SLAPenaltyMonthly:                   normalizeNumber(raw["slaPenaltyMonthly"], nonNegative),
	}
}
