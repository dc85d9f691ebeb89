// Package sharestate implements the reversible state codec. A share token is
// the URL-safe base64 form of a compact JSON snapshot; encoding normalizes
// the payload through the same vocabulary filters as calculation inputs, so
// a decoded token is always safe to feed back in.
package sharestate

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"finops-calc/core/inputs"
	"finops-calc/core/types"
	"finops-calc/internal/errors"
)

// Encode serializes any JSON-encodable payload into a URL-safe token with
// padding stripped.
func Encode(payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errors.NewEncodingError("Failed to encode state payload.", err)
	}
	token := base64.StdEncoding.EncodeToString(raw)
	token = strings.ReplaceAll(token, "+", "-")
	token = strings.ReplaceAll(token, "/", "_")
	return strings.TrimRight(token, "="), nil
}

// Decode reverses Encode. Any syntactically valid token holding a JSON
// object decodes; there is no schema or version check beyond that.
func Decode(token string) (map[string]interface{}, error) {
	if token == "" {
		return nil, errors.NewStateError("Invalid or corrupted state token.", nil)
	}
	normalized := strings.ReplaceAll(token, "-", "+")
	normalized = strings.ReplaceAll(normalized, "_", "/")
	if pad := len(normalized) % 4; pad != 0 {
		normalized += strings.Repeat("=", 4-pad)
	}

	raw, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, errors.NewStateError("Invalid or corrupted state token.", err)
	}
	var state map[string]interface{}
	if err := json.Unmarshal(raw, &state); err != nil || state == nil {
		return nil, errors.NewStateError("Invalid or corrupted state token.", err)
	}
	return state, nil
}

// NormalizePayload reduces an arbitrary payload to the versioned snapshot.
// The input map may come from an untrusted decoded token; every field passes
// through the shared vocabulary filters.
func NormalizePayload(payload map[string]interface{}) types.ShareState {
	if payload == nil {
		payload = map[string]interface{}{}
	}

	inputState, ok := payload["i"].(map[string]interface{})
	if !ok {
		inputState, _ = payload["inputs"].(map[string]interface{})
	}

	return types.ShareState{
		V:  types.ShareStateVersion,
		UI: inputs.NormalizeUIIntent(payload["ui"]),
		UM: inputs.NormalizeUIMode(payload["um"]),
		I:  SerializeRawInputs(inputState),
		TD: inputs.NormalizeTechDomains(payload["td"]),
		P:  providerStrings(inputs.NormalizeProviders(payload["p"])),
		H:  curveStrings(inputs.NormalizeHiddenCurves(payload["h"])),
	}
}

// SerializeRawInputs flattens a raw input map into the string form carried
// inside tokens. The techDomains selection travels in its own field; the
// currency label is dropped when absent or at the default.
func SerializeRawInputs(raw map[string]interface{}) map[string]string {
	state := map[string]string{}
	for key, value := range raw {
		if key == "techDomains" {
			continue
		}
		if key == "currency" {
			if c := currencyString(value); c != "" {
				state[key] = c
			}
			continue
		}
		if s, ok := scalarString(value); ok {
			state[key] = s
		}
	}
	return state
}

// SerializeCanonical flattens a canonical input record the same way, with
// field presence following canonicalization (absent fields are omitted, the
// reliability toggle is always carried).
func SerializeCanonical(in types.CanonicalInput) map[string]string {
	state := map[string]string{}
	put := func(key string, v *float64) {
		if v != nil {
			state[key] = strconv.FormatFloat(*v, 'f', -1, 64)
		}
	}

	put("nRef", in.NRef)
	if in.Currency != nil && *in.Currency != string(types.DefaultCurrency) {
		state["currency"] = *in.Currency
	}
	put("devPerClient", in.DevPerClient)
	put("infraTotal", in.InfraTotal)
	put("ARPU", in.ARPU)
	put("startupTargetPrice", in.StartupTargetPrice)
	put("startupTargetClients", in.StartupTargetClients)
	put("cudPct", in.CUDPct)
	put("margin", in.Margin)
	put("nMax", in.NMax)
	put("costSaaS", in.CostSaaS)
	put("costLicensing", in.CostLicensing)
	put("costPrivateCloud", in.CostPrivateCloud)
	put("costDataCenter", in.CostDataCenter)
	put("costLabor", in.CostLabor)

	state["reliabilityEnabled"] = strconv.FormatBool(in.ReliabilityEnabled)
	put("sloTargetAvailabilityPct", in.SLOTargetAvailabilityPct)
	put("sliObservedAvailabilityPct", in.SLIObservedAvailabilityPct)
	put("incidentCountMonthly", in.IncidentCountMonthly)
	put("mttrHours", in.MTTRHours)
	put("incidentBlendedHourlyRate", in.IncidentBlendedHourlyRate)
	put("criticalRevenuePerMinute", in.CriticalRevenuePerMinute)
	put("arrExposedMonthly", in.ARRExposedMonthly)
	put("slaPenaltyRatePerBreachPointMonthly", in.SLAPenaltyRatePerBreachPointMonthly)
	put("reliabilityInvestmentMonthly", in.ReliabilityInvestmentMonthly)
	put("minutesInMonth", in.MinutesInMonth)
	put("incidentFteCount", in.IncidentFTECount)
	put("criticalTrafficSharePct", in.CriticalTrafficSharePct)
	put("churnSensitivityPct", in.ChurnSensitivityPct)
	put("breachProbabilityPct", in.BreachProbabilityPct)
	put("slaPenaltyMonthly", in.SLAPenaltyMonthly)

	return state
}

// scalarString stringifies numbers, booleans, and non-empty strings. Nils,
// empty strings, and structured values have no token form.
func scalarString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

func currencyString(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range types.Currencies {
		if normalized == string(c) && c != types.DefaultCurrency {
			return normalized
		}
	}
	return ""
}

func providerStrings(providers []types.Provider) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = string(p)
	}
	return out
}

func curveStrings(curves []types.CurveKey) []string {
	out := make([]string, len(curves))
	for i, c := range curves {
		out[i] = string(c)
	}
	return out
}
