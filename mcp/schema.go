package mcp

import "finops-calc/core/types"

// Schemas below are plain JSON-schema maps advertised through tools/list.
// Enum values come from the shared vocabulary tables so the advertised
// contract can never drift from what canonicalization accepts.

func nonNegativeNumber() map[string]interface{} {
	return map[string]interface{}{"type": []string{"number", "null"}, "minimum": 0}
}

func percentNumber() map[string]interface{} {
	return map[string]interface{}{"type": []string{"number", "null"}, "minimum": 0, "maximum": 100}
}

func inputsSchema() map[string]interface{} {
	currencyEnum := make([]interface{}, 0, len(types.Currencies)+1)
	for _, c := range types.Currencies {
		currencyEnum = append(currencyEnum, string(c))
	}
	currencyEnum = append(currencyEnum, nil)

	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"nRef":                 map[string]interface{}{"type": []string{"number", "null"}, "minimum": 1, "maximum": 100000},
			"currency":             map[string]interface{}{"type": []string{"string", "null"}, "enum": currencyEnum},
			"devPerClient":         nonNegativeNumber(),
			"infraTotal":           nonNegativeNumber(),
			"ARPU":                 nonNegativeNumber(),
			"startupTargetPrice":   nonNegativeNumber(),
			"startupTargetClients": map[string]interface{}{"type": []string{"number", "null"}, "minimum": 1},
			"cudPct":               map[string]interface{}{"type": []string{"number", "null"}, "minimum": 0, "maximum": 95},
			"margin":               map[string]interface{}{"type": []string{"number", "null"}, "minimum": 0, "maximum": 200},
			"nMax":                 map[string]interface{}{"type": []string{"number", "null"}, "minimum": 10, "maximum": 100000},
			"techDomains": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string", "enum": types.TechDomainKeys()},
				"uniqueItems": true,
			},
			"costSaaS":                            nonNegativeNumber(),
			"costLicensing":                       nonNegativeNumber(),
			"costPrivateCloud":                    nonNegativeNumber(),
			"costDataCenter":                      nonNegativeNumber(),
			"costLabor":                           nonNegativeNumber(),
			"reliabilityEnabled":                  map[string]interface{}{"type": []string{"boolean", "string"}, "enum": []interface{}{true, false, "on", "off"}},
			"sloTargetAvailabilityPct":            percentNumber(),
			"sliObservedAvailabilityPct":          percentNumber(),
			"incidentCountMonthly":                nonNegativeNumber(),
			"mttrHours":                           nonNegativeNumber(),
			"incidentBlendedHourlyRate":           nonNegativeNumber(),
			"criticalRevenuePerMinute":            nonNegativeNumber(),
			"arrExposedMonthly":                   nonNegativeNumber(),
			"slaPenaltyRatePerBreachPointMonthly": nonNegativeNumber(),
			"reliabilityInvestmentMonthly":        nonNegativeNumber(),
			"minutesInMonth":                      map[string]interface{}{"type": []string{"number", "null"}, "minimum": 1},
			"incidentFteCount":                    nonNegativeNumber(),
			"criticalTrafficSharePct":             percentNumber(),
			"churnSensitivityPct":                 percentNumber(),
			"breachProbabilityPct":                percentNumber(),
			"slaPenaltyMonthly":                   nonNegativeNumber(),
		},
	}
}

func providersSchema() map[string]interface{} {
	enum := make([]string, len(types.Providers))
	for i, p := range types.Providers {
		enum[i] = string(p)
	}
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string", "enum": enum},
		"uniqueItems": true,
	}
}

func hiddenCurvesSchema() map[string]interface{} {
	enum := make([]string, len(types.CurveKeys))
	for i, c := range types.CurveKeys {
		enum[i] = string(c)
	}
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string", "enum": enum},
		"uniqueItems": true,
	}
}

func uiIntentSchema() map[string]interface{} {
	enum := make([]string, len(types.UIIntents))
	for i, v := range types.UIIntents {
		enum[i] = string(v)
	}
	return map[string]interface{}{"type": "string", "enum": enum}
}

func uiModeSchema() map[string]interface{} {
	enum := make([]string, len(types.UIModes))
	for i, v := range types.UIModes {
		enum[i] = string(v)
	}
	return map[string]interface{}{"type": "string", "enum": enum}
}

// CalculateSchema describes the finops.calculate arguments.
func CalculateSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"inputs":       inputsSchema(),
			"providers":    providersSchema(),
			"hiddenCurves": hiddenCurvesSchema(),
			"uiIntent":     uiIntentSchema(),
			"uiMode":       uiModeSchema(),
			"options": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]interface{}{
					"includeHealth":          map[string]interface{}{"type": "boolean", "default": true},
					"includeRecommendations": map[string]interface{}{"type": "boolean", "default": true},
					"includeSeries":          map[string]interface{}{"type": "boolean", "default": false},
					"includeStateToken":      map[string]interface{}{"type": "boolean", "default": true},
				},
			},
		},
		"required": []string{"inputs"},
	}
}

// HealthSchema describes the finops.health arguments.
func HealthSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"inputs": inputsSchema(),
		},
		"required": []string{"inputs"},
	}
}

// RecommendSchema describes the finops.recommend arguments.
func RecommendSchema() map[string]interface{} {
	categories := make([]string, len(types.Categories))
	for i, c := range types.Categories {
		categories[i] = string(c)
	}
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"zoneKey":   map[string]interface{}{"type": "string", "enum": []string{"green", "yellow", "red", "awaiting"}},
			"providers": providersSchema(),
			"category":  map[string]interface{}{"type": "string", "enum": categories},
			"inputs":    inputsSchema(),
		},
		"required": []string{"zoneKey"},
	}
}

// StateEncodeSchema describes the finops.state.encode arguments.
func StateEncodeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"state":        map[string]interface{}{"type": "object"},
			"inputs":       inputsSchema(),
			"providers":    providersSchema(),
			"hiddenCurves": hiddenCurvesSchema(),
			"uiIntent":     uiIntentSchema(),
			"uiMode":       uiModeSchema(),
		},
	}
}

// StateDecodeSchema describes the finops.state.decode arguments.
func StateDecodeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"stateToken": map[string]interface{}{"type": "string"},
		},
		"required": []string{"stateToken"},
	}
}
