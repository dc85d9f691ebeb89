// Package engine - Orchestration tests
package engine

import (
	"testing"

	"finops-calc/core/types"
)

func baselineInputs() map[string]interface{} {
	return map[string]interface{}{
		"devPerClient": float64(500),
		"infraTotal":   float64(2400),
		"ARPU":         float64(30),
	}
}

// TestCalculateFullPipeline walks the calibrated fixture through the whole
// request path
func TestCalculateFullPipeline(t *testing.T) {
	eng := New(nil)
	result, err := eng.Calculate(CalculateArgs{Inputs: baselineInputs()})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if result.Meta.ARPUMode != types.ARPUManual {
		t.Fatalf("arpuMode = %v, want manual", result.Meta.ARPUMode)
	}
	if result.Meta.EffectiveARPU == nil || *result.Meta.EffectiveARPU != 30 {
		t.Fatalf("effectiveARPU = %v, want 30", result.Meta.EffectiveARPU)
	}

	if result.Health == nil || result.Health.ZoneKey != types.ZoneGreen {
		t.Fatalf("health = %+v, want green zone", result.Health)
	}
	if result.Health.Score == nil || *result.Health.Score != 80 {
		t.Fatalf("score = %v, want 80", result.Health.Score)
	}

	if result.Outputs.BreakEvenClients == nil || *result.Outputs.BreakEvenClients != 72 {
		t.Fatalf("breakEvenClients = %v, want 72", result.Outputs.BreakEvenClients)
	}
	if result.Outputs.VCPU == nil || *result.Outputs.VCPU != 24 {
		t.Fatalf("vcpu = %v, want 24", result.Outputs.VCPU)
	}
	if result.Outputs.Normalization == nil {
		t.Fatal("normalization report missing")
	}
	if result.Outputs.Reliability == nil || result.Outputs.Reliability.Enabled {
		t.Fatalf("reliability = %+v, want disabled record", result.Outputs.Reliability)
	}

	if result.StateToken == nil || *result.StateToken == "" {
		t.Fatal("stateToken missing with default options")
	}
	if result.Series != nil {
		t.Fatal("series present without includeSeries")
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("recommendations empty for an actionable zone")
	}
}

// TestCalculateSeriesOption proves includeSeries adds the 301-row series
func TestCalculateSeriesOption(t *testing.T) {
	eng := New(nil)
	result, err := eng.Calculate(CalculateArgs{
		Inputs:  baselineInputs(),
		Options: map[string]interface{}{"includeSeries": true},
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(result.Series) != 301 {
		t.Fatalf("series = %d rows, want 301", len(result.Series))
	}
}

// TestCalculateSectionToggles proves each optional section can be switched
// off independently
func TestCalculateSectionToggles(t *testing.T) {
	eng := New(nil)
	result, err := eng.Calculate(CalculateArgs{
		Inputs: baselineInputs(),
		Options: map[string]interface{}{
			"includeHealth":          false,
			"includeRecommendations": false,
			"includeStateToken":      false,
		},
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if result.Health != nil {
		t.Fatal("health present with includeHealth=false")
	}
	if len(result.Recommendations) != 0 {
		t.Fatal("recommendations present with includeRecommendations=false")
	}
	if result.StateToken != nil {
		t.Fatal("stateToken present with includeStateToken=false")
	}
	// Outputs always compute.
	if result.Outputs.MinPricePerClient == nil {
		t.Fatal("outputs missing")
	}
}

// TestCalculateHealthOffSuppressesRecommendations proves the zone defaults
// to awaiting when health is skipped, which empties the advice list
func TestCalculateHealthOffSuppressesRecommendations(t *testing.T) {
	eng := New(nil)
	result, err := eng.Calculate(CalculateArgs{
		Inputs:  baselineInputs(),
		Options: map[string]interface{}{"includeHealth": false},
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Fatalf("recommendations = %d, want none without a zone", len(result.Recommendations))
	}
}

// TestCalculateOptionTypeSafety proves non-boolean option values keep the
// defaults instead of flipping toggles
func TestCalculateOptionTypeSafety(t *testing.T) {
	opts := NormalizeOptions(map[string]interface{}{
		"includeSeries":     "yes",
		"includeHealth":     float64(0),
		"includeStateToken": nil,
	})
	if opts != DefaultOptions() {
		t.Fatalf("opts = %+v, want defaults untouched", opts)
	}
}

// TestCalculateReliabilityOutputs proves enabling reliability populates the
// adjusted figures and the series overlay
func TestCalculateReliabilityOutputs(t *testing.T) {
	in := baselineInputs()
	in["reliabilityEnabled"] = true
	in["sloTargetAvailabilityPct"] = float64(99.9)
	in["sliObservedAvailabilityPct"] = float64(99.5)
	in["slaPenaltyRatePerBreachPointMonthly"] = float64(100)
	in["reliabilityInvestmentMonthly"] = float64(300)

	eng := New(nil)
	result, err := eng.Calculate(CalculateArgs{
		Inputs:  in,
		Options: map[string]interface{}{"includeSeries": true},
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	rel := result.Outputs.Reliability
	if rel == nil || !rel.Enabled {
		t.Fatal("reliability record missing")
	}
	if result.Outputs.RequiredARPUWithReliability == nil {
		t.Fatal("requiredARPU_with_rel missing")
	}
	if result.Outputs.ReliabilityAdjustedProfit == nil {
		t.Fatal("reliabilityAdjustedProfit missing")
	}
	if result.Series[0].TotalRel == nil {
		t.Fatal("series overlay missing with reliability enabled")
	}
}

// TestHealthOperation proves the raw-input wrapper degrades to awaiting
func TestHealthOperation(t *testing.T) {
	eng := New(nil)
	result := eng.Health(map[string]interface{}{})
	if result.ZoneKey != types.ZoneAwaiting || result.Score != nil {
		t.Fatalf("health = %+v, want awaiting/nil", result)
	}
}

// TestRecommendOperation proves zone strings pass through and junk zones
// yield nothing
func TestRecommendOperation(t *testing.T) {
	eng := New(nil)

	recs := eng.Recommend(RecommendArgs{ZoneKey: "red"})
	if len(recs) == 0 {
		t.Fatal("red zone yielded nothing")
	}

	if recs := eng.Recommend(RecommendArgs{ZoneKey: "purple"}); len(recs) != 0 {
		t.Fatalf("unknown zone = %d items, want 0", len(recs))
	}
	if recs := eng.Recommend(RecommendArgs{}); len(recs) != 0 {
		t.Fatalf("missing zone = %d items, want 0", len(recs))
	}
}

// TestRecommendWithInputsSynthesizes proves supplying inputs puts strategic
// items ahead of the catalog
func TestRecommendWithInputsSynthesizes(t *testing.T) {
	eng := New(nil)
	recs := eng.Recommend(RecommendArgs{
		ZoneKey: "yellow",
		Inputs: map[string]interface{}{
			"devPerClient": float64(500),
			"infraTotal":   float64(2400),
			"ARPU":         float64(25),
		},
	})
	if len(recs) == 0 || recs[0].Title != "Raise realized ARPU above cost floor" {
		t.Fatalf("first = %v, want the strategic pricing item", recs)
	}
}

// TestEncodeStatePrecedence proves a complete state payload wins over the
// assembled fields
func TestEncodeStatePrecedence(t *testing.T) {
	eng := New(nil)

	token, err := eng.EncodeState(EncodeStateArgs{
		State:  map[string]interface{}{"ui": "executive"},
		UIMode: "operator",
		Inputs: map[string]interface{}{"ARPU": float64(99)},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := eng.DecodeState(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["ui"] != "executive" {
		t.Fatalf("ui = %v, want the state payload to win", decoded["ui"])
	}
	inputsMap, _ := decoded["i"].(map[string]interface{})
	if len(inputsMap) != 0 {
		t.Fatalf("i = %v, want assembled inputs ignored", inputsMap)
	}
}

// TestEncodeStateAssembled proves the assembled form round-trips inputs and
// UI hints
func TestEncodeStateAssembled(t *testing.T) {
	eng := New(nil)
	token, err := eng.EncodeState(EncodeStateArgs{
		UIMode:   "operator",
		UIIntent: "operations",
		Inputs: map[string]interface{}{
			"ARPU":        float64(30),
			"techDomains": []interface{}{"cloud", "saas"},
		},
		Providers: []interface{}{"aws"},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := eng.DecodeState(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["v"] != float64(types.ShareStateVersion) {
		t.Fatalf("v = %v", decoded["v"])
	}
	if decoded["um"] != "operator" || decoded["ui"] != "operations" {
		t.Fatalf("um/ui = %v/%v", decoded["um"], decoded["ui"])
	}
	td, _ := decoded["td"].([]interface{})
	if len(td) != 2 || td[0] != "cloud" || td[1] != "saas" {
		t.Fatalf("td = %v, want domains lifted from inputs", td)
	}
	inputsMap, _ := decoded["i"].(map[string]interface{})
	if inputsMap["ARPU"] != "30" {
		t.Fatalf("i = %v", inputsMap)
	}
}

// TestDecodeStateRejectsCorrupt proves the engine surfaces codec failures
func TestDecodeStateRejectsCorrupt(t *testing.T) {
	eng := New(nil)
	if _, err := eng.DecodeState("###"); err == nil {
		t.Fatal("corrupt token decoded")
	}
}
