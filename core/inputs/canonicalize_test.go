// Package inputs - Canonicalization tests
package inputs

import (
	"testing"

	"finops-calc/core/types"
)

// TestCanonicalizeCoercesNumericStrings proves string and numeric forms land
// on the same canonical value
func TestCanonicalizeCoercesNumericStrings(t *testing.T) {
	in := Canonicalize(types.RawInput{
		"devPerClient": "500.5",
		"infraTotal":   float64(2400),
		"ARPU":         " 30 ",
	})

	if in.DevPerClient == nil || *in.DevPerClient != 500.5 {
		t.Fatalf("devPerClient = %v, want 500.5", in.DevPerClient)
	}
	if in.InfraTotal == nil || *in.InfraTotal != 2400 {
		t.Fatalf("infraTotal = %v, want 2400", in.InfraTotal)
	}
	if in.ARPU == nil || *in.ARPU != 30 {
		t.Fatalf("ARPU = %v, want 30", in.ARPU)
	}
}

// TestCanonicalizeDegradesGarbageToAbsence proves bad values never error,
// they just disappear
func TestCanonicalizeDegradesGarbageToAbsence(t *testing.T) {
	in := Canonicalize(types.RawInput{
		"devPerClient": "not-a-number",
		"infraTotal":   "",
		"ARPU":         nil,
		"nRef":         []interface{}{1, 2},
	})

	if in.DevPerClient != nil {
		t.Fatalf("devPerClient = %v, want nil", *in.DevPerClient)
	}
	if in.InfraTotal != nil {
		t.Fatalf("infraTotal = %v, want nil", *in.InfraTotal)
	}
	if in.ARPU != nil {
		t.Fatalf("ARPU = %v, want nil", *in.ARPU)
	}
	if in.NRef != nil {
		t.Fatalf("nRef = %v, want nil", *in.NRef)
	}
}

// TestCanonicalizeRoundsBeforeRangeCheck proves integer fields round first
// and only then face the range gate
func TestCanonicalizeRoundsBeforeRangeCheck(t *testing.T) {
	// 99.6 rounds to 100, inside [1, 100000]
	in := Canonicalize(types.RawInput{"nRef": 99.6})
	if in.NRef == nil || *in.NRef != 100 {
		t.Fatalf("nRef = %v, want 100", in.NRef)
	}

	// 0.4 rounds to 0, below the minimum of 1
	in = Canonicalize(types.RawInput{"nRef": 0.4})
	if in.NRef != nil {
		t.Fatalf("nRef = %v, want nil for rounded-to-zero", *in.NRef)
	}
}

// TestCanonicalizeRejectsOutOfRange proves out-of-range values become
// absent, never clamped
func TestCanonicalizeRejectsOutOfRange(t *testing.T) {
	in := Canonicalize(types.RawInput{
		"cudPct":       float64(96),
		"margin":       float64(250),
		"devPerClient": float64(-5),
		"nMax":         float64(5),
	})

	if in.CUDPct != nil {
		t.Fatalf("cudPct = %v, want nil above 95", *in.CUDPct)
	}
	if in.Margin != nil {
		t.Fatalf("margin = %v, want nil above 200", *in.Margin)
	}
	if in.DevPerClient != nil {
		t.Fatalf("devPerClient = %v, want nil for negative", *in.DevPerClient)
	}
	if in.NMax != nil {
		t.Fatalf("nMax = %v, want nil below 10", *in.NMax)
	}
}

// TestToggleSpellings proves the reliability toggle accepts its documented
// spellings and nothing else
func TestToggleSpellings(t *testing.T) {
	cases := []struct {
		value interface{}
		want  bool
	}{
		{true, true},
		{false, false},
		{float64(1), true},
		{float64(0), false},
		{"on", true},
		{"TRUE", true},
		{"1", true},
		{"off", false},
		{"yes", false},
		{nil, false},
	}
	for _, tc := range cases {
		in := Canonicalize(types.RawInput{"reliabilityEnabled": tc.value})
		if in.ReliabilityEnabled != tc.want {
			t.Errorf("reliabilityEnabled(%v) = %v, want %v", tc.value, in.ReliabilityEnabled, tc.want)
		}
	}
}

// TestCurrencyNormalization proves currency labels are case-folded against
// the fixed vocabulary
func TestCurrencyNormalization(t *testing.T) {
	in := Canonicalize(types.RawInput{"currency": "eur"})
	if in.Currency == nil || *in.Currency != "EUR" {
		t.Fatalf("currency = %v, want EUR", in.Currency)
	}

	in = Canonicalize(types.RawInput{"currency": "JPY"})
	if in.Currency != nil {
		t.Fatalf("currency = %v, want nil for unknown label", *in.Currency)
	}
}

// TestTechDomainFallback proves invalid or empty domain selections fall back
// to the default scope
func TestTechDomainFallback(t *testing.T) {
	domains := NormalizeTechDomains(nil)
	if len(domains) != 1 || domains[0] != "cloud" {
		t.Fatalf("default domains = %v, want [cloud]", domains)
	}

	domains = NormalizeTechDomains([]interface{}{"bogus", "also-bogus"})
	if len(domains) != 1 || domains[0] != "cloud" {
		t.Fatalf("fully-invalid domains = %v, want [cloud]", domains)
	}

	domains = NormalizeTechDomains([]interface{}{"saas", "bogus", "cloud", "saas"})
	if len(domains) != 2 || domains[0] != "saas" || domains[1] != "cloud" {
		t.Fatalf("filtered domains = %v, want [saas cloud]", domains)
	}
}

// TestProviderFilterDeduplicates proves providers filter against the fixed
// vocabulary with caller order and no defaults
func TestProviderFilterDeduplicates(t *testing.T) {
	providers := NormalizeProviders([]interface{}{"aws", "bogus", "aws", "gcp"})
	if len(providers) != 2 || providers[0] != types.ProviderAWS || providers[1] != types.ProviderGCP {
		t.Fatalf("providers = %v, want [aws gcp]", providers)
	}

	providers = NormalizeProviders("aws")
	if len(providers) != 0 {
		t.Fatalf("non-array providers = %v, want empty", providers)
	}
}

// TestUIVocabularyFallbacks proves unknown UI hints degrade to the defaults
func TestUIVocabularyFallbacks(t *testing.T) {
	if m := NormalizeUIMode("architect"); m != types.UIModeArchitect {
		t.Fatalf("mode = %v, want architect", m)
	}
	if m := NormalizeUIMode("expert"); m != types.UIModeQuick {
		t.Fatalf("mode = %v, want quick fallback", m)
	}
	if i := NormalizeUIIntent("executive"); i != types.UIIntentExecutive {
		t.Fatalf("intent = %v, want executive", i)
	}
	if i := NormalizeUIIntent(42); i != types.UIIntentViability {
		t.Fatalf("intent = %v, want viability fallback", i)
	}
	if c := NormalizeCategory("pricing"); c != types.CategoryPricing {
		t.Fatalf("category = %v, want pricing", c)
	}
	if c := NormalizeCategory("unknown"); c != types.CategoryAll {
		t.Fatalf("category = %v, want all fallback", c)
	}
}

// TestCanonicalizeNilPayload proves a nil payload yields a fully-absent
// record with defaults applied
func TestCanonicalizeNilPayload(t *testing.T) {
	in := Canonicalize(nil)
	if in.HasCostBasis() {
		t.Fatal("nil payload should have no cost basis")
	}
	if in.RefClients() != types.DefaultRefClients {
		t.Fatalf("RefClients = %v, want default %v", in.RefClients(), types.DefaultRefClients)
	}
	if len(in.TechDomains) != 1 || in.TechDomains[0] != "cloud" {
		t.Fatalf("techDomains = %v, want default [cloud]", in.TechDomains)
	}
}
