// Package model - Derivation tests
package model

import (
	"math"
	"strings"
	"testing"

	"finops-calc/core/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestDeriveDefaults proves an empty input keeps every baseline parameter
func TestDeriveDefaults(t *testing.T) {
	d := Derive(types.CanonicalInput{})

	want := Defaults()
	if d.Model != want {
		t.Fatalf("model = %+v, want defaults %+v", d.Model, want)
	}
	if d.ARPUMode != types.ARPUMissing {
		t.Fatalf("arpuMode = %v, want missing", d.ARPUMode)
	}
	if d.EffectiveARPU != nil {
		t.Fatalf("effectiveARPU = %v, want nil", *d.EffectiveARPU)
	}
	if len(d.Derivations) != 0 {
		t.Fatalf("derivations = %v, want none", d.Derivations)
	}
}

// TestDeriveCalibratesAtReferencePoint proves K and c are back-solved so the
// curves pass through the observed figures at nRef
func TestDeriveCalibratesAtReferencePoint(t *testing.T) {
	d := Derive(types.CanonicalInput{
		DevPerClient: types.Float(500),
		InfraTotal:   types.Float(2400),
	})

	wantK := 500 * math.Pow(100, 0.45)
	wantC := 2400 / math.Pow(100, 1.28)
	if !almostEqual(d.Model.K, wantK) {
		t.Fatalf("K = %v, want %v", d.Model.K, wantK)
	}
	if !almostEqual(d.Model.C, wantC) {
		t.Fatalf("c = %v, want %v", d.Model.C, wantC)
	}

	// The curves must pass through the observed figures at nRef.
	dev := d.Model.K * math.Pow(100, -d.Model.A)
	if math.Abs(dev-500) > 1e-6 {
		t.Fatalf("dev(100) = %v, want 500", dev)
	}
	infra := d.Model.C * math.Pow(100, d.Model.B)
	if math.Abs(infra-2400) > 1e-6 {
		t.Fatalf("infra(100) = %v, want 2400", infra)
	}
}

// TestDeriveCalibrationRespectsExplicitRef proves nRef moves the
// calibration point
func TestDeriveCalibrationRespectsExplicitRef(t *testing.T) {
	d := Derive(types.CanonicalInput{
		NRef:       types.Float(50),
		InfraTotal: types.Float(1000),
	})

	infra := d.Model.C * math.Pow(50, d.Model.B)
	if math.Abs(infra-1000) > 1e-6 {
		t.Fatalf("infra(50) = %v, want 1000", infra)
	}
}

// TestDeriveAppliesOverrides proves margin, cudPct, and nMax land on the
// model parameters
func TestDeriveAppliesOverrides(t *testing.T) {
	d := Derive(types.CanonicalInput{
		Margin: types.Float(30),
		CUDPct: types.Float(40),
		NMax:   types.Float(500),
	})

	if !almostEqual(d.Model.M, 0.3) {
		t.Fatalf("m = %v, want 0.3", d.Model.M)
	}
	if !almostEqual(d.Model.G, 0.6) {
		t.Fatalf("g = %v, want 0.6", d.Model.G)
	}
	if d.Model.NMax != 500 {
		t.Fatalf("nMax = %v, want 500", d.Model.NMax)
	}
}

// TestARPUPrecedence proves the manual > target-price > target-clients
// resolution chain
func TestARPUPrecedence(t *testing.T) {
	// Explicit ARPU always wins.
	d := Derive(types.CanonicalInput{
		ARPU:               types.Float(30),
		StartupTargetPrice: types.Float(50),
	})
	if d.ARPUMode != types.ARPUManual || d.EffectiveARPU == nil || *d.EffectiveARPU != 30 {
		t.Fatalf("got mode=%v arpu=%v, want manual 30", d.ARPUMode, d.EffectiveARPU)
	}

	// Target price is the fallback.
	d = Derive(types.CanonicalInput{StartupTargetPrice: types.Float(50)})
	if d.ARPUMode != types.ARPUStartupPrice || d.EffectiveARPU == nil || *d.EffectiveARPU != 50 {
		t.Fatalf("got mode=%v arpu=%v, want startup-price 50", d.ARPUMode, d.EffectiveARPU)
	}
}

// TestARPUFromTargetClientsNeedsCostBasis proves the goal-seek branch only
// activates when there is a cost figure to solve against
func TestARPUFromTargetClientsNeedsCostBasis(t *testing.T) {
	d := Derive(types.CanonicalInput{StartupTargetClients: types.Float(200)})
	if d.ARPUMode != types.ARPUMissing {
		t.Fatalf("mode without cost basis = %v, want missing", d.ARPUMode)
	}

	d = Derive(types.CanonicalInput{
		DevPerClient:         types.Float(500),
		InfraTotal:           types.Float(2400),
		StartupTargetClients: types.Float(200),
	})
	if d.ARPUMode != types.ARPUStartupClients {
		t.Fatalf("mode = %v, want startup-clients", d.ARPUMode)
	}
	if d.EffectiveARPU == nil || *d.EffectiveARPU <= 0 {
		t.Fatalf("effectiveARPU = %v, want positive goal-seek price", d.EffectiveARPU)
	}
	// The back-solved ARPU is the minimum sustainable price at the target.
	if math.Abs(*d.EffectiveARPU-35.616401997225125) > 1e-6 {
		t.Fatalf("effectiveARPU = %v, want ~35.6164", *d.EffectiveARPU)
	}
}

// TestDerivationTrace proves calibration steps are recorded
func TestDerivationTrace(t *testing.T) {
	d := Derive(types.CanonicalInput{
		DevPerClient: types.Float(500),
		InfraTotal:   types.Float(2400),
		CUDPct:       types.Float(40),
	})

	if len(d.Derivations) != 3 {
		t.Fatalf("derivations = %v, want 3 entries", d.Derivations)
	}
	wantPrefixes := []string{"g=", "K=", "c="}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(d.Derivations[i], prefix) {
			t.Errorf("derivations[%d] = %q, want prefix %q", i, d.Derivations[i], prefix)
		}
	}
}
