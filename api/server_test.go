// Package api - HTTP contract tests
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finops-calc/core/engine"
	"finops-calc/core/types"
)

func testServer() *Server {
	return NewServer(engine.New(nil), nil, "http://localhost:5173", "test")
}

func doRequest(t *testing.T, srv *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

// TestHealthz proves the liveness endpoint reports identity and carries CORS
func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:5173" {
		t.Fatalf("allow-origin = %q", origin)
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["status"] != "ok" || body["service"] != ServiceName || body["version"] != "test" {
		t.Fatalf("body = %v", body)
	}
	if body["time"] == "" {
		t.Fatal("time missing")
	}
}

// TestIndex proves the root document lists the routes
func TestIndex(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	docs, _ := body["docs"].(map[string]interface{})
	if docs["triage"] != "POST /v1/agent/triage" {
		t.Fatalf("docs = %v", docs)
	}
}

// TestPreflight proves OPTIONS short-circuits with no content
func TestPreflight(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodOptions, "/v1/agent/triage", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); methods != "GET,POST,OPTIONS" {
		t.Fatalf("allow-methods = %q", methods)
	}
}

// TestUnknownRoute proves misses stay on the JSON error envelope
func TestUnknownRoute(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/v1/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	if body.Status != "error" || body.Error != "Route not found" {
		t.Fatalf("body = %+v", body)
	}
}

// TestTriageSuccess proves a complete input set yields a ranked plan
func TestTriageSuccess(t *testing.T) {
	payload := `{
		"requestId": "triage-test-1",
		"inputs": {"devPerClient": 500, "infraTotal": 2400, "ARPU": 30},
		"providers": ["aws"],
		"context": {"goal": "cut-infra-cost"}
	}`
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/agent/triage", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp TriageResponse
	decodeBody(t, rec, &resp)
	if resp.RequestID != "triage-test-1" || resp.Status != "success" {
		t.Fatalf("envelope = %+v", resp)
	}
	if resp.Summary.Goal != "cut-infra-cost" {
		t.Fatalf("goal = %q", resp.Summary.Goal)
	}
	if resp.Summary.CurrentZoneKey != types.ZoneGreen {
		t.Fatalf("zone = %v, want green", resp.Summary.CurrentZoneKey)
	}
	if resp.Summary.CurrentScore == nil || *resp.Summary.CurrentScore != 80 {
		t.Fatalf("score = %v, want 80", resp.Summary.CurrentScore)
	}
	if !strings.HasPrefix(resp.Summary.Headline, "Prioritize ") {
		t.Fatalf("headline = %q", resp.Summary.Headline)
	}

	if len(resp.ActionPlan) == 0 || len(resp.ActionPlan) > 3 {
		t.Fatalf("actionPlan = %d steps, want 1..3", len(resp.ActionPlan))
	}
	for i, action := range resp.ActionPlan {
		if action.Rank != i+1 {
			t.Fatalf("rank[%d] = %d", i, action.Rank)
		}
		if action.Title == "" || action.Action == "" {
			t.Fatalf("incomplete step: %+v", action)
		}
	}

	if resp.Trace.WorkflowID != "triage.workflow.v1" || !resp.Trace.StateTokenIncluded {
		t.Fatalf("trace = %+v", resp.Trace)
	}
	if len(resp.Trace.SourceTools) != 1 || resp.Trace.SourceTools[0] != "finops.calculate" {
		t.Fatalf("sourceTools = %v", resp.Trace.SourceTools)
	}
	if resp.Raw.Health == nil || resp.Raw.StateToken == nil {
		t.Fatal("raw section incomplete")
	}
}

// TestTriageDefaults proves default goal and generated request ids
func TestTriageDefaults(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/agent/triage",
		`{"inputs": {"devPerClient": 500, "infraTotal": 2400, "ARPU": 30}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp TriageResponse
	decodeBody(t, rec, &resp)
	if !strings.HasPrefix(resp.RequestID, "triage-") {
		t.Fatalf("requestId = %q, want generated", resp.RequestID)
	}
	if resp.Summary.Goal != "improve-health-zone" {
		t.Fatalf("goal = %q", resp.Summary.Goal)
	}
}

// TestTriageAwaiting proves incomplete inputs still answer with a plan
// framed around collecting data
func TestTriageAwaiting(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/agent/triage",
		`{"inputs": {}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp TriageResponse
	decodeBody(t, rec, &resp)
	if resp.Summary.CurrentZoneKey != types.ZoneAwaiting || resp.Summary.CurrentScore != nil {
		t.Fatalf("summary = %+v", resp.Summary)
	}
	if resp.Summary.Headline != "Collect more baseline data before action planning." {
		t.Fatalf("headline = %q", resp.Summary.Headline)
	}
	if len(resp.ActionPlan) != 0 {
		t.Fatalf("actionPlan = %v, want empty", resp.ActionPlan)
	}
}

// TestTriageMissingInputs proves the required inputs object is enforced
func TestTriageMissingInputs(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/agent/triage",
		`{"requestId": "r-1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	if body.Status != "needs-input" || body.Error != "Missing required object: inputs" {
		t.Fatalf("body = %+v", body)
	}
	if body.RequestID != "r-1" {
		t.Fatalf("requestId = %q", body.RequestID)
	}
}

// TestTriageBadJSON proves malformed bodies are rejected up front
func TestTriageBadJSON(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/agent/triage", `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	if body.Status != "error" || !strings.HasPrefix(body.Error, "Invalid JSON body") {
		t.Fatalf("body = %+v", body)
	}
}
