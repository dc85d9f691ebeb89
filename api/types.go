// Package api - API types for the agent triage endpoint
// These types define the contract for /v1/agent/triage.
// The API is stateless and idempotent.
package api

import (
	"finops-calc/core/types"
)

// TriageRequest is the input to POST /v1/agent/triage
type TriageRequest struct {
	// Caller-supplied correlation ID (optional, generated if empty)
	RequestID string `json:"requestId,omitempty"`

	// Calculator inputs (required)
	Inputs map[string]interface{} `json:"inputs"`

	// Provider scope for recommendations (optional)
	Providers []string `json:"providers,omitempty"`

	// Free-form caller context
	Context *TriageContext `json:"context,omitempty"`
}

// TriageContext carries the caller's declared goal
type TriageContext struct {
	Goal string `json:"goal,omitempty"`
}

// TriageResponse is the action plan returned by /v1/agent/triage
type TriageResponse struct {
	RequestID   string        `json:"requestId"`
	Status      string        `json:"status"`
	GeneratedAt string        `json:"generatedAt"`
	Summary     TriageSummary `json:"summary"`
	ActionPlan  []PlanAction  `json:"actionPlan"`
	Assumptions []string      `json:"assumptions"`
	Trace       TriageTrace   `json:"trace"`
	Raw         TriageRaw     `json:"raw"`
}

// TriageSummary condenses the health verdict into a headline
type TriageSummary struct {
	Goal             string     `json:"goal"`
	CurrentZoneKey   types.Zone `json:"currentZoneKey"`
	CurrentZoneTitle string     `json:"currentZoneTitle"`
	CurrentScore     *int       `json:"currentScore"`
	Headline         string     `json:"headline"`
}

// PlanAction is one ranked step of the action plan
type PlanAction struct {
	Rank      int            `json:"rank"`
	Title     string         `json:"title"`
	Priority  types.Priority `json:"priority"`
	Category  types.Category `json:"category"`
	Action    string         `json:"action"`
	Rationale string         `json:"rationale"`
}

// TriageTrace records how the plan was produced
type TriageTrace struct {
	WorkflowID         string   `json:"workflowId"`
	SourceTools        []string `json:"sourceTools"`
	StateTokenIncluded bool     `json:"stateTokenIncluded"`
}

// TriageRaw carries the underlying engine results for auditing
type TriageRaw struct {
	Health          *types.HealthResult    `json:"health"`
	Recommendations []types.Recommendation `json:"recommendations"`
	StateToken      *string                `json:"stateToken"`
}

// ErrorResponse is the error envelope for all endpoints
type ErrorResponse struct {
	RequestID string `json:"requestId,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error"`
}
