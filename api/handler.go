// Package api - Triage handler
// The handler wraps the engine - it contains NO calculator logic.
package api

import (
	"fmt"
	"strings"
	"time"

	"finops-calc/core/engine"
	"finops-calc/core/types"
)

const triageWorkflowID = "triage.workflow.v1"

// maxPlanActions bounds the action plan to the top ranked items.
const maxPlanActions = 3

// Handler executes triage requests against the engine
type Handler struct {
	eng *engine.Engine
}

// NewHandler creates a new handler
func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{eng: eng}
}

// Triage runs the full calculation and condenses it into an action plan
func (h *Handler) Triage(requestID string, req *TriageRequest) (*TriageResponse, error) {
	goal := "improve-health-zone"
	if req.Context != nil && req.Context.Goal != "" {
		goal = req.Context.Goal
	}

	providers := make([]interface{}, len(req.Providers))
	for i, p := range req.Providers {
		providers[i] = p
	}

	result, err := h.eng.Calculate(engine.CalculateArgs{
		Inputs:    req.Inputs,
		Providers: providers,
		Options: map[string]interface{}{
			"includeHealth":          true,
			"includeRecommendations": true,
			"includeSeries":          false,
			"includeStateToken":      true,
		},
	})
	if err != nil {
		return nil, err
	}

	zoneKey := types.ZoneAwaiting
	zoneTitle := "Awaiting baseline data"
	var score *int
	if result.Health != nil {
		zoneKey = result.Health.ZoneKey
		zoneTitle = result.Health.ZoneTitle
		score = result.Health.Score
	}

	actions := toTopActions(result.Recommendations)

	headline := "Collect more baseline data before action planning."
	if len(actions) > 0 {
		headline = fmt.Sprintf("Prioritize %s to improve from %s.", strings.ToLower(actions[0].Title), zoneTitle)
	}

	assumptions := result.Meta.Warnings
	if assumptions == nil {
		assumptions = []string{}
	}

	return &TriageResponse{
		RequestID:   requestID,
		Status:      "success",
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summary: TriageSummary{
			Goal:             goal,
			CurrentZoneKey:   zoneKey,
			CurrentZoneTitle: zoneTitle,
			CurrentScore:     score,
			Headline:         headline,
		},
		ActionPlan:  actions,
		Assumptions: assumptions,
		Trace: TriageTrace{
			WorkflowID:         triageWorkflowID,
			SourceTools:        []string{"finops.calculate"},
			StateTokenIncluded: result.StateToken != nil,
		},
		Raw: TriageRaw{
			Health:          result.Health,
			Recommendations: result.Recommendations,
			StateToken:      result.StateToken,
		},
	}, nil
}

// toTopActions ranks the leading recommendations into plan steps
func toTopActions(recommendations []types.Recommendation) []PlanAction {
	limit := maxPlanActions
	if len(recommendations) < limit {
		limit = len(recommendations)
	}
	actions := make([]PlanAction, 0, limit)
	for i := 0; i < limit; i++ {
		rec := recommendations[i]
		actions = append(actions, PlanAction{
			Rank:      i + 1,
			Title:     rec.Title,
			Priority:  rec.Priority,
			Category:  rec.Category,
			Action:    rec.Action,
			Rationale: rec.Desc,
		})
	}
	return actions
}
