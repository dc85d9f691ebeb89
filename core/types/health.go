// Package types - Health scoring result
package types

// HealthResult is the outcome of the rule-based health scorer. Score is nil
// exactly when the zone is ZoneAwaiting (cost basis or ARPU missing).
// FailedChecks is an ordered list of human-readable findings; it also carries
// the informational planning-mode note when ARPU was goal-seeked.
type HealthResult struct {
	ZoneKey      Zone     `json:"zoneKey"`
	ZoneTitle    string   `json:"zoneTitle"`
	Score        *int     `json:"score"`
	FailedChecks []string `json:"failedChecks"`
}
