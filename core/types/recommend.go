// Package types - Recommendation record
package types

// Recommendation is one remediation item, either from the static catalog or
// synthesized per request from scanner output. Providers empty means the item
// is universal and survives any provider filter. Zones lists the health zones
// the item applies to.
type Recommendation struct {
	Title     string     `json:"title"`
	Priority  Priority   `json:"priority"`
	Providers []Provider `json:"providers"`
	Category  Category   `json:"category,omitempty"`
	Desc      string     `json:"desc"`
	Action    string     `json:"action"`
	Zones     []Zone     `json:"-"`
}

// AppliesTo reports whether the item is relevant in the given zone.
func (r *Recommendation) AppliesTo(zone Zone) bool {
	for _, z := range r.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// MatchesProviders reports whether the item survives a provider filter.
// Items with no declared providers are universal.
func (r *Recommendation) MatchesProviders(providers []Provider) bool {
	if len(r.Providers) == 0 {
		return true
	}
	for _, p := range providers {
		for _, own := range r.Providers {
			if p == own {
				return true
			}
		}
	}
	return false
}
