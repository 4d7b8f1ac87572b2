package model

import "time"

// Severity grades one step in a consequence chain.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ImpactStep is one downstream asset affected by a trigger failure,
// with a synthesized event description.
type ImpactStep struct {
	AssetID  string   `json:"asset_id"`
	Tag      string   `json:"tag,omitempty"`
	Event    string   `json:"event"`
	Severity Severity `json:"severity"`
	Hop      int      `json:"hop"` // BFS distance from the trigger
}

// ConsequenceChain is the ordered set of downstream effects reachable
// from a trigger asset's failure or compromise. It is built fresh per
// query; traversal state is local to the build and discarded.
type ConsequenceChain struct {
	ID                  string       `json:"id"` // unique per build, for audit
	TriggerID           string       `json:"trigger_id"`
	TriggerTag          string       `json:"trigger_tag,omitempty"`
	Steps               []ImpactStep `json:"steps"`
	UltimateConsequence string       `json:"ultimate_consequence"`
	DepthReached        int          `json:"depth_reached"`
	TruncatedByDepth    bool         `json:"truncated_by_depth"`
	GeneratedAt         time.Time    `json:"generated_at"`
}
