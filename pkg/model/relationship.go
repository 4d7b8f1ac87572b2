package model

// RelationshipType classifies an inferred edge between two assets.
type RelationshipType string

const (
	RelControls  RelationshipType = "controls"
	RelMonitors  RelationshipType = "monitors"
	RelDependsOn RelationshipType = "depends_on"
	RelConnects  RelationshipType = "connects_to"
	RelAccesses  RelationshipType = "accesses"
	RelProtects  RelationshipType = "protects"
)

// Relationship is one inferred, confidence-scored edge. The relationship
// set is a multigraph: two passes may independently produce overlapping
// edges with different confidence, and they are deliberately not
// deduplicated so every inference remains auditable.
type Relationship struct {
	SourceID    string           `json:"source_id"`
	SourceTag   string           `json:"source_tag,omitempty"`
	TargetID    string           `json:"target_id"`
	TargetTag   string           `json:"target_tag,omitempty"`
	Type        RelationshipType `json:"type"`
	Confidence  int              `json:"confidence"` // 0-100
	Method      string           `json:"method"`     // inference method label, for audit
	Description string           `json:"description,omitempty"`
}
