package model

// NetworkCoverage reports what share of the inventory carries a
// network address.
type NetworkCoverage struct {
	NetworkedAssets int     `json:"networked_assets"`
	TotalAssets     int     `json:"total_assets"`
	Percentage      float64 `json:"percentage"` // always in [0, 100]
}

// Summary aggregates engine output for dashboard consumption.
type Summary struct {
	TotalAssets         int                      `json:"total_assets"`
	TotalRelationships  int                      `json:"total_relationships"`
	RelationshipsByType map[RelationshipType]int `json:"relationships_by_type"`
	TotalLoops          int                      `json:"total_loops"`
	LoopsByStatus       map[LoopStatus]int       `json:"loops_by_status"`
	AssetsByLayer       map[Layer]int            `json:"assets_by_layer"`
	NetworkCoverage     NetworkCoverage          `json:"network_coverage"`
}
