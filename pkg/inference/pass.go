// Package inference derives typed, confidence-scored relationship edges
// from an indexed asset snapshot. Each pass is independent: passes never
// see each other's output, and callers may run any subset. Overlapping
// edges from different passes are kept — the result is a multigraph and
// every edge carries its inference method for audit.
package inference

import (
	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// Inference method labels. These appear verbatim in relationship
// records so an operator can trace (and dispute) any edge.
const (
	MethodTagPattern           = "tag_pattern"
	MethodTagPatternIncomplete = "tag_pattern_incomplete"
	MethodVLANMembership       = "vlan_membership"
	MethodNetworkTopology      = "network_topology"
	MethodProcessHierarchy     = "process_hierarchy"
	MethodOperatorAccess       = "operator_access"
	MethodNetworkProximity     = "network_proximity"
	MethodSafetyFunction       = "safety_function"
	MethodRemoteAccessPath     = "remote_access_path"
)

// Pass is one relationship inference strategy. Run must be pure: it
// reads the index (and, for the control-loop pass, the reconstructed
// loops) and returns edges without touching any shared state.
type Pass interface {
	Name() string
	Run(idx *index.Index, loops []model.ControlLoop) []model.Relationship
}

// DefaultPasses returns all six passes with their default confidences.
func DefaultPasses() []Pass {
	return []Pass{
		NewControlLoopPass(),
		NewNetworkTopologyPass(),
		NewProcessHierarchyPass(),
		NewOperatorAccessPass(),
		NewSafetyPass(),
		NewRemoteEntryPass(),
	}
}

// edge builds a relationship between two assets, filling tags from the
// asset records.
func edge(src, dst *model.Asset, typ model.RelationshipType, confidence int, method, desc string) model.Relationship {
	return model.Relationship{
		SourceID:    src.ID,
		SourceTag:   src.Tag,
		TargetID:    dst.ID,
		TargetTag:   dst.Tag,
		Type:        typ,
		Confidence:  confidence,
		Method:      method,
		Description: desc,
	}
}
