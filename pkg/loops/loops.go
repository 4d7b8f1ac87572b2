// Package loops reconstructs control loops from an indexed asset
// snapshot: the assets sharing a measured-variable code and loop number
// are grouped, classified into sensor / controller / actuator roles,
// and reported with a completeness status.
package loops

import (
	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
	"github.com/plantsight/plantsight/pkg/tagparse"
)

// Role is the function an asset fills within a control loop.
type Role string

const (
	RoleSensor       Role = "sensor"
	RoleController   Role = "controller"
	RoleActuator     Role = "actuator"
	RoleUnclassified Role = "unclassified"
)

// Classify determines an asset's loop role. Decomposed function letters
// take priority; when the tag is absent or inconclusive the asset type
// decides. Function letter mapping (ISA convention): T/E/S measure,
// C/Y compute, V/Z actuate.
func Classify(a *model.Asset, id *tagparse.Identifier) Role {
	if id != nil && !id.Equipment {
		switch {
		case id.HasFunction('C') || id.HasFunction('Y'):
			return RoleController
		case id.HasFunction('V') || id.HasFunction('Z'):
			return RoleActuator
		case id.HasFunction('T') || id.HasFunction('E') || id.HasFunction('S'):
			return RoleSensor
		}
	}
	switch {
	case a.Type.IsController():
		return RoleController
	case a.Type.IsActuator():
		return RoleActuator
	case a.Type.IsSensor():
		return RoleSensor
	}
	return RoleUnclassified
}

// Reconstruct builds a ControlLoop record for every loop key in the
// index. Within a loop the first asset classified into each role wins
// that role's representative slot; later same-role members are ignored
// here but remain visible individually to the inference passes. The
// tie-break follows input order, which makes it deterministic but
// order-dependent. Whether redundant instruments should instead be
// merged is an unresolved product question; the first-found policy is
// intentionally preserved.
func Reconstruct(idx *index.Index) []model.ControlLoop {
	keys := idx.LoopKeys()
	out := make([]model.ControlLoop, 0, len(keys))

	for _, key := range keys {
		members := idx.LoopMembers(key)
		if len(members) == 0 {
			continue
		}

		loop := model.ControlLoop{Key: key}
		if id := idx.Tag(members[0].ID); id != nil {
			loop.Variable = tagparse.VariableName(id.Variable)
		}

		for _, a := range members {
			if loop.ProcessArea == "" && a.ProcessArea != "" {
				loop.ProcessArea = a.ProcessArea
			}
			member := &model.LoopMember{AssetID: a.ID, Tag: a.Tag}
			switch Classify(a, idx.Tag(a.ID)) {
			case RoleSensor:
				if loop.Sensor == nil {
					loop.Sensor = member
					loop.Networked = loop.Networked || a.Networked()
				}
			case RoleController:
				if loop.Controller == nil {
					loop.Controller = member
					loop.Networked = loop.Networked || a.Networked()
				}
			case RoleActuator:
				if loop.Actuator == nil {
					loop.Actuator = member
					loop.Networked = loop.Networked || a.Networked()
				}
			}
		}

		if loop.Sensor == nil {
			loop.Missing = append(loop.Missing, string(RoleSensor))
		}
		if loop.Controller == nil {
			loop.Missing = append(loop.Missing, string(RoleController))
		}
		if loop.Actuator == nil {
			loop.Missing = append(loop.Missing, string(RoleActuator))
		}

		switch len(loop.Missing) {
		case 0:
			loop.Status = model.LoopComplete
		case 3:
			loop.Status = model.LoopOrphaned
		default:
			loop.Status = model.LoopPartial
		}

		out = append(out, loop)
	}
	return out
}
