package inference

import (
	"fmt"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// OperatorAccessPass pairs operator interfaces (HMIs) and engineering
// workstations against layer-3 controllers. Matching both VLAN and
// process area gives the strong variant; area alone the weak one. A
// workstation sharing only a VLAN with a controller still gets a
// network-proximity edge, since engineering access typically rides the
// control network regardless of area labels.
type OperatorAccessPass struct {
	StrongConfidence    int // VLAN and area both match
	AreaConfidence      int // area-only match
	ProximityConfidence int // workstation/controller same-VLAN
}

// NewOperatorAccessPass returns the pass with default confidences.
func NewOperatorAccessPass() *OperatorAccessPass {
	return &OperatorAccessPass{
		StrongConfidence:    90,
		AreaConfidence:      70,
		ProximityConfidence: 85,
	}
}

func (p *OperatorAccessPass) Name() string { return "operator_access" }

func (p *OperatorAccessPass) Run(idx *index.Index, _ []model.ControlLoop) []model.Relationship {
	var hmis, workstations, controllers []*model.Asset
	for _, a := range idx.All() {
		ptr, _ := idx.ByID(a.ID)
		switch {
		case a.Type.IsHMI():
			hmis = append(hmis, ptr)
		case a.Type.IsEngineeringWorkstation():
			workstations = append(workstations, ptr)
		case a.Type.IsController() && a.Layer == model.LayerSupervisory:
			controllers = append(controllers, ptr)
		}
	}

	var out []model.Relationship
	for _, op := range hmis {
		out = append(out, p.pair(op, controllers, "operates")...)
	}
	for _, ws := range workstations {
		out = append(out, p.pair(ws, controllers, "configures")...)
		for _, c := range controllers {
			if sameVLAN(ws, c) && !(sameArea(ws, c)) {
				out = append(out, edge(ws, c, model.RelAccesses, p.ProximityConfidence,
					MethodNetworkProximity,
					fmt.Sprintf("%s shares the control VLAN with %s", ws.Label(), c.Label())))
			}
		}
	}
	return out
}

func (p *OperatorAccessPass) pair(src *model.Asset, controllers []*model.Asset, verb string) []model.Relationship {
	var out []model.Relationship
	for _, c := range controllers {
		switch {
		case sameVLAN(src, c) && sameArea(src, c):
			out = append(out, edge(src, c, model.RelAccesses, p.StrongConfidence,
				MethodOperatorAccess,
				fmt.Sprintf("%s %s %s (same VLAN and area)", src.Label(), verb, c.Label())))
		case sameArea(src, c):
			out = append(out, edge(src, c, model.RelAccesses, p.AreaConfidence,
				MethodOperatorAccess,
				fmt.Sprintf("%s %s %s (same area)", src.Label(), verb, c.Label())))
		}
	}
	return out
}

func sameVLAN(a, b *model.Asset) bool {
	return a.Network.VLAN != 0 && a.Network.VLAN == b.Network.VLAN
}

func sameArea(a, b *model.Asset) bool {
	return a.ProcessArea != "" && a.ProcessArea == b.ProcessArea
}
