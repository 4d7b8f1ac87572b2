package inference

import (
	"fmt"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// RemoteEntryPass connects remote-access infrastructure (VPN gateways,
// remote access servers) to every engineering workstation. The edge
// represents a potential ingress path for attack-path analysis, so no
// VLAN or area match is required: remote access terminating anywhere in
// the plant is assumed reachable from the workstations that engineers
// actually use.
type RemoteEntryPass struct {
	Confidence int
}

// NewRemoteEntryPass returns the pass with its default confidence.
func NewRemoteEntryPass() *RemoteEntryPass {
	return &RemoteEntryPass{Confidence: 75}
}

func (p *RemoteEntryPass) Name() string { return "remote_entry" }

func (p *RemoteEntryPass) Run(idx *index.Index, _ []model.ControlLoop) []model.Relationship {
	var gateways, workstations []*model.Asset
	for _, a := range idx.All() {
		ptr, _ := idx.ByID(a.ID)
		switch {
		case a.Type.IsRemoteAccess() || a.Network.RemoteAccess:
			gateways = append(gateways, ptr)
		case a.Type.IsEngineeringWorkstation():
			workstations = append(workstations, ptr)
		}
	}

	var out []model.Relationship
	for _, gw := range gateways {
		for _, ws := range workstations {
			out = append(out, edge(gw, ws, model.RelAccesses, p.Confidence,
				MethodRemoteAccessPath,
				fmt.Sprintf("%s provides remote ingress to %s", gw.Label(), ws.Label())))
		}
	}
	return out
}
