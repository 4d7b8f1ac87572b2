package inference

import (
	"testing"

	"github.com/plantsight/plantsight/pkg/model"
)

func TestRemoteEntryPass_VPNToWorkstation(t *testing.T) {
	// No shared VLAN or area required: remote ingress is assumed to
	// reach any engineering workstation.
	rels := runPass(NewRemoteEntryPass(), []model.Asset{
		{ID: "vpn-01", Tag: "VPN-01", Type: model.TypeVPNGateway,
			Network: model.NetworkAttributes{VLAN: 20}},
		{ID: "ews-04", Tag: "EWS-04", Type: model.TypeEngineeringWorkstation,
			ProcessArea: "Unit 100",
			Network:     model.NetworkAttributes{VLAN: 10}},
	})
	e := findEdge(t, rels, "vpn-01", "ews-04", model.RelAccesses)
	if e.Confidence != 75 || e.Method != MethodRemoteAccessPath {
		t.Errorf("edge = %+v, want confidence 75 method remote_access_path", e)
	}
	if len(rels) != 1 {
		t.Errorf("got %d edges, want 1", len(rels))
	}
}

func TestRemoteEntryPass_RemoteAccessFlag(t *testing.T) {
	// An asset flagged for remote access counts as an ingress point
	// even when its type doesn't say VPN.
	rels := runPass(NewRemoteEntryPass(), []model.Asset{
		{ID: "srv-09", Tag: "SRV-09", Type: model.TypeHistorian,
			Network: model.NetworkAttributes{RemoteAccess: true, RemoteDesc: "vendor support tunnel"}},
		{ID: "ews-04", Tag: "EWS-04", Type: model.TypeEngineeringWorkstation},
	})
	findEdge(t, rels, "srv-09", "ews-04", model.RelAccesses)
}

func TestRemoteEntryPass_NoWorkstations(t *testing.T) {
	rels := runPass(NewRemoteEntryPass(), []model.Asset{
		{ID: "vpn-01", Tag: "VPN-01", Type: model.TypeVPNGateway},
		{ID: "plc-01", Tag: "PLC-01", Type: model.TypePLC},
	})
	if len(rels) != 0 {
		t.Errorf("got %d edges with no workstations present, want 0", len(rels))
	}
}
