package inference

import (
	"fmt"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// SwitchFirewallStrategy decides which switch→firewall edges to emit
// when the inventory spans multiple VLANs. It is a named strategy so a
// real topology source (LLDP, SNMP, config parsing) can replace it
// later without touching the rest of the pass.
type SwitchFirewallStrategy interface {
	Connect(switches, firewalls []*model.Asset) []model.Relationship
}

// AllPairsStrategy assumes every switch traverses every firewall. This
// is a known over-approximation: without real topology data the safer
// estimate for attack-path analysis is the one that overstates
// connectivity rather than hiding a path.
type AllPairsStrategy struct {
	Confidence int
}

func (s *AllPairsStrategy) Connect(switches, firewalls []*model.Asset) []model.Relationship {
	var out []model.Relationship
	for _, sw := range switches {
		for _, fw := range firewalls {
			out = append(out, edge(sw, fw, model.RelConnects, s.Confidence,
				MethodNetworkTopology,
				fmt.Sprintf("%s assumed to route through %s", sw.Label(), fw.Label())))
		}
	}
	return out
}

// NetworkTopologyPass infers layer-2 adjacency from VLAN membership:
// every member of a VLAN connects to that VLAN's first switch, and,
// when more than one VLAN exists, every switch in the inventory
// connects to firewalls per the configured strategy.
type NetworkTopologyPass struct {
	VLANConfidence int
	Strategy       SwitchFirewallStrategy
}

// NewNetworkTopologyPass returns the pass with default confidences and
// the all-pairs switch/firewall strategy.
func NewNetworkTopologyPass() *NetworkTopologyPass {
	return &NetworkTopologyPass{
		VLANConfidence: 85,
		Strategy:       &AllPairsStrategy{Confidence: 70},
	}
}

func (p *NetworkTopologyPass) Name() string { return "network_topology" }

func (p *NetworkTopologyPass) Run(idx *index.Index, _ []model.ControlLoop) []model.Relationship {
	var out []model.Relationship

	vlans := idx.VLANs()
	for _, vlan := range vlans {
		members := idx.VLANMembers(vlan)

		// First switch in the VLAN represents the segment.
		var rep *model.Asset
		for _, a := range members {
			if a.Type.IsSwitch() {
				rep = a
				break
			}
		}
		if rep == nil {
			continue
		}

		for _, a := range members {
			if a.ID == rep.ID {
				continue
			}
			out = append(out, edge(a, rep, model.RelConnects, p.VLANConfidence,
				MethodVLANMembership,
				fmt.Sprintf("%s is on VLAN %d served by %s", a.Label(), vlan, rep.Label())))
		}
	}

	if len(vlans) > 1 {
		var switches, firewalls []*model.Asset
		for _, a := range idx.All() {
			switch {
			case a.Type.IsSwitch():
				sw, _ := idx.ByID(a.ID)
				switches = append(switches, sw)
			case a.Type.IsFirewall():
				fw, _ := idx.ByID(a.ID)
				firewalls = append(firewalls, fw)
			}
		}
		if len(firewalls) > 0 {
			out = append(out, p.Strategy.Connect(switches, firewalls)...)
		}
	}
	return out
}
