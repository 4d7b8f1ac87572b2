package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plantsight/plantsight/pkg/config"
	"github.com/plantsight/plantsight/pkg/engine"
	"github.com/plantsight/plantsight/pkg/logging"
	"github.com/plantsight/plantsight/pkg/metrics"
	"github.com/plantsight/plantsight/pkg/model"
	"github.com/plantsight/plantsight/pkg/validation"
)

func main() {
	inventoryPath := flag.String("inventory", "", "YAML asset inventory file (omit for the built-in sample plant)")
	configPath := flag.String("config", "", "engine config file")
	trigger := flag.String("trigger", "", "asset ID to build a consequence chain from")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	assets := samplePlant()
	if *inventoryPath != "" {
		loaded, err := loadInventory(*inventoryPath)
		if err != nil {
			log.Fatalf("Failed to load inventory: %v", err)
		}
		assets = loaded
	}

	fmt.Printf("🏭 PlantSight - analyzing %d assets...\n", len(assets))

	if problems := validation.CheckAssets(assets); len(problems) > 0 {
		fmt.Printf("\n⚠️  %d inventory problems (analysis continues):\n", len(problems))
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
	}

	eng := engine.New(assets,
		engine.WithConfig(cfg),
		engine.WithLogger(logging.DefaultLogger()),
		engine.WithMetrics(metrics.DefaultRegistry()),
	)

	fmt.Println("\n📊 Control loops:")
	for _, loop := range eng.Loops() {
		fmt.Printf("  %s (%s) status=%s", loop.Key, loop.Variable, loop.Status)
		if len(loop.Missing) > 0 {
			fmt.Printf(" missing=%v", loop.Missing)
		}
		fmt.Println()
	}

	fmt.Println("\n🔗 Inferred relationships:")
	for _, r := range eng.Relationships() {
		fmt.Printf("  %s -[%s %d%%]-> %s (%s)\n",
			r.SourceTag, r.Type, r.Confidence, r.TargetTag, r.Method)
	}

	if *trigger != "" {
		chain, err := eng.ConsequenceChain(*trigger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "consequence chain: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n💥 Consequence chain from %s:\n", chain.TriggerTag)
		for _, step := range chain.Steps {
			fmt.Printf("  hop %d [%s] %s\n", step.Hop, step.Severity, step.Event)
		}
		fmt.Printf("  Ultimate consequence: %s\n", chain.UltimateConsequence)
	}

	s := eng.Summary()
	fmt.Printf("\n✅ Summary: %d loops, %d relationships, %.1f%% network coverage\n",
		s.TotalLoops, s.TotalRelationships, s.NetworkCoverage.Percentage)
}

func loadInventory(path string) ([]model.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inv struct {
		Assets []model.Asset `yaml:"assets"`
	}
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, err
	}
	return inv.Assets, nil
}

// samplePlant is a small reactor unit: one temperature loop, a safety
// PLC, the control network, and a remote-access path.
func samplePlant() []model.Asset {
	return []model.Asset{
		{ID: "r-101", Tag: "R-101", Name: "Reactor 101", Type: model.TypeReactor,
			Layer: model.LayerPhysicalProcess, ProcessArea: "Unit 100",
			Security: model.SecurityAttributes{
				RiskTier:           model.RiskCritical,
				FailureConsequence: "Runaway exothermic reaction",
			}},
		{ID: "tt-101", Tag: "TT-101", Name: "Reactor temperature", Type: model.TypeTransmitter,
			Layer: model.LayerBasicControl, ProcessArea: "Unit 100",
			Network: model.NetworkAttributes{IPAddress: "10.10.1.11", VLAN: 10}},
		{ID: "tic-101", Tag: "TIC-101", Name: "Reactor temperature controller", Type: model.TypeDCSController,
			Layer: model.LayerSupervisory, ProcessArea: "Unit 100",
			Network: model.NetworkAttributes{IPAddress: "10.10.1.12", VLAN: 10}},
		{ID: "tv-101", Tag: "TV-101", Name: "Coolant valve", Type: model.TypeValve,
			Layer: model.LayerBasicControl, ProcessArea: "Unit 100"},
		{ID: "sis-100", Tag: "SIS-100", Name: "Safety shutdown PLC", Type: model.TypeSafetyPLC,
			Layer: model.LayerBasicControl, ProcessArea: "Unit 100",
			Network:  model.NetworkAttributes{IPAddress: "10.10.1.13", VLAN: 10},
			Security: model.SecurityAttributes{SafetyRating: "SIL 2"}},
		{ID: "sw-01", Tag: "SW-01", Name: "Control switch", Type: model.TypeSwitch,
			Layer: model.LayerSupervisory,
			Network: model.NetworkAttributes{IPAddress: "10.10.1.1", VLAN: 10}},
		{ID: "sw-02", Tag: "SW-02", Name: "DMZ switch", Type: model.TypeSwitch,
			Layer: model.LayerOperations,
			Network: model.NetworkAttributes{IPAddress: "10.20.1.1", VLAN: 20}},
		{ID: "fw-01", Tag: "FW-01", Name: "OT firewall", Type: model.TypeFirewall,
			Layer: model.LayerOperations,
			Network: model.NetworkAttributes{IPAddress: "10.20.1.2", VLAN: 20}},
		{ID: "hmi-01", Tag: "HMI-01", Name: "Unit 100 operator station", Type: model.TypeHMI,
			Layer: model.LayerSupervisory, ProcessArea: "Unit 100",
			Network: model.NetworkAttributes{IPAddress: "10.10.1.20", VLAN: 10}},
		{ID: "ews-04", Tag: "EWS-04", Name: "Engineering workstation", Type: model.TypeEngineeringWorkstation,
			Layer: model.LayerOperations, ProcessArea: "Unit 100",
			Network: model.NetworkAttributes{IPAddress: "10.10.1.21", VLAN: 10}},
		{ID: "vpn-01", Tag: "VPN-01", Name: "Vendor VPN gateway", Type: model.TypeVPNGateway,
			Layer: model.LayerEnterprise,
			Network: model.NetworkAttributes{IPAddress: "10.20.1.3", VLAN: 20, RemoteAccess: true}},
	}
}
