// Package config holds the engine's tunable parameters. Defaults match
// the documented inference heuristics exactly; a YAML file can override
// confidences, the traversal depth bound, and which passes run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plantsight/plantsight/pkg/validation"
)

// PassesConfig switches individual inference passes on or off.
type PassesConfig struct {
	ControlLoop      bool `yaml:"control_loop"`
	NetworkTopology  bool `yaml:"network_topology"`
	ProcessHierarchy bool `yaml:"process_hierarchy"`
	OperatorAccess   bool `yaml:"operator_access"`
	Safety           bool `yaml:"safety"`
	RemoteEntry      bool `yaml:"remote_entry"`
}

// ConfidenceConfig overrides the per-method confidence scores (0-100).
type ConfidenceConfig struct {
	Monitors         int `yaml:"monitors"`
	Controls         int `yaml:"controls"`
	IncompleteLoop   int `yaml:"incomplete_loop"`
	VLANMembership   int `yaml:"vlan_membership"`
	SwitchFirewall   int `yaml:"switch_firewall"`
	ProcessHierarchy int `yaml:"process_hierarchy"`
	OperatorStrong   int `yaml:"operator_strong"`
	OperatorAreaOnly int `yaml:"operator_area_only"`
	NetworkProximity int `yaml:"network_proximity"`
	SafetyFunction   int `yaml:"safety_function"`
	RemoteAccessPath int `yaml:"remote_access_path"`
}

// Config is the engine configuration.
type Config struct {
	MaxChainDepth int              `yaml:"max_chain_depth"`
	Passes        PassesConfig     `yaml:"passes"`
	Confidence    ConfidenceConfig `yaml:"confidence"`
}

// Default returns the configuration the engine ships with.
func Default() *Config {
	return &Config{
		MaxChainDepth: 5,
		Passes: PassesConfig{
			ControlLoop:      true,
			NetworkTopology:  true,
			ProcessHierarchy: true,
			OperatorAccess:   true,
			Safety:           true,
			RemoteEntry:      true,
		},
		Confidence: ConfidenceConfig{
			Monitors:         90,
			Controls:         90,
			IncompleteLoop:   60,
			VLANMembership:   85,
			SwitchFirewall:   70,
			ProcessHierarchy: 75,
			OperatorStrong:   90,
			OperatorAreaOnly: 70,
			NetworkProximity: 85,
			SafetyFunction:   80,
			RemoteAccessPath: 75,
		},
	}
}

// Load reads a YAML config file over the defaults, then validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against the engine's invariants.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("Config").
		Positive("MaxChainDepth", c.MaxChainDepth)

	for field, value := range map[string]int{
		"Confidence.Monitors":         c.Confidence.Monitors,
		"Confidence.Controls":         c.Confidence.Controls,
		"Confidence.IncompleteLoop":   c.Confidence.IncompleteLoop,
		"Confidence.VLANMembership":   c.Confidence.VLANMembership,
		"Confidence.SwitchFirewall":   c.Confidence.SwitchFirewall,
		"Confidence.ProcessHierarchy": c.Confidence.ProcessHierarchy,
		"Confidence.OperatorStrong":   c.Confidence.OperatorStrong,
		"Confidence.OperatorAreaOnly": c.Confidence.OperatorAreaOnly,
		"Confidence.NetworkProximity": c.Confidence.NetworkProximity,
		"Confidence.SafetyFunction":   c.Confidence.SafetyFunction,
		"Confidence.RemoteAccessPath": c.Confidence.RemoteAccessPath,
	} {
		cv.RangeInt(field, value, 0, 100)
	}

	return cv.Validate()
}
