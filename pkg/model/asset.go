package model

import "strings"

// AssetType identifies what kind of plant asset a record describes.
// The taxonomy is fixed: classifiers in the inference passes switch on
// these values, so free-form types are normalized at ingestion time.
type AssetType string

const (
	// Field instruments (sensors)
	TypeSensor      AssetType = "sensor"
	TypeTransmitter AssetType = "transmitter"
	TypeAnalyzer    AssetType = "analyzer"

	// Actuators
	TypeValve AssetType = "valve"
	TypeMotor AssetType = "motor"
	TypeDrive AssetType = "drive"
	TypePump  AssetType = "pump"

	// Controllers
	TypePLC            AssetType = "plc"
	TypeDCSController  AssetType = "dcs_controller"
	TypeRTU            AssetType = "rtu"
	TypeSafetyPLC      AssetType = "safety_plc"
	TypeLoopController AssetType = "loop_controller"

	// Network devices
	TypeSwitch       AssetType = "switch"
	TypeRouter       AssetType = "router"
	TypeFirewall     AssetType = "firewall"
	TypeVPNGateway   AssetType = "vpn_gateway"
	TypeRemoteAccess AssetType = "remote_access_server"

	// Operations / enterprise systems
	TypeHMI                    AssetType = "hmi"
	TypeEngineeringWorkstation AssetType = "engineering_workstation"
	TypeHistorian              AssetType = "historian"
	TypeSCADAServer            AssetType = "scada_server"
	TypeERPSystem              AssetType = "erp_system"

	// Physical process equipment
	TypeReactor       AssetType = "reactor"
	TypeVessel        AssetType = "vessel"
	TypeHeatExchanger AssetType = "heat_exchanger"
	TypeCompressor    AssetType = "compressor"
	TypeEquipment     AssetType = "equipment"
)

// IsSensor reports whether the type is a measuring instrument.
func (t AssetType) IsSensor() bool {
	switch t {
	case TypeSensor, TypeTransmitter, TypeAnalyzer:
		return true
	}
	return strings.Contains(string(t), "sensor") || strings.Contains(string(t), "transmitter")
}

// IsController reports whether the type executes control logic.
func (t AssetType) IsController() bool {
	switch t {
	case TypePLC, TypeDCSController, TypeRTU, TypeSafetyPLC, TypeLoopController:
		return true
	}
	return strings.Contains(string(t), "controller")
}

// IsActuator reports whether the type is a final control element.
func (t AssetType) IsActuator() bool {
	switch t {
	case TypeValve, TypeMotor, TypeDrive, TypePump:
		return true
	}
	return strings.Contains(string(t), "valve") ||
		strings.Contains(string(t), "motor") ||
		strings.Contains(string(t), "drive")
}

// IsSwitch reports whether the type is an Ethernet switch.
func (t AssetType) IsSwitch() bool {
	return t == TypeSwitch || strings.Contains(string(t), "switch")
}

// IsFirewall reports whether the type is a firewall.
func (t AssetType) IsFirewall() bool {
	return t == TypeFirewall || strings.Contains(string(t), "firewall")
}

// IsHMI reports whether the type is an operator interface.
func (t AssetType) IsHMI() bool {
	return t == TypeHMI || strings.Contains(string(t), "hmi")
}

// IsEngineeringWorkstation reports whether the type is an engineering
// workstation used to program controllers.
func (t AssetType) IsEngineeringWorkstation() bool {
	return t == TypeEngineeringWorkstation ||
		strings.Contains(string(t), "engineering_workstation") ||
		strings.Contains(string(t), "workstation")
}

// IsRemoteAccess reports whether the type provides remote ingress
// (VPN concentrators, jump hosts, remote access servers).
func (t AssetType) IsRemoteAccess() bool {
	switch t {
	case TypeVPNGateway, TypeRemoteAccess:
		return true
	}
	return strings.Contains(string(t), "vpn") || strings.Contains(string(t), "remote_access")
}

// IsPhysicalEquipment reports whether the type is process equipment
// (the things a plant exists to run).
func (t AssetType) IsPhysicalEquipment() bool {
	switch t {
	case TypeReactor, TypeVessel, TypeHeatExchanger, TypeCompressor, TypePump, TypeEquipment:
		return true
	}
	return false
}

// IsSafetyFlavored reports whether the type itself implies a safety
// function (used by the severity cascade for layer-2 assets).
func (t AssetType) IsSafetyFlavored() bool {
	return t == TypeSafetyPLC || strings.Contains(string(t), "safety") ||
		strings.Contains(string(t), "sis")
}

// Layer is the ordinal plant layer, 1 (physical process) through
// 6 (enterprise integration), loosely following the Purdue model.
type Layer int

const (
	LayerPhysicalProcess Layer = 1
	LayerBasicControl    Layer = 2
	LayerSupervisory     Layer = 3
	LayerOperations      Layer = 4
	LayerSiteLogistics   Layer = 5
	LayerEnterprise      Layer = 6
)

// RiskTier is the declared business risk of an asset.
type RiskTier string

const (
	RiskCritical RiskTier = "critical"
	RiskHigh     RiskTier = "high"
	RiskMedium   RiskTier = "medium"
	RiskLow      RiskTier = "low"
)

// NetworkAttributes carries the connectivity metadata an asset may have.
// All fields are optional; an empty IPAddress means "not networked".
type NetworkAttributes struct {
	IPAddress    string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	VLAN         int    `json:"vlan,omitempty" yaml:"vlan,omitempty"`
	RemoteAccess bool   `json:"remote_access,omitempty" yaml:"remote_access,omitempty"`
	RemoteDesc   string `json:"remote_access_description,omitempty" yaml:"remote_access_description,omitempty"`
}

// SecurityAttributes carries risk and safety metadata.
type SecurityAttributes struct {
	RiskTier           RiskTier `json:"risk_tier,omitempty" yaml:"risk_tier,omitempty"`
	SafetyRating       string   `json:"safety_rating,omitempty" yaml:"safety_rating,omitempty"` // e.g. "SIL 2"
	FailureConsequence string   `json:"failure_consequence,omitempty" yaml:"failure_consequence,omitempty"`
}

// Asset is one record in the plant asset inventory. Assets are supplied
// by an external ingestion layer and are read-only to the engine.
// Layer and Type are informative but never both absent: role
// classification must work from Type alone when the tag fails to parse.
type Asset struct {
	ID          string             `json:"id" yaml:"id"`
	Tag         string             `json:"tag,omitempty" yaml:"tag,omitempty"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	Type        AssetType          `json:"type" yaml:"type"`
	Layer       Layer              `json:"layer,omitempty" yaml:"layer,omitempty"`
	ProcessArea string             `json:"process_area,omitempty" yaml:"process_area,omitempty"`
	Network     NetworkAttributes  `json:"network,omitempty" yaml:"network,omitempty"`
	Security    SecurityAttributes `json:"security,omitempty" yaml:"security,omitempty"`
}

// Networked reports whether the asset carries a network address.
func (a *Asset) Networked() bool {
	return a.Network.IPAddress != ""
}

// Label returns the best human-readable handle for the asset:
// tag, then name, then ID.
func (a *Asset) Label() string {
	if a.Tag != "" {
		return a.Tag
	}
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
