package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plantsight/plantsight/pkg/model"
)

func TestCheckAssets_Clean(t *testing.T) {
	problems := CheckAssets([]model.Asset{
		{ID: "tt-101", Tag: "TT-101", Type: model.TypeTransmitter,
			Layer:    model.LayerBasicControl,
			Network:  model.NetworkAttributes{IPAddress: "10.0.0.11", VLAN: 10},
			Security: model.SecurityAttributes{RiskTier: model.RiskMedium}},
	})
	assert.Empty(t, problems)
}

func TestCheckAssets_MissingID(t *testing.T) {
	problems := CheckAssets([]model.Asset{{Tag: "TT-101", Type: model.TypeTransmitter}})
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0].Detail, "required")
}

func TestCheckAssets_BadLayer(t *testing.T) {
	problems := CheckAssets([]model.Asset{
		{ID: "x", Type: model.TypeSensor, Layer: 7},
	})
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0].Detail, "out of range")
}

func TestCheckAssets_BadIP(t *testing.T) {
	problems := CheckAssets([]model.Asset{
		{ID: "x", Type: model.TypeSensor,
			Network: model.NetworkAttributes{IPAddress: "not-an-ip"}},
	})
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0].Detail, "IP address")
}

func TestCheckAssets_BadRiskTier(t *testing.T) {
	problems := CheckAssets([]model.Asset{
		{ID: "x", Type: model.TypeSensor,
			Security: model.SecurityAttributes{RiskTier: "catastrophic"}},
	})
	assert.Len(t, problems, 1)
}

func TestCheckAssets_LayerAndTypeBothAbsent(t *testing.T) {
	problems := CheckAssets([]model.Asset{{ID: "x"}})
	// Missing type fails the struct tags, and the layer/type invariant
	// produces its own finding.
	assert.Len(t, problems, 2)
}

func TestCheckAssets_CollectsAcrossAssets(t *testing.T) {
	problems := CheckAssets([]model.Asset{
		{Tag: "A", Type: model.TypeSensor},
		{ID: "b", Type: model.TypeSensor, Layer: 9},
	})
	assert.Len(t, problems, 2)
}
