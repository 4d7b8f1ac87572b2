// Package validation checks asset records and engine configuration
// before analysis. Validation is advisory for assets — the engine
// degrades gracefully on dirty input — but hosts ingesting vendor
// exports want the problems enumerated up front.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/plantsight/plantsight/pkg/model"
)

// assetRecord mirrors model.Asset with validation tags. The engine's
// own types stay tag-free so validation policy can evolve without
// touching the data model.
type assetRecord struct {
	ID       string `validate:"required"`
	Type     string `validate:"required"`
	Layer    int    `validate:"omitempty,min=1,max=6"`
	IP       string `validate:"omitempty,ip"`
	VLAN     int    `validate:"omitempty,min=1,max=4094"`
	RiskTier string `validate:"omitempty,oneof=critical high medium low"`
}

var validate = validator.New()

// Problem describes one validation finding for one asset.
type Problem struct {
	AssetID string `json:"asset_id"`
	Tag     string `json:"tag,omitempty"`
	Detail  string `json:"detail"`
}

func (p Problem) String() string {
	if p.AssetID == "" {
		return p.Detail
	}
	return fmt.Sprintf("%s: %s", p.AssetID, p.Detail)
}

// CheckAssets validates a snapshot and returns every problem found.
// An empty result means the snapshot is clean; the engine will accept
// the snapshot either way.
func CheckAssets(assets []model.Asset) []Problem {
	var problems []Problem
	for i := range assets {
		a := &assets[i]
		rec := assetRecord{
			ID:       a.ID,
			Type:     string(a.Type),
			Layer:    int(a.Layer),
			IP:       a.Network.IPAddress,
			VLAN:     a.Network.VLAN,
			RiskTier: string(a.Security.RiskTier),
		}
		if err := validate.Struct(rec); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				problems = append(problems, Problem{
					AssetID: a.ID,
					Tag:     a.Tag,
					Detail:  describeFieldError(fe),
				})
			}
		}
		if a.Layer == 0 && a.Type == "" {
			problems = append(problems, Problem{
				AssetID: a.ID,
				Tag:     a.Tag,
				Detail:  "layer and asset type are both absent; role classification is impossible",
			})
		}
	}
	return problems
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s value %v is out of range", fe.Field(), fe.Value())
	case "ip":
		return fmt.Sprintf("%s %q is not a valid IP address", fe.Field(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %q is not a recognized value", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
