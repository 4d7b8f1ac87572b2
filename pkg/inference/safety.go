package inference

import (
	"fmt"
	"strings"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// SafetyPass connects safety instrumented assets to the physical
// equipment they protect. An asset counts as a safety function when it
// carries an explicit safety-integrity rating, follows a safety naming
// convention, or its tag references SIS/SIF. It protects every layer-1
// equipment item in its process area.
type SafetyPass struct {
	Confidence int
}

// NewSafetyPass returns the pass with its default confidence.
func NewSafetyPass() *SafetyPass {
	return &SafetyPass{Confidence: 80}
}

func (p *SafetyPass) Name() string { return "safety" }

func (p *SafetyPass) Run(idx *index.Index, _ []model.ControlLoop) []model.Relationship {
	var out []model.Relationship
	for _, a := range idx.All() {
		if !isSafetyAsset(&a) || a.ProcessArea == "" {
			continue
		}
		safety, _ := idx.ByID(a.ID)
		for _, member := range idx.AreaMembers(a.ProcessArea) {
			if member.Layer != model.LayerPhysicalProcess || member.ID == safety.ID {
				continue
			}
			out = append(out, edge(safety, member, model.RelProtects, p.Confidence,
				MethodSafetyFunction,
				fmt.Sprintf("%s provides a safety function for %s", safety.Label(), member.Label())))
		}
	}
	return out
}

func isSafetyAsset(a *model.Asset) bool {
	if a.Security.SafetyRating != "" {
		return true
	}
	if strings.HasPrefix(strings.ToLower(a.Name), "safety_") ||
		strings.HasPrefix(strings.ToLower(string(a.Type)), "safety_") {
		return true
	}
	tag := strings.ToUpper(a.Tag)
	return strings.Contains(tag, "SIS") || strings.Contains(tag, "SIF")
}
