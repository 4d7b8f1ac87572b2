package inference

import (
	"fmt"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// ProcessHierarchyPass ties layer-2 instruments to the layer-1
// equipment they observe. An instrument monitors a piece of equipment
// when the two share a loop/equipment number (TT-101 on R-101) or sit
// in the same process area.
type ProcessHierarchyPass struct {
	Confidence int
}

// NewProcessHierarchyPass returns the pass with its default confidence.
func NewProcessHierarchyPass() *ProcessHierarchyPass {
	return &ProcessHierarchyPass{Confidence: 75}
}

func (p *ProcessHierarchyPass) Name() string { return "process_hierarchy" }

func (p *ProcessHierarchyPass) Run(idx *index.Index, _ []model.ControlLoop) []model.Relationship {
	var equipment, instruments []*model.Asset
	for _, a := range idx.All() {
		ptr, _ := idx.ByID(a.ID)
		switch a.Layer {
		case model.LayerPhysicalProcess:
			equipment = append(equipment, ptr)
		case model.LayerBasicControl:
			instruments = append(instruments, ptr)
		}
	}

	var out []model.Relationship
	for _, inst := range instruments {
		for _, equip := range equipment {
			if !p.related(idx, inst, equip) {
				continue
			}
			out = append(out, edge(inst, equip, model.RelMonitors, p.Confidence,
				MethodProcessHierarchy,
				fmt.Sprintf("%s instruments %s", inst.Label(), equip.Label())))
		}
	}
	return out
}

func (p *ProcessHierarchyPass) related(idx *index.Index, inst, equip *model.Asset) bool {
	instTag := idx.Tag(inst.ID)
	equipTag := idx.Tag(equip.ID)
	if instTag != nil && equipTag != nil && instTag.Number == equipTag.Number {
		return true
	}
	return inst.ProcessArea != "" && inst.ProcessArea == equip.ProcessArea
}
