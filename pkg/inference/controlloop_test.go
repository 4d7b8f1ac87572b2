package inference

import (
	"testing"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/loops"
	"github.com/plantsight/plantsight/pkg/model"
)

func runPass(p Pass, assets []model.Asset) []model.Relationship {
	idx := index.Build(assets)
	return p.Run(idx, loops.Reconstruct(idx))
}

func findEdge(t *testing.T, rels []model.Relationship, srcID, dstID string, typ model.RelationshipType) model.Relationship {
	t.Helper()
	for _, r := range rels {
		if r.SourceID == srcID && r.TargetID == dstID && r.Type == typ {
			return r
		}
	}
	t.Fatalf("edge %s -[%s]-> %s not found in %v", srcID, typ, dstID, rels)
	return model.Relationship{}
}

func TestControlLoopPass_CompleteLoop(t *testing.T) {
	assets := []model.Asset{
		{ID: "tt-101", Tag: "TT-101", Type: model.TypeTransmitter},
		{ID: "tic-101", Tag: "TIC-101", Type: model.TypeDCSController},
		{ID: "tv-101", Tag: "TV-101", Type: model.TypeValve},
	}
	rels := runPass(NewControlLoopPass(), assets)

	monitors := findEdge(t, rels, "tt-101", "tic-101", model.RelMonitors)
	if monitors.Confidence != 90 || monitors.Method != MethodTagPattern {
		t.Errorf("monitors edge = %+v, want confidence 90 method tag_pattern", monitors)
	}

	controls := findEdge(t, rels, "tic-101", "tv-101", model.RelControls)
	if controls.Confidence != 90 || controls.Method != MethodTagPattern {
		t.Errorf("controls edge = %+v, want confidence 90 method tag_pattern", controls)
	}

	if len(rels) != 2 {
		t.Errorf("got %d edges, want 2: %v", len(rels), rels)
	}
}

func TestControlLoopPass_MissingController(t *testing.T) {
	assets := []model.Asset{
		{ID: "tt-101", Tag: "TT-101", Type: model.TypeTransmitter},
		{ID: "tv-101", Tag: "TV-101", Type: model.TypeValve},
	}
	rels := runPass(NewControlLoopPass(), assets)

	dep := findEdge(t, rels, "tt-101", "tv-101", model.RelDependsOn)
	if dep.Confidence != 60 || dep.Method != MethodTagPatternIncomplete {
		t.Errorf("depends_on edge = %+v, want confidence 60 method tag_pattern_incomplete", dep)
	}
	if len(rels) != 1 {
		t.Errorf("got %d edges, want 1: %v", len(rels), rels)
	}
}

func TestControlLoopPass_SensorOnly_NoEdges(t *testing.T) {
	rels := runPass(NewControlLoopPass(), []model.Asset{
		{ID: "tt-101", Tag: "TT-101", Type: model.TypeTransmitter},
	})
	if len(rels) != 0 {
		t.Errorf("got %d edges from a sensor-only loop, want 0", len(rels))
	}
}
