package index

import (
	"testing"

	"github.com/plantsight/plantsight/pkg/model"
)

func testAssets() []model.Asset {
	return []model.Asset{
		{ID: "tt-101", Tag: "TT-101", Type: model.TypeTransmitter, ProcessArea: "Unit 100",
			Network: model.NetworkAttributes{IPAddress: "10.0.0.11", VLAN: 10}},
		{ID: "tic-101", Tag: "TIC-101", Type: model.TypeDCSController, ProcessArea: "Unit 100",
			Network: model.NetworkAttributes{IPAddress: "10.0.0.12", VLAN: 10}},
		{ID: "fv-200", Tag: "FV-200", Type: model.TypeValve, ProcessArea: "Unit 200"},
		{Tag: "GHOST-1", Type: model.TypeSensor}, // no ID: must be skipped
		{ID: "sw-01", Tag: "SW-01", Type: model.TypeSwitch,
			Network: model.NetworkAttributes{IPAddress: "10.0.0.1", VLAN: 10}},
	}
}

func TestBuild_SkipsAssetsWithoutID(t *testing.T) {
	idx := Build(testAssets())
	if idx.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (one asset has no ID)", idx.Len())
	}
	if _, ok := idx.ByTag("GHOST-1"); ok {
		t.Error("asset without an ID must not be indexed by tag")
	}
}

func TestByID_ByTag(t *testing.T) {
	idx := Build(testAssets())

	a, ok := idx.ByID("tt-101")
	if !ok || a.Tag != "TT-101" {
		t.Fatalf("ByID(tt-101) = %v, %v", a, ok)
	}

	// Tag lookup is case-insensitive.
	if _, ok := idx.ByTag("tt-101"); !ok {
		t.Error("ByTag should be case-insensitive")
	}
}

func TestLoopGrouping(t *testing.T) {
	idx := Build(testAssets())

	members := idx.LoopMembers("T-101")
	if len(members) != 2 {
		t.Fatalf("LoopMembers(T-101) = %d members, want 2", len(members))
	}
	// Input order is preserved within a loop group.
	if members[0].ID != "tt-101" || members[1].ID != "tic-101" {
		t.Errorf("loop members out of input order: %s, %s", members[0].ID, members[1].ID)
	}

	keys := idx.LoopKeys()
	if len(keys) != 3 { // F-200, S-01 (SW-01), T-101
		t.Fatalf("LoopKeys() = %v, want 3 keys", keys)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("LoopKeys not sorted: %v", keys)
		}
	}
}

func TestNetworkLookups(t *testing.T) {
	idx := Build(testAssets())

	if a, ok := idx.ByIP("10.0.0.12"); !ok || a.ID != "tic-101" {
		t.Errorf("ByIP(10.0.0.12) = %v, %v", a, ok)
	}

	vlan10 := idx.VLANMembers(10)
	if len(vlan10) != 3 {
		t.Errorf("VLANMembers(10) = %d members, want 3", len(vlan10))
	}
	if members := idx.VLANMembers(999); members != nil {
		t.Errorf("VLANMembers(999) = %v, want nil", members)
	}
}

func TestAreaLookups(t *testing.T) {
	idx := Build(testAssets())

	if got := len(idx.AreaMembers("Unit 100")); got != 2 {
		t.Errorf("AreaMembers(Unit 100) = %d, want 2", got)
	}
	areas := idx.Areas()
	if len(areas) != 2 || areas[0] != "Unit 100" || areas[1] != "Unit 200" {
		t.Errorf("Areas() = %v, want sorted [Unit 100 Unit 200]", areas)
	}
}

func TestTag_UnparseableIsNil(t *testing.T) {
	idx := Build([]model.Asset{{ID: "x", Tag: "!!!", Type: model.TypeSensor}})
	if idx.Tag("x") != nil {
		t.Error("Tag() for an unparseable tag should be nil")
	}
	if idx.Len() != 1 {
		t.Error("asset with an unparseable tag is still indexed")
	}
}

func TestBuild_Empty(t *testing.T) {
	idx := Build(nil)
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", idx.Len())
	}
	if keys := idx.LoopKeys(); len(keys) != 0 {
		t.Errorf("LoopKeys() = %v, want empty", keys)
	}
}
