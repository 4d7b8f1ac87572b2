// Package index builds the read-only lookup structures the inference
// passes work from. An Index is populated once at construction and
// never mutated afterwards, so it is safe for concurrent readers
// without locking.
package index

import (
	"sort"
	"strings"

	"github.com/plantsight/plantsight/pkg/model"
	"github.com/plantsight/plantsight/pkg/tagparse"
)

// Index holds the lookup maps over one asset snapshot. Assets with no
// identifier are skipped entirely: relationship output is keyed by
// identifier, so they cannot participate. This is a silent-skip policy,
// not an error, because partial inventories are expected.
type Index struct {
	assets []model.Asset // indexable assets, input order preserved

	byID    map[string]*model.Asset
	byTag   map[string]*model.Asset
	byLoop  map[string][]*model.Asset
	byArea  map[string][]*model.Asset
	byIP    map[string]*model.Asset
	byVLAN  map[int][]*model.Asset
	tagByID map[string]*tagparse.Identifier

	loopKeys []string // sorted, for deterministic iteration
	vlans    []int    // sorted
	areas    []string // sorted
}

// Build constructs an Index from an asset snapshot in a single pass.
func Build(assets []model.Asset) *Index {
	idx := &Index{
		byID:    make(map[string]*model.Asset),
		byTag:   make(map[string]*model.Asset),
		byLoop:  make(map[string][]*model.Asset),
		byArea:  make(map[string][]*model.Asset),
		byIP:    make(map[string]*model.Asset),
		byVLAN:  make(map[int][]*model.Asset),
		tagByID: make(map[string]*tagparse.Identifier),
	}

	for _, a := range assets {
		if a.ID == "" {
			continue
		}
		idx.assets = append(idx.assets, a)
	}

	for i := range idx.assets {
		a := &idx.assets[i]
		idx.byID[a.ID] = a

		if a.Tag != "" {
			idx.byTag[strings.ToUpper(a.Tag)] = a
		}
		if id := tagparse.Parse(a.Tag); id != nil {
			idx.tagByID[a.ID] = id
			if !id.Equipment {
				idx.byLoop[id.LoopKey()] = append(idx.byLoop[id.LoopKey()], a)
			}
		}
		if a.ProcessArea != "" {
			idx.byArea[a.ProcessArea] = append(idx.byArea[a.ProcessArea], a)
		}
		if a.Network.IPAddress != "" {
			idx.byIP[a.Network.IPAddress] = a
		}
		if a.Network.VLAN != 0 {
			idx.byVLAN[a.Network.VLAN] = append(idx.byVLAN[a.Network.VLAN], a)
		}
	}

	for k := range idx.byLoop {
		idx.loopKeys = append(idx.loopKeys, k)
	}
	sort.Strings(idx.loopKeys)
	for v := range idx.byVLAN {
		idx.vlans = append(idx.vlans, v)
	}
	sort.Ints(idx.vlans)
	for a := range idx.byArea {
		idx.areas = append(idx.areas, a)
	}
	sort.Strings(idx.areas)

	return idx
}

// All returns the indexable assets in input order. Callers must not
// modify the returned slice.
func (idx *Index) All() []model.Asset { return idx.assets }

// Len returns the number of indexable assets.
func (idx *Index) Len() int { return len(idx.assets) }

// ByID looks an asset up by identifier.
func (idx *Index) ByID(id string) (*model.Asset, bool) {
	a, ok := idx.byID[id]
	return a, ok
}

// ByTag looks an asset up by tag, case-insensitively.
func (idx *Index) ByTag(tag string) (*model.Asset, bool) {
	a, ok := idx.byTag[strings.ToUpper(tag)]
	return a, ok
}

// ByIP looks an asset up by network address.
func (idx *Index) ByIP(ip string) (*model.Asset, bool) {
	a, ok := idx.byIP[ip]
	return a, ok
}

// Tag returns the decomposed tag identifier for an asset, or nil when
// the asset's tag matched neither grammar.
func (idx *Index) Tag(assetID string) *tagparse.Identifier {
	return idx.tagByID[assetID]
}

// LoopKeys returns every loop grouping key, sorted.
func (idx *Index) LoopKeys() []string { return idx.loopKeys }

// LoopMembers returns the assets sharing a loop key, in input order.
func (idx *Index) LoopMembers(key string) []*model.Asset { return idx.byLoop[key] }

// VLANs returns every VLAN number seen, sorted.
func (idx *Index) VLANs() []int { return idx.vlans }

// VLANMembers returns the assets in a VLAN, in input order.
func (idx *Index) VLANMembers(vlan int) []*model.Asset { return idx.byVLAN[vlan] }

// Areas returns every process-area label seen, sorted.
func (idx *Index) Areas() []string { return idx.areas }

// AreaMembers returns the assets in a process area, in input order.
func (idx *Index) AreaMembers(area string) []*model.Asset { return idx.byArea[area] }
