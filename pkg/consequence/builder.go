// Package consequence builds bounded downstream-impact chains: given a
// trigger asset and the union of every inferred relationship, it walks
// the directed multigraph breadth-first and narrates what fails next.
package consequence

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// ErrTriggerNotFound is returned when the trigger identifier is not in
// the asset snapshot. Stale UI state makes this an expected condition,
// not a crash.
var ErrTriggerNotFound = errors.New("trigger asset not found")

// DefaultMaxDepth bounds traversal independent of graph size. Five hops
// is past the point where synthesized impact narratives stay credible.
const DefaultMaxDepth = 5

// Builder holds the adjacency view of the relationship multigraph.
// It is built once and read-only afterwards; every Build call keeps its
// traversal state (queue, visited set) local.
type Builder struct {
	idx       *index.Index
	adjacency map[string][]model.Relationship
	maxDepth  int
}

// NewBuilder unions the given relationship edges into an adjacency map
// keyed by source identifier. maxDepth <= 0 selects DefaultMaxDepth.
func NewBuilder(idx *index.Index, rels []model.Relationship, maxDepth int) *Builder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	adj := make(map[string][]model.Relationship)
	for _, r := range rels {
		adj[r.SourceID] = append(adj[r.SourceID], r)
	}
	return &Builder{idx: idx, adjacency: adj, maxDepth: maxDepth}
}

type bfsEntry struct {
	assetID string
	hop     int
}

// Build traverses downstream from the trigger, breadth-first, visiting
// each asset at most once and never exceeding the depth bound, so it
// terminates even on cyclic inferred edges.
func (b *Builder) Build(triggerID string) (*model.ConsequenceChain, error) {
	trigger, ok := b.idx.ByID(triggerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTriggerNotFound, triggerID)
	}

	chain := &model.ConsequenceChain{
		ID:          uuid.NewString(),
		TriggerID:   trigger.ID,
		TriggerTag:  trigger.Tag,
		GeneratedAt: time.Now().UTC(),
	}

	visited := map[string]bool{trigger.ID: true}
	queue := []bfsEntry{{assetID: trigger.ID, hop: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= b.maxDepth {
			// Truncation means the bound actually cut something off:
			// a boundary node with only visited or no neighbors was a
			// natural end of the walk.
			for _, rel := range b.adjacency[current.assetID] {
				if !visited[rel.TargetID] {
					chain.TruncatedByDepth = true
					break
				}
			}
			continue
		}
		nextHop := current.hop + 1

		for _, rel := range b.adjacency[current.assetID] {
			if visited[rel.TargetID] {
				continue
			}
			visited[rel.TargetID] = true

			target, ok := b.idx.ByID(rel.TargetID)
			if !ok {
				continue
			}

			chain.Steps = append(chain.Steps, model.ImpactStep{
				AssetID:  target.ID,
				Tag:      target.Tag,
				Event:    b.describeEvent(trigger, target),
				Severity: stepSeverity(target),
				Hop:      nextHop,
			})
			if nextHop > chain.DepthReached {
				chain.DepthReached = nextHop
			}
			queue = append(queue, bfsEntry{assetID: target.ID, hop: nextHop})
		}
	}

	chain.UltimateConsequence = b.ultimateConsequence(trigger, chain.Steps)
	return chain, nil
}

// describeEvent synthesizes the downstream event text from the
// trigger's asset-type category.
func (b *Builder) describeEvent(trigger, target *model.Asset) string {
	switch {
	case trigger.Type.IsSensor():
		return fmt.Sprintf("%s loses measurement input from %s", target.Label(), trigger.Label())
	case trigger.Type.IsController():
		return fmt.Sprintf("%s loses control from %s", target.Label(), trigger.Label())
	case trigger.Type.IsActuator():
		return fmt.Sprintf("%s fails to operate without %s", target.Label(), trigger.Label())
	default:
		return fmt.Sprintf("%s failure affects %s", trigger.Label(), target.Label())
	}
}

// stepSeverity grades one affected asset. Fixed priority cascade:
// explicit safety rating, explicit critical risk tier, physical-process
// layer, safety-flavored layer-2 type, then the asset's own risk tier
// with a medium default.
func stepSeverity(a *model.Asset) model.Severity {
	switch {
	case a.Security.SafetyRating != "":
		return model.SeverityCritical
	case a.Security.RiskTier == model.RiskCritical:
		return model.SeverityCritical
	case a.Layer == model.LayerPhysicalProcess:
		return model.SeverityHigh
	case a.Layer == model.LayerBasicControl && a.Type.IsSafetyFlavored():
		return model.SeverityCritical
	}
	switch a.Security.RiskTier {
	case model.RiskHigh:
		return model.SeverityHigh
	case model.RiskLow:
		return model.SeverityLow
	case model.RiskMedium:
		return model.SeverityMedium
	}
	return model.SeverityMedium
}

// ultimateConsequence prefers the declared failure consequence of the
// first physical-process asset reached; then the first safety-rated
// asset; then a generic operational-impact line.
func (b *Builder) ultimateConsequence(trigger *model.Asset, steps []model.ImpactStep) string {
	for _, step := range steps {
		a, ok := b.idx.ByID(step.AssetID)
		if !ok || a.Layer != model.LayerPhysicalProcess {
			continue
		}
		if a.Security.FailureConsequence != "" {
			return a.Security.FailureConsequence
		}
		return fmt.Sprintf("process upset at %s", a.Label())
	}
	for _, step := range steps {
		a, ok := b.idx.ByID(step.AssetID)
		if !ok || a.Security.SafetyRating == "" {
			continue
		}
		if a.Security.FailureConsequence != "" {
			return a.Security.FailureConsequence
		}
		return "safety function degradation"
	}
	return fmt.Sprintf("operational impact from %s failure", trigger.Label())
}
