// Package engine is the facade over the asset relationship and
// consequence-chain inference pipeline. An Engine is built once from an
// immutable asset snapshot; every query afterwards is read-only and
// safe to call concurrently. Hosts serving requests with different
// underlying data must build a fresh Engine per snapshot.
package engine

import (
	"strings"
	"time"

	"github.com/plantsight/plantsight/pkg/config"
	"github.com/plantsight/plantsight/pkg/consequence"
	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/inference"
	"github.com/plantsight/plantsight/pkg/logging"
	"github.com/plantsight/plantsight/pkg/loops"
	"github.com/plantsight/plantsight/pkg/metrics"
	"github.com/plantsight/plantsight/pkg/model"
)

// Engine holds the derived views over one asset snapshot. All fields
// are write-once at construction.
type Engine struct {
	idx     *index.Index
	loops   []model.ControlLoop
	rels    []model.Relationship
	builder *consequence.Builder

	cfg     *config.Config
	log     logging.Logger
	metrics *metrics.Registry
	skipped int
}

// New builds an engine from an asset snapshot: indexes the assets,
// reconstructs control loops, and runs every enabled inference pass.
func New(assets []model.Asset, opts ...Option) *Engine {
	e := &Engine{
		cfg: config.Default(),
		log: logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}

	start := time.Now()

	e.idx = index.Build(assets)
	e.skipped = len(assets) - e.idx.Len()
	e.loops = loops.Reconstruct(e.idx)

	for _, pass := range e.passes() {
		passStart := time.Now()
		edges := pass.Run(e.idx, e.loops)
		e.rels = append(e.rels, edges...)

		e.log.Debug("inference pass finished",
			logging.PassName(pass.Name()),
			logging.Count(len(edges)),
			logging.Latency(time.Since(passStart)))
		if e.metrics != nil {
			byType := make(map[string]int)
			for _, r := range edges {
				byType[string(r.Type)]++
			}
			e.metrics.RecordPass(pass.Name(), time.Since(passStart), byType)
		}
	}

	e.builder = consequence.NewBuilder(e.idx, e.rels, e.cfg.MaxChainDepth)

	e.log.Info("engine built",
		logging.Count(e.idx.Len()),
		logging.Int("skipped", e.skipped),
		logging.Int("loops", len(e.loops)),
		logging.Int("relationships", len(e.rels)),
		logging.Latency(time.Since(start)))
	if e.metrics != nil {
		e.metrics.RecordAnalysis("ok", time.Since(start), e.idx.Len(), e.skipped)
		byStatus := make(map[string]int)
		for _, l := range e.loops {
			byStatus[string(l.Status)]++
		}
		e.metrics.RecordLoops(byStatus)
	}
	return e
}

// passes assembles the enabled passes with configured confidences.
func (e *Engine) passes() []inference.Pass {
	conf := e.cfg.Confidence
	var out []inference.Pass

	if e.cfg.Passes.ControlLoop {
		out = append(out, &inference.ControlLoopPass{
			MonitorConfidence:    conf.Monitors,
			ControlConfidence:    conf.Controls,
			IncompleteConfidence: conf.IncompleteLoop,
		})
	}
	if e.cfg.Passes.NetworkTopology {
		out = append(out, &inference.NetworkTopologyPass{
			VLANConfidence: conf.VLANMembership,
			Strategy:       &inference.AllPairsStrategy{Confidence: conf.SwitchFirewall},
		})
	}
	if e.cfg.Passes.ProcessHierarchy {
		out = append(out, &inference.ProcessHierarchyPass{Confidence: conf.ProcessHierarchy})
	}
	if e.cfg.Passes.OperatorAccess {
		out = append(out, &inference.OperatorAccessPass{
			StrongConfidence:    conf.OperatorStrong,
			AreaConfidence:      conf.OperatorAreaOnly,
			ProximityConfidence: conf.NetworkProximity,
		})
	}
	if e.cfg.Passes.Safety {
		out = append(out, &inference.SafetyPass{Confidence: conf.SafetyFunction})
	}
	if e.cfg.Passes.RemoteEntry {
		out = append(out, &inference.RemoteEntryPass{Confidence: conf.RemoteAccessPath})
	}
	return out
}

// Loops returns the reconstructed control loops.
func (e *Engine) Loops() []model.ControlLoop { return e.loops }

// Relationships returns every inferred edge. The set is a multigraph:
// overlapping edges from different passes are preserved.
func (e *Engine) Relationships() []model.Relationship { return e.rels }

// RelationshipsForAsset returns the edges that touch the given asset,
// as either source or target.
func (e *Engine) RelationshipsForAsset(id string) []model.Relationship {
	var out []model.Relationship
	for _, r := range e.rels {
		if r.SourceID == id || r.TargetID == id {
			out = append(out, r)
		}
	}
	return out
}

// ConsequenceChain builds the downstream-impact chain for the given
// trigger asset. Returns consequence.ErrTriggerNotFound (wrapped) when
// the identifier is not in the snapshot.
func (e *Engine) ConsequenceChain(triggerID string) (*model.ConsequenceChain, error) {
	chain, err := e.builder.Build(triggerID)
	if err != nil {
		e.log.Warn("consequence chain build failed",
			logging.TriggerID(triggerID), logging.Error(err))
		if e.metrics != nil {
			e.metrics.RecordChain("not_found", 0, 0)
		}
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.RecordChain("ok", chain.DepthReached, len(chain.Steps))
	}
	return chain, nil
}

// FindAssets returns assets whose tag, name or process area contains
// the query, case-insensitively, in input order.
func (e *Engine) FindAssets(query string) []model.Asset {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []model.Asset
	for _, a := range e.idx.All() {
		if strings.Contains(strings.ToLower(a.Tag), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.ProcessArea), q) {
			out = append(out, a)
		}
	}
	return out
}

// Summary aggregates counts for dashboard consumption.
func (e *Engine) Summary() model.Summary {
	s := model.Summary{
		TotalAssets:         e.idx.Len(),
		TotalRelationships:  len(e.rels),
		TotalLoops:          len(e.loops),
		RelationshipsByType: make(map[model.RelationshipType]int),
		LoopsByStatus: map[model.LoopStatus]int{
			model.LoopComplete: 0,
			model.LoopPartial:  0,
			model.LoopOrphaned: 0,
		},
		AssetsByLayer: make(map[model.Layer]int),
	}
	for _, r := range e.rels {
		s.RelationshipsByType[r.Type]++
	}
	for _, l := range e.loops {
		s.LoopsByStatus[l.Status]++
	}

	networked := 0
	for _, a := range e.idx.All() {
		if a.Layer != 0 {
			s.AssetsByLayer[a.Layer]++
		}
		if a.Networked() {
			networked++
		}
	}
	s.NetworkCoverage = model.NetworkCoverage{
		NetworkedAssets: networked,
		TotalAssets:     e.idx.Len(),
	}
	if e.idx.Len() > 0 {
		s.NetworkCoverage.Percentage = 100 * float64(networked) / float64(e.idx.Len())
	}
	return s
}
