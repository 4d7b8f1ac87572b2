package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("ok", 25*time.Millisecond, 120, 3)

	if got := testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("AnalysesTotal = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.AssetsIndexed); got != 120 {
		t.Errorf("AssetsIndexed = %v, want 120", got)
	}
	if got := testutil.ToFloat64(r.AssetsSkipped); got != 3 {
		t.Errorf("AssetsSkipped = %v, want 3", got)
	}
}

func TestRecordPass(t *testing.T) {
	r := NewRegistry()

	r.RecordPass("control_loop", time.Millisecond, map[string]int{
		"monitors": 4,
		"controls": 2,
	})

	if got := testutil.ToFloat64(r.RelationshipsInferred.WithLabelValues("control_loop", "monitors")); got != 4 {
		t.Errorf("monitors counter = %v, want 4", got)
	}
	if got := testutil.ToFloat64(r.RelationshipsInferred.WithLabelValues("control_loop", "controls")); got != 2 {
		t.Errorf("controls counter = %v, want 2", got)
	}
}

func TestRecordLoops(t *testing.T) {
	r := NewRegistry()

	r.RecordLoops(map[string]int{"complete": 7, "partial": 2, "orphaned": 1})

	if got := testutil.ToFloat64(r.LoopsReconstructed.WithLabelValues("complete")); got != 7 {
		t.Errorf("complete gauge = %v, want 7", got)
	}
}

func TestRecordChain(t *testing.T) {
	r := NewRegistry()

	r.RecordChain("ok", 3, 9)
	r.RecordChain("not_found", 0, 0)

	if got := testutil.ToFloat64(r.ChainsBuilt.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok chains = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.ChainsBuilt.WithLabelValues("not_found")); got != 1 {
		t.Errorf("not_found chains = %v, want 1", got)
	}
}

func TestDefaultRegistry_Singleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry must return the same instance")
	}
}
