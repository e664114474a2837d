package metrics

import (
	"testing"
	"time"
)

func TestNewRegistryInitializesAllMetrics(t *testing.T) {
	r := NewRegistry()
	r.ObserveIndexer("vertex_type", 256, 3)
	r.RecordIndexAllocation("vertex_type")
	r.RecordIndexFree("vertex_type")
	r.ObserveStore(2, 1, 0)
	r.RecordCommit()
	r.RecordRevert(time.Millisecond, true)
	r.RecordRevert(time.Millisecond, false)

	mf, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(mf) == 0 {
		t.Fatal("expected at least one registered metric family")
	}
}

func TestDefaultRegistryIsASingleton(t *testing.T) {
	a := DefaultRegistry()
	b := DefaultRegistry()
	if a != b {
		t.Fatal("expected DefaultRegistry to return the same instance")
	}
}
