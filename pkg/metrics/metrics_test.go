package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestRegistry_RecordEdgeLifecycle(t *testing.T) {
	r := NewRegistry()

	r.RecordEdgeAdded(1)
	r.RecordEdgeAdded(2)

	if got := counterValue(t, r.EdgesAddedTotal); got != 2 {
		t.Errorf("EdgesAddedTotal = %v, want 2", got)
	}
	if got := gaugeValue(t, r.EdgesCurrent); got != 2 {
		t.Errorf("EdgesCurrent = %v, want 2", got)
	}

	r.RecordEdgeDeleted(1)
	if got := counterValue(t, r.EdgesDeletedTotal); got != 1 {
		t.Errorf("EdgesDeletedTotal = %v, want 1", got)
	}
	if got := gaugeValue(t, r.EdgesCurrent); got != 1 {
		t.Errorf("EdgesCurrent = %v, want 1", got)
	}

	r.RecordEdgeRefused("occupied")
	got, err := r.EdgesRefusedTotal.GetMetricWithLabelValues("occupied")
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues: %v", err)
	}
	if v := counterValue(t, got); v != 1 {
		t.Errorf("EdgesRefusedTotal[occupied] = %v, want 1", v)
	}
}

func TestRegistry_RecordModifySlice(t *testing.T) {
	r := NewRegistry()

	r.RecordModifySlice(3)
	r.RecordModifySlice(-5)
	r.RecordModifySlice(0)

	if got := counterValue(t, r.SliceGrowsTotal); got != 1 {
		t.Errorf("SliceGrowsTotal = %v, want 1", got)
	}
	if got := counterValue(t, r.SliceShrinksTotal); got != 1 {
		t.Errorf("SliceShrinksTotal = %v, want 1", got)
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry

	// None of these should panic on a nil registry.
	r.RecordEdgeAdded(1)
	r.RecordEdgeDeleted(0)
	r.RecordEdgeRefused("occupied")
	r.RecordConnection()
	r.RecordDisconnection("refused")
	r.RecordNodeTouched()
	r.RecordSliceAdded(1)
	r.RecordSliceDeleted(0)
	r.RecordModifySlice(4)
	r.RecordDivisionBlock(1)
	r.RecordDivisionUnblock(0)

	if r.GetPrometheusRegistry() != nil {
		t.Error("GetPrometheusRegistry() on nil Registry should be nil")
	}
}

func TestRegistry_DivisionGauge(t *testing.T) {
	r := NewRegistry()

	r.RecordDivisionBlock(1)
	if got := gaugeValue(t, r.DivisionsActive); got != 1 {
		t.Errorf("DivisionsActive = %v, want 1", got)
	}

	r.RecordDivisionUnblock(0)
	if got := gaugeValue(t, r.DivisionsActive); got != 0 {
		t.Errorf("DivisionsActive = %v, want 0", got)
	}
}
