package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Settlement("Groups", "ok")
	m.Settlement("Groups", "ok")
	m.Draw("points")
	m.Grant("created")
	m.Snapshot("noData")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.settlements.WithLabelValues("Groups", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.draws.WithLabelValues("points")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.grants.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshots.WithLabelValues("noData")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Settlement("Final", "error")
		m.Draw("disabled")
		m.Grant("alreadyHeld")
		m.Snapshot("created")
	})
}
