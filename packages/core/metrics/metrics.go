// Package metrics holds the domain counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "realtaker"

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	settlements *prometheus.CounterVec
	draws       *prometheus.CounterVec
	grants      *prometheus.CounterVec
	snapshots   *prometheus.CounterVec
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Match result submissions by phase and outcome.",
		}, []string{"phase", "outcome"}),
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wheel_draws_total",
			Help:      "Wheel draw attempts by reward kind or rejection reason.",
		}, []string{"result"}),
		grants: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievement_grants_total",
			Help:      "Achievement grant requests by outcome.",
		}, []string{"outcome"}),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edition_snapshots_total",
			Help:      "Edition archival attempts by outcome.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.settlements, m.draws, m.grants, m.snapshots)
	}
	return m
}

func (m *Metrics) Settlement(phase, outcome string) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(phase, outcome).Inc()
}

func (m *Metrics) Draw(result string) {
	if m == nil {
		return
	}
	m.draws.WithLabelValues(result).Inc()
}

func (m *Metrics) Grant(outcome string) {
	if m == nil {
		return
	}
	m.grants.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Snapshot(outcome string) {
	if m == nil {
		return
	}
	m.snapshots.WithLabelValues(outcome).Inc()
}
