package bmc

import (
	"time"

	"github.com/crillab/countdown/smt"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	phaseLabel   = "phase"
	statusLabel  = "status"
	verdictLabel = "verdict"

	exactPhase  = "exact"
	approxPhase = "approximate"
)

// Metrics records what drivers do. A nil *Metrics records nothing.
type Metrics struct {
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	depth    prometheus.Gauge
	verdicts *prometheus.CounterVec
}

// NewMetrics creates the metrics of drivers and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bmc_solver_checks_total",
				Help: "Number of solver checks, by phase and status",
			},
			[]string{phaseLabel, statusLabel},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bmc_solver_check_duration_seconds",
				Help:    "Duration of solver checks, by phase",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{phaseLabel},
		),
		depth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bmc_unrolling_depth",
				Help: "Number of transitions asserted in the exact phase of the last search",
			},
		),
		verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bmc_verdicts_total",
				Help: "Number of searches, by verdict",
			},
			[]string{verdictLabel},
		),
	}
	reg.MustRegister(m.checks, m.duration, m.depth, m.verdicts)
	return m
}

func (m *Metrics) observeCheck(phase string, status smt.Status, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(phase, status.String()).Inc()
	m.duration.WithLabelValues(phase).Observe(elapsed.Seconds())
}

func (m *Metrics) setDepth(depth int) {
	if m == nil {
		return
	}
	m.depth.Set(float64(depth))
}

func (m *Metrics) observeVerdict(v Verdict) {
	if m == nil {
		return
	}
	m.verdicts.WithLabelValues(v.String()).Inc()
}
