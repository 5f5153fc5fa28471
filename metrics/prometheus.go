package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector backed by Prometheus counters.
type PrometheusCollector struct {
	steps        prometheus.Counter
	seatsPerStep prometheus.Histogram
	ballots      *prometheus.CounterVec
	corrections  *prometheus.CounterVec
	runs         *prometheus.CounterVec
	awarded      *prometheus.CounterVec
	unfilled     *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements Collector.
var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a collector and registers its metrics with reg.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to "apportion" if empty)
//
// Panics if a metric with the same name is already registered with reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "apportion"
	}

	p := &PrometheusCollector{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "steps_total",
			Help:      "Single allocation steps that awarded at least one seat.",
		}),
		seatsPerStep: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "seats_per_step",
			Help:      "Seats awarded by one single allocation step.",
			Buckets:   []float64{1, 2, 3, 5, 10},
		}),
		ballots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "contested_ballots_total",
			Help:      "Ballots drawn because more parties were tied than seats remained, by candidate count.",
		}, []string{"candidates"}),
		corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "majority_corrections_total",
			Help:      "Absolute-majority corrections by result (applied, skipped).",
		}, []string{"result"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "formula",
			Name:      "runs_total",
			Help:      "Completed apportionment runs by method.",
		}, []string{"method"}),
		awarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "formula",
			Name:      "seats_awarded_total",
			Help:      "Seats awarded by method.",
		}, []string{"method"}),
		unfilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "formula",
			Name:      "seats_unfilled_total",
			Help:      "Seats left in the pool because no party was eligible, by method.",
		}, []string{"method"}),
	}

	reg.MustRegister(p.steps, p.seatsPerStep, p.ballots, p.corrections, p.runs, p.awarded, p.unfilled)
	return p
}

// RecordStep counts a step and observes its seat count.
func (p *PrometheusCollector) RecordStep(awarded int) {
	p.steps.Inc()
	p.seatsPerStep.Observe(float64(awarded))
}

// RecordBallot counts a contested draw.
func (p *PrometheusCollector) RecordBallot(candidates, _ /* seats */ int) {
	p.ballots.WithLabelValues(strconv.Itoa(candidates)).Inc()
}

// RecordCorrection counts a correction attempt.
func (p *PrometheusCollector) RecordCorrection(applied bool) {
	result := "skipped"
	if applied {
		result = "applied"
	}
	p.corrections.WithLabelValues(result).Inc()
}

// RecordRun counts a run and its seat totals.
func (p *PrometheusCollector) RecordRun(method string, awarded, unfilled uint64) {
	p.runs.WithLabelValues(method).Inc()
	p.awarded.WithLabelValues(method).Add(float64(awarded))
	p.unfilled.WithLabelValues(method).Add(float64(unfilled))
}
