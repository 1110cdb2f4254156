package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/classmix/regroup/types"
)

// PrometheusCollector implements types.Collector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	searchAttempts   prometheus.Histogram
	roundConflicts   prometheus.Counter
	roundsTotal      prometheus.Counter
	generateDuration prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements Collector.
var _ types.Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "regroup" if empty)
//
// Returns:
//   - *PrometheusCollector: A Collector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "regroup"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.searchAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "attempts_per_round",
			Help:      "Candidate partitions tried per committed round.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 200, 500, 1000},
		})

		p.roundConflicts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "round_conflicts_total",
			Help:      "Total previous-round pair conflicts carried by committed rounds.",
		})

		p.roundsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "rounds_total",
			Help:      "Total rounds committed.",
		})

		p.generateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "generate_duration_seconds",
			Help:      "Wall time of full schedule generation runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "cache_lookups_total",
			Help:      "Plan cache lookups by result (hit/miss).",
		}, []string{"result"})

		p.reg.MustRegister(
			p.searchAttempts,
			p.roundConflicts,
			p.roundsTotal,
			p.generateDuration,
			p.cacheLookups,
		)
	})
}

// RecordRoundGenerated records one committed round's search outcome.
func (p *PrometheusCollector) RecordRoundGenerated(attempts, conflicts int) {
	p.ensureRegistered()
	p.searchAttempts.Observe(float64(attempts))
	p.roundConflicts.Add(float64(conflicts))
	p.roundsTotal.Inc()
}

// RecordGenerateDuration records the wall time of a full generation run.
func (p *PrometheusCollector) RecordGenerateDuration(seconds float64) {
	p.ensureRegistered()
	p.generateDuration.Observe(seconds)
}

// RecordPlanCacheLookup records a plan cache lookup outcome.
func (p *PrometheusCollector) RecordPlanCacheLookup(hit bool) {
	p.ensureRegistered()

	result := "miss"
	if hit {
		result = "hit"
	}

	p.cacheLookups.WithLabelValues(result).Inc()
}
