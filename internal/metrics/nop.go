// Package metrics provides Collector implementations for the regroup
// library: a no-op default and a Prometheus-backed collector.
package metrics

import "github.com/classmix/regroup/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements Collector.
var _ types.Collector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordRoundGenerated discards the round search metric.
func (n *NopMetrics) RecordRoundGenerated(_ /* attempts */, _ /* conflicts */ int) {
	// No-op
}

// RecordGenerateDuration discards the generation duration metric.
func (n *NopMetrics) RecordGenerateDuration(_ /* seconds */ float64) {
	// No-op
}

// RecordPlanCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordPlanCacheLookup(_ /* hit */ bool) {
	// No-op
}
