package types

// Collector defines methods for recording operational metrics.
//
// Implementations must be non-blocking and safe for concurrent use; the
// planner records cache lookups from concurrent callers.
type Collector interface {
	// RecordRoundGenerated records one committed round's search outcome.
	//
	// Parameters:
	//   - attempts: Number of candidate partitions tried for the round
	//   - conflicts: Conflict score of the committed partition
	RecordRoundGenerated(attempts, conflicts int)

	// RecordGenerateDuration records the wall time of a full generation run.
	//
	// Parameters:
	//   - seconds: Time taken in seconds
	RecordGenerateDuration(seconds float64)

	// RecordPlanCacheLookup records a plan cache lookup outcome.
	//
	// Parameters:
	//   - hit: true when a cached plan satisfied the request
	RecordPlanCacheLookup(hit bool)
}
